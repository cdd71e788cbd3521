// Package config loads the settings of the adder tools from .env files and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvName        = "ADDER_NAME"
	EnvLog         = "ADDER_LOG"
	EnvRecordDB    = "ADDER_RECORD_DB"
	EnvMonitor     = "ADDER_MONITOR"
	EnvMonitorPort = "ADDER_MONITOR_PORT"
	EnvOpenBrowser = "ADDER_OPEN_BROWSER"
	EnvParallelIDs = "ADDER_PARALLEL_IDS"
)

// Config holds the settings shared by the adder commands.
type Config struct {
	// Name is the name given to the Adder.
	Name string

	// Log enables printing every addition.
	Log bool

	// RecordDB is the path, without the .sqlite3 suffix, of the database that
	// additions are recorded into. Recording is disabled when empty.
	RecordDB string

	// Monitor enables the monitoring server.
	Monitor bool

	// MonitorPort is the port of the monitoring server. 0 picks a random
	// port.
	MonitorPort int

	// OpenBrowser opens the monitoring page in a browser.
	OpenBrowser bool

	// ParallelIDs makes additions use globally unique IDs instead of
	// sequential numbers.
	ParallelIDs bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Name: "Adder",
	}
}

// Load reads the given .env files, then builds a Config from the environment.
// Files that do not exist are skipped. Variables already present in the
// environment take precedence over the files.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the environment variables.
func FromEnv() (Config, error) {
	c := DefaultConfig()

	if name, ok := os.LookupEnv(EnvName); ok && name != "" {
		c.Name = name
	}

	c.RecordDB = os.Getenv(EnvRecordDB)

	var err error

	if c.Log, err = lookupBool(EnvLog); err != nil {
		return Config{}, err
	}

	if c.Monitor, err = lookupBool(EnvMonitor); err != nil {
		return Config{}, err
	}

	if c.OpenBrowser, err = lookupBool(EnvOpenBrowser); err != nil {
		return Config{}, err
	}

	if c.ParallelIDs, err = lookupBool(EnvParallelIDs); err != nil {
		return Config{}, err
	}

	if c.MonitorPort, err = lookupInt(EnvMonitorPort); err != nil {
		return Config{}, err
	}

	return c, nil
}

func lookupBool(key string) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}

	return b, nil
}

func lookupInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}

	return i, nil
}
