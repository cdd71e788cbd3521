// Package cmd provides the command-line interface of the adder tool.
package cmd

import (
	"github.com/sarchlab/adder/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile     string
	name        string
	log         bool
	record      string
	monitor     bool
	port        int
	openBrowser bool
	parallelIDs bool

	cfg config.Config
}

// NewRootCmd creates the adder command with all its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "adder",
		Short: "Adder adds 32-bit signed integers.",
		Long: `Adder adds 32-bit signed integers with wraparound on overflow. ` +
			`Additions can be logged, recorded into a SQLite database, and ` +
			`watched through a monitoring server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.loadConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env",
		"The .env file to load settings from.")
	flags.StringVar(&opts.name, "name", "", "The name of the adder.")
	flags.BoolVar(&opts.log, "log", false, "Print every addition.")
	flags.StringVar(&opts.record, "record", "",
		"Record additions into the given SQLite database (without suffix).")
	flags.BoolVar(&opts.monitor, "monitor", false,
		"Start the monitoring server.")
	flags.IntVar(&opts.port, "port", 0,
		"The port of the monitoring server. Random if not set.")
	flags.BoolVar(&opts.openBrowser, "open-browser", false,
		"Open the monitoring page in a browser.")
	flags.BoolVar(&opts.parallelIDs, "parallel-ids", false,
		"Give additions globally unique IDs instead of sequential ones.")

	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))

	return rootCmd
}

// Execute runs the adder command with the arguments of the process.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("name") {
		cfg.Name = o.name
	}

	if flags.Changed("log") {
		cfg.Log = o.log
	}

	if flags.Changed("record") {
		cfg.RecordDB = o.record
	}

	if flags.Changed("monitor") {
		cfg.Monitor = o.monitor
	}

	if flags.Changed("port") {
		cfg.MonitorPort = o.port
	}

	if flags.Changed("open-browser") {
		cfg.OpenBrowser = o.openBrowser
	}

	if flags.Changed("parallel-ids") {
		cfg.ParallelIDs = o.parallelIDs
	}

	o.cfg = cfg

	return nil
}
