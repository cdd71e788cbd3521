package cmd

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/sarchlab/adder"
	"github.com/sarchlab/adder/config"
	"github.com/sarchlab/adder/datarecording"
	"github.com/sarchlab/adder/hooking"
	"github.com/sarchlab/adder/monitoring"
)

// A session is an Adder with the hooks and servers requested by the
// configuration.
type session struct {
	adder    *adder.Adder
	counter  *hooking.AdditionCounter
	monitor  *monitoring.Monitor
	recorder datarecording.DataRecorder
}

func newSession(cfg config.Config, logOutput io.Writer) (*session, error) {
	err := adder.SelectIDGenerator(cfg.ParallelIDs)
	if err != nil {
		return nil, err
	}

	s := &session{}
	builder := adder.MakeBuilder()

	if cfg.Log {
		logger := log.New(logOutput, "", 0)
		builder = builder.WithHook(hooking.NewAdditionLogger(logger))
	}

	if cfg.RecordDB != "" {
		recorder, err := datarecording.New(cfg.RecordDB)
		if err != nil {
			return nil, err
		}

		s.recorder = recorder
		builder = builder.WithHook(hooking.NewAdditionRecorder(recorder))
	}

	if cfg.Monitor {
		s.counter = hooking.NewAdditionCounter()
		builder = builder.WithHook(s.counter)
	}

	s.adder = builder.Build(cfg.Name)

	if cfg.Monitor {
		err := s.startMonitor(cfg)
		if err != nil {
			s.close()
			return nil, err
		}
	}

	return s, nil
}

func (s *session) startMonitor(cfg config.Config) error {
	s.monitor = monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)
	s.monitor.RegisterComponent(s.adder)
	s.monitor.RegisterCounter(s.counter)

	url, err := s.monitor.StartServer()
	if err != nil {
		return err
	}

	if cfg.OpenBrowser {
		err = monitoring.OpenInBrowser(url)
		if err != nil {
			log.Printf("cannot open browser: %v", err)
		}
	}

	return nil
}

func (s *session) close() error {
	var errs []error

	if s.monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		errs = append(errs, s.monitor.StopServer(ctx))
	}

	if s.recorder != nil {
		errs = append(errs, s.recorder.Close())
	}

	return errors.Join(errs...)
}
