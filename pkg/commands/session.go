package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tasklist"
)

// sessionState is one hydrated store plus what it was opened with.
type sessionState struct {
	Store  *tasklist.Store
	Config store.Config // nil for --memory
	Logger *slog.Logger

	closer io.Closer
}

// openSession loads config, builds the logger and adapter, and hydrates the
// store. quiet keeps logs off the terminal when the UI owns it.
func openSession(quiet bool) (*sessionState, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	logger, closer := logging.New(logging.Options{
		File:    viper.GetString("log.file"),
		Verbose: viper.GetBool("log.verbose"),
		Quiet:   quiet,
	})

	var (
		adapter store.Adapter
		where   string
	)
	if session.Memory {
		adapter, where, cfg = store.NewMemory(), "memory", nil
	} else {
		p, err := store.Load(cfg)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		adapter, where = p, p.Path()
	}

	s := tasklist.New(adapter, tasklist.WithLogger(logger))
	if err := s.Initialize(); err != nil {
		_ = closer.Close()
		var corrupt *tasklist.CorruptPersistedStateError
		if errors.As(err, &corrupt) {
			return nil, fmt.Errorf("%w; refusing to overwrite %s, fix or move it away", err, where)
		}
		return nil, err
	}
	logger.Debug("session opened", slog.String("store", where))

	return &sessionState{Store: s, Config: cfg, Logger: logger, closer: closer}, nil
}

func (s *sessionState) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}
