// Package logging builds the slog logger shared by the CLI and the UI.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where log records go.
type Options struct {
	// File, when set, receives logs through a rotating writer.
	File string
	// Verbose lowers the level to debug.
	Verbose bool
	// Quiet discards records that would otherwise go to stderr. The UI sets
	// it because it owns the terminal.
	Quiet bool
}

// New returns a logger and a closer for any file it opened.
func New(o Options) (*slog.Logger, io.Closer) {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch {
	case o.File != "":
		w := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), w
	case o.Quiet:
		return slog.New(slog.NewTextHandler(io.Discard, handlerOpts)), nopCloser{}
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), nopCloser{}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
