package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.log")
	logger, closer := New(Options{File: path, Verbose: true})
	logger.Debug("task added", slog.String("id", "a"))
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"task added"`) || !strings.Contains(string(data), `"id":"a"`) {
		t.Fatalf("unexpected log contents %q", data)
	}
}

func TestLevels(t *testing.T) {
	quiet, _ := New(Options{Quiet: true})
	if quiet.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("debug should be off without verbose")
	}
	if !quiet.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatalf("warn should be on")
	}
	verbose, _ := New(Options{Quiet: true, Verbose: true})
	if !verbose.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("debug should be on with verbose")
	}
}
