package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func TestVerbAliases(t *testing.T) {
	root := New()
	for alias, want := range map[string]string{
		"add":    "add",
		"ls":     "list",
		"done":   "toggle",
		"edit":   "edit",
		"delete": "rm",
		"clear":  "clear",
		"ui":     "ui",
	} {
		cmd, _, err := root.Find([]string{alias})
		if err != nil {
			t.Fatalf("find %q: %v", alias, err)
		}
		if cmd.Name() != want {
			t.Fatalf("%q resolved to %q, want %q", alias, cmd.Name(), want)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	root := New()
	for _, name := range []string{"memory", "log-file", "verbose", "json"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("missing persistent flag --%s", name)
		}
	}
	list, _, err := root.Find([]string{"list"})
	if err != nil {
		t.Fatalf("find list: %v", err)
	}
	if list.Flags().Lookup("filter") == nil || list.Flags().Lookup("show-id") == nil {
		t.Fatal("list is missing its view flags")
	}
}

func runTodo(t *testing.T, args ...string) error {
	t.Helper()
	root := New()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestCorruptStoreIsLeftAlone(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_PATH", t.TempDir())
	t.Setenv("TODO_PATH", dir)
	t.Setenv("TODO_KEY", "")

	blob := filepath.Join(dir, "tasks")
	corrupt := []byte(`{"not": "a list"}`)
	if err := os.WriteFile(blob, corrupt, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, args := range [][]string{{"list"}, {"add", "buy", "milk"}, {"clear"}} {
		err := runTodo(t, args...)
		if err == nil {
			t.Fatalf("todo %v: expected an error for a corrupt store", args)
		}
		var corruptErr *tasklist.CorruptPersistedStateError
		if !errors.As(err, &corruptErr) {
			t.Fatalf("todo %v: expected a corrupt state error, got %v", args, err)
		}
		got, err := os.ReadFile(blob)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.Equal(got, corrupt) {
			t.Fatalf("todo %v rewrote the store: %q", args, got)
		}
	}
}

func TestAddPersistsToDisk(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_PATH", t.TempDir())
	t.Setenv("TODO_PATH", dir)
	t.Setenv("TODO_KEY", "")

	if err := runTodo(t, "add", "buy", "milk"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := runTodo(t, "done", "1"); err != nil {
		t.Fatalf("done: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "tasks"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	tasks, err := task.UnmarshalList(string(b))
	if err != nil {
		t.Fatalf("stored blob: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Text != "buy milk" || !tasks[0].Completed {
		t.Fatalf("unexpected stored tasks %+v", tasks)
	}

	if err := runTodo(t, "toggle", "--filter", "bogus", "1"); err == nil {
		t.Fatal("expected an error for an unknown filter")
	}
}
