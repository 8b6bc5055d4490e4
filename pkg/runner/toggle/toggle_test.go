package toggle

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func TestToggleUnderFilter(t *testing.T) {
	color.NoColor = true
	mem := store.NewMemory()
	s := tasklist.New(mem)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, text := range []string{"A", "B", "C"} {
		if _, err := s.AddTask(text); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := s.ToggleComplete(1); err != nil {
		t.Fatalf("toggle B: %v", err)
	}

	var out bytes.Buffer
	tg := Toggle{
		Position: 1,
		Filter:   task.Active,
		Store:    s,
		Printer:  &printers.PrettyPrint{Out: &out},
	}
	if err := tg.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	all := s.Tasks()
	if all[0].Completed || !all[1].Completed || !all[2].Completed {
		t.Fatalf("expected B and C completed, got %+v", all)
	}
	if mem.Saves() != 5 {
		t.Fatalf("expected 5 saves, got %d", mem.Saves())
	}
}

func TestToggleOutOfRange(t *testing.T) {
	mem := store.NewMemory()
	s := tasklist.New(mem)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	tg := Toggle{Position: 0, Filter: task.All, Store: s, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	if err := tg.Do(context.Background()); err == nil {
		t.Fatal("expected an error for a missing task")
	}
	if mem.Saves() != 0 {
		t.Fatalf("expected no saves, got %d", mem.Saves())
	}
}

func TestToggleJSON(t *testing.T) {
	s := tasklist.New(store.NewMemory())
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := s.AddTask("A"); err != nil {
		t.Fatalf("add: %v", err)
	}

	var out bytes.Buffer
	tg := Toggle{
		Position: 0,
		Filter:   task.All,
		Store:    s,
		Printer:  &printers.PrettyPrint{JSON: true, Out: &out},
	}
	if err := tg.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	var got printers.Listing
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("expected a JSON listing, got %q: %v", out.String(), err)
	}
	if got.Active != 0 || len(got.Tasks) != 1 || !got.Tasks[0].Completed {
		t.Fatalf("unexpected listing %+v", got)
	}
}
