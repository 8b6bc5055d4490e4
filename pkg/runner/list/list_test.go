package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func seeded(t *testing.T, texts ...string) *tasklist.Store {
	t.Helper()
	s := tasklist.New(store.NewMemory())
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, text := range texts {
		if _, err := s.AddTask(text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}
	return s
}

func TestListJSON(t *testing.T) {
	s := seeded(t, "A", "B", "C")
	if err := s.ToggleComplete(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	var out bytes.Buffer
	l := List{Filter: task.Active, JSON: true, Store: s, Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	var got printers.Listing
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if got.Filter != task.Active || got.Active != 2 {
		t.Fatalf("got filter %s active %d", got.Filter, got.Active)
	}
	if len(got.Tasks) != 2 || got.Tasks[0].Text != "A" || got.Tasks[1].Text != "C" {
		t.Fatalf("unexpected tasks %+v", got.Tasks)
	}
}

func TestListPretty(t *testing.T) {
	color.NoColor = true
	s := seeded(t, "buy milk")

	var out bytes.Buffer
	l := List{Filter: task.All, Store: s, Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"All tasks", "buy milk", "1 task left"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestListRejectsUnknownFilter(t *testing.T) {
	s := seeded(t, "A")
	l := List{Filter: task.Filter("bogus"), Store: s, Out: &bytes.Buffer{}}
	if err := l.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown filter")
	}
	if s.Filter() != task.All {
		t.Fatalf("filter changed to %q", s.Filter())
	}
}

func TestListNoStore(t *testing.T) {
	l := List{}
	if err := l.Do(context.Background()); err == nil {
		t.Fatal("expected error without a store")
	}
}
