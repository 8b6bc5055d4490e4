// Package store provides the key-value blob slot the task list is persisted in.
package store

import "sync"

// DefaultKey names the slot the task list blob is kept under.
const DefaultKey = "tasks"

// Adapter is a single-slot blob store. Load reports ok=false when nothing
// has been saved yet; that is not an error.
type Adapter interface {
	Load() (blob string, ok bool, err error)
	Save(blob string) error
}

// Memory is an Adapter that lives for the process only.
type Memory struct {
	mu    sync.Mutex
	blob  string
	ok    bool
	saves int
}

// NewMemory returns an empty Memory adapter, or one holding seed[0].
func NewMemory(seed ...string) *Memory {
	m := &Memory{}
	if len(seed) > 0 {
		m.blob, m.ok = seed[0], true
	}
	return m
}

func (m *Memory) Load() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blob, m.ok, nil
}

func (m *Memory) Save(blob string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob, m.ok = blob, true
	m.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
