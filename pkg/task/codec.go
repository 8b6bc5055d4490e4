package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBlob is wrapped by every UnmarshalList failure.
var ErrInvalidBlob = errors.New("task: invalid task list blob")

// UnmarshalJSON accepts string ids and the numeric ids of older blobs.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return errors.New("task: id is null")
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("task: id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalList serializes the canonical list in order.
func MarshalList(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalList parses a persisted blob. It rejects anything that is not an
// array of objects carrying at least id and text, and lists that break the
// non-empty text or unique id invariants. No partial result is returned.
func UnmarshalList(blob string) ([]Task, error) {
	data := bytes.TrimSpace([]byte(blob))
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array", ErrInvalidBlob)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
	}

	tasks := make([]Task, 0, len(raws))
	seen := make(map[ID]struct{}, len(raws))
	for i, raw := range raws {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("%w: entry %d is not an object", ErrInvalidBlob, i)
		}
		for _, required := range []string{"id", "text"} {
			v, ok := fields[required]
			if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				return nil, fmt.Errorf("%w: entry %d has no %s", ErrInvalidBlob, i, required)
			}
		}

		var t Task
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidBlob, i, err)
		}
		if t.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty id", ErrInvalidBlob, i)
		}
		if strings.TrimSpace(t.Text) == "" {
			return nil, fmt.Errorf("%w: entry %d (%s) has empty text", ErrInvalidBlob, i, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidBlob, t.ID)
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
