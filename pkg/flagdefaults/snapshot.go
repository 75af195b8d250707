package flagdefaults

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Value type names used in serialized records.
const (
	KindBool   = "bool"
	KindString = "string"
)

// Record is the serialized form of one flag.
type Record struct {
	Key          string `json:"key" yaml:"key"`
	DefaultValue any    `json:"default_value" yaml:"default_value"`
	Type         string `json:"type" yaml:"type"`
}

// Validate checks that the default matches the declared type.
func (r Record) Validate() error {
	if r.Key == "" {
		return fmt.Errorf("empty flag key")
	}
	switch r.Type {
	case KindBool:
		if _, ok := r.DefaultValue.(bool); !ok {
			return fmt.Errorf("flag %q: expected bool default, got %T", r.Key, r.DefaultValue)
		}
	case KindString:
		if _, ok := r.DefaultValue.(string); !ok {
			return fmt.Errorf("flag %q: expected string default, got %T", r.Key, r.DefaultValue)
		}
	default:
		return fmt.Errorf("flag %q: unsupported type %q", r.Key, r.Type)
	}
	return nil
}

// Snapshot maps group name to its records. It is the catalog exchanged
// between tools.
type Snapshot map[string][]Record

// Names returns group names sorted.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalIndent encodes the snapshot as indented JSON. Non-ASCII text is
// kept as is.
func (s Snapshot) MarshalIndent() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ParseSnapshot decodes and validates a JSON catalog.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every record and key uniqueness within each group.
func (s Snapshot) Validate() error {
	for _, name := range s.Names() {
		seen := make(map[string]bool, len(s[name]))
		for _, r := range s[name] {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("group %s: %w", name, err)
			}
			if seen[r.Key] {
				return fmt.Errorf("group %s: duplicate flag key %q", name, r.Key)
			}
			seen[r.Key] = true
		}
	}
	return nil
}

// Table returns key -> default for one group.
func (s Snapshot) Table(group string) (map[string]any, error) {
	records, ok := s[group]
	if !ok {
		return nil, &UnknownFlagError{Group: group}
	}
	m := make(map[string]any, len(records))
	for _, r := range records {
		m[r.Key] = r.DefaultValue
	}
	return m, nil
}

// BoolGroup rebuilds a bool group from the snapshot.
func (s Snapshot) BoolGroup(name string) (*Group[bool], error) {
	return groupFrom[bool](s, name)
}

// StringGroup rebuilds a string group from the snapshot.
func (s Snapshot) StringGroup(name string) (*Group[string], error) {
	return groupFrom[string](s, name)
}

func groupFrom[V Value](s Snapshot, name string) (*Group[V], error) {
	records, ok := s[name]
	if !ok {
		return nil, &UnknownFlagError{Group: name}
	}
	want := kindOf[V]()
	entries := make([]Entry[V], 0, len(records))
	for _, r := range records {
		if r.Type != want {
			return nil, fmt.Errorf("group %s: flag %q has type %q, want %q", name, r.Key, r.Type, want)
		}
		v, ok := r.DefaultValue.(V)
		if !ok {
			return nil, fmt.Errorf("group %s: flag %q: expected %s default, got %T", name, r.Key, want, r.DefaultValue)
		}
		entries = append(entries, Entry[V]{Key: r.Key, Default: v})
	}
	return NewGroup(name, entries...)
}
