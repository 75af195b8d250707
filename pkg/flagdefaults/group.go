// Package flagdefaults holds read-only tables of feature flag defaults.
//
// A Group is a closed set of flag keys sharing one value type. Groups are
// built once, usually into package-level variables, and never change after
// that. Lookups of undeclared keys fail with ErrUnknownFlag.
package flagdefaults

import (
	"fmt"
)

// Value is the set of supported default value types.
type Value interface {
	bool | string
}

// Entry is one flag declaration.
type Entry[V Value] struct {
	Key     string
	Default V
}

// Group is an immutable, ordered table of flag defaults of one type.
type Group[V Value] struct {
	name    string
	entries []Entry[V]
	index   map[string]int
}

// NewGroup builds a group. Keys must be non-empty and unique.
func NewGroup[V Value](name string, entries ...Entry[V]) (*Group[V], error) {
	if name == "" {
		return nil, fmt.Errorf("group name is empty")
	}

	g := &Group[V]{
		name:    name,
		entries: make([]Entry[V], 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("group %s: empty flag key", name)
		}
		if _, ok := g.index[e.Key]; ok {
			return nil, fmt.Errorf("group %s: duplicate flag key %q", name, e.Key)
		}
		g.index[e.Key] = len(g.entries)
		g.entries = append(g.entries, e)
	}
	return g, nil
}

// MustGroup is like NewGroup but panics on an invalid declaration.
func MustGroup[V Value](name string, entries ...Entry[V]) *Group[V] {
	g, err := NewGroup(name, entries...)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the group name.
func (g *Group[V]) Name() string { return g.name }

// Kind returns the value type name: "bool" or "string".
func (g *Group[V]) Kind() string { return kindOf[V]() }

// Len returns the number of declared flags.
func (g *Group[V]) Len() int { return len(g.entries) }

// Has reports whether key is declared in the group.
func (g *Group[V]) Has(key string) bool {
	_, ok := g.index[key]
	return ok
}

// DefaultValueOf returns the default for key. Undeclared keys yield an
// *UnknownFlagError, never a zero value.
func (g *Group[V]) DefaultValueOf(key string) (V, error) {
	i, ok := g.index[key]
	if !ok {
		var zero V
		return zero, &UnknownFlagError{Group: g.name, Name: key}
	}
	return g.entries[i].Default, nil
}

// Keys returns flag keys in declaration order.
func (g *Group[V]) Keys() []string {
	keys := make([]string, len(g.entries))
	for i, e := range g.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the declarations in order.
func (g *Group[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(g.entries))
	copy(out, g.entries)
	return out
}

// Table returns key -> default as a fresh map.
func (g *Group[V]) Table() map[string]V {
	m := make(map[string]V, len(g.entries))
	for _, e := range g.entries {
		m[e.Key] = e.Default
	}
	return m
}

// Records returns the group in its serialized form.
func (g *Group[V]) Records() []Record {
	kind := g.Kind()
	out := make([]Record, len(g.entries))
	for i, e := range g.entries {
		out[i] = Record{Key: e.Key, DefaultValue: e.Default, Type: kind}
	}
	return out
}

func kindOf[V Value]() string {
	var zero V
	if _, ok := any(zero).(bool); ok {
		return KindBool
	}
	return KindString
}
