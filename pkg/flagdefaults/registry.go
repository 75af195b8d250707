package flagdefaults

import "fmt"

// Source is a group seen without its value type.
type Source interface {
	Name() string
	Kind() string
	Keys() []string
	Records() []Record
	Lookup(key string) (any, error)
}

// Lookup is DefaultValueOf without the static type.
func (g *Group[V]) Lookup(key string) (any, error) {
	v, err := g.DefaultValueOf(key)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Registry is a read-only set of groups addressed by name.
type Registry struct {
	groups []Source
	byName map[string]Source
}

// NewRegistry collects groups. Group names must be unique.
func NewRegistry(groups ...Source) (*Registry, error) {
	r := &Registry{byName: make(map[string]Source, len(groups))}
	for _, g := range groups {
		if _, ok := r.byName[g.Name()]; ok {
			return nil, fmt.Errorf("duplicate group %q", g.Name())
		}
		r.byName[g.Name()] = g
		r.groups = append(r.groups, g)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on duplicate group names.
func MustRegistry(groups ...Source) *Registry {
	r, err := NewRegistry(groups...)
	if err != nil {
		panic(err)
	}
	return r
}

// Groups returns group names in registration order.
func (r *Registry) Groups() []string {
	names := make([]string, len(r.groups))
	for i, g := range r.groups {
		names[i] = g.Name()
	}
	return names
}

// Group returns a group by name.
func (r *Registry) Group(name string) (Source, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// DefaultValueOf looks a flag up by group and key. Either name being
// undeclared yields an error matching ErrUnknownFlag.
func (r *Registry) DefaultValueOf(group, key string) (any, error) {
	g, ok := r.byName[group]
	if !ok {
		return nil, &UnknownFlagError{Group: group}
	}
	return g.Lookup(key)
}

// Snapshot serializes all groups.
func (r *Registry) Snapshot() Snapshot {
	s := make(Snapshot, len(r.groups))
	for _, g := range r.groups {
		s[g.Name()] = g.Records()
	}
	return s
}
