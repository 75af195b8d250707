package flagdefaults

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoolGroup(t *testing.T) *Group[bool] {
	t.Helper()
	g, err := NewGroup("SearchBoolFeatureFlag",
		Entry[bool]{Key: "enableNewSearch", Default: false},
		Entry[bool]{Key: "enableFilters", Default: false},
		Entry[bool]{Key: "enableSuggestions", Default: true},
		Entry[bool]{Key: "enableHistory", Default: true},
	)
	require.NoError(t, err)
	return g
}

func TestGroup_DefaultValueOf(t *testing.T) {
	g := testBoolGroup(t)

	tests := []struct {
		key  string
		want bool
	}{
		{"enableNewSearch", false},
		{"enableFilters", false},
		{"enableSuggestions", true},
		{"enableHistory", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := g.DefaultValueOf(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroup_UnknownFlag(t *testing.T) {
	g := testBoolGroup(t)

	_, err := g.DefaultValueOf("enableEverything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFlag))

	var ufe *UnknownFlagError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "SearchBoolFeatureFlag", ufe.Group)
	assert.Equal(t, "enableEverything", ufe.Name)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestGroup_DeclarationOrder(t *testing.T) {
	g := testBoolGroup(t)

	assert.Equal(t, []string{"enableNewSearch", "enableFilters", "enableSuggestions", "enableHistory"}, g.Keys())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, KindBool, g.Kind())
	assert.True(t, g.Has("enableHistory"))
	assert.False(t, g.Has("EnableHistory"))
}

func TestGroup_Exhaustive(t *testing.T) {
	g := testBoolGroup(t)

	for _, key := range g.Keys() {
		_, err := g.DefaultValueOf(key)
		assert.NoError(t, err, key)
	}
	assert.Len(t, g.Table(), g.Len())
}

func TestNewGroup_Invalid(t *testing.T) {
	_, err := NewGroup("G", Entry[string]{Key: "a", Default: "x"}, Entry[string]{Key: "a", Default: "y"})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewGroup("G", Entry[string]{Key: "", Default: "x"})
	assert.ErrorContains(t, err, "empty flag key")

	_, err = NewGroup[string]("")
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustGroup("G", Entry[bool]{Key: "a"}, Entry[bool]{Key: "a"})
	})
}

func TestGroup_CopiesAreIndependent(t *testing.T) {
	g := testBoolGroup(t)

	table := g.Table()
	table["enableNewSearch"] = true
	entries := g.Entries()
	entries[0].Default = true

	got, err := g.DefaultValueOf("enableNewSearch")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestGroup_Records(t *testing.T) {
	g := MustGroup("AppStringFeatureFlag",
		Entry[string]{Key: "apiEndpoint", Default: "https://api.default.com"},
	)

	assert.Equal(t, []Record{
		{Key: "apiEndpoint", DefaultValue: "https://api.default.com", Type: KindString},
	}, g.Records())
}
