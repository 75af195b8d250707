package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovanwin/flagdefaults/internal/catalog"
	"github.com/vovanwin/flagdefaults/pkg/flagdefaults"
)

func TestJSValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"float", 0.5, "0.5"},
		{"string", "owner/repo", `"owner/repo"`},
		{"unicode", "Welcome to the app ❤️", `"Welcome to the app ❤️"`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"script", "</script>", `"\u003c/script\u003e"`},
		{"list", []any{"a", true}, `["a",true]`},
		{"map", map[string]any{"k": "v"}, `{"k":"v"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_SinglePass(t *testing.T) {
	// Значение с плейсхолдером внутри не должно раскрываться повторно
	got, err := Render("a={FLAG_PATH}; b={FLAG_JSON_REPO}", map[string]any{
		PlaceholderPath: "{FLAG_JSON_REPO}",
		PlaceholderRepo: "owner/repo",
	})
	require.NoError(t, err)
	assert.Equal(t, `a="{FLAG_JSON_REPO}"; b="owner/repo"`, got)
}

func TestPage(t *testing.T) {
	out := t.TempDir()
	s := flagdefaults.Snapshot{"SearchBoolFeatureFlag": {
		{Key: "enableHistory", DefaultValue: true, Type: "bool"},
	}}
	require.NoError(t, catalog.WriteFile(filepath.Join(out, "flags.json"), s, catalog.FormatJSON))

	tmpl := filepath.Join(t.TempDir(), "template.html")
	require.NoError(t, os.WriteFile(tmpl, []byte(
		"const flags = {FLAG_JSON_DATA};\nconst path = {FLAG_PATH};\nconst repo = {FLAG_JSON_REPO};\n"), 0o644))

	path, err := Page(Options{Template: tmpl, OutputDir: out, FlagsPath: "flags.json", Repo: "owner/repo"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "index.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `const flags = {"SearchBoolFeatureFlag":[{"key":"enableHistory","default_value":true,"type":"bool"}]};
const path = "flags.json";
const repo = "owner/repo";
`
	assert.Equal(t, want, string(b))
}

func TestPage_DefaultTemplate(t *testing.T) {
	out := t.TempDir()
	s := flagdefaults.Snapshot{"AppStringFeatureFlag": {
		{Key: "apiEndpoint", DefaultValue: "https://api.default.com", Type: "string"},
	}}
	require.NoError(t, catalog.WriteFile(filepath.Join(out, "flags.json"), s, catalog.FormatJSON))

	path, err := Page(Options{OutputDir: out, FlagsPath: "flags.json", Repo: "owner/repo"})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(b)
	assert.Contains(t, html, `"https://api.default.com"`)
	assert.False(t, strings.Contains(html, "{FLAG_"), "остались плейсхолдеры")
}

func TestPage_MissingFlags(t *testing.T) {
	_, err := Page(Options{OutputDir: t.TempDir(), FlagsPath: "nope.json"})
	assert.Error(t, err)
}
