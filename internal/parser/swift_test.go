package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovanwin/flagdefaults/internal/model"
)

func TestParseSwiftFile_Bool(t *testing.T) {
	g, err := ParseSwiftFile(filepath.Join("..", "..", "testdata", "flags", "SearchBoolFeatureFlag.swift"))
	if err != nil {
		t.Fatalf("ParseSwiftFile: %v", err)
	}

	if g.Name != "SearchBoolFeatureFlag" {
		t.Errorf("имя группы: %q", g.Name)
	}
	if g.Kind != model.FlagKindBool {
		t.Errorf("ожидался bool, получен %v", g.Kind)
	}

	want := []struct {
		key string
		def bool
	}{
		{"enableNewSearch", false},
		{"enableFilters", false},
		{"enableSuggestions", true},
		{"enableHistory", true},
	}
	if len(g.Flags) != len(want) {
		t.Fatalf("ожидалось %d флагов, получено %d", len(want), len(g.Flags))
	}
	for i, w := range want {
		f := g.Flags[i]
		if f.Key != w.key || f.Default != w.def {
			t.Errorf("позиция %d: ожидалось %s=%v, получено %s=%v", i, w.key, w.def, f.Key, f.Default)
		}
	}
}

func TestParseSwiftFile_String(t *testing.T) {
	g, err := ParseSwiftFile(filepath.Join("..", "..", "testdata", "flags", "subdirectory", "AppStringFeatureFlag.swift"))
	if err != nil {
		t.Fatalf("ParseSwiftFile: %v", err)
	}

	if g.Kind != model.FlagKindString {
		t.Fatalf("ожидался string, получен %v", g.Kind)
	}

	want := map[string]string{
		"welcomeMessage": "Welcome to the app ❤️",
		"apiEndpoint":    "https://api.default.com",
		"searchName":     "Type in header...",
	}
	if len(g.Flags) != len(want) {
		t.Fatalf("ожидалось %d флагов, получено %d", len(want), len(g.Flags))
	}
	for _, f := range g.Flags {
		if f.Default != want[f.Key] {
			t.Errorf("%s: ожидалось %q, получено %v", f.Key, want[f.Key], f.Default)
		}
	}
}

func TestParseSwift_CaseWithoutDefaultIsDropped(t *testing.T) {
	src := `
enum PartialFlag: String {
    case covered
    case forgotten

    var defaultValue: Bool {
        switch self {
        case .covered: return true
        default: return false
        }
    }
}
`
	g, err := ParseSwift("PartialFlag", src)
	if err != nil {
		t.Fatalf("ParseSwift: %v", err)
	}
	if len(g.Flags) != 1 || g.Flags[0].Key != "covered" {
		t.Fatalf("ожидался только covered, получено %+v", g.Flags)
	}
}

func TestParseSwift_CommaCasesAndDocs(t *testing.T) {
	src := `
enum ListFlag: String {
    /// Показывать баннер
    case banner, footer

    case title

    var defaultValue: String {
        switch self {
        case .banner, .footer:
            return "{hidden}"
        case .title: return ""
        }
    }
}
`
	g, err := ParseSwift("ListFlag", src)
	if err != nil {
		t.Fatalf("ParseSwift: %v", err)
	}
	if len(g.Flags) != 3 {
		t.Fatalf("ожидалось 3 флага, получено %d", len(g.Flags))
	}
	if g.Flags[0].Description != "Показывать баннер" {
		t.Errorf("description: %q", g.Flags[0].Description)
	}
	if g.Flags[1].Key != "footer" || g.Flags[1].Default != "{hidden}" {
		t.Errorf("footer: %+v", g.Flags[1])
	}
	if g.Flags[2].Default != "" {
		t.Errorf("title: ожидалась пустая строка, получено %v", g.Flags[2].Default)
	}
}

func TestParseSwift_NoDefaults(t *testing.T) {
	g, err := ParseSwift("Empty", "enum Empty {\n    case a\n}\n")
	if !errors.Is(err, ErrNoDefaults) {
		t.Fatalf("ожидалась ErrNoDefaults, получено %v", err)
	}
	if g == nil || len(g.Flags) != 0 {
		t.Errorf("ожидалась пустая группа, получено %+v", g)
	}
}

func TestParseSwift_BadBoolLiteral(t *testing.T) {
	src := `
enum B {
    case a
    var defaultValue: Bool {
        switch self {
        case .a: return isEnabled
        }
    }
}
`
	if _, err := ParseSwift("B", src); err == nil {
		t.Fatal("ожидалась ошибка для не-bool литерала")
	}
}

func TestParseSwift_StringEscapes(t *testing.T) {
	src := `
enum EscapeFlag: String {
    case quoted, newline, tab, slash, apostrophe, unicode, nul

    var defaultValue: String {
        switch self {
        case .quoted: return "Say \"hi\""
        case .newline: return "a\nb"
        case .tab: return "a\tb"
        case .slash: return "C:\\tmp"
        case .apostrophe: return "it\'s"
        case .unicode: return "\u{2764}\u{FE0F}"
        case .nul: return "x\0"
        }
    }
}
`
	g, err := ParseSwift("EscapeFlag", src)
	if err != nil {
		t.Fatalf("ParseSwift: %v", err)
	}

	want := map[string]string{
		"quoted":     `Say "hi"`,
		"newline":    "a\nb",
		"tab":        "a\tb",
		"slash":      `C:\tmp`,
		"apostrophe": "it's",
		"unicode":    "❤️",
		"nul":        "x\x00",
	}
	if len(g.Flags) != len(want) {
		t.Fatalf("ожидалось %d флагов, получено %d", len(want), len(g.Flags))
	}
	for _, f := range g.Flags {
		if f.Default != want[f.Key] {
			t.Errorf("%s: ожидалось %q, получено %q", f.Key, want[f.Key], f.Default)
		}
	}
}

func TestParseSwift_BadStringLiteral(t *testing.T) {
	tests := map[string]string{
		"interpolation":    `"Hello \(name)"`,
		"unknown escape":   `"a\qb"`,
		"empty unicode":    `"\u{}"`,
		"surrogate":        `"\u{D800}"`,
		"unclosed unicode": `"\u{41"`,
	}
	for name, lit := range tests {
		t.Run(name, func(t *testing.T) {
			src := "enum S {\n    case a\n    var defaultValue: String {\n        switch self {\n        case .a: return " +
				lit + "\n        }\n    }\n}\n"
			if _, err := ParseSwift("S", src); err == nil {
				t.Fatalf("ожидалась ошибка для литерала %s", lit)
			}
		})
	}
}

func TestParseSwift_CommentsInDefaults(t *testing.T) {
	src := `
enum ScreenFlag: String {
    case compact
    case wide

    var defaultValue: Bool {
        switch self {
        // 5" screen and smaller
        case .compact: return true /* } */
        /* case .wide: return true */
        case .wide: return false // "wide"
        }
    }
}
`
	g, err := ParseSwift("ScreenFlag", src)
	if err != nil {
		t.Fatalf("ParseSwift: %v", err)
	}
	if len(g.Flags) != 2 {
		t.Fatalf("ожидалось 2 флага, получено %+v", g.Flags)
	}
	if g.Flags[0].Default != true || g.Flags[1].Default != false {
		t.Errorf("ожидалось compact=true wide=false, получено %v %v", g.Flags[0].Default, g.Flags[1].Default)
	}
}
