package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovanwin/flagdefaults/internal/model"
)

// ErrNoDefaults означает, что в перечислении нет блока var defaultValue
var ErrNoDefaults = errors.New("не найден блок var defaultValue")

var (
	// case enableNewSearch / case a, b: объявление кейсов перечисления
	caseDeclRe = regexp.MustCompile(`^\s*case\s+([A-Za-z_]\w*(?:\s*,\s*[A-Za-z_]\w*)*)\s*(?://.*)?$`)
	docRe      = regexp.MustCompile(`^\s*///\s?(.*)$`)
	defaultVar = regexp.MustCompile(`var\s+defaultValue\s*:\s*(Bool|String)\s*\{`)
	// case .a, .b: return value: ветка switch, может занимать несколько строк
	armRe = regexp.MustCompile(`case\s+(\.[^:]+):\s*(?:return\s+)?(\w+|"(?:[^"\\]|\\.)*")`)
)

// ParseSwiftFile читает Swift файл с перечислением флагов.
// Имя группы: имя файла без расширения.
func ParseSwiftFile(path string) (*model.Group, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	g, err := ParseSwift(name, string(b))
	if g != nil {
		g.Source = path
	}
	if err != nil {
		return g, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseSwift разбирает исходник перечисления вида
//
//	enum SearchBoolFeatureFlag: String {
//	    case enableNewSearch
//	    var defaultValue: Bool {
//	        switch self {
//	        case .enableNewSearch: return false
//	        }
//	    }
//	}
//
// Кейсы без значения по умолчанию пропускаются. Если блока defaultValue нет,
// возвращается пустая группа вместе с ErrNoDefaults.
func ParseSwift(name, src string) (*model.Group, error) {
	g := &model.Group{Name: name, Kind: model.FlagKindBool}

	cases, docs, err := parseCases(src)
	if err != nil {
		return nil, fmt.Errorf("разбор кейсов: %w", err)
	}

	code, err := stripComments(src)
	if err != nil {
		return nil, err
	}

	loc := defaultVar.FindStringSubmatchIndex(code)
	if loc == nil {
		return g, ErrNoDefaults
	}
	if code[loc[2]:loc[3]] == "String" {
		g.Kind = model.FlagKindString
	}

	body, err := blockBody(code, loc[1]-1)
	if err != nil {
		return nil, err
	}

	defaults, err := parseDefaults(body, g.Kind)
	if err != nil {
		return nil, err
	}

	for _, c := range cases {
		val, ok := defaults[c]
		if !ok {
			continue
		}
		g.Flags = append(g.Flags, &model.FlagDef{
			Name:        ToGoName(c),
			Key:         c,
			Kind:        g.Kind,
			Default:     val,
			Description: docs[c],
		})
	}
	return g, nil
}

// parseCases собирает объявленные кейсы в порядке объявления и их /// комментарии
func parseCases(src string) ([]string, map[string]string, error) {
	var cases []string
	seen := make(map[string]bool)
	docs := make(map[string]string)
	var pending []string

	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		line := scanner.Text()

		if m := docRe.FindStringSubmatch(line); m != nil {
			if c := strings.TrimSpace(m[1]); c != "" {
				pending = append(pending, c)
			}
			continue
		}

		if m := caseDeclRe.FindStringSubmatch(line); m != nil {
			for _, c := range strings.Split(m[1], ",") {
				c = strings.TrimSpace(c)
				if seen[c] {
					continue
				}
				seen[c] = true
				cases = append(cases, c)
				if len(pending) > 0 {
					docs[c] = strings.Join(pending, "\n")
				}
			}
		}
		pending = nil
	}
	return cases, docs, scanner.Err()
}

// stripComments заменяет комментарии // и /* */ пробелами.
// Смещения и переводы строк сохраняются, строковые литералы не трогаются.
func stripComments(src string) (string, error) {
	out := []byte(src)
	blank := func(from, to int) {
		for j := from; j < to; j++ {
			if out[j] != '\n' {
				out[j] = ' '
			}
		}
	}

	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' || c == '\n' {
				inString = false
			}
		case c == '"':
			inString = true
		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}
			blank(i, i+end)
			i += end - 1
		case strings.HasPrefix(src[i:], "/*"):
			// блочные комментарии в Swift вкладываются
			depth, j := 1, i+2
			for j < len(src) && depth > 0 {
				switch {
				case strings.HasPrefix(src[j:], "/*"):
					depth++
					j += 2
				case strings.HasPrefix(src[j:], "*/"):
					depth--
					j += 2
				default:
					j++
				}
			}
			if depth > 0 {
				return "", fmt.Errorf("незакрытый комментарий /*")
			}
			blank(i, j)
			i = j - 1
		}
	}
	return string(out), nil
}

// blockBody возвращает содержимое фигурных скобок, открытых в позиции open.
// Комментарии из src должны быть уже удалены.
func blockBody(src string, open int) (string, error) {
	depth := 0
	inString := false
	for i := open; i < len(src); i++ {
		switch c := src[i]; {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return src[open+1 : i], nil
			}
		}
	}
	return "", fmt.Errorf("незакрытый блок defaultValue")
}

func parseDefaults(body string, kind model.FlagKind) (map[string]any, error) {
	out := make(map[string]any)
	for _, m := range armRe.FindAllStringSubmatch(body, -1) {
		val, err := literal(m[2], kind)
		if err != nil {
			return nil, err
		}
		for _, c := range strings.Split(m[1], ",") {
			c = strings.TrimPrefix(strings.TrimSpace(c), ".")
			if c == "" {
				continue
			}
			out[c] = val
		}
	}
	return out, nil
}

func literal(raw string, kind model.FlagKind) (any, error) {
	switch kind {
	case model.FlagKindString:
		if len(raw) < 2 || raw[0] != '"' {
			return nil, fmt.Errorf("ожидался строковый литерал, получено %s", raw)
		}
		v, err := unquote(raw[1 : len(raw)-1])
		if err != nil {
			return nil, fmt.Errorf("литерал %s: %w", raw, err)
		}
		return v, nil
	default:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("ожидался bool литерал, получено %s", raw)
	}
}

// unquote раскрывает escape-последовательности однострочного строкового литерала Swift
func unquote(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' || c == '\r' {
			return "", fmt.Errorf("перевод строки внутри литерала")
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(s) {
			return "", fmt.Errorf("незавершённая escape-последовательность")
		}
		switch s[i] {
		case '"', '\\', '\'':
			b.WriteByte(s[i])
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if i+1 >= len(s) || s[i+1] != '{' || end < 0 {
				return "", fmt.Errorf("ожидалось \\u{...}")
			}
			hex := s[i+2 : i+end]
			if len(hex) == 0 || len(hex) > 8 {
				return "", fmt.Errorf("неверный код символа \\u{%s}", hex)
			}
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || !utf8.ValidRune(rune(n)) {
				return "", fmt.Errorf("неверный код символа \\u{%s}", hex)
			}
			b.WriteRune(rune(n))
			i += end
		case '(':
			return "", fmt.Errorf("интерполяция \\( не поддерживается")
		default:
			return "", fmt.Errorf("неизвестная escape-последовательность \\%c", s[i])
		}
	}
	return b.String(), nil
}
