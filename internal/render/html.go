// Package render строит HTML страницу со списком флагов из каталога.
package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vovanwin/flagdefaults/internal/catalog"
)

//go:embed templates/index.html
var defaultTemplate string

// Плейсхолдеры в шаблоне
const (
	PlaceholderData   = "{FLAG_JSON_DATA}"
	PlaceholderPath   = "{FLAG_PATH}"
	PlaceholderOutput = "{OUTPUT_PATH}"
	PlaceholderRepo   = "{FLAG_JSON_REPO}"
)

// Options настройки генерации страницы
type Options struct {
	Template  string // Путь к шаблону, если пусто, встроенный
	OutputDir string // Директория, куда пишется index.html
	FlagsPath string // Путь к каталогу относительно OutputDir
	Repo      string // Имя репозитория (owner/name)
}

// Page читает каталог, подставляет значения в шаблон и пишет
// <OutputDir>/index.html. Возвращает путь к записанному файлу.
func Page(opts Options) (string, error) {
	flags, err := catalog.ReadFile(filepath.Join(opts.OutputDir, opts.FlagsPath))
	if err != nil {
		return "", err
	}

	tmpl := defaultTemplate
	if opts.Template != "" {
		b, err := os.ReadFile(opts.Template)
		if err != nil {
			return "", fmt.Errorf("чтение шаблона: %w", err)
		}
		tmpl = string(b)
	}

	rendered, err := Render(tmpl, map[string]any{
		PlaceholderData:   flags,
		PlaceholderPath:   opts.FlagsPath,
		PlaceholderOutput: opts.OutputDir,
		PlaceholderRepo:   opts.Repo,
	})
	if err != nil {
		return "", err
	}

	out := filepath.Join(opts.OutputDir, "index.html")
	if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("запись %s: %w", out, err)
	}

	log.WithFields(log.Fields{"output": out, "groups": len(flags)}).Debug("страница записана")
	return out, nil
}

// Render заменяет плейсхолдеры на JavaScript литералы за один проход,
// так что подставленные значения повторно не обрабатываются
func Render(tmpl string, values map[string]any) (string, error) {
	pairs := make([]string, 0, len(values)*2)
	for placeholder, v := range values {
		lit, err := JSValue(v)
		if err != nil {
			return "", fmt.Errorf("значение %s: %w", placeholder, err)
		}
		pairs = append(pairs, placeholder, lit)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

// JSValue возвращает литерал JavaScript для значения
func JSValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		return marshal(x)
	}
}

// marshal кодирует JSON. <, > и & экранируются, чтобы значение не закрыло
// тег <script>; не-ASCII символы остаются как есть
func marshal(v any) (string, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
