package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/vovanwin/flagdefaults/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// OutputFile имя сгенерированного файла
const OutputFile = "flagsgen_registry.go"

// Options настройки генерации кода
type Options struct {
	OutputDir   string // Директория для сгенерированных файлов
	PackageName string // Имя пакета
}

// Generate генерирует реестр флагов flagsgen_registry.go в указанную директорию
func Generate(opts Options, groups []*model.Group) error {
	src, err := Render(opts, groups)
	if src == nil {
		return err
	}

	if mkErr := os.MkdirAll(opts.OutputDir, 0o755); mkErr != nil {
		return fmt.Errorf("создание директории: %w", mkErr)
	}

	// Неотформатированный код тоже пишем, чтобы было что смотреть
	outFile := filepath.Join(opts.OutputDir, OutputFile)
	if wErr := os.WriteFile(outFile, src, 0o644); wErr != nil {
		return fmt.Errorf("запись %s: %w", outFile, wErr)
	}
	return err
}

// Render возвращает отформатированный исходник реестра. Если форматирование
// не удалось, возвращает сырой исходник вместе с ошибкой
func Render(opts Options, groups []*model.Group) ([]byte, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("нет групп для генерации")
	}
	if opts.PackageName == "" {
		return nil, fmt.Errorf("не задано имя пакета")
	}

	data, err := buildTemplateData(opts, groups)
	if err != nil {
		return nil, err
	}
	buf, err := execute("registry", "templates/registry.go.tmpl", data)
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf)
	if err != nil {
		return buf, fmt.Errorf("форматирование registry: %w", err)
	}
	return formatted, nil
}

// templateFuncs возвращает функции для использования в шаблонах
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"quote":         strconv.Quote,
		"formatComment": formatComment,
	}
}

// formatComment форматирует комментарий для Go кода
func formatComment(comment string) string {
	if comment == "" {
		return ""
	}
	lines := strings.Split(comment, "\n")
	var result []string
	for _, line := range lines {
		result = append(result, "// "+line)
	}
	return strings.Join(result, "\n")
}

// groupTemplateData данные одной группы для шаблона
type groupTemplateData struct {
	Name    string // Имя типа (SearchBoolFeatureFlag)
	VarName string // Имя переменной с таблицей (SearchBoolFeatureFlags)
	GoType  string // "bool" или "string"
	Flags   []flagTemplateData
}

// flagTemplateData данные для одного флага в шаблоне
type flagTemplateData struct {
	Const       string // Имя константы (SearchBoolEnableHistory)
	Key         string // Ключ флага (enableHistory)
	Type        string // Имя типа группы
	GoType      string
	Literal     string // Литерал дефолта для кода
	Description string
}

func buildTemplateData(opts Options, groups []*model.Group) (map[string]any, error) {
	// все идентификаторы уровня пакета, которые объявит шаблон
	seen := map[string]string{"Registry": "реестр"}
	declare := func(ident, owner string) error {
		if other, ok := seen[ident]; ok {
			return fmt.Errorf("идентификатор %s объявлен дважды (%s и %s)", ident, other, owner)
		}
		seen[ident] = owner
		return nil
	}
	out := make([]groupTemplateData, 0, len(groups))

	for _, g := range groups {
		if !token(g.Name) {
			return nil, fmt.Errorf("группа %q: имя не является идентификатором Go", g.Name)
		}
		gd := groupTemplateData{
			Name:    g.Name,
			VarName: g.Name + "s",
			GoType:  flagGoType(g.Kind),
		}
		for _, ident := range []string{gd.Name, gd.VarName, "All" + gd.VarName, "Parse" + gd.Name} {
			if err := declare(ident, g.Name); err != nil {
				return nil, err
			}
		}

		prefix := constPrefix(g.Name)
		for _, f := range g.Flags {
			if f.Kind != g.Kind {
				return nil, fmt.Errorf("группа %s: флаг %q типа %s", g.Name, f.Key, f.Kind)
			}
			c := prefix + f.Name
			if !token(c) {
				return nil, fmt.Errorf("группа %s: флаг %q: %q не является идентификатором Go", g.Name, f.Key, c)
			}
			if err := declare(c, g.Name); err != nil {
				return nil, err
			}

			lit, err := flagDefaultLiteral(f.Default, f.Kind)
			if err != nil {
				return nil, fmt.Errorf("группа %s: флаг %q: %w", g.Name, f.Key, err)
			}
			gd.Flags = append(gd.Flags, flagTemplateData{
				Const:       c,
				Key:         f.Key,
				Type:        g.Name,
				GoType:      gd.GoType,
				Literal:     lit,
				Description: f.Description,
			})
		}
		out = append(out, gd)
	}

	return map[string]any{
		"Package": opts.PackageName,
		"Groups":  out,
	}, nil
}

// constPrefix SearchBoolFeatureFlag -> SearchBool
func constPrefix(group string) string {
	if p := strings.TrimSuffix(group, "FeatureFlag"); p != "" {
		return p
	}
	return group
}

func token(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}

func flagGoType(k model.FlagKind) string {
	switch k {
	case model.FlagKindBool:
		return "bool"
	default:
		return "string"
	}
}

func flagDefaultLiteral(val any, kind model.FlagKind) (string, error) {
	switch kind {
	case model.FlagKindBool:
		v, ok := val.(bool)
		if !ok {
			return "", fmt.Errorf("ожидался bool, получен %T", val)
		}
		return strconv.FormatBool(v), nil
	default:
		v, ok := val.(string)
		if !ok {
			return "", fmt.Errorf("ожидался string, получен %T", val)
		}
		return strconv.Quote(v), nil
	}
}

func execute(tmplName, tmplFile string, data map[string]any) ([]byte, error) {
	tmplB, err := templatesFS.ReadFile(tmplFile)
	if err != nil {
		return nil, fmt.Errorf("чтение шаблона %s: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Funcs(templateFuncs()).Parse(string(tmplB))
	if err != nil {
		return nil, fmt.Errorf("парсинг шаблона %s: %w", tmplName, err)
	}

	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("выполнение шаблона %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}
