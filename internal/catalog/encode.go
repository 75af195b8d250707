package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovanwin/flagdefaults/pkg/flagdefaults"
)

// Format формат файла каталога
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat разбирает имя формата
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("неизвестный формат %q (допустимы: json, yaml)", s)
	}
}

// FormatFromPath определяет формат по расширению файла
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode пишет каталог в w
func Encode(w io.Writer, s flagdefaults.Snapshot, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("кодирование yaml: %w", err)
		}
		return enc.Close()
	default:
		b, err := s.MarshalIndent()
		if err != nil {
			return fmt.Errorf("кодирование json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
}

// WriteFile пишет каталог в файл, создавая директорию
func WriteFile(path string, s flagdefaults.Snapshot, format Format) error {
	buf := &bytes.Buffer{}
	if err := Encode(buf, s, format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("создание директории: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("запись %s: %w", path, err)
	}
	return nil
}

// ReadFile читает каталог из json или yaml файла
func ReadFile(path string) (flagdefaults.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}

	if FormatFromPath(path) == FormatYAML {
		var s flagdefaults.Snapshot
		if err := yaml.Unmarshal(b, &s); err != nil {
			return nil, fmt.Errorf("декодирование %s: %w", path, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return s, nil
	}

	s, err := flagdefaults.ParseSnapshot(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
