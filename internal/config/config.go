// Package config загружает настройки flagscan: .flagscan.toml и переменные окружения.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	kenv "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile имя файла настроек по умолчанию
const DefaultFile = ".flagscan.toml"

// EnvPrefix префикс переменных окружения: FLAGSCAN_LOG__LEVEL -> log.level
const EnvPrefix = "FLAGSCAN_"

// Config настройки инструмента
type Config struct {
	Root    string `koanf:"root"`
	Pattern string `koanf:"pattern"`
	Output  string `koanf:"output"`
	Format  string `koanf:"format"`
	Log     Log    `koanf:"log"`
	HTML    HTML   `koanf:"html"`
	Gen     Gen    `koanf:"gen"`
}

// Log настройки логирования
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// HTML настройки генерации страницы
type HTML struct {
	Template string `koanf:"template"`
	Repo     string `koanf:"repo"`
}

// Gen настройки генерации реестра
type Gen struct {
	Package string `koanf:"package"`
	Output  string `koanf:"output"`
}

// Default настройки по умолчанию
func Default() Config {
	return Config{
		Root:    ".",
		Pattern: "**/*FeatureFlag.swift",
		Format:  "json",
		Log:     Log{Level: "info", Format: "text"},
		Gen:     Gen{Package: "featureflags", Output: "."},
	}
}

// LoadOptions параметры загрузки
type LoadOptions struct {
	File      string // Путь к файлу, если пусто, DefaultFile
	Required  bool   // Ошибка, если файла нет
	EnableEnv bool   // Читать FLAGSCAN_* переменные
}

// Load собирает настройки: значения по умолчанию, затем файл, затем окружение
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	path := opts.File
	if path == "" {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return cfg, fmt.Errorf("загрузка %s: %w", path, err)
		}
	} else if opts.Required || !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("файл настроек %s: %w", path, err)
	}

	if opts.EnableEnv {
		// FLAGSCAN_GEN__PACKAGE=x -> gen.package
		err := k.Load(kenv.Provider(EnvPrefix, ".", func(s string) string {
			key := strings.TrimPrefix(s, EnvPrefix)
			return strings.ReplaceAll(strings.ToLower(key), "__", ".")
		}), nil)
		if err != nil {
			return cfg, fmt.Errorf("загрузка переменных окружения: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("разбор настроек: %w", err)
	}
	return cfg, nil
}
