package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

var initFiles = map[string]string{
	"flags.toml": `# flags.toml: объявления feature flags и их значений по умолчанию
# Одна таблица [groups.<Имя>] задаёт одну группу, все флаги группы одного типа (bool или string)

[groups.SearchBoolFeatureFlag]
enableNewSearch = { type = "bool", default = false, description = "Новый поиск" }
enableFilters = { type = "bool", default = false, description = "Фильтры в выдаче" }
enableSuggestions = { type = "bool", default = true, description = "Подсказки при вводе" }
enableHistory = { type = "bool", default = true, description = "История запросов" }

[groups.AppStringFeatureFlag]
welcomeMessage = { type = "string", default = "Welcome to the app ❤️" }
apiEndpoint = { type = "string", default = "https://api.default.com" }
searchName = { type = "string", default = "Type in header..." }
`,

	".flagscan.toml": `# .flagscan.toml: настройки flagscan
# Любой ключ можно переопределить переменной окружения FLAGSCAN_<SECTION>__<KEY>

root = "."
pattern = "**/*FeatureFlag.swift"
output = "flags.json"
format = "json"

[log]
level = "info"
format = "text"

[html]
template = ""
repo = ""

[gen]
package = "featureflags"
output = "./internal/featureflags"
`,
}

// Init создаёт начальные файлы в указанной директории, существующие не трогает
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("создание директории %s: %w", dir, err)
	}

	names := make([]string, 0, len(initFiles))
	for name := range initFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  skip: %s (already exists)\n", name)
			continue
		}
		if err := os.WriteFile(path, []byte(initFiles[name]), 0o644); err != nil {
			return fmt.Errorf("запись %s: %w", name, err)
		}
		fmt.Printf("  created: %s\n", name)
	}

	return nil
}
