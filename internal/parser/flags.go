package parser

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/vovanwin/flagdefaults/internal/model"
)

// flagEntry представляет один флаг из flags.toml
type flagEntry struct {
	Type        string `toml:"type"`
	Default     any    `toml:"default"`
	Description string `toml:"description"`
}

// flagsFile корневая структура flags.toml
type flagsFile struct {
	Groups map[string]map[string]flagEntry `toml:"groups"`
}

// ParseFlagsFile читает flags.toml и возвращает группы в порядке объявления:
//
//	[groups.SearchBoolFeatureFlag]
//	enableHistory = { type = "bool", default = true, description = "История поиска" }
func ParseFlagsFile(path string) ([]*model.Group, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}

	var ff flagsFile
	md, err := toml.Decode(string(b), &ff)
	if err != nil {
		return nil, fmt.Errorf("декодирование %s: %w", path, err)
	}

	if len(ff.Groups) == 0 {
		return nil, nil
	}

	// Порядок групп и флагов берём из документа, map его не сохраняет
	var groupOrder []string
	flagOrder := make(map[string][]string)
	seen := make(map[string]bool)
	for _, k := range md.Keys() {
		if len(k) < 2 || k[0] != "groups" {
			continue
		}
		if !seen[k[1]] {
			seen[k[1]] = true
			groupOrder = append(groupOrder, k[1])
		}
		if len(k) == 3 {
			flagOrder[k[1]] = append(flagOrder[k[1]], k[2])
		}
	}

	groups := make([]*model.Group, 0, len(groupOrder))
	for _, name := range groupOrder {
		g, err := buildGroup(name, flagOrder[name], ff.Groups[name])
		if err != nil {
			return nil, fmt.Errorf("%s: группа %s: %w", path, name, err)
		}
		g.Source = path
		groups = append(groups, g)
	}
	return groups, nil
}

func buildGroup(name string, order []string, entries map[string]flagEntry) (*model.Group, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("нет ни одного флага")
	}

	g := &model.Group{Name: name}
	for i, key := range order {
		def, err := flagEntryToDef(key, entries[key])
		if err != nil {
			return nil, fmt.Errorf("флаг %q: %w", key, err)
		}
		if i == 0 {
			g.Kind = def.Kind
		} else if def.Kind != g.Kind {
			return nil, fmt.Errorf("флаг %q: тип %s не совпадает с типом группы %s", key, def.Kind, g.Kind)
		}
		g.Flags = append(g.Flags, def)
	}
	return g, nil
}

func flagEntryToDef(name string, entry flagEntry) (*model.FlagDef, error) {
	kind, err := parseFlagKind(entry.Type)
	if err != nil {
		return nil, err
	}

	def, err := coerceDefault(entry.Default, kind)
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}

	return &model.FlagDef{
		Name:        ToGoName(name),
		Key:         name,
		Kind:        kind,
		Default:     def,
		Description: entry.Description,
	}, nil
}

func parseFlagKind(t string) (model.FlagKind, error) {
	switch t {
	case "bool":
		return model.FlagKindBool, nil
	case "string":
		return model.FlagKindString, nil
	default:
		return 0, fmt.Errorf("неподдерживаемый тип %q (допустимы: bool, string)", t)
	}
}

func coerceDefault(val any, kind model.FlagKind) (any, error) {
	switch kind {
	case model.FlagKindBool:
		v, ok := val.(bool)
		if !ok {
			return nil, fmt.Errorf("ожидался bool, получен %T", val)
		}
		return v, nil
	case model.FlagKindString:
		v, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("ожидался string, получен %T", val)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("неизвестный тип %d", kind)
	}
}
