package model

import (
	"github.com/vovanwin/flagdefaults/pkg/flagdefaults"
)

// FlagKind представляет тип значения feature flag
type FlagKind int

const (
	FlagKindBool FlagKind = iota
	FlagKindString
)

func (k FlagKind) String() string {
	switch k {
	case FlagKindBool:
		return flagdefaults.KindBool
	case FlagKindString:
		return flagdefaults.KindString
	default:
		return "unknown"
	}
}

// FlagDef описывает один feature flag
type FlagDef struct {
	Name        string   // CamelCase имя для Go (EnableNewSearch)
	Key         string   // Имя в исходнике (enableNewSearch)
	Kind        FlagKind // Тип значения
	Default     any      // Типизированный дефолт: bool или string
	Description string   // Описание флага
}

// Group описывает одно перечисление флагов (SearchBoolFeatureFlag)
type Group struct {
	Name   string     // Имя перечисления
	Kind   FlagKind   // Общий тип значений
	Source string     // Файл, из которого прочитана группа
	Flags  []*FlagDef // Флаги в порядке объявления
}

// Records возвращает группу в сериализуемом виде
func (g *Group) Records() []flagdefaults.Record {
	out := make([]flagdefaults.Record, 0, len(g.Flags))
	for _, f := range g.Flags {
		out = append(out, flagdefaults.Record{
			Key:          f.Key,
			DefaultValue: f.Default,
			Type:         f.Kind.String(),
		})
	}
	return out
}

// Lookup ищет флаг по ключу
func (g *Group) Lookup(key string) (*FlagDef, bool) {
	for _, f := range g.Flags {
		if f.Key == key {
			return f, true
		}
	}
	return nil, false
}
