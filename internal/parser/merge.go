package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/vovanwin/flagdefaults/internal/model"
)

// ConflictError описывает одну группу, объявленную в двух местах по-разному
type ConflictError struct {
	Group   string
	Sources []string // Файлы с расходящимися объявлениями
	Keys    []string // Ключи, которые отличаются
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("группа %s объявлена по-разному в %s: расходятся %s",
		e.Group, strings.Join(e.Sources, ", "), strings.Join(e.Keys, ", "))
}

// Merge объединяет группы по имени. Одинаковые объявления схлопываются,
// расходящиеся дают *ConflictError. Разрешать конфликт Merge не пытается.
func Merge(groups ...*model.Group) ([]*model.Group, error) {
	var (
		result []*model.Group
		byName = make(map[string]*model.Group)
		errs   *multierror.Error
	)

	for _, g := range groups {
		existing, ok := byName[g.Name]
		if !ok {
			byName[g.Name] = g
			result = append(result, g)
			continue
		}
		if diff := diffGroups(existing, g); len(diff) > 0 {
			errs = multierror.Append(errs, &ConflictError{
				Group:   g.Name,
				Sources: []string{existing.Source, g.Source},
				Keys:    diff,
			})
		}
	}

	return result, errs.ErrorOrNil()
}

// diffGroups возвращает отсортированные ключи, по которым группы расходятся
func diffGroups(a, b *model.Group) []string {
	if a.Kind != b.Kind {
		return []string{"type"}
	}

	diff := make(map[string]bool)
	for _, fa := range a.Flags {
		fb, ok := b.Lookup(fa.Key)
		if !ok || fb.Default != fa.Default {
			diff[fa.Key] = true
		}
	}
	for _, fb := range b.Flags {
		if _, ok := a.Lookup(fb.Key); !ok {
			diff[fb.Key] = true
		}
	}

	keys := make([]string, 0, len(diff))
	for k := range diff {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
