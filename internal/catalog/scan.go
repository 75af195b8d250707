// Package catalog собирает флаги из Swift файлов в единый каталог.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/ryanuber/go-glob"
	log "github.com/sirupsen/logrus"

	"github.com/vovanwin/flagdefaults/internal/model"
	"github.com/vovanwin/flagdefaults/internal/parser"
	"github.com/vovanwin/flagdefaults/pkg/flagdefaults"
)

// ErrNoFiles возвращается, когда шаблону не соответствует ни один файл
var ErrNoFiles = errors.New("не найдены файлы по шаблону")

// Result результат сканирования
type Result struct {
	Files  []string       // Найденные файлы в порядке обхода
	Groups []*model.Group // Группы после объединения
	Errs   *multierror.Error
}

// Err возвращает ошибки разбора отдельных файлов или nil
func (r *Result) Err() error {
	return r.Errs.ErrorOrNil()
}

// Snapshot возвращает каталог в формате обмена
func (r *Result) Snapshot() flagdefaults.Snapshot {
	s := make(flagdefaults.Snapshot, len(r.Groups))
	for _, g := range r.Groups {
		s[g.Name] = g.Records()
	}
	return s
}

// Scanner обходит дерево файлов и разбирает подходящие под шаблон
type Scanner struct {
	Root    string
	Pattern string
	Logger  log.FieldLogger
}

// Scan обходит root и разбирает файлы, подходящие под pattern.
// Ошибки отдельных файлов не прерывают обход и попадают в Result.Errs.
func Scan(root, pattern string) (*Result, error) {
	s := &Scanner{Root: root, Pattern: pattern, Logger: log.StandardLogger()}
	return s.Scan()
}

// Scan см. пакетную функцию Scan
func (s *Scanner) Scan() (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	files, err := s.Match()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, s.Pattern)
	}

	res := &Result{Files: files}
	var groups []*model.Group
	for _, f := range files {
		g, err := parser.ParseSwiftFile(f)
		switch {
		case errors.Is(err, parser.ErrNoDefaults):
			logger.WithField("file", f).Warn("перечисление без defaultValue, группа пуста")
		case err != nil:
			logger.WithError(err).WithField("file", f).Error("ошибка разбора")
			res.Errs = multierror.Append(res.Errs, err)
			continue
		}
		logger.WithFields(log.Fields{"file": f, "group": g.Name, "flags": len(g.Flags)}).Debug("разобран файл")
		groups = append(groups, g)
	}

	merged, err := parser.Merge(groups...)
	if err != nil {
		logger.WithError(err).Error("конфликт объявлений")
		res.Errs = multierror.Append(res.Errs, err)
	}
	res.Groups = merged
	return res, nil
}

// Match возвращает файлы под Root, подходящие под Pattern
func (s *Scanner) Match() ([]string, error) {
	root := s.root()
	patterns := expandPattern(filepath.ToSlash(s.Pattern))

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if matchAny(patterns, filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("обход %s: %w", root, err)
	}
	return files, nil
}

// Matches сообщает, попал бы path в результат Match.
// Файл может уже не существовать (удаление, переименование).
func (s *Scanner) Matches(path string) bool {
	root := s.root()
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	parts := strings.Split(rel, "/")
	for _, dir := range parts[:len(parts)-1] {
		if strings.HasPrefix(dir, ".") {
			return false
		}
	}
	return matchAny(expandPattern(filepath.ToSlash(s.Pattern)), rel)
}

func (s *Scanner) root() string {
	if s.Root == "" {
		return "."
	}
	return s.Root
}

// expandPattern раскрывает каждое "**/" в два варианта: как есть и пустой,
// чтобы "**/" совпадало и с нулём директорий
func expandPattern(pattern string) []string {
	i := strings.Index(pattern, "**/")
	if i < 0 {
		return []string{pattern}
	}
	var out []string
	for _, rest := range expandPattern(pattern[i+3:]) {
		out = append(out, pattern[:i+3]+rest, pattern[:i]+rest)
	}
	return out
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if glob.Glob(p, name) {
			return true
		}
	}
	return false
}
