// Package watch следит за деревом файлов и сообщает об изменениях.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// DefaultDebounce пауза после последнего события перед вызовом обработчика
const DefaultDebounce = 200 * time.Millisecond

// Watcher следит за Root и вызывает OnChange после изменений файлов,
// для которых Match возвращает true
type Watcher struct {
	Root     string
	Match    func(path string) bool
	OnChange func(ctx context.Context) error
	Debounce time.Duration
	Logger   log.FieldLogger
}

// Run блокируется до отмены ctx. Ошибки OnChange логируются и не
// останавливают наблюдение.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("создание watcher: %w", err)
	}
	defer fw.Close()

	if err := addWatchTree(fw, w.Root); err != nil {
		return fmt.Errorf("наблюдение за %s: %w", w.Root, err)
	}

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchTree(fw, event.Name)
					continue
				}
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.Match != nil && !w.Match(event.Name) {
				continue
			}

			logger.WithFields(log.Fields{"file": event.Name, "op": event.Op.String()}).Debug("изменение")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			trigger = timer.C

		case <-trigger:
			trigger = nil
			if err := w.OnChange(ctx); err != nil {
				logger.WithError(err).Error("обработка изменений")
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("ошибка watcher")
		}
	}
}

func addWatchTree(fw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s не является директорией", root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
