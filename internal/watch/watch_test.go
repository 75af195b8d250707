package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()

	changes := make(chan struct{}, 8)
	w := &Watcher{
		Root:     dir,
		Match:    func(p string) bool { return strings.HasSuffix(p, ".swift") },
		Debounce: 20 * time.Millisecond,
		Logger:   logger,
		OnChange: func(context.Context) error {
			changes <- struct{}{}
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Даём watcher время подписаться на директорию
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AFeatureFlag.swift"), []byte("enum A {}"), 0o644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("OnChange не вызван")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run не завершился после отмены контекста")
	}
}

func TestWatcher_RootMissing(t *testing.T) {
	w := &Watcher{Root: filepath.Join(t.TempDir(), "missing"), OnChange: func(context.Context) error { return nil }}
	require.Error(t, w.Run(context.Background()))
}
