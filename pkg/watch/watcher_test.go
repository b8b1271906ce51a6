package watch

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcherFiresOnFileWrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "Svc.php")
	require.NoError(t, os.WriteFile(existing, []byte("<?php"), 0o644))

	fired := make(chan []string, 1)
	w, err := New(Options{DebounceMs: 20}, silentLogger(), func(paths []string) {
		fired <- paths
	})
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Start(dir))

	require.NoError(t, os.WriteFile(existing, []byte("<?php // changed"), 0o644))

	select {
	case paths := <-fired:
		require.Len(t, paths, 1)
		assert.Equal(t, existing, paths[0])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch callback")
	}
}

func TestWatcherIgnoresNonPHPFiles(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan []string, 1)
	w, err := New(Options{DebounceMs: 20}, silentLogger(), func(paths []string) {
		fired <- paths
	})
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Start(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("hi"), 0o644))

	select {
	case <-fired:
		t.Fatal("should not fire for non-PHP file changes")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := New(Options{}, silentLogger(), func([]string) {})
	require.NoError(t, err)
	require.NoError(t, w.Start(dir))

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
</content>
