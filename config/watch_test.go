//go:build fsnotify
// +build fsnotify

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Happy Path Tests
// =============================================================================

func TestLoader_Watch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippetgen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"context_length": 2}`), 0o644))

	l := NewLoader()
	require.NoError(t, l.LoadFromFile(path))
	require.Equal(t, 2, *l.Current().ContextLength)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := l.Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"context_length": 7}`), 0o644))

	select {
	case cfg := <-updates:
		require.NotNil(t, cfg)
		assert.Equal(t, 7, *cfg.ContextLength)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestLoader_Watch_ClosesChannelWhenContextCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippetgen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	l := NewLoader()
	ctx, cancel := context.WithCancel(context.Background())

	updates, err := l.Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

// =============================================================================
// Negative Path Tests
// =============================================================================

func TestLoader_Watch_MalformedRewriteIsDroppedNotSent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippetgen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"context_length": 3}`), 0o644))

	l := NewLoader()
	require.NoError(t, l.LoadFromFile(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := l.Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{not valid json`), 0o644))

	select {
	case cfg := <-updates:
		t.Fatalf("unexpected reload for malformed config: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
	assert.Equal(t, 3, *l.Current().ContextLength)
}

// =============================================================================
// Edge Cases
// =============================================================================

func TestLoader_Watch_UnwatchableDirectoryReturnsError(t *testing.T) {
	l := NewLoader()
	_, err := l.Watch(context.Background(), filepath.Join(t.TempDir(), "missing-dir", "snippetgen.json"))
	assert.Error(t, err)
}
