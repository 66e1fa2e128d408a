package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPaths(t *testing.T, evCh <-chan string, want int) map[string]bool {
	t.Helper()
	got := make(map[string]bool)
	deadline := time.After(5 * time.Second)
	for len(got) < want {
		select {
		case p, ok := <-evCh:
			if !ok {
				t.Fatalf("event channel closed after %d of %d paths", len(got), want)
			}
			got[filepath.Base(p)] = true
		case <-deadline:
			t.Fatalf("timed out after %d of %d paths", len(got), want)
		}
	}
	return got
}

func TestWatcherDebounceCoalescesBursts(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 200 * time.Millisecond,
	})
	require.NoError(t, err)

	// A rapid burst of writes across two files while the debounce timer is
	// rearming. Each file must come out exactly once.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.pdf"), []byte("a"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "b.pdf"), []byte("b"), 0o644))
	}

	got := collectPaths(t, evCh, 2)
	assert.True(t, got["a.pdf"])
	assert.True(t, got["b.pdf"])

	select {
	case p, ok := <-evCh:
		if ok {
			t.Fatalf("unexpected extra event %q", p)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherEmitsWithoutDebounce(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "doc.pdf"), []byte("x"), 0o644))

	got := collectPaths(t, evCh, 1)
	assert.True(t, got["doc.pdf"])
}

func TestWatcherIgnoresUnsupportedExtensions(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "doc.pdf"), []byte("x"), 0o644))

	got := collectPaths(t, evCh, 1)
	assert.True(t, got["doc.pdf"])
	assert.False(t, got["notes.txt"])
}
