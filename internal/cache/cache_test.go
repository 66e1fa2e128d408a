package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansaki/quizforge/internal/entity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "extractions.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCacheMissThenHit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "deadbeef")
	require.NoError(t, err)
	assert.False(t, ok)

	records := []entity.CandidateQuestion{
		{Content: "q1", Choices: []string{"a", "b"}, CorrectIndex: 1, Difficulty: 2},
		{Content: "q2", Choices: []string{"c", "d"}, CorrectIndex: 0, Difficulty: 4,
			ImageRefs: []string{"img_p1_obj3.png"}},
	}
	require.NoError(t, s.Put(ctx, "deadbeef", records))

	got, ok, err := s.Get(ctx, "deadbeef")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, records, got)
}

func TestCachePutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "fp", []entity.CandidateQuestion{{Content: "old"}}))
	require.NoError(t, s.Put(ctx, "fp", []entity.CandidateQuestion{{Content: "new"}}))

	got, ok, err := s.Get(ctx, "fp")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Content)
}

func TestCacheCorruptPayloadIsMiss(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO extraction_cache (fingerprint, payload) VALUES (?, ?)`,
		"bad", []byte("{not json"))
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheKeysIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "one", []entity.CandidateQuestion{{Content: "q1"}}))

	_, ok, err := s.Get(ctx, "two")
	require.NoError(t, err)
	assert.False(t, ok)
}
