package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndList(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, nil)
	require.NoError(t, err)
	ctx := context.Background()
	owner := uuid.New()

	locator, err := s.Save(ctx, owner, "img_p1_obj7.png", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, owner.String()+"/img_p1_obj7.png", locator)

	data, err := os.ReadFile(filepath.Join(root, owner.String(), "img_p1_obj7.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	locators, err := s.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{locator}, locators)
}

func TestLocalStorageSaveStripsPath(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), nil)
	require.NoError(t, err)
	owner := uuid.New()

	locator, err := s.Save(context.Background(), owner, "../escape/../../fig.png", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, owner.String()+"/fig.png", locator)
}

func TestLocalStorageDelete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()
	owner := uuid.New()

	locator, err := s.Save(ctx, owner, "a.png", []byte("x"))
	require.NoError(t, err)

	removed, err := s.Delete(ctx, locator)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(ctx, locator)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestLocalStorageDeleteRejectsEscapingLocator(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = s.Delete(context.Background(), "../outside.txt")
	assert.Error(t, err)
}

func TestLocalStorageListUnknownOwnerEmpty(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), nil)
	require.NoError(t, err)

	locators, err := s.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, locators)
}
