package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	ping := errors.New("connection refused")
	err := fmt.Errorf("ping: %w: %w", ErrDatabase, ping)
	require.True(t, errors.Is(err, ErrDatabase))
	require.True(t, errors.Is(err, ping))

	missing := fmt.Errorf("import job x: %w", ErrNotFound)
	assert.True(t, errors.Is(missing, ErrNotFound))
}
