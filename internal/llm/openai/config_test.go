package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewClientRateLimiter(t *testing.T) {
	c := NewClient(Config{APIKey: "k", RateLimit: 2}, nil)
	require.NotNil(t, c.limiter)
	assert.Equal(t, rate.Limit(2), c.limiter.Limit())
}

func TestNewClientNoRateLimitByDefault(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	assert.Nil(t, c.limiter)
}
