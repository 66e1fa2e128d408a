package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigOracleRateLimit(t *testing.T) {
	t.Setenv("OPENAI_RATE_LIMIT", "2.5")

	cfg := LoadConfig()
	assert.Equal(t, 2.5, cfg.LLM.RateLimit)
}

func TestLoadConfigRateLimitDefaultsToUnlimited(t *testing.T) {
	t.Setenv("OPENAI_RATE_LIMIT", "")

	cfg := LoadConfig()
	assert.Equal(t, 0.0, cfg.LLM.RateLimit)
}
