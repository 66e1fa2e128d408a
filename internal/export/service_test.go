package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 500))
	assert.Equal(t, "", truncate("", 10))
}

func TestTruncateCapsAsciiWithEllipsis(t *testing.T) {
	got := truncate(strings.Repeat("a", 20), 10)
	assert.LessOrEqual(t, len(got), 10+len("…"))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncateNeverSplitsRune(t *testing.T) {
	// 3-byte runes throughout; most byte cuts land mid-sequence.
	s := strings.Repeat("設問の解説", 10)
	for n := 1; n < 40; n++ {
		got := truncate(s, n)
		assert.True(t, utf8.ValidString(got), "n=%d produced invalid UTF-8: %q", n, got)
	}
}
