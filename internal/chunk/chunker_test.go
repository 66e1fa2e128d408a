package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	chunks := Split("問1 短い問題文。", 3000)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Ordinal)
	assert.Equal(t, "問1 短い問題文。", chunks[0].Text)
}

func TestSplitPrefersQuestionMarker(t *testing.T) {
	part1 := "問1 " + strings.Repeat("a", 90)
	part2 := "問2 " + strings.Repeat("b", 90)
	text := part1 + "\n" + part2

	chunks := Split(text, 100)

	require.Len(t, chunks, 2)
	assert.Equal(t, part1, chunks[0].Text)
	assert.Equal(t, part2, chunks[1].Text)
	assert.True(t, strings.HasPrefix(chunks[1].Text, "問2"))
}

func TestSplitMarkerBeforeMidpointIgnored(t *testing.T) {
	// The only marker sits in the first few bytes; cutting there would
	// produce a tiny chunk, so the paragraph break past the midpoint wins.
	text := "問1 " + strings.Repeat("x", 60) + "\n\n" + strings.Repeat("y", 80)

	chunks := Split(text, 100)

	require.Len(t, chunks, 2)
	assert.Equal(t, "問1 "+strings.Repeat("x", 60), chunks[0].Text)
	assert.Equal(t, strings.Repeat("y", 80), chunks[1].Text)
}

func TestSplitParagraphBreakFallback(t *testing.T) {
	para1 := strings.Repeat("a", 70)
	para2 := strings.Repeat("b", 70)
	chunks := Split(para1+"\n\n"+para2, 100)

	require.Len(t, chunks, 2)
	assert.Equal(t, para1, chunks[0].Text)
	assert.Equal(t, para2, chunks[1].Text)
}

func TestSplitSentenceFallback(t *testing.T) {
	s1 := strings.Repeat("a", 70) + ". "
	s2 := strings.Repeat("b", 70)
	chunks := Split(s1+s2, 100)

	require.Len(t, chunks, 2)
	assert.Equal(t, strings.TrimSpace(s1), chunks[0].Text)
	assert.Equal(t, s2, chunks[1].Text)
}

func TestSplitHardCutWithoutBoundaries(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := Split(text, 100)

	require.Len(t, chunks, 3)
	assert.Equal(t, 100, len(chunks[0].Text))
	assert.Equal(t, 100, len(chunks[1].Text))
	assert.Equal(t, 50, len(chunks[2].Text))
}

func TestSplitNeverBreaksUTF8(t *testing.T) {
	// Multibyte-only text with no boundaries forces hard cuts; every chunk
	// must still be valid UTF-8.
	text := strings.Repeat("あいうえお", 100)
	chunks := Split(text, 100)

	require.NotEmpty(t, chunks)
	var total int
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c.Text), "chunk %d is not valid UTF-8", c.Ordinal)
		assert.LessOrEqual(t, len(c.Text), 100)
		total += len(c.Text)
	}
	assert.Equal(t, len(text), total)
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split("", 100))
	assert.Empty(t, Split("   \n\n  ", 100))
}

func TestSplitOrdinalsSequential(t *testing.T) {
	chunks := Split(strings.Repeat("a", 500), 100)
	for i, c := range chunks {
		assert.Equal(t, i, c.Ordinal)
	}
}
