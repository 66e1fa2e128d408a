// Package chunk splits extracted document text into bounded chunks for
// per-chunk oracle calls, preferring question boundaries so one logical
// question is never split across two calls.
package chunk

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Chunk is one bounded slice of the document text. Ordinal is used for
// cache/log correlation only; correctness does not depend on it.
type Chunk struct {
	Ordinal int
	Text    string
}

// questionStart matches common question-start markers at the beginning of a
// line: "問3", "第2問", "Q5", "Question 12", numbered headers like "7." or
// "7)", and bracketed numbers like "【3】" or "[Q2]".
var questionStart = regexp.MustCompile(`(?m)^[ \t]*(問[ \t]*\d+|第[ \t]*\d+[ \t]*問|[QqＱ][ \t]*\d+|[Qq]uestion[ \t]+\d+|\d+[ \t]*[.．。)）]|[【\[][ \t]*(問|[QqＱ])?[ \t]*\d+[ \t]*[】\]])`)

// sentenceEnd matches terminators we accept as a last-resort soft boundary.
var sentenceEnd = regexp.MustCompile(`[。．！？.!?]\s`)

// Split cuts text into chunks of at most maxLen bytes each. Boundaries are
// searched backward from maxLen in priority order: question-start marker,
// paragraph break, sentence terminator, hard cut. Soft boundaries qualify only
// past the midpoint, so a marker-dense prefix cannot produce tiny chunks.
// Chunks are trimmed and empty chunks dropped.
func Split(text string, maxLen int) []Chunk {
	if maxLen <= 0 {
		maxLen = 1
	}

	var chunks []Chunk
	emit := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		chunks = append(chunks, Chunk{Ordinal: len(chunks), Text: s})
	}

	remaining := text
	for len(remaining) > maxLen {
		window := remaining[:boundedLen(remaining, maxLen)]
		cut := cutPoint(window, maxLen)
		emit(remaining[:cut])
		remaining = remaining[cut:]
	}
	emit(remaining)
	return chunks
}

// cutPoint picks the best boundary within window, always > 0.
func cutPoint(window string, maxLen int) int {
	mid := maxLen / 2

	// 1. Question-start marker past the midpoint: cut where the marker begins.
	if locs := questionStart.FindAllStringIndex(window, -1); locs != nil {
		for i := len(locs) - 1; i >= 0; i-- {
			if locs[i][0] > mid {
				return locs[i][0]
			}
		}
	}

	// 2. Paragraph break (blank line) past the midpoint.
	if idx := strings.LastIndex(window, "\n\n"); idx > mid {
		return idx + 2
	}

	// 3. Sentence terminator past the midpoint: cut just after it.
	if locs := sentenceEnd.FindAllStringIndex(window, -1); locs != nil {
		for i := len(locs) - 1; i >= 0; i-- {
			if locs[i][0] > mid {
				return locs[i][1]
			}
		}
	}

	// 4. Hard cut at the window end.
	return len(window)
}

// boundedLen returns the largest cut <= maxLen that does not split a UTF-8
// sequence.
func boundedLen(s string, maxLen int) int {
	if len(s) <= maxLen {
		return len(s)
	}
	n := maxLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	if n == 0 {
		return maxLen
	}
	return n
}
