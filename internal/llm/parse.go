package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/internal/entity"
)

// ErrNoArray is returned when no balanced JSON array can be found in a
// response.
var ErrNoArray = errors.New("no JSON array found in oracle response")

// ExtractJSONArray returns the first balanced top-level `[...]` array found in
// s. The oracle wraps its output in fenced code blocks or surrounds it with
// prose often enough that assuming the whole response is JSON does not work;
// a string-aware bracket-matching scan does.
func ExtractJSONArray(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start == -1 {
			if c == '[' {
				start = i
				depth = 1
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}
	return "", ErrNoArray
}

type rawQuestion struct {
	Content      string   `json:"content"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Difficulty   int      `json:"difficulty"`
	ContentKind  string   `json:"content_kind"`
	ImageRefs    []string `json:"image_references"`
	Category     string   `json:"category"`
}

// ParseQuestions turns one oracle response into validated CandidateQuestions.
// Invalid elements are logged and dropped; the call fails only when no array
// is present or the array itself cannot be decoded. Never returns a
// partially-valid record: an element either survives validation, choice
// dedup, and correct-index remapping intact, or it is discarded whole.
func ParseQuestions(response string, logger *slog.Logger) ([]entity.CandidateQuestion, error) {
	if logger == nil {
		logger = slog.Default()
	}

	arr, err := ExtractJSONArray(response)
	if err != nil {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(arr), &elements); err != nil {
		return nil, fmt.Errorf("decode oracle array: %w", err)
	}

	schema := BuildQuestionJSONSchema()
	out := make([]entity.CandidateQuestion, 0, len(elements))
	for i, el := range elements {
		cleaned, _, err := NormalizeAndSanitizeElement(el, logger)
		if err != nil {
			logger.Warn("oracle.parse.element_discarded", "index", i, "reason", "sanitize", "error", err)
			continue
		}
		if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
			logger.Warn("oracle.parse.element_discarded", "index", i, "reason", "schema", "error", err)
			continue
		}

		var rq rawQuestion
		if err := json.Unmarshal(cleaned, &rq); err != nil {
			logger.Warn("oracle.parse.element_discarded", "index", i, "reason", "decode", "error", err)
			continue
		}

		q, ok := toCandidate(rq)
		if !ok {
			logger.Warn("oracle.parse.element_discarded", "index", i, "reason", "choices")
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// toCandidate applies the choice-dedup invariant: choices are deduplicated by
// exact match after trimming, order of first occurrence preserved. A record
// whose unique choice count drops below 2, or whose correct index does not
// survive the dedup, is discarded rather than clamped or guessed.
func toCandidate(rq rawQuestion) (entity.CandidateQuestion, bool) {
	if rq.CorrectIndex < 0 || rq.CorrectIndex >= len(rq.Choices) {
		return entity.CandidateQuestion{}, false
	}

	unique := make([]string, 0, len(rq.Choices))
	seen := make(map[string]int, len(rq.Choices))
	for _, c := range rq.Choices {
		t := strings.TrimSpace(c)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = len(unique)
		unique = append(unique, t)
	}
	if len(unique) < 2 {
		return entity.CandidateQuestion{}, false
	}

	correctValue := strings.TrimSpace(rq.Choices[rq.CorrectIndex])
	newIndex, ok := seen[correctValue]
	if !ok {
		return entity.CandidateQuestion{}, false
	}

	kind, _ := constants.CanonicalizeKind(rq.ContentKind)
	return entity.CandidateQuestion{
		Content:      strings.TrimSpace(rq.Content),
		Choices:      unique,
		CorrectIndex: newIndex,
		Explanation:  strings.TrimSpace(rq.Explanation),
		Difficulty:   rq.Difficulty,
		ContentKind:  kind,
		ImageRefs:    rq.ImageRefs,
		CategoryHint: rq.Category,
	}, true
}
