package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

// NormalizeAndSanitizeElement
// - Renames known synonyms (answer_index -> correct_index, images -> image_references)
// - Coerces float-typed integers (JSON numbers decode as float64)
// - Trims obvious strings, drops null/empty optionals
// - Removes unknown keys (strict additionalProperties = false friendliness)
// Only shape is touched here; the choice-dedup/correct-index invariant is
// enforced later by the parser, after validation.
func NormalizeAndSanitizeElement(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("question", "content")
	renamed("text", "content")
	renamed("answer_index", "correct_index")
	renamed("answer", "correct_index")
	renamed("options", "choices")
	renamed("images", "image_references")
	renamed("image_refs", "image_references")
	renamed("category_hint", "category")
	renamed("kind", "content_kind")

	// 2) coerce integer fields the model emitted as floats or numeric strings
	coerceInt := func(k string) {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case float64:
				m[k] = int(t)
			case string:
				s := strings.TrimSpace(t)
				var n int
				if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
					m[k] = n
				} else {
					delete(m, k)
					dropped = append(dropped, k+"(nan)")
				}
			case nil:
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			}
		}
	}
	coerceInt("correct_index")
	coerceInt("difficulty")

	// 3) choices must be a list of strings; stringify stray numbers
	if v, ok := m["choices"].([]any); ok {
		out := make([]any, 0, len(v))
		for _, c := range v {
			switch t := c.(type) {
			case string:
				out = append(out, t)
			case float64:
				out = append(out, fmt.Sprintf("%g", t))
			default:
				dropped = append(dropped, "choices(element)")
			}
		}
		m["choices"] = out
	}
	if v, ok := m["image_references"].([]any); ok {
		out := make([]any, 0, len(v))
		for _, c := range v {
			if s, ok := c.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		m["image_references"] = out
	}

	// 4) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"content": {}, "choices": {}, "correct_index": {}, "explanation": {},
		"difficulty": {}, "content_kind": {}, "image_references": {}, "category": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// 5) trim obvious strings; drop empty optionals
	for _, k := range []string{"content", "explanation", "content_kind", "category"} {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" && k != "content" && k != "explanation" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Debug("oracle.parse.sanitized", "dropped", dropped)
	}
	return out, dropped, nil
}
