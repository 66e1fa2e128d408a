package llm

import (
	"strings"
)

// BuildExtractionPrompt builds the chunk-scoped prompt for the oracle. The
// chunk text is placed last so truncation by the provider cuts material, not
// instructions.
func BuildExtractionPrompt(chunkText, categoryHint string) string {
	parts := []string{
		"Extract every quiz question from the study material below.",
		"",
		"Follow these rules precisely:",
		`1. Create one JSON object per question with exactly these keys: "content", "choices", "correct_index", "explanation", "difficulty". Optional keys: "content_kind", "image_references", "category".`,
		`2. "choices" is the ordered list of answer options (at least 2). "correct_index" is the 0-based index of the correct option.`,
		`3. "difficulty" is an integer from 1 (easy) to 5 (hard). "content_kind" is one of "plain", "markdown", "code".`,
		`4. If the question refers to a figure, diagram or formula image, list the referenced filenames in "image_references".`,
		"5. Keep the original language of the material. Do not invent questions that are not in the material.",
		"6. The final output MUST be a single, valid JSON array of these objects. Do not include any text before or after the JSON array.",
	}
	if hint := strings.TrimSpace(categoryHint); hint != "" {
		parts = append(parts, `7. If a question clearly belongs to the subject "`+hint+`", set "category" accordingly.`)
	}
	parts = append(parts,
		"",
		"Study material:",
		"---",
		chunkText,
	)
	return strings.Join(parts, "\n")
}
