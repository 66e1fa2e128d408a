package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hansaki/quizforge/constants"
)

// BuildQuestionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for ONE question element of the oracle's array output. We pass
// it to the oracle as an output constraint and also use it locally to
// validate, after sanitizing.
func BuildQuestionJSONSchema() map[string]any {
	props := map[string]any{
		"content": map[string]any{"type": "string", "minLength": 1},
		"choices": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string"},
		},
		"correct_index": map[string]any{"type": "integer"},
		"explanation":   map[string]any{"type": "string"},
		"difficulty": map[string]any{
			"type":    "integer",
			"minimum": constants.MinDifficulty,
			"maximum": constants.MaxDifficulty,
		},
		"content_kind": map[string]any{
			"type": "string",
			"enum": constants.KindsAsStringSlice(),
		},
		"image_references": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"category": map[string]any{"type": "string"},
	}
	required := []string{"content", "choices", "correct_index", "explanation", "difficulty"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
