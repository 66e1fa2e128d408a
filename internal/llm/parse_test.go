package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArrayFencedBlock(t *testing.T) {
	response := "Here are the questions:\n```json\n[{\"content\": \"q\"}]\n```\nDone."
	arr, err := ExtractJSONArray(response)
	require.NoError(t, err)
	assert.Equal(t, `[{"content": "q"}]`, arr)
}

func TestExtractJSONArrayBracketsInsideStrings(t *testing.T) {
	response := `[{"content": "choose [the] right ] answer"}]`
	arr, err := ExtractJSONArray(response)
	require.NoError(t, err)
	assert.Equal(t, response, arr)
}

func TestExtractJSONArrayEscapedQuotes(t *testing.T) {
	response := `noise [{"content": "he said \"x]\" loudly"}] noise`
	arr, err := ExtractJSONArray(response)
	require.NoError(t, err)
	assert.Equal(t, `[{"content": "he said \"x]\" loudly"}]`, arr)
}

func TestExtractJSONArrayNoArray(t *testing.T) {
	_, err := ExtractJSONArray("I could not find any questions in this text.")
	assert.ErrorIs(t, err, ErrNoArray)
}

func validElement() string {
	return `{
		"content": "What is 2+2?",
		"choices": ["3", "4", "5", "6"],
		"correct_index": 1,
		"explanation": "Basic arithmetic.",
		"difficulty": 1
	}`
}

func TestParseQuestionsValidElement(t *testing.T) {
	qs, err := ParseQuestions("["+validElement()+"]", nil)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "What is 2+2?", qs[0].Content)
	assert.Equal(t, []string{"3", "4", "5", "6"}, qs[0].Choices)
	assert.Equal(t, 1, qs[0].CorrectIndex)
}

func TestParseQuestionsChoiceDedupRemapsCorrectIndex(t *testing.T) {
	response := `[{
		"content": "Pick one",
		"choices": ["A", "A", "B", "C"],
		"correct_index": 2,
		"explanation": "e",
		"difficulty": 3
	}]`

	qs, err := ParseQuestions(response, nil)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, []string{"A", "B", "C"}, qs[0].Choices)
	// "B" was at index 2 before dedup, index 1 after.
	assert.Equal(t, 1, qs[0].CorrectIndex)
	assert.Equal(t, "B", qs[0].Choices[qs[0].CorrectIndex])
}

func TestParseQuestionsAllIdenticalChoicesDiscarded(t *testing.T) {
	response := `[{
		"content": "Pick one",
		"choices": ["A", "A", "A", "A"],
		"correct_index": 0,
		"explanation": "e",
		"difficulty": 3
	}]`

	qs, err := ParseQuestions(response, nil)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestParseQuestionsCorrectIndexOutOfRangeDiscarded(t *testing.T) {
	response := `[
		{"content": "bad", "choices": ["A", "B"], "correct_index": 5, "explanation": "e", "difficulty": 2},
		` + validElement() + `
	]`

	qs, err := ParseQuestions(response, nil)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "What is 2+2?", qs[0].Content)
}

func TestParseQuestionsSynonymKeysAccepted(t *testing.T) {
	response := `[{
		"question": "Renamed fields",
		"options": ["yes", "no"],
		"answer_index": 0,
		"explanation": "e",
		"difficulty": 2,
		"images": ["fig1.png"]
	}]`

	qs, err := ParseQuestions(response, nil)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Renamed fields", qs[0].Content)
	assert.Equal(t, 0, qs[0].CorrectIndex)
	assert.Equal(t, []string{"fig1.png"}, qs[0].ImageRefs)
}

func TestParseQuestionsFloatIndexCoerced(t *testing.T) {
	response := `[{
		"content": "floats",
		"choices": ["a", "b"],
		"correct_index": 1.0,
		"explanation": "e",
		"difficulty": 2.0
	}]`

	qs, err := ParseQuestions(response, nil)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 1, qs[0].CorrectIndex)
	assert.Equal(t, 2, qs[0].Difficulty)
}

func TestParseQuestionsMissingRequiredFieldDiscarded(t *testing.T) {
	response := `[
		{"choices": ["a", "b"], "correct_index": 0, "explanation": "e", "difficulty": 2},
		` + validElement() + `
	]`

	qs, err := ParseQuestions(response, nil)
	require.NoError(t, err)
	assert.Len(t, qs, 1)
}
