package entity

import "github.com/google/uuid"

// ExtractedImage is one embedded image pulled out of a document, already
// normalized to RGB-encoded PNG (or kept verbatim when the source encoding was
// usable as-is). Identity is the image's object reference or filename and is
// unique within one extraction run.
type ExtractedImage struct {
	Identity string `json:"identity"`
	Data     []byte `json:"-"`
	Page     int    `json:"page"`
	Position int    `json:"position"`
	Caption  string `json:"caption,omitempty"`
}

// QuestionImage represents a persisted question-image link.
type QuestionImage struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Locator    string    `json:"locator"`
	Position   int       `json:"position"`
	AltText    string    `json:"alt_text,omitempty"`
}
