package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/constants"
)

// CandidateQuestion is a structurally valid question parsed out of one oracle
// response. It carries no run-specific metadata (source label, category id),
// so cached copies can be reused under different import labeling.
type CandidateQuestion struct {
	Content      string                `json:"content"`
	Choices      []string              `json:"choices"`
	CorrectIndex int                   `json:"correct_index"`
	Explanation  string                `json:"explanation"`
	Difficulty   int                   `json:"difficulty"`
	ContentKind  constants.ContentKind `json:"content_kind,omitempty"`
	ImageRefs    []string              `json:"image_references,omitempty"`
	CategoryHint string                `json:"category,omitempty"`
}

// Question represents a persisted question for data transfer between layers.
type Question struct {
	ID           uuid.UUID             `json:"id"`
	CategoryID   *int                  `json:"category_id,omitempty"`
	Content      string                `json:"content"`
	Choices      []string              `json:"choices"`
	CorrectIndex int                   `json:"correct_index"`
	Explanation  string                `json:"explanation"`
	Difficulty   int                   `json:"difficulty"`
	ContentKind  constants.ContentKind `json:"content_kind"`
	ContentHash  []byte                `json:"-"`
	SourceLabel  string                `json:"source_label,omitempty"`
	ImageRefs    []string              `json:"image_references,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// Category represents a question category for data transfer between layers.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
