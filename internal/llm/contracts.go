package llm

import "context"

// Oracle is the opaque text-completion service. It is blocking, may be slow,
// may fail, and makes no guarantee about the shape of its output; all
// structure is imposed by the parser in this package.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CaptionResult is the captioning service's view of one image.
type CaptionResult struct {
	Description  string `json:"description"`
	DetectedType string `json:"detected_type,omitempty"` // "diagram", "formula", "table", ...
}

// Captioner produces a natural-language caption for an image. Blocking, may
// time out; a failure caption leaves the image unlinked, never aborts a batch.
type Captioner interface {
	Caption(ctx context.Context, image []byte) (CaptionResult, error)
}

// Matcher computes pairwise similarity scores between two text sets.
// Scores returns one row per query, one column per candidate, in [0, 1].
type Matcher interface {
	Scores(ctx context.Context, queries, candidates []string) ([][]float64, error)
}
