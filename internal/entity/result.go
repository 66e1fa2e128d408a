package entity

// ItemError records one recoverable per-item failure encountered during an
// import. Items fail independently; the batch continues.
type ItemError struct {
	Stage   string `json:"stage"` // "page", "chunk", "image", "question", "link"
	Item    string `json:"item"`  // page number, chunk ordinal, filename, ...
	Message string `json:"message"`
}

func (e ItemError) Error() string {
	return e.Stage + " " + e.Item + ": " + e.Message
}

// ImportResult is the summary returned to the caller for every non-fatal
// import, including partial successes.
type ImportResult struct {
	QuestionsExtracted int         `json:"questions_extracted"`
	QuestionsPersisted int         `json:"questions_persisted"`
	SkippedDuplicate   int         `json:"skipped_duplicate"`
	ImagesLinked       int         `json:"images_linked"`
	Failed             int         `json:"failed"`
	Pages              int         `json:"pages"`
	ImagesExtracted    int         `json:"images_extracted"`
	UsedFallback       bool        `json:"used_fallback"`
	FromCache          bool        `json:"from_cache"`
	Errors             []ItemError `json:"errors,omitempty"`
}
