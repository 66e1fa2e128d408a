package constants

import (
	"strings"
	"time"
)

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Pipeline defaults. All of these are overridable via config/env.
const (
	// DefaultChunkSize is the maximum chunk length in bytes handed to one oracle call.
	DefaultChunkSize = 3000

	// DefaultOracleConcurrency bounds parallel oracle/caption calls so we don't
	// overwhelm the completion service.
	DefaultOracleConcurrency = 3

	// DefaultOracleTimeout caps a single oracle call. A timeout fails that call
	// only, never the whole import.
	DefaultOracleTimeout = 60 * time.Second

	// DefaultOracleRateLimit paces oracle/caption/embedding calls in requests
	// per second. Zero disables pacing.
	DefaultOracleRateLimit = 0.0

	// DefaultLayoutTimeout caps the layout-analysis pass before falling back to
	// plain extraction.
	DefaultLayoutTimeout = 120 * time.Second

	// DefaultSimilarityThreshold is the minimum caption/question similarity for
	// a semantic image link. Empirically chosen, tune via config.
	DefaultSimilarityThreshold = 0.3

	// DefaultLinkTopK is the maximum number of semantically linked images per question.
	DefaultLinkTopK = 2

	// MinDifficulty and MaxDifficulty bound the difficulty scale accepted from the oracle.
	MinDifficulty = 1
	MaxDifficulty = 5
)
