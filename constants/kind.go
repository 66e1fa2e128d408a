package constants

import "strings"

// ContentKind describes how question content should be rendered.
type ContentKind string

const (
	KindPlain    ContentKind = "plain"
	KindMarkdown ContentKind = "markdown"
	KindCode     ContentKind = "code"
)

var allKinds = []ContentKind{KindPlain, KindMarkdown, KindCode}

func KindsAsStringSlice() []string {
	result := make([]string, len(allKinds))
	for i, k := range allKinds {
		result[i] = string(k)
	}
	return result
}

// CanonicalizeKind maps free-form oracle output onto a known kind.
// Unknown labels fall back to plain.
func CanonicalizeKind(input string) (ContentKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return KindPlain, false
	}

	synonyms := map[string]ContentKind{
		"text":     KindPlain,
		"plain":    KindPlain,
		"md":       KindMarkdown,
		"markdown": KindMarkdown,
		"code":     KindCode,
		"source":   KindCode,
		"snippet":  KindCode,
	}
	if k, ok := synonyms[normalized]; ok {
		return k, true
	}
	return KindPlain, false
}
