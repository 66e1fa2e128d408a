// Package extract turns a document's text into validated candidate questions
// by chunking it and fanning the chunks out to the completion oracle.
package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fingerprint hashes question or document content for dedup. The input is
// trimmed and NFC-normalized first so that visually identical text with
// different Unicode compositions (full-width digits, combining marks common
// in Japanese source material) hashes the same.
func Fingerprint(content string) []byte {
	canonical := norm.NFC.String(strings.TrimSpace(content))
	sum := sha256.Sum256([]byte(canonical))
	return sum[:]
}

// FingerprintHex is the hex form used as a cache key and in logs.
func FingerprintHex(content string) string {
	return hex.EncodeToString(Fingerprint(content))
}
