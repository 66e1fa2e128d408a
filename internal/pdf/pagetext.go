// Package pdf extracts text and images from possibly malformed PDF study
// documents. Extraction is best-effort per page and per image: a corrupted
// content stream or an undecodable color space costs that one item, never
// the document.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hansaki/quizforge/internal/common"
)

// TextExtractor pulls the raw text layer out of a document page by page.
type TextExtractor struct {
	logger *slog.Logger
}

func NewTextExtractor(logger *slog.Logger) *TextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextExtractor{logger: logger}
}

// Extract returns the concatenated text of all readable pages. A single
// page's decode failure is logged and skipped; the call fails only when the
// document itself is unreadable or zero pages yield text.
func (e *TextExtractor) Extract(ctx context.Context, doc []byte) (string, error) {
	if len(doc) == 0 {
		return "", common.ErrEmptyDocument
	}

	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrEmptyDocument, err)
	}

	var b strings.Builder
	pages := r.NumPage()
	failed := 0
	for i := 1; i <= pages; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		text, err := e.pageText(r, i)
		if err != nil {
			failed++
			e.logger.Warn("pdf.text.page_skipped", "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("%w (%d pages, %d failed)", common.ErrNoText, pages, failed)
	}
	if failed > 0 {
		e.logger.Info("pdf.text.partial", "pages", pages, "failed", failed)
	}
	return out, nil
}

// countPages reports the page count, or 0 when the document won't parse.
func countPages(doc []byte) int {
	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return 0
	}
	return r.NumPage()
}

// pageText isolates one page. The underlying library panics on some malformed
// content streams, so failures must be contained per page.
func (e *TextExtractor) pageText(r *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page decode panic: %v", rec)
		}
	}()

	page := r.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: null object", num)
	}
	return page.GetPlainText(nil)
}
