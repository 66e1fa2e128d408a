package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
)

// minimalProbePDF is the smallest well-formed single-page document; opening it
// proves the fitz native library loaded and works on this host.
const minimalProbePDF = "%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]>>endobj\n" +
	"xref\n0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000052 00000 n \n" +
	"0000000101 00000 n \n" +
	"trailer<</Size 4/Root 1 0 R>>\n" +
	"startxref\n164\n%%EOF\n"

var fitzProbe struct {
	once sync.Once
	ok   bool
}

// FitzStrategy is the layout-aware extraction path built on MuPDF. It reads
// text in rendering order, which preserves multi-column and table layouts far
// better than raw content-stream walking.
type FitzStrategy struct {
	images *ImageExtractor
	logger *slog.Logger
}

func NewFitzStrategy(images *ImageExtractor, logger *slog.Logger) *FitzStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &FitzStrategy{images: images, logger: logger}
}

func (s *FitzStrategy) Name() string { return "fitz" }

// Available probes the native MuPDF binding once per process. Loading can
// fail outright on hosts without the shared library, and some failure modes
// surface as panics inside the binding.
func (s *FitzStrategy) Available() bool {
	fitzProbe.once.Do(func() {
		defer func() {
			if recover() != nil {
				fitzProbe.ok = false
			}
		}()
		doc, err := fitz.NewFromMemory([]byte(minimalProbePDF))
		if err != nil {
			return
		}
		defer doc.Close()
		fitzProbe.ok = doc.NumPage() == 1
	})
	return fitzProbe.ok
}

func (s *FitzStrategy) Extract(ctx context.Context, docBytes []byte) (Extraction, error) {
	doc, err := fitz.NewFromMemory(docBytes)
	if err != nil {
		return Extraction{}, fmt.Errorf("fitz open: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	var b strings.Builder
	failed := 0
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return Extraction{}, err
		}
		text, err := doc.Text(i)
		if err != nil {
			failed++
			s.logger.Warn("pdf.fitz.page_skipped", "page", i+1, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	markdown := strings.TrimSpace(b.String())
	if markdown == "" {
		return Extraction{}, fmt.Errorf("fitz: no text in %d pages (%d failed)", pages, failed)
	}

	images, err := s.images.ExtractAll(ctx, docBytes, NormalizeSimple)
	if err != nil {
		// Text alone is still a usable layout result.
		s.logger.Warn("pdf.fitz.images_failed", "error", err)
		images = nil
	}

	return Extraction{Markdown: markdown, Images: images, Pages: pages}, nil
}

// PlainStrategy is the degraded path: raw text-layer extraction plus the
// robust image walk. It has no layout awareness but survives documents the
// layout pass cannot handle.
type PlainStrategy struct {
	text   *TextExtractor
	images *ImageExtractor
	logger *slog.Logger
}

func NewPlainStrategy(text *TextExtractor, images *ImageExtractor, logger *slog.Logger) *PlainStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlainStrategy{text: text, images: images, logger: logger}
}

func (s *PlainStrategy) Name() string { return "plain" }

func (s *PlainStrategy) Available() bool { return true }

func (s *PlainStrategy) Extract(ctx context.Context, doc []byte) (Extraction, error) {
	text, err := s.text.Extract(ctx, doc)
	if err != nil {
		return Extraction{}, err
	}

	images, err := s.images.ExtractAll(ctx, doc, NormalizeRobust)
	if err != nil {
		s.logger.Warn("pdf.plain.images_failed", "error", err)
		images = nil
	}

	return Extraction{Markdown: text, Images: images, Pages: countPages(doc)}, nil
}

