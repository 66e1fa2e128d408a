// Package ingest discovers study documents on disk and feeds them through the
// import pipeline, one-shot over a directory or continuously via a watcher.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/importer"
)

// DocumentImporter runs one document through the import pipeline.
type DocumentImporter interface {
	ImportDocument(ctx context.Context, doc []byte, opts importer.Options) (entity.ImportResult, error)
}

// Options apply to every file the service imports.
type Options struct {
	CategoryHint      string
	UseLayoutAnalysis bool
}

type Service struct {
	importer DocumentImporter
	opts     Options
	logger   *slog.Logger
}

func NewService(imp DocumentImporter, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{importer: imp, opts: opts, logger: logger}
}

// ImportFile reads and imports a single document. The source label is the
// file's base name, which makes re-imports of the same file land on the same
// label.
func (s *Service) ImportFile(ctx context.Context, path string) (entity.ImportResult, error) {
	if !AllowedExt(filepath.Ext(path)) {
		return entity.ImportResult{}, fmt.Errorf("unsupported file type: %s", path)
	}

	doc, err := os.ReadFile(path)
	if err != nil {
		return entity.ImportResult{}, fmt.Errorf("read document: %w", err)
	}

	return s.importer.ImportDocument(ctx, doc, importer.Options{
		SourceLabel:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		CategoryHint:      s.opts.CategoryHint,
		UseLayoutAnalysis: s.opts.UseLayoutAnalysis,
	})
}
