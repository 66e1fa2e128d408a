// Package importer drives a full document import: layout extraction, oracle
// question extraction, persistence with content-hash dedup, and image linking.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/extract"
	"github.com/hansaki/quizforge/internal/link"
	"github.com/hansaki/quizforge/internal/pdf"
	"github.com/hansaki/quizforge/internal/repository"
)

// DocumentExtractor is the layout/fallback pipeline surface.
type DocumentExtractor interface {
	Extract(ctx context.Context, doc []byte, allowFallback bool) (pdf.Extraction, error)
}

// QuestionExtractor is the chunk/oracle pipeline surface.
type QuestionExtractor interface {
	Extract(ctx context.Context, text, categoryHint string) (extract.Result, error)
}

// ImageLinker attaches extracted images to persisted questions.
type ImageLinker interface {
	Link(ctx context.Context, questions []entity.Question, images []entity.ExtractedImage) (link.Result, error)
}

// Options label one import run.
type Options struct {
	SourceLabel       string
	CategoryHint      string
	UseLayoutAnalysis bool
}

// Importer orchestrates one document end to end. Item-level failures
// (a chunk, a question, an image) are isolated and counted; the run as a
// whole fails only when nothing usable came out of the document.
type Importer struct {
	layout     DocumentExtractor
	extractor  QuestionExtractor
	linker     ImageLinker
	questions  repository.QuestionRepository
	categories repository.CategoryRepository
	jobs       repository.JobRepository
	logger     *slog.Logger
}

func NewImporter(
	layout DocumentExtractor,
	extractor QuestionExtractor,
	linker ImageLinker,
	questions repository.QuestionRepository,
	categories repository.CategoryRepository,
	jobs repository.JobRepository,
	logger *slog.Logger,
) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		layout:     layout,
		extractor:  extractor,
		linker:     linker,
		questions:  questions,
		categories: categories,
		jobs:       jobs,
		logger:     logger,
	}
}

// ImportDocument runs the whole pipeline over one document's bytes.
func (im *Importer) ImportDocument(ctx context.Context, doc []byte, opts Options) (entity.ImportResult, error) {
	start := time.Now()
	jobID, err := im.jobs.Start(ctx, opts.SourceLabel)
	if err != nil {
		return entity.ImportResult{}, fmt.Errorf("start job: %w", err)
	}
	im.logger.Info("import.start",
		"job_id", jobID, "source_label", opts.SourceLabel, "bytes", len(doc))

	var result entity.ImportResult

	extraction, err := im.layout.Extract(ctx, doc, opts.UseLayoutAnalysis)
	if err != nil {
		return im.fail(ctx, jobID, result, fmt.Errorf("document extraction: %w", err))
	}
	result.Pages = extraction.Pages
	result.ImagesExtracted = len(extraction.Images)
	result.UsedFallback = extraction.UsedFallback

	extracted, err := im.extractor.Extract(ctx, extraction.Markdown, opts.CategoryHint)
	if err != nil {
		return im.fail(ctx, jobID, result, fmt.Errorf("question extraction: %w", err))
	}
	result.QuestionsExtracted = len(extracted.Questions)
	result.FromCache = extracted.FromCache
	result.Errors = append(result.Errors, extracted.Errors...)

	persisted := im.persistAll(ctx, extracted.Questions, opts, &result)

	if len(persisted) > 0 && len(extraction.Images) > 0 {
		linkRes, err := im.linker.Link(ctx, persisted, extraction.Images)
		result.ImagesLinked = linkRes.Linked
		result.Errors = append(result.Errors, linkRes.Errors...)
		if err != nil {
			return im.fail(ctx, jobID, result, fmt.Errorf("image linking: %w", err))
		}
	}

	status := constants.JobStatusOK
	if result.Failed > 0 || len(result.Errors) > 0 {
		status = constants.JobStatusPartial
	}
	if err := im.jobs.Finish(ctx, jobID, status, result, ""); err != nil {
		im.logger.Error("import.finish_failed", "job_id", jobID, "error", err)
	}

	im.logger.Info("import.done",
		"job_id", jobID, "status", string(status),
		"extracted", result.QuestionsExtracted, "persisted", result.QuestionsPersisted,
		"skipped_duplicate", result.SkippedDuplicate, "images_linked", result.ImagesLinked,
		"failed", result.Failed, "elapsed_ms", time.Since(start).Milliseconds())
	return result, nil
}

// persistAll inserts candidates one by one with content-hash dedup. The
// returned slice carries both new and already-present questions, each with
// the candidate's image references, so linking stays idempotent on re-import.
func (im *Importer) persistAll(ctx context.Context, candidates []entity.CandidateQuestion, opts Options, result *entity.ImportResult) []entity.Question {
	var persisted []entity.Question
	categoryIDs := make(map[string]*int)

	for i, c := range candidates {
		hash := extract.Fingerprint(c.Content)

		existing, err := im.questions.FindByFingerprint(ctx, hash)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, entity.ItemError{
				Stage:   "persist",
				Item:    fmt.Sprintf("question %d", i),
				Message: err.Error(),
			})
			continue
		}
		if existing != nil {
			result.SkippedDuplicate++
			existing.ImageRefs = c.ImageRefs
			persisted = append(persisted, *existing)
			continue
		}

		q := im.toQuestion(ctx, c, opts, hash, categoryIDs)
		inserted, err := im.questions.Insert(ctx, &q)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, entity.ItemError{
				Stage:   "persist",
				Item:    fmt.Sprintf("question %d", i),
				Message: err.Error(),
			})
			continue
		}
		result.QuestionsPersisted++
		inserted.ImageRefs = c.ImageRefs
		persisted = append(persisted, *inserted)
	}
	return persisted
}

func (im *Importer) toQuestion(ctx context.Context, c entity.CandidateQuestion, opts Options, hash []byte, categoryIDs map[string]*int) entity.Question {
	kind := c.ContentKind
	if kind == "" {
		kind = constants.KindPlain
	}

	difficulty := c.Difficulty
	if difficulty < constants.MinDifficulty {
		difficulty = constants.MinDifficulty
	}
	if difficulty > constants.MaxDifficulty {
		difficulty = constants.MaxDifficulty
	}

	return entity.Question{
		CategoryID:   im.resolveCategory(ctx, c.CategoryHint, opts.CategoryHint, categoryIDs),
		Content:      c.Content,
		Choices:      c.Choices,
		CorrectIndex: c.CorrectIndex,
		Explanation:  c.Explanation,
		Difficulty:   difficulty,
		ContentKind:  kind,
		ContentHash:  hash,
		SourceLabel:  opts.SourceLabel,
		ImageRefs:    c.ImageRefs,
	}
}

// resolveCategory prefers the per-question hint from the oracle over the
// run-wide hint. Resolution failures leave the question uncategorized rather
// than failing it.
func (im *Importer) resolveCategory(ctx context.Context, questionHint, runHint string, memo map[string]*int) *int {
	name := strings.TrimSpace(questionHint)
	if name == "" {
		name = strings.TrimSpace(runHint)
	}
	if name == "" {
		return nil
	}

	if id, ok := memo[name]; ok {
		return id
	}
	cat, err := im.categories.GetOrCreate(ctx, name)
	if err != nil {
		im.logger.Warn("import.category_failed", "name", name, "error", err)
		memo[name] = nil
		return nil
	}
	memo[name] = &cat.ID
	return &cat.ID
}

// fail stamps a FAILED job and propagates the fatal error.
func (im *Importer) fail(ctx context.Context, jobID uuid.UUID, result entity.ImportResult, cause error) (entity.ImportResult, error) {
	if err := im.jobs.Finish(ctx, jobID, constants.JobStatusFailed, result, cause.Error()); err != nil {
		im.logger.Error("import.finish_failed", "job_id", jobID, "error", err)
	}
	im.logger.Error("import.failed", "job_id", jobID, "error", cause)
	return result, cause
}
