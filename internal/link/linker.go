// Package link attaches extracted images to persisted questions. Direct
// filename references from the oracle output are tried first; questions left
// without images fall through to caption/embedding similarity matching.
package link

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/llm"
	"github.com/hansaki/quizforge/internal/storage"
)

// LinkStore is the persistence surface for question-image links.
type LinkStore interface {
	Exists(ctx context.Context, questionID uuid.UUID, locator string) (bool, error)
	Insert(ctx context.Context, link entity.QuestionImage) error
}

// Options tune the semantic fallback phase.
type Options struct {
	Threshold          float64
	TopK               int
	CaptionConcurrency int
	CaptionTimeout     time.Duration
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = constants.DefaultSimilarityThreshold
	}
	if o.TopK <= 0 {
		o.TopK = constants.DefaultLinkTopK
	}
	if o.CaptionConcurrency <= 0 {
		o.CaptionConcurrency = constants.DefaultOracleConcurrency
	}
	if o.CaptionTimeout <= 0 {
		o.CaptionTimeout = constants.DefaultOracleTimeout
	}
	return o
}

// Result summarizes one linking run.
type Result struct {
	Linked int
	Errors []entity.ItemError
}

// Linker wires questions to images. Captioner and matcher are optional; when
// either is nil the semantic fallback phase is skipped and only direct
// references link.
type Linker struct {
	store     LinkStore
	blobs     storage.Storage
	captioner llm.Captioner
	matcher   llm.Matcher
	opts      Options
	logger    *slog.Logger
}

func NewLinker(store LinkStore, blobs storage.Storage, captioner llm.Captioner, matcher llm.Matcher, opts Options, logger *slog.Logger) *Linker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Linker{
		store:     store,
		blobs:     blobs,
		captioner: captioner,
		matcher:   matcher,
		opts:      opts.withDefaults(),
		logger:    logger,
	}
}

// Link runs both phases over questions that carry image references or have no
// links yet. Per-question and per-image failures are recorded and skipped.
func (l *Linker) Link(ctx context.Context, questions []entity.Question, images []entity.ExtractedImage) (Result, error) {
	if len(questions) == 0 || len(images) == 0 {
		return Result{}, nil
	}

	byName := make(map[string]entity.ExtractedImage, len(images))
	for _, img := range images {
		byName[normalizeRef(img.Identity)] = img
	}

	var res Result
	linked := make(map[uuid.UUID]bool, len(questions))
	usedImages := make(map[string]bool, len(images))
	for _, q := range questions {
		created, resolved, used, errs := l.linkByReference(ctx, q, byName)
		res.Linked += created
		res.Errors = append(res.Errors, errs...)
		linked[q.ID] = resolved > 0
		for _, identity := range used {
			usedImages[identity] = true
		}
	}

	var unlinked []entity.Question
	for _, q := range questions {
		if !linked[q.ID] {
			unlinked = append(unlinked, q)
		}
	}
	// Images claimed by a filename reference are settled; only the remainder
	// competes in the similarity phase.
	var candidates []entity.ExtractedImage
	for _, img := range images {
		if !usedImages[img.Identity] {
			candidates = append(candidates, img)
		}
	}
	if len(unlinked) > 0 && len(candidates) > 0 && l.captioner != nil && l.matcher != nil {
		n, errs := l.linkBySimilarity(ctx, unlinked, candidates)
		res.Linked += n
		res.Errors = append(res.Errors, errs...)
	}

	l.logger.Info("link.done",
		"questions", len(questions), "images", len(images),
		"linked", res.Linked, "errors", len(res.Errors))
	return res, ctx.Err()
}

// linkByReference resolves the filenames the oracle reported in the question
// text against the extracted image identities. It reports links created this
// run, references resolved at all (created or pre-existing), and the
// identities of the images those references claimed, so the semantic phase
// can skip both the questions and the images that are already settled.
func (l *Linker) linkByReference(ctx context.Context, q entity.Question, byName map[string]entity.ExtractedImage) (created, resolved int, used []string, errs []entity.ItemError) {
	for _, ref := range q.ImageRefs {
		img, ok := byName[normalizeRef(ref)]
		if !ok {
			l.logger.Warn("link.reference_missing", "question_id", q.ID, "ref", ref)
			continue
		}
		isNew, err := l.attach(ctx, q.ID, img, img.Caption)
		if err != nil {
			errs = append(errs, entity.ItemError{
				Stage:   "link",
				Item:    fmt.Sprintf("question %s ref %s", q.ID, ref),
				Message: err.Error(),
			})
			continue
		}
		resolved++
		used = append(used, img.Identity)
		if isNew {
			created++
		}
	}
	return created, resolved, used, errs
}

// linkBySimilarity captions every image, scores captions against question
// content, and attaches the best matches above the threshold.
func (l *Linker) linkBySimilarity(ctx context.Context, questions []entity.Question, images []entity.ExtractedImage) (int, []entity.ItemError) {
	var errs []entity.ItemError

	captions := make([]string, len(images))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.CaptionConcurrency)
	for i, img := range images {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, l.opts.CaptionTimeout)
			defer cancel()
			out, err := l.captioner.Caption(cctx, img.Data)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, entity.ItemError{
					Stage:   "link",
					Item:    fmt.Sprintf("caption %s", img.Identity),
					Message: err.Error(),
				})
				return nil
			}
			captions[i] = out.Description
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, append(errs, entity.ItemError{Stage: "link", Item: "caption", Message: err.Error()})
	}

	queries := make([]string, len(questions))
	for i, q := range questions {
		queries[i] = q.Content
	}
	scores, err := l.matcher.Scores(ctx, queries, captions)
	if err != nil {
		return 0, append(errs, entity.ItemError{Stage: "link", Item: "similarity", Message: err.Error()})
	}

	linked := 0
	for qi, q := range questions {
		for _, m := range topMatches(scores[qi], l.opts.Threshold, l.opts.TopK) {
			if captions[m.index] == "" {
				continue
			}
			img := images[m.index]
			isNew, err := l.attach(ctx, q.ID, img, captions[m.index])
			if err != nil {
				errs = append(errs, entity.ItemError{
					Stage:   "link",
					Item:    fmt.Sprintf("question %s image %s", q.ID, img.Identity),
					Message: err.Error(),
				})
				continue
			}
			if !isNew {
				continue
			}
			l.logger.Info("link.semantic",
				"question_id", q.ID, "image", img.Identity, "score", m.score)
			linked++
		}
	}
	return linked, errs
}

// attach stores the blob and records the link. Links that already exist are
// left alone and reported as not-created, which keeps re-runs idempotent and
// the linked count honest.
func (l *Linker) attach(ctx context.Context, questionID uuid.UUID, img entity.ExtractedImage, altText string) (bool, error) {
	locator, err := l.blobs.Save(ctx, questionID, img.Identity, img.Data)
	if err != nil {
		return false, fmt.Errorf("save image: %w", err)
	}

	exists, err := l.store.Exists(ctx, questionID, locator)
	if err != nil {
		return false, fmt.Errorf("check link: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := l.store.Insert(ctx, entity.QuestionImage{
		QuestionID: questionID,
		Locator:    locator,
		Position:   img.Position,
		AltText:    altText,
	}); err != nil {
		return false, fmt.Errorf("insert link: %w", err)
	}
	return true, nil
}

type match struct {
	index int
	score float64
}

// topMatches filters by threshold, sorts by score descending with index order
// breaking ties, and keeps at most k.
func topMatches(scores []float64, threshold float64, k int) []match {
	var candidates []match
	for i, s := range scores {
		if s >= threshold {
			candidates = append(candidates, match{index: i, score: s})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// normalizeRef reduces an image reference to a comparable basename.
func normalizeRef(ref string) string {
	return strings.ToLower(path.Base(strings.ReplaceAll(strings.TrimSpace(ref), "\\", "/")))
}
