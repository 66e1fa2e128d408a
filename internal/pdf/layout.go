package pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hansaki/quizforge/internal/entity"
)

// LayoutState tracks where the extraction attempt ended up. The fallback
// order is a first-class, inspectable sequence rather than nested recovery.
type LayoutState string

const (
	StateNotAttempted      LayoutState = "not_attempted"
	StateLayoutSucceeded   LayoutState = "layout_succeeded"
	StateLayoutUnavailable LayoutState = "layout_unavailable"
	StateLayoutFailed      LayoutState = "layout_failed"
	StateLayoutTimedOut    LayoutState = "layout_timed_out"
	StateFallbackSucceeded LayoutState = "fallback_succeeded"
	StateFallbackFailed    LayoutState = "fallback_failed"
)

var (
	ErrLayoutUnavailable = errors.New("layout analysis unavailable and fallback disabled")
	ErrLayoutTimeout     = errors.New("layout analysis timed out")
)

// Extraction is the terminal result of a layout/fallback run.
type Extraction struct {
	Markdown     string
	Images       []entity.ExtractedImage
	Pages        int
	State        LayoutState
	UsedFallback bool
}

// Strategy is one way of turning document bytes into text + images.
type Strategy interface {
	Name() string
	Available() bool
	Extract(ctx context.Context, doc []byte) (Extraction, error)
}

// RawImagesFunc recovers embedded images outside of any layout pass; used to
// merge images back in when layout analysis succeeded but found none.
type RawImagesFunc func(ctx context.Context, doc []byte) ([]entity.ExtractedImage, error)

// LayoutExtractor drives the layout strategy with a timeout and degrades to
// the plain strategy on unavailability, failure, or timeout.
type LayoutExtractor struct {
	primary   Strategy
	fallback  Strategy
	rawImages RawImagesFunc
	timeout   time.Duration
	logger    *slog.Logger
}

func NewLayoutExtractor(primary, fallback Strategy, rawImages RawImagesFunc, timeout time.Duration, logger *slog.Logger) *LayoutExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &LayoutExtractor{
		primary:   primary,
		fallback:  fallback,
		rawImages: rawImages,
		timeout:   timeout,
		logger:    logger,
	}
}

// Extract runs the state machine. With allowFallback false, a failed or
// unavailable layout pass is a terminal error reported upward; otherwise the
// plain strategy takes over.
func (l *LayoutExtractor) Extract(ctx context.Context, doc []byte, allowFallback bool) (Extraction, error) {
	state := StateNotAttempted

	if !l.primary.Available() {
		state = StateLayoutUnavailable
		l.logger.Warn("layout.unavailable", "strategy", l.primary.Name())
		if !allowFallback {
			return Extraction{State: state}, ErrLayoutUnavailable
		}
		return l.runFallback(ctx, doc, state)
	}

	res, err := l.runWithTimeout(ctx, doc)
	switch {
	case err == nil:
		res.State = StateLayoutSucceeded
		l.mergeRawImagesIfEmpty(ctx, doc, &res)
		l.logger.Info("layout.ok",
			"strategy", l.primary.Name(), "pages", res.Pages, "images", len(res.Images))
		return res, nil
	case errors.Is(err, context.DeadlineExceeded):
		state = StateLayoutTimedOut
		l.logger.Warn("layout.timeout", "strategy", l.primary.Name(), "timeout", l.timeout)
	case ctx.Err() != nil:
		// Caller cancelled: not a layout failure, do not fall back.
		return Extraction{State: state}, ctx.Err()
	default:
		state = StateLayoutFailed
		l.logger.Warn("layout.failed", "strategy", l.primary.Name(), "error", err)
	}

	if !allowFallback {
		if state == StateLayoutTimedOut {
			return Extraction{State: state}, ErrLayoutTimeout
		}
		return Extraction{State: state}, err
	}
	return l.runFallback(ctx, doc, state)
}

// runWithTimeout abandons the layout pass after the configured timeout. The
// underlying work is cancelled through the context, not merely ignored; the
// result channel is buffered so the abandoned goroutine can never block on
// its send.
func (l *LayoutExtractor) runWithTimeout(ctx context.Context, doc []byte) (Extraction, error) {
	lctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	type outcome struct {
		res Extraction
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := l.primary.Extract(lctx, doc)
		ch <- outcome{res, err}
	}()

	select {
	case o := <-ch:
		return o.res, o.err
	case <-lctx.Done():
		return Extraction{}, lctx.Err()
	}
}

// mergeRawImagesIfEmpty recovers images the layout pass dropped. Layout
// analysis sometimes loses images the raw walk can still find; the merge
// happens only when the layout pass's own image list is empty, so it can
// never duplicate an already-extracted image.
func (l *LayoutExtractor) mergeRawImagesIfEmpty(ctx context.Context, doc []byte, res *Extraction) {
	if len(res.Images) > 0 || l.rawImages == nil {
		return
	}
	images, err := l.rawImages(ctx, doc)
	if err != nil {
		l.logger.Warn("layout.raw_image_merge_failed", "error", err)
		return
	}
	if len(images) > 0 {
		l.logger.Info("layout.raw_image_merge", "recovered", len(images))
		res.Images = images
	}
}

func (l *LayoutExtractor) runFallback(ctx context.Context, doc []byte, from LayoutState) (Extraction, error) {
	res, err := l.fallback.Extract(ctx, doc)
	res.UsedFallback = true
	if err != nil {
		res.State = StateFallbackFailed
		l.logger.Error("layout.fallback_failed",
			"strategy", l.fallback.Name(), "after", string(from), "error", err)
		return res, fmt.Errorf("fallback after %s: %w", from, err)
	}
	res.State = StateFallbackSucceeded
	l.logger.Info("layout.fallback_ok",
		"strategy", l.fallback.Name(), "after", string(from),
		"pages", res.Pages, "images", len(res.Images))
	return res, nil
}
