package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/internal/chunk"
	"github.com/hansaki/quizforge/internal/common"
	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/llm"
)

// Cache is the extraction cache surface the extractor needs. A nil cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, fingerprint string) ([]entity.CandidateQuestion, bool, error)
	Put(ctx context.Context, fingerprint string, records []entity.CandidateQuestion) error
}

// Config bounds the oracle fan-out.
type Config struct {
	MaxChunkLen   int
	Concurrency   int
	OracleTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxChunkLen <= 0 {
		c.MaxChunkLen = constants.DefaultChunkSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = constants.DefaultOracleConcurrency
	}
	if c.OracleTimeout <= 0 {
		c.OracleTimeout = constants.DefaultOracleTimeout
	}
	return c
}

// Result is the outcome of extracting one document's text.
type Result struct {
	Questions []entity.CandidateQuestion
	Chunks    int
	FromCache bool
	Errors    []entity.ItemError
}

// Extractor runs the chunk/oracle/parse pipeline.
type Extractor struct {
	oracle llm.Oracle
	cache  Cache
	cfg    Config
	logger *slog.Logger
}

func NewExtractor(oracle llm.Oracle, cache Cache, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{oracle: oracle, cache: cache, cfg: cfg.withDefaults(), logger: logger}
}

// Extract chunks text and queries the oracle per chunk, concurrently but
// bounded. Individual chunk failures (timeouts, unparseable responses) are
// recorded and skipped; the call fails outright only when the text is empty
// or every single chunk failed with nothing extracted.
func (e *Extractor) Extract(ctx context.Context, text, categoryHint string) (Result, error) {
	cfg := e.cfg
	reqID := uuid.NewString()
	start := time.Now()

	fingerprint := FingerprintHex(text)
	if e.cache != nil {
		if cached, ok, err := e.cache.Get(ctx, fingerprint); err != nil {
			e.logger.Warn("extract.cache_get_failed", "req_id", reqID, "error", err)
		} else if ok {
			return Result{Questions: cached, FromCache: true}, nil
		}
	}

	chunks := chunk.Split(text, cfg.MaxChunkLen)
	if len(chunks) == 0 {
		return Result{}, common.ErrNoText
	}
	e.logger.Info("extract.start",
		"req_id", reqID, "chunks", len(chunks), "max_chunk_len", cfg.MaxChunkLen)

	var (
		mu       sync.Mutex
		perChunk = make([][]entity.CandidateQuestion, len(chunks))
		itemErrs []entity.ItemError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, c := range chunks {
		g.Go(func() error {
			records, err := e.extractChunk(gctx, c, categoryHint)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				itemErrs = append(itemErrs, entity.ItemError{
					Stage:   "extract",
					Item:    fmt.Sprintf("chunk %d", c.Ordinal),
					Message: err.Error(),
				})
				e.logger.Warn("extract.chunk_failed",
					"req_id", reqID, "chunk", c.Ordinal, "error", err)
				return nil
			}
			perChunk[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Chunks: len(chunks), Errors: itemErrs}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{Chunks: len(chunks), Errors: itemErrs}, err
	}

	questions := dedupeByContent(perChunk)
	if len(questions) == 0 && len(itemErrs) == len(chunks) {
		return Result{Chunks: len(chunks), Errors: itemErrs},
			fmt.Errorf("%w: all %d chunks failed", common.ErrOracleUnavailable, len(chunks))
	}

	// Cache only complete extractions. A partial run would otherwise pin its
	// gaps into every future import of the same document.
	if e.cache != nil && len(itemErrs) == 0 {
		if err := e.cache.Put(ctx, fingerprint, questions); err != nil {
			e.logger.Warn("extract.cache_put_failed", "req_id", reqID, "error", err)
		}
	}

	e.logger.Info("extract.done",
		"req_id", reqID, "questions", len(questions),
		"chunk_errors", len(itemErrs), "elapsed_ms", time.Since(start).Milliseconds())
	return Result{Questions: questions, Chunks: len(chunks), Errors: itemErrs}, nil
}

func (e *Extractor) extractChunk(ctx context.Context, c chunk.Chunk, categoryHint string) ([]entity.CandidateQuestion, error) {
	cctx, cancel := context.WithTimeout(ctx, e.cfg.OracleTimeout)
	defer cancel()

	response, err := e.oracle.Complete(cctx, llm.BuildExtractionPrompt(c.Text, categoryHint))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("oracle timeout after %s: %w", e.cfg.OracleTimeout, err)
		}
		return nil, fmt.Errorf("oracle: %w", err)
	}
	return llm.ParseQuestions(response, e.logger)
}

// dedupeByContent drops repeated questions across chunk boundaries, keeping
// first occurrence in chunk order.
func dedupeByContent(perChunk [][]entity.CandidateQuestion) []entity.CandidateQuestion {
	seen := make(map[string]struct{})
	var out []entity.CandidateQuestion
	for _, records := range perChunk {
		for _, q := range records {
			key := FingerprintHex(q.Content)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, q)
		}
	}
	return out
}
