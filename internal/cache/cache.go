// Package cache is a content-hash-addressed store of prior oracle extractions.
// A hit on a document's text fingerprint short-circuits all chunking and
// oracle calls; entries deliberately exclude run-specific metadata (source
// label, category id, chunk ordinal) so they stay reusable across imports
// with different labeling.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/hansaki/quizforge/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS extraction_cache (
	fingerprint TEXT PRIMARY KEY,
	payload     BLOB NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store is a SQLite-backed extraction cache. Writes are idempotent: the same
// fingerprint always maps to the same payload, so last-writer-wins is
// equivalent to any other writer and concurrent imports need no coordination.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates/opens the cache database at path, creating parent directories
// as needed.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	logger.Info("cache.open", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached extraction for fingerprint, or ok=false on a miss.
// A corrupt payload is treated as a miss, not an error: the entry will be
// overwritten by the next successful extraction.
func (s *Store) Get(ctx context.Context, fingerprint string) ([]entity.CandidateQuestion, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM extraction_cache WHERE fingerprint = ?`, fingerprint,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var records []entity.CandidateQuestion
	if err := json.Unmarshal(payload, &records); err != nil {
		s.logger.Warn("cache.payload_corrupt", "fingerprint", fingerprint, "error", err)
		return nil, false, nil
	}
	s.logger.Info("cache.hit", "fingerprint", fingerprint, "records", len(records))
	return records, true, nil
}

// Put stores records under fingerprint, replacing any previous entry.
func (s *Store) Put(ctx context.Context, fingerprint string, records []entity.CandidateQuestion) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO extraction_cache (fingerprint, payload) VALUES (?, ?)
		 ON CONFLICT(fingerprint) DO UPDATE SET payload = excluded.payload`,
		fingerprint, payload,
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	s.logger.Info("cache.put", "fingerprint", fingerprint, "records", len(records))
	return nil
}
