package extract

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansaki/quizforge/internal/common"
	"github.com/hansaki/quizforge/internal/entity"
)

// fakeOracle answers per chunk content: markers in failOn time out, everything
// else returns one valid question echoing the chunk's letter.
type fakeOracle struct {
	mu     sync.Mutex
	failOn map[string]bool
	calls  int
}

func (o *fakeOracle) Complete(ctx context.Context, prompt string) (string, error) {
	o.mu.Lock()
	o.calls++
	o.mu.Unlock()

	for marker, fail := range o.failOn {
		if strings.Contains(prompt, marker) && fail {
			return "", context.DeadlineExceeded
		}
	}

	letter := "x"
	for _, l := range []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"} {
		if strings.Contains(prompt, l) {
			letter = l[:1]
			break
		}
	}
	return fmt.Sprintf(`[{
		"content": "question from %s",
		"choices": ["1", "2"],
		"correct_index": 0,
		"explanation": "e",
		"difficulty": 2
	}]`, letter), nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]entity.CandidateQuestion
	puts    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]entity.CandidateQuestion)}
}

func (c *fakeCache) Get(_ context.Context, fp string) ([]entity.CandidateQuestion, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, ok := c.entries[fp]
	return records, ok, nil
}

func (c *fakeCache) Put(_ context.Context, fp string, records []entity.CandidateQuestion) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fp] = records
	c.puts++
	return nil
}

// fiveParagraphText yields exactly five 80-byte paragraphs, one chunk each at
// MaxChunkLen 100.
func fiveParagraphText() string {
	paras := make([]string, 5)
	for i, l := range []string{"a", "b", "c", "d", "e"} {
		paras[i] = strings.Repeat(l, 80)
	}
	return strings.Join(paras, "\n\n")
}

func testConfig() Config {
	return Config{MaxChunkLen: 100, Concurrency: 2, OracleTimeout: 100 * time.Millisecond}
}

func TestExtractPartialChunkFailures(t *testing.T) {
	oracle := &fakeOracle{failOn: map[string]bool{"cccc": true, "eeee": true}}
	cache := newFakeCache()
	e := NewExtractor(oracle, cache, testConfig(), nil)

	res, err := e.Extract(context.Background(), fiveParagraphText(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Chunks)
	assert.Len(t, res.Questions, 3)
	assert.Len(t, res.Errors, 2)
	for _, ie := range res.Errors {
		assert.Equal(t, "extract", ie.Stage)
		assert.Contains(t, ie.Message, "timeout")
	}
	// Partial runs must not poison the cache.
	assert.Equal(t, 0, cache.puts)
}

func TestExtractAllChunksFailedIsFatal(t *testing.T) {
	oracle := &fakeOracle{failOn: map[string]bool{
		"aaaa": true, "bbbb": true, "cccc": true, "dddd": true, "eeee": true,
	}}
	e := NewExtractor(oracle, newFakeCache(), testConfig(), nil)

	_, err := e.Extract(context.Background(), fiveParagraphText(), "")
	assert.ErrorIs(t, err, common.ErrOracleUnavailable)
}

func TestExtractCompleteRunPopulatesCache(t *testing.T) {
	oracle := &fakeOracle{}
	cache := newFakeCache()
	e := NewExtractor(oracle, cache, testConfig(), nil)
	text := fiveParagraphText()

	res, err := e.Extract(context.Background(), text, "")
	require.NoError(t, err)
	assert.Len(t, res.Questions, 5)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 1, cache.puts)

	cached, ok, err := cache.Get(context.Background(), FingerprintHex(text))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, cached, 5)
}

func TestExtractCacheHitShortCircuitsOracle(t *testing.T) {
	oracle := &fakeOracle{}
	cache := newFakeCache()
	text := fiveParagraphText()
	require.NoError(t, cache.Put(context.Background(), FingerprintHex(text),
		[]entity.CandidateQuestion{{Content: "cached"}}))
	cache.puts = 0

	e := NewExtractor(oracle, cache, testConfig(), nil)
	res, err := e.Extract(context.Background(), text, "")
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "cached", res.Questions[0].Content)
	assert.Equal(t, 0, oracle.calls)
}

func TestExtractDeduplicatesAcrossChunks(t *testing.T) {
	// Every chunk yields the same question content.
	oracle := &sameAnswerOracle{}
	e := NewExtractor(oracle, nil, testConfig(), nil)

	res, err := e.Extract(context.Background(), fiveParagraphText(), "")
	require.NoError(t, err)
	assert.Len(t, res.Questions, 1)
}

func TestExtractEmptyTextFails(t *testing.T) {
	e := NewExtractor(&fakeOracle{}, nil, testConfig(), nil)
	_, err := e.Extract(context.Background(), "   ", "")
	assert.ErrorIs(t, err, common.ErrNoText)
}

type sameAnswerOracle struct{}

func (o *sameAnswerOracle) Complete(context.Context, string) (string, error) {
	return `[{
		"content": "identical question",
		"choices": ["1", "2"],
		"correct_index": 0,
		"explanation": "e",
		"difficulty": 2
	}]`, nil
}

func TestFingerprintNormalizesWhitespaceAndNFC(t *testing.T) {
	assert.Equal(t, Fingerprint("  abc  "), Fingerprint("abc"))
	// NFD vs NFC composition of "é" hash the same.
	assert.Equal(t, Fingerprint("caf\u00e9"), Fingerprint("cafe\u0301"))
	assert.NotEqual(t, Fingerprint("abc"), Fingerprint("abd"))
	assert.Len(t, Fingerprint("abc"), 32)
}
