package pdf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansaki/quizforge/internal/entity"
)

type fakeStrategy struct {
	name      string
	available bool
	res       Extraction
	err       error
	delay     time.Duration
	calls     int
}

func (s *fakeStrategy) Name() string    { return s.name }
func (s *fakeStrategy) Available() bool { return s.available }
func (s *fakeStrategy) Extract(ctx context.Context, _ []byte) (Extraction, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Extraction{}, ctx.Err()
		}
	}
	return s.res, s.err
}

func TestLayoutSuccess(t *testing.T) {
	primary := &fakeStrategy{
		name: "primary", available: true,
		res: Extraction{Markdown: "text", Pages: 3, Images: []entity.ExtractedImage{{Identity: "img"}}},
	}
	fallback := &fakeStrategy{name: "fallback", available: true}
	l := NewLayoutExtractor(primary, fallback, nil, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.NoError(t, err)
	assert.Equal(t, StateLayoutSucceeded, res.State)
	assert.False(t, res.UsedFallback)
	assert.Equal(t, 0, fallback.calls)
}

func TestLayoutUnavailableFallsBack(t *testing.T) {
	primary := &fakeStrategy{name: "primary", available: false}
	fallback := &fakeStrategy{
		name: "fallback", available: true,
		res: Extraction{Markdown: "plain text", Pages: 2},
	}
	l := NewLayoutExtractor(primary, fallback, nil, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.NoError(t, err)
	assert.Equal(t, StateFallbackSucceeded, res.State)
	assert.True(t, res.UsedFallback)
	assert.Equal(t, "plain text", res.Markdown)
	assert.Equal(t, 0, primary.calls)
}

func TestLayoutUnavailableNoFallbackErrors(t *testing.T) {
	primary := &fakeStrategy{name: "primary", available: false}
	fallback := &fakeStrategy{name: "fallback", available: true}
	l := NewLayoutExtractor(primary, fallback, nil, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), false)
	assert.ErrorIs(t, err, ErrLayoutUnavailable)
	assert.Equal(t, StateLayoutUnavailable, res.State)
	assert.Equal(t, 0, fallback.calls)
}

func TestLayoutFailureFallsBack(t *testing.T) {
	primary := &fakeStrategy{name: "primary", available: true, err: errors.New("mangled xref")}
	fallback := &fakeStrategy{
		name: "fallback", available: true,
		res: Extraction{Markdown: "recovered", Pages: 1},
	}
	l := NewLayoutExtractor(primary, fallback, nil, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.NoError(t, err)
	assert.Equal(t, StateFallbackSucceeded, res.State)
	assert.True(t, res.UsedFallback)
}

func TestLayoutTimeoutFallsBack(t *testing.T) {
	primary := &fakeStrategy{
		name: "primary", available: true,
		delay: 500 * time.Millisecond,
		res:   Extraction{Markdown: "never delivered"},
	}
	fallback := &fakeStrategy{
		name: "fallback", available: true,
		res: Extraction{Markdown: "fallback text"},
	}
	l := NewLayoutExtractor(primary, fallback, nil, 20*time.Millisecond, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.NoError(t, err)
	assert.Equal(t, StateFallbackSucceeded, res.State)
	assert.Equal(t, "fallback text", res.Markdown)
}

func TestLayoutBothPathsFail(t *testing.T) {
	primary := &fakeStrategy{name: "primary", available: true, err: errors.New("primary broke")}
	fallback := &fakeStrategy{name: "fallback", available: true, err: errors.New("fallback broke")}
	l := NewLayoutExtractor(primary, fallback, nil, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.Error(t, err)
	assert.Equal(t, StateFallbackFailed, res.State)
	assert.True(t, res.UsedFallback)
}

func TestLayoutZeroImageMergeRunsRawWalk(t *testing.T) {
	primary := &fakeStrategy{
		name: "primary", available: true,
		res: Extraction{Markdown: "text", Pages: 1},
	}
	rawCalled := 0
	raw := func(ctx context.Context, doc []byte) ([]entity.ExtractedImage, error) {
		rawCalled++
		return []entity.ExtractedImage{{Identity: "img_p1_obj4.png"}}, nil
	}
	l := NewLayoutExtractor(primary, &fakeStrategy{name: "fallback", available: true}, raw, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.NoError(t, err)
	assert.Equal(t, 1, rawCalled)
	require.Len(t, res.Images, 1)
	assert.Equal(t, "img_p1_obj4.png", res.Images[0].Identity)
}

func TestLayoutMergeSkippedWhenImagesPresent(t *testing.T) {
	primary := &fakeStrategy{
		name: "primary", available: true,
		res: Extraction{Markdown: "text", Images: []entity.ExtractedImage{{Identity: "have"}}},
	}
	rawCalled := 0
	raw := func(ctx context.Context, doc []byte) ([]entity.ExtractedImage, error) {
		rawCalled++
		return nil, nil
	}
	l := NewLayoutExtractor(primary, &fakeStrategy{name: "fallback", available: true}, raw, time.Second, nil)

	res, err := l.Extract(context.Background(), []byte("doc"), true)
	require.NoError(t, err)
	assert.Equal(t, 0, rawCalled)
	assert.Len(t, res.Images, 1)
}
