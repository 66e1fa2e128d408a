package link

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/llm"
)

type fakeLinkStore struct {
	inserted []entity.QuestionImage
	existing map[string]bool
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{existing: make(map[string]bool)}
}

func linkKey(questionID uuid.UUID, locator string) string {
	return questionID.String() + "|" + locator
}

func (s *fakeLinkStore) Exists(_ context.Context, questionID uuid.UUID, locator string) (bool, error) {
	return s.existing[linkKey(questionID, locator)], nil
}

func (s *fakeLinkStore) Insert(_ context.Context, link entity.QuestionImage) error {
	s.inserted = append(s.inserted, link)
	s.existing[linkKey(link.QuestionID, link.Locator)] = true
	return nil
}

type fakeBlobs struct {
	saved int
}

func (b *fakeBlobs) Save(_ context.Context, ownerID uuid.UUID, filename string, _ []byte) (string, error) {
	b.saved++
	return ownerID.String() + "/" + filename, nil
}

func (b *fakeBlobs) Delete(context.Context, string) (bool, error)      { return false, nil }
func (b *fakeBlobs) List(context.Context, uuid.UUID) ([]string, error) { return nil, nil }

type fakeCaptioner struct {
	calls int
}

func (c *fakeCaptioner) Caption(_ context.Context, data []byte) (llm.CaptionResult, error) {
	c.calls++
	return llm.CaptionResult{Description: "caption of " + string(data)}, nil
}

type fakeMatcher struct {
	scores [][]float64
}

func (m *fakeMatcher) Scores(_ context.Context, queries, candidates []string) ([][]float64, error) {
	if m.scores != nil {
		return m.scores, nil
	}
	out := make([][]float64, len(queries))
	for i := range out {
		out[i] = make([]float64, len(candidates))
	}
	return out, nil
}

func testImages(n int) []entity.ExtractedImage {
	images := make([]entity.ExtractedImage, n)
	for i := range images {
		images[i] = entity.ExtractedImage{
			Identity: fmt.Sprintf("img_p1_obj%d.png", i+1),
			Data:     []byte(fmt.Sprintf("data%d", i)),
			Page:     1,
			Position: i,
		}
	}
	return images
}

func TestLinkByReference(t *testing.T) {
	store := newFakeLinkStore()
	blobs := &fakeBlobs{}
	q := entity.Question{ID: uuid.New(), Content: "q", ImageRefs: []string{"img_p1_obj2.png"}}
	l := NewLinker(store, blobs, nil, nil, Options{}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(3))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Linked)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, q.ID, store.inserted[0].QuestionID)
	assert.Equal(t, q.ID.String()+"/img_p1_obj2.png", store.inserted[0].Locator)
}

func TestLinkReferenceCaseAndPathInsensitive(t *testing.T) {
	store := newFakeLinkStore()
	q := entity.Question{ID: uuid.New(), Content: "q", ImageRefs: []string{"figures/IMG_P1_OBJ1.PNG"}}
	l := NewLinker(store, &fakeBlobs{}, nil, nil, Options{}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Linked)
}

func TestLinkMissingReferenceSkipped(t *testing.T) {
	store := newFakeLinkStore()
	q := entity.Question{ID: uuid.New(), Content: "q", ImageRefs: []string{"nonexistent.png"}}
	l := NewLinker(store, &fakeBlobs{}, nil, nil, Options{}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(2))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Linked)
	assert.Empty(t, res.Errors)
}

func TestLinkSemanticFallbackThresholdAndTopK(t *testing.T) {
	store := newFakeLinkStore()
	captioner := &fakeCaptioner{}
	// One unlinked question, three images: scores 0.9, 0.2, 0.5. Threshold
	// 0.3 drops the middle one; topK 2 keeps both survivors.
	matcher := &fakeMatcher{scores: [][]float64{{0.9, 0.2, 0.5}}}
	q := entity.Question{ID: uuid.New(), Content: "which figure shows the circuit"}
	l := NewLinker(store, &fakeBlobs{}, captioner, matcher, Options{Threshold: 0.3, TopK: 2}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(3))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Linked)
	assert.Equal(t, 3, captioner.calls)

	locators := []string{store.inserted[0].Locator, store.inserted[1].Locator}
	assert.Contains(t, locators, q.ID.String()+"/img_p1_obj1.png")
	assert.Contains(t, locators, q.ID.String()+"/img_p1_obj3.png")
}

func TestLinkSemanticAllBelowThreshold(t *testing.T) {
	store := newFakeLinkStore()
	matcher := &fakeMatcher{scores: [][]float64{{0.1, 0.2}}}
	q := entity.Question{ID: uuid.New(), Content: "q"}
	l := NewLinker(store, &fakeBlobs{}, &fakeCaptioner{}, matcher, Options{Threshold: 0.3}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(2))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Linked)
}

func TestLinkSemanticSkippedWhenReferencesLinked(t *testing.T) {
	store := newFakeLinkStore()
	captioner := &fakeCaptioner{}
	q := entity.Question{ID: uuid.New(), Content: "q", ImageRefs: []string{"img_p1_obj1.png"}}
	l := NewLinker(store, &fakeBlobs{}, captioner, &fakeMatcher{}, Options{}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Linked)
	assert.Equal(t, 0, captioner.calls)
}

func TestLinkSemanticExcludesReferenceLinkedImages(t *testing.T) {
	store := newFakeLinkStore()
	captioner := &fakeCaptioner{}
	// q1 claims the first image by filename; q2 has no reference. Only the
	// second image may compete in the similarity phase, so a single caption
	// call and a single-column score row are expected.
	matcher := &fakeMatcher{scores: [][]float64{{0.9}}}
	q1 := entity.Question{ID: uuid.New(), Content: "q1", ImageRefs: []string{"img_p1_obj1.png"}}
	q2 := entity.Question{ID: uuid.New(), Content: "q2"}
	l := NewLinker(store, &fakeBlobs{}, captioner, matcher, Options{Threshold: 0.3}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q1, q2}, testImages(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Linked)
	assert.Equal(t, 1, captioner.calls)

	require.Len(t, store.inserted, 2)
	assert.Equal(t, q1.ID.String()+"/img_p1_obj1.png", store.inserted[0].Locator)
	assert.Equal(t, q2.ID.String()+"/img_p1_obj2.png", store.inserted[1].Locator)
}

func TestLinkExistingLinkNotDuplicated(t *testing.T) {
	store := newFakeLinkStore()
	q := entity.Question{ID: uuid.New(), Content: "q", ImageRefs: []string{"img_p1_obj1.png"}}
	store.existing[linkKey(q.ID, q.ID.String()+"/img_p1_obj1.png")] = true
	l := NewLinker(store, &fakeBlobs{}, nil, nil, Options{}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(1))
	require.NoError(t, err)
	assert.Empty(t, store.inserted)
	assert.Equal(t, 0, res.Linked)
}

func TestLinkNoCaptionerSkipsSemanticPhase(t *testing.T) {
	store := newFakeLinkStore()
	q := entity.Question{ID: uuid.New(), Content: "q"}
	l := NewLinker(store, &fakeBlobs{}, nil, nil, Options{}, nil)

	res, err := l.Link(context.Background(), []entity.Question{q}, testImages(2))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Linked)
}
