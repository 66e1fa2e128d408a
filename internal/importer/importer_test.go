package importer

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/extract"
	"github.com/hansaki/quizforge/internal/link"
	"github.com/hansaki/quizforge/internal/pdf"
)

type fakeLayout struct {
	res pdf.Extraction
	err error
}

func (f *fakeLayout) Extract(context.Context, []byte, bool) (pdf.Extraction, error) {
	return f.res, f.err
}

type fakeExtractor struct {
	res extract.Result
	err error
}

func (f *fakeExtractor) Extract(context.Context, string, string) (extract.Result, error) {
	return f.res, f.err
}

type fakeLinker struct {
	res   link.Result
	calls int
	seen  []entity.Question
}

func (f *fakeLinker) Link(_ context.Context, qs []entity.Question, _ []entity.ExtractedImage) (link.Result, error) {
	f.calls++
	f.seen = qs
	return f.res, nil
}

// memQuestions is an in-memory QuestionRepository keyed by content hash.
type memQuestions struct {
	byHash map[string]*entity.Question
	fail   bool
}

func newMemQuestions() *memQuestions {
	return &memQuestions{byHash: make(map[string]*entity.Question)}
}

func (m *memQuestions) FindByFingerprint(_ context.Context, hash []byte) (*entity.Question, error) {
	if q, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		cp := *q
		return &cp, nil
	}
	return nil, nil
}

func (m *memQuestions) Insert(_ context.Context, q *entity.Question) (*entity.Question, error) {
	if m.fail {
		return nil, errors.New("insert refused")
	}
	cp := *q
	cp.ID = uuid.New()
	m.byHash[hex.EncodeToString(q.ContentHash)] = &cp
	out := cp
	return &out, nil
}

func (m *memQuestions) ListBySource(context.Context, string) ([]*entity.Question, error) {
	return nil, nil
}
func (m *memQuestions) ListAll(context.Context) ([]*entity.Question, error) { return nil, nil }

type memCategories struct {
	nextID int
	byName map[string]int
}

func newMemCategories() *memCategories {
	return &memCategories{nextID: 1, byName: make(map[string]int)}
}

func (m *memCategories) GetOrCreate(_ context.Context, name string) (*entity.Category, error) {
	if id, ok := m.byName[name]; ok {
		return &entity.Category{ID: id, Name: name}, nil
	}
	id := m.nextID
	m.nextID++
	m.byName[name] = id
	return &entity.Category{ID: id, Name: name}, nil
}

func (m *memCategories) List(context.Context) ([]*entity.Category, error) { return nil, nil }

type memJobs struct {
	started  []string
	statuses []constants.JobStatus
	results  []entity.ImportResult
}

func (m *memJobs) Start(_ context.Context, sourceLabel string) (uuid.UUID, error) {
	m.started = append(m.started, sourceLabel)
	return uuid.New(), nil
}

func (m *memJobs) Finish(_ context.Context, _ uuid.UUID, status constants.JobStatus, result entity.ImportResult, _ string) error {
	m.statuses = append(m.statuses, status)
	m.results = append(m.results, result)
	return nil
}

func candidates() []entity.CandidateQuestion {
	return []entity.CandidateQuestion{
		{Content: "first question", Choices: []string{"a", "b"}, CorrectIndex: 0, Difficulty: 2},
		{Content: "second question", Choices: []string{"c", "d"}, CorrectIndex: 1, Difficulty: 3,
			ImageRefs: []string{"img_p1_obj1.png"}},
	}
}

func newTestImporter(qs *memQuestions, jobs *memJobs, linker *fakeLinker) *Importer {
	layout := &fakeLayout{res: pdf.Extraction{
		Markdown: "問1 ...",
		Pages:    4,
		Images:   []entity.ExtractedImage{{Identity: "img_p1_obj1.png"}},
	}}
	extractor := &fakeExtractor{res: extract.Result{Questions: candidates(), Chunks: 1}}
	return NewImporter(layout, extractor, linker, qs, newMemCategories(), jobs, nil)
}

func TestImportPersistsAndCounts(t *testing.T) {
	qs := newMemQuestions()
	jobs := &memJobs{}
	linker := &fakeLinker{res: link.Result{Linked: 1}}
	imp := newTestImporter(qs, jobs, linker)

	res, err := imp.ImportDocument(context.Background(), []byte("doc"), Options{SourceLabel: "exam-2025"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.QuestionsExtracted)
	assert.Equal(t, 2, res.QuestionsPersisted)
	assert.Equal(t, 0, res.SkippedDuplicate)
	assert.Equal(t, 1, res.ImagesLinked)
	assert.Equal(t, 4, res.Pages)
	require.Equal(t, []constants.JobStatus{constants.JobStatusOK}, jobs.statuses)
	assert.Equal(t, []string{"exam-2025"}, jobs.started)
}

func TestImportReimportIsIdempotent(t *testing.T) {
	qs := newMemQuestions()
	jobs := &memJobs{}
	linker := &fakeLinker{}
	imp := newTestImporter(qs, jobs, linker)

	_, err := imp.ImportDocument(context.Background(), []byte("doc"), Options{SourceLabel: "exam"})
	require.NoError(t, err)

	res, err := imp.ImportDocument(context.Background(), []byte("doc"), Options{SourceLabel: "exam"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.QuestionsPersisted)
	assert.Equal(t, 2, res.SkippedDuplicate)
	assert.Equal(t, 0, res.Failed)
	// Both runs report success, and the duplicates are still handed to the
	// linker so image links stay intact.
	assert.Equal(t, []constants.JobStatus{constants.JobStatusOK, constants.JobStatusOK}, jobs.statuses)
	assert.Len(t, linker.seen, 2)
}

func TestImportInsertFailureIsIsolated(t *testing.T) {
	qs := newMemQuestions()
	qs.fail = true
	jobs := &memJobs{}
	imp := newTestImporter(qs, jobs, &fakeLinker{})

	res, err := imp.ImportDocument(context.Background(), []byte("doc"), Options{SourceLabel: "exam"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, 0, res.QuestionsPersisted)
	assert.Len(t, res.Errors, 2)
	require.Equal(t, []constants.JobStatus{constants.JobStatusPartial}, jobs.statuses)
}

func TestImportLayoutFailureIsFatal(t *testing.T) {
	jobs := &memJobs{}
	imp := NewImporter(
		&fakeLayout{err: errors.New("unreadable document")},
		&fakeExtractor{}, &fakeLinker{},
		newMemQuestions(), newMemCategories(), jobs, nil)

	_, err := imp.ImportDocument(context.Background(), []byte("doc"), Options{SourceLabel: "exam"})
	require.Error(t, err)
	require.Equal(t, []constants.JobStatus{constants.JobStatusFailed}, jobs.statuses)
}

func TestImportCategoryHintResolved(t *testing.T) {
	qs := newMemQuestions()
	imp := newTestImporter(qs, &memJobs{}, &fakeLinker{})

	_, err := imp.ImportDocument(context.Background(), []byte("doc"),
		Options{SourceLabel: "exam", CategoryHint: "networking"})
	require.NoError(t, err)

	for _, q := range qs.byHash {
		require.NotNil(t, q.CategoryID)
		assert.Equal(t, 1, *q.CategoryID)
	}
}

func TestImportChunkErrorsSurfaceAsPartial(t *testing.T) {
	jobs := &memJobs{}
	extractor := &fakeExtractor{res: extract.Result{
		Questions: candidates()[:1],
		Chunks:    3,
		Errors:    []entity.ItemError{{Stage: "extract", Item: "chunk 2", Message: "oracle timeout"}},
	}}
	imp := NewImporter(
		&fakeLayout{res: pdf.Extraction{Markdown: "text", Pages: 1}},
		extractor, &fakeLinker{},
		newMemQuestions(), newMemCategories(), jobs, nil)

	res, err := imp.ImportDocument(context.Background(), []byte("doc"), Options{SourceLabel: "exam"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.QuestionsPersisted)
	require.Len(t, res.Errors, 1)
	require.Equal(t, []constants.JobStatus{constants.JobStatusPartial}, jobs.statuses)
}
