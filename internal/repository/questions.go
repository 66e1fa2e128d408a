package repository

import (
	"context"
	"log/slog"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/gen/ent"
	"github.com/hansaki/quizforge/gen/ent/question"
	"github.com/hansaki/quizforge/internal/entity"
)

type QuestionRepository interface {
	// FindByFingerprint returns the question whose content hash matches, or
	// (nil, nil) when none exists.
	FindByFingerprint(ctx context.Context, hash []byte) (*entity.Question, error)
	Insert(ctx context.Context, q *entity.Question) (*entity.Question, error)
	ListBySource(ctx context.Context, sourceLabel string) ([]*entity.Question, error)
	ListAll(ctx context.Context) ([]*entity.Question, error)
}

type questionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQuestionRepository(client *ent.Client, logger *slog.Logger) QuestionRepository {
	return &questionRepository{
		client: client,
		logger: logger,
	}
}

func (r *questionRepository) FindByFingerprint(ctx context.Context, hash []byte) (*entity.Question, error) {
	rec, err := r.client.Question.Query().
		Where(question.ContentHash(hash)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to query question by hash", "error", err)
		return nil, err
	}
	return toQuestion(rec), nil
}

func (r *questionRepository) Insert(ctx context.Context, q *entity.Question) (*entity.Question, error) {
	builder := r.client.Question.Create().
		SetContent(q.Content).
		SetChoices(q.Choices).
		SetCorrectIndex(q.CorrectIndex).
		SetExplanation(q.Explanation).
		SetDifficulty(q.Difficulty).
		SetContentKind(string(q.ContentKind)).
		SetContentHash(q.ContentHash).
		SetSourceLabel(q.SourceLabel).
		SetNillableCategoryID(q.CategoryID)
	if len(q.ImageRefs) > 0 {
		builder = builder.SetImageRefs(q.ImageRefs)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert question", "error", err)
		return nil, err
	}
	return toQuestion(rec), nil
}

func (r *questionRepository) ListBySource(ctx context.Context, sourceLabel string) ([]*entity.Question, error) {
	recs, err := r.client.Question.Query().
		Where(question.SourceLabel(sourceLabel)).
		Order(question.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list questions", "source_label", sourceLabel, "error", err)
		return nil, err
	}
	return toQuestions(recs), nil
}

func (r *questionRepository) ListAll(ctx context.Context) ([]*entity.Question, error) {
	recs, err := r.client.Question.Query().
		Order(question.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list questions", "error", err)
		return nil, err
	}
	return toQuestions(recs), nil
}

func toQuestion(rec *ent.Question) *entity.Question {
	kind, _ := constants.CanonicalizeKind(rec.ContentKind)
	return &entity.Question{
		ID:           rec.ID,
		CategoryID:   rec.CategoryID,
		Content:      rec.Content,
		Choices:      rec.Choices,
		CorrectIndex: rec.CorrectIndex,
		Explanation:  rec.Explanation,
		Difficulty:   rec.Difficulty,
		ContentKind:  kind,
		ContentHash:  rec.ContentHash,
		SourceLabel:  rec.SourceLabel,
		ImageRefs:    rec.ImageRefs,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func toQuestions(recs []*ent.Question) []*entity.Question {
	result := make([]*entity.Question, len(recs))
	for i, rec := range recs {
		result[i] = toQuestion(rec)
	}
	return result
}
