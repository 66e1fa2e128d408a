package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/gen/ent"
	"github.com/hansaki/quizforge/gen/ent/questionimage"
	"github.com/hansaki/quizforge/internal/entity"
)

type ImageLinkRepository interface {
	Exists(ctx context.Context, questionID uuid.UUID, locator string) (bool, error)
	Insert(ctx context.Context, link entity.QuestionImage) error
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*entity.QuestionImage, error)
}

type imageLinkRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewImageLinkRepository(client *ent.Client, logger *slog.Logger) ImageLinkRepository {
	return &imageLinkRepository{
		client: client,
		logger: logger,
	}
}

func (r *imageLinkRepository) Exists(ctx context.Context, questionID uuid.UUID, locator string) (bool, error) {
	exists, err := r.client.QuestionImage.Query().
		Where(
			questionimage.QuestionID(questionID),
			questionimage.Locator(locator),
		).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check image link", "question_id", questionID, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *imageLinkRepository) Insert(ctx context.Context, link entity.QuestionImage) error {
	_, err := r.client.QuestionImage.Create().
		SetQuestionID(link.QuestionID).
		SetLocator(link.Locator).
		SetPosition(link.Position).
		SetAltText(link.AltText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert image link",
			"question_id", link.QuestionID, "locator", link.Locator, "error", err)
		return err
	}
	return nil
}

func (r *imageLinkRepository) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*entity.QuestionImage, error) {
	recs, err := r.client.QuestionImage.Query().
		Where(questionimage.QuestionID(questionID)).
		Order(questionimage.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list image links", "question_id", questionID, "error", err)
		return nil, err
	}

	result := make([]*entity.QuestionImage, len(recs))
	for i, rec := range recs {
		result[i] = &entity.QuestionImage{
			ID:         rec.ID,
			QuestionID: rec.QuestionID,
			Locator:    rec.Locator,
			Position:   rec.Position,
			AltText:    rec.AltText,
		}
	}
	return result, nil
}
