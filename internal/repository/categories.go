package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hansaki/quizforge/gen/ent"
	"github.com/hansaki/quizforge/gen/ent/category"
	"github.com/hansaki/quizforge/internal/entity"
)

type CategoryRepository interface {
	// GetOrCreate resolves a category by name, creating it on first use.
	GetOrCreate(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) GetOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)

	rec, err := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if err == nil {
		return toCategory(rec), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query category", "name", name, "error", err)
		return nil, err
	}

	rec, err = r.client.Category.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// Lost a create race: the unique name constraint fired, re-read.
		if ent.IsConstraintError(err) {
			rec, err = r.client.Category.Query().
				Where(category.Name(name)).
				Only(ctx)
			if err == nil {
				return toCategory(rec), nil
			}
		}
		r.logger.Error("failed to create category", "name", name, "error", err)
		return nil, err
	}

	r.logger.Info("category created", "id", rec.ID, "name", name)
	return toCategory(rec), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	recs, err := r.client.Category.Query().
		Order(category.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list categories", "error", err)
		return nil, err
	}

	result := make([]*entity.Category, len(recs))
	for i, rec := range recs {
		result[i] = toCategory(rec)
	}
	return result, nil
}

func toCategory(rec *ent.Category) *entity.Category {
	return &entity.Category{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
