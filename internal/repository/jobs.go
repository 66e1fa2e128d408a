package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/gen/ent"
	"github.com/hansaki/quizforge/internal/common"
	"github.com/hansaki/quizforge/internal/entity"
)

type JobRepository interface {
	// Start records a RUNNING import job row and returns its id.
	Start(ctx context.Context, sourceLabel string) (uuid.UUID, error)
	// Finish stamps the terminal status and result counts onto the job.
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, result entity.ImportResult, errMsg string) error
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) Start(ctx context.Context, sourceLabel string) (uuid.UUID, error) {
	rec, err := r.client.ImportJob.Create().
		SetSourceLabel(sourceLabel).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start import job", "source_label", sourceLabel, "error", err)
		return uuid.Nil, err
	}
	r.logger.Info("import job started", "job_id", rec.ID, "source_label", sourceLabel)
	return rec.ID, nil
}

func (r *jobRepository) Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, result entity.ImportResult, errMsg string) error {
	builder := r.client.ImportJob.UpdateOneID(id).
		SetStatus(string(status)).
		SetFinishedAt(time.Now()).
		SetPages(result.Pages).
		SetQuestionsExtracted(result.QuestionsExtracted).
		SetQuestionsPersisted(result.QuestionsPersisted).
		SetSkippedDuplicate(result.SkippedDuplicate).
		SetImagesLinked(result.ImagesLinked).
		SetFailed(result.Failed).
		SetUsedFallback(result.UsedFallback).
		SetFromCache(result.FromCache)
	if errMsg != "" {
		builder = builder.SetErrorMessage(errMsg)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("import job %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to finish import job", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("import job finished", "job_id", id, "status", string(status))
	return nil
}
