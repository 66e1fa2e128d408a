// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hansaki/quizforge/gen/ent/importjob"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
}

// SetSourceLabel sets the "source_label" field.
func (_c *ImportJobCreate) SetSourceLabel(v string) *ImportJobCreate {
	_c.mutation.SetSourceLabel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStatus(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportJobCreate) SetStartedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ImportJobCreate) SetFinishedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFinishedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ImportJobCreate) SetPages(v int) *ImportJobCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillablePages(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetQuestionsExtracted sets the "questions_extracted" field.
func (_c *ImportJobCreate) SetQuestionsExtracted(v int) *ImportJobCreate {
	_c.mutation.SetQuestionsExtracted(v)
	return _c
}

// SetNillableQuestionsExtracted sets the "questions_extracted" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableQuestionsExtracted(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetQuestionsExtracted(*v)
	}
	return _c
}

// SetQuestionsPersisted sets the "questions_persisted" field.
func (_c *ImportJobCreate) SetQuestionsPersisted(v int) *ImportJobCreate {
	_c.mutation.SetQuestionsPersisted(v)
	return _c
}

// SetNillableQuestionsPersisted sets the "questions_persisted" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableQuestionsPersisted(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetQuestionsPersisted(*v)
	}
	return _c
}

// SetSkippedDuplicate sets the "skipped_duplicate" field.
func (_c *ImportJobCreate) SetSkippedDuplicate(v int) *ImportJobCreate {
	_c.mutation.SetSkippedDuplicate(v)
	return _c
}

// SetNillableSkippedDuplicate sets the "skipped_duplicate" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableSkippedDuplicate(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetSkippedDuplicate(*v)
	}
	return _c
}

// SetImagesLinked sets the "images_linked" field.
func (_c *ImportJobCreate) SetImagesLinked(v int) *ImportJobCreate {
	_c.mutation.SetImagesLinked(v)
	return _c
}

// SetNillableImagesLinked sets the "images_linked" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableImagesLinked(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetImagesLinked(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *ImportJobCreate) SetFailed(v int) *ImportJobCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFailed(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetUsedFallback sets the "used_fallback" field.
func (_c *ImportJobCreate) SetUsedFallback(v bool) *ImportJobCreate {
	_c.mutation.SetUsedFallback(v)
	return _c
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableUsedFallback(v *bool) *ImportJobCreate {
	if v != nil {
		_c.SetUsedFallback(*v)
	}
	return _c
}

// SetFromCache sets the "from_cache" field.
func (_c *ImportJobCreate) SetFromCache(v bool) *ImportJobCreate {
	_c.mutation.SetFromCache(v)
	return _c
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFromCache(v *bool) *ImportJobCreate {
	if v != nil {
		_c.SetFromCache(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportJobCreate) SetErrorMessage(v string) *ImportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorMessage(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := importjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Pages(); !ok {
		v := importjob.DefaultPages
		_c.mutation.SetPages(v)
	}
	if _, ok := _c.mutation.QuestionsExtracted(); !ok {
		v := importjob.DefaultQuestionsExtracted
		_c.mutation.SetQuestionsExtracted(v)
	}
	if _, ok := _c.mutation.QuestionsPersisted(); !ok {
		v := importjob.DefaultQuestionsPersisted
		_c.mutation.SetQuestionsPersisted(v)
	}
	if _, ok := _c.mutation.SkippedDuplicate(); !ok {
		v := importjob.DefaultSkippedDuplicate
		_c.mutation.SetSkippedDuplicate(v)
	}
	if _, ok := _c.mutation.ImagesLinked(); !ok {
		v := importjob.DefaultImagesLinked
		_c.mutation.SetImagesLinked(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := importjob.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		v := importjob.DefaultUsedFallback
		_c.mutation.SetUsedFallback(v)
	}
	if _, ok := _c.mutation.FromCache(); !ok {
		v := importjob.DefaultFromCache
		_c.mutation.SetFromCache(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.SourceLabel(); !ok {
		return &ValidationError{Name: "source_label", err: errors.New(`ent: missing required field "ImportJob.source_label"`)}
	}
	if v, ok := _c.mutation.SourceLabel(); ok {
		if err := importjob.SourceLabelValidator(v); err != nil {
			return &ValidationError{Name: "source_label", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ImportJob.started_at"`)}
	}
	if _, ok := _c.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "ImportJob.pages"`)}
	}
	if _, ok := _c.mutation.QuestionsExtracted(); !ok {
		return &ValidationError{Name: "questions_extracted", err: errors.New(`ent: missing required field "ImportJob.questions_extracted"`)}
	}
	if _, ok := _c.mutation.QuestionsPersisted(); !ok {
		return &ValidationError{Name: "questions_persisted", err: errors.New(`ent: missing required field "ImportJob.questions_persisted"`)}
	}
	if _, ok := _c.mutation.SkippedDuplicate(); !ok {
		return &ValidationError{Name: "skipped_duplicate", err: errors.New(`ent: missing required field "ImportJob.skipped_duplicate"`)}
	}
	if _, ok := _c.mutation.ImagesLinked(); !ok {
		return &ValidationError{Name: "images_linked", err: errors.New(`ent: missing required field "ImportJob.images_linked"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "ImportJob.failed"`)}
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		return &ValidationError{Name: "used_fallback", err: errors.New(`ent: missing required field "ImportJob.used_fallback"`)}
	}
	if _, ok := _c.mutation.FromCache(); !ok {
		return &ValidationError{Name: "from_cache", err: errors.New(`ent: missing required field "ImportJob.from_cache"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceLabel(); ok {
		_spec.SetField(importjob.FieldSourceLabel, field.TypeString, value)
		_node.SourceLabel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(importjob.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.QuestionsExtracted(); ok {
		_spec.SetField(importjob.FieldQuestionsExtracted, field.TypeInt, value)
		_node.QuestionsExtracted = value
	}
	if value, ok := _c.mutation.QuestionsPersisted(); ok {
		_spec.SetField(importjob.FieldQuestionsPersisted, field.TypeInt, value)
		_node.QuestionsPersisted = value
	}
	if value, ok := _c.mutation.SkippedDuplicate(); ok {
		_spec.SetField(importjob.FieldSkippedDuplicate, field.TypeInt, value)
		_node.SkippedDuplicate = value
	}
	if value, ok := _c.mutation.ImagesLinked(); ok {
		_spec.SetField(importjob.FieldImagesLinked, field.TypeInt, value)
		_node.ImagesLinked = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(importjob.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.UsedFallback(); ok {
		_spec.SetField(importjob.FieldUsedFallback, field.TypeBool, value)
		_node.UsedFallback = value
	}
	if value, ok := _c.mutation.FromCache(); ok {
		_spec.SetField(importjob.FieldFromCache, field.TypeBool, value)
		_node.FromCache = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
