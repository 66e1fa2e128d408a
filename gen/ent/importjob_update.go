// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hansaki/quizforge/gen/ent/importjob"
	"github.com/hansaki/quizforge/gen/ent/predicate"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceLabel sets the "source_label" field.
func (_u *ImportJobUpdate) SetSourceLabel(v string) *ImportJobUpdate {
	_u.mutation.SetSourceLabel(v)
	return _u
}

// SetNillableSourceLabel sets the "source_label" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSourceLabel(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetSourceLabel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdate) SetFinishedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFinishedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdate) ClearFinishedAt() *ImportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ImportJobUpdate) SetPages(v int) *ImportJobUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillablePages(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ImportJobUpdate) AddPages(v int) *ImportJobUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetQuestionsExtracted sets the "questions_extracted" field.
func (_u *ImportJobUpdate) SetQuestionsExtracted(v int) *ImportJobUpdate {
	_u.mutation.ResetQuestionsExtracted()
	_u.mutation.SetQuestionsExtracted(v)
	return _u
}

// SetNillableQuestionsExtracted sets the "questions_extracted" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableQuestionsExtracted(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetQuestionsExtracted(*v)
	}
	return _u
}

// AddQuestionsExtracted adds value to the "questions_extracted" field.
func (_u *ImportJobUpdate) AddQuestionsExtracted(v int) *ImportJobUpdate {
	_u.mutation.AddQuestionsExtracted(v)
	return _u
}

// SetQuestionsPersisted sets the "questions_persisted" field.
func (_u *ImportJobUpdate) SetQuestionsPersisted(v int) *ImportJobUpdate {
	_u.mutation.ResetQuestionsPersisted()
	_u.mutation.SetQuestionsPersisted(v)
	return _u
}

// SetNillableQuestionsPersisted sets the "questions_persisted" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableQuestionsPersisted(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetQuestionsPersisted(*v)
	}
	return _u
}

// AddQuestionsPersisted adds value to the "questions_persisted" field.
func (_u *ImportJobUpdate) AddQuestionsPersisted(v int) *ImportJobUpdate {
	_u.mutation.AddQuestionsPersisted(v)
	return _u
}

// SetSkippedDuplicate sets the "skipped_duplicate" field.
func (_u *ImportJobUpdate) SetSkippedDuplicate(v int) *ImportJobUpdate {
	_u.mutation.ResetSkippedDuplicate()
	_u.mutation.SetSkippedDuplicate(v)
	return _u
}

// SetNillableSkippedDuplicate sets the "skipped_duplicate" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSkippedDuplicate(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetSkippedDuplicate(*v)
	}
	return _u
}

// AddSkippedDuplicate adds value to the "skipped_duplicate" field.
func (_u *ImportJobUpdate) AddSkippedDuplicate(v int) *ImportJobUpdate {
	_u.mutation.AddSkippedDuplicate(v)
	return _u
}

// SetImagesLinked sets the "images_linked" field.
func (_u *ImportJobUpdate) SetImagesLinked(v int) *ImportJobUpdate {
	_u.mutation.ResetImagesLinked()
	_u.mutation.SetImagesLinked(v)
	return _u
}

// SetNillableImagesLinked sets the "images_linked" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableImagesLinked(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetImagesLinked(*v)
	}
	return _u
}

// AddImagesLinked adds value to the "images_linked" field.
func (_u *ImportJobUpdate) AddImagesLinked(v int) *ImportJobUpdate {
	_u.mutation.AddImagesLinked(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ImportJobUpdate) SetFailed(v int) *ImportJobUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFailed(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ImportJobUpdate) AddFailed(v int) *ImportJobUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *ImportJobUpdate) SetUsedFallback(v bool) *ImportJobUpdate {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableUsedFallback(v *bool) *ImportJobUpdate {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetFromCache sets the "from_cache" field.
func (_u *ImportJobUpdate) SetFromCache(v bool) *ImportJobUpdate {
	_u.mutation.SetFromCache(v)
	return _u
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFromCache(v *bool) *ImportJobUpdate {
	if v != nil {
		_u.SetFromCache(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.SourceLabel(); ok {
		if err := importjob.SourceLabelValidator(v); err != nil {
			return &ValidationError{Name: "source_label", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceLabel(); ok {
		_spec.SetField(importjob.FieldSourceLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(importjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(importjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsExtracted(); ok {
		_spec.SetField(importjob.FieldQuestionsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsExtracted(); ok {
		_spec.AddField(importjob.FieldQuestionsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsPersisted(); ok {
		_spec.SetField(importjob.FieldQuestionsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPersisted(); ok {
		_spec.AddField(importjob.FieldQuestionsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedDuplicate(); ok {
		_spec.SetField(importjob.FieldSkippedDuplicate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedDuplicate(); ok {
		_spec.AddField(importjob.FieldSkippedDuplicate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImagesLinked(); ok {
		_spec.SetField(importjob.FieldImagesLinked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImagesLinked(); ok {
		_spec.AddField(importjob.FieldImagesLinked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(importjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(importjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(importjob.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FromCache(); ok {
		_spec.SetField(importjob.FieldFromCache, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetSourceLabel sets the "source_label" field.
func (_u *ImportJobUpdateOne) SetSourceLabel(v string) *ImportJobUpdateOne {
	_u.mutation.SetSourceLabel(v)
	return _u
}

// SetNillableSourceLabel sets the "source_label" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSourceLabel(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSourceLabel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdateOne) SetFinishedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdateOne) ClearFinishedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ImportJobUpdateOne) SetPages(v int) *ImportJobUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillablePages(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ImportJobUpdateOne) AddPages(v int) *ImportJobUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetQuestionsExtracted sets the "questions_extracted" field.
func (_u *ImportJobUpdateOne) SetQuestionsExtracted(v int) *ImportJobUpdateOne {
	_u.mutation.ResetQuestionsExtracted()
	_u.mutation.SetQuestionsExtracted(v)
	return _u
}

// SetNillableQuestionsExtracted sets the "questions_extracted" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableQuestionsExtracted(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetQuestionsExtracted(*v)
	}
	return _u
}

// AddQuestionsExtracted adds value to the "questions_extracted" field.
func (_u *ImportJobUpdateOne) AddQuestionsExtracted(v int) *ImportJobUpdateOne {
	_u.mutation.AddQuestionsExtracted(v)
	return _u
}

// SetQuestionsPersisted sets the "questions_persisted" field.
func (_u *ImportJobUpdateOne) SetQuestionsPersisted(v int) *ImportJobUpdateOne {
	_u.mutation.ResetQuestionsPersisted()
	_u.mutation.SetQuestionsPersisted(v)
	return _u
}

// SetNillableQuestionsPersisted sets the "questions_persisted" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableQuestionsPersisted(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetQuestionsPersisted(*v)
	}
	return _u
}

// AddQuestionsPersisted adds value to the "questions_persisted" field.
func (_u *ImportJobUpdateOne) AddQuestionsPersisted(v int) *ImportJobUpdateOne {
	_u.mutation.AddQuestionsPersisted(v)
	return _u
}

// SetSkippedDuplicate sets the "skipped_duplicate" field.
func (_u *ImportJobUpdateOne) SetSkippedDuplicate(v int) *ImportJobUpdateOne {
	_u.mutation.ResetSkippedDuplicate()
	_u.mutation.SetSkippedDuplicate(v)
	return _u
}

// SetNillableSkippedDuplicate sets the "skipped_duplicate" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSkippedDuplicate(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSkippedDuplicate(*v)
	}
	return _u
}

// AddSkippedDuplicate adds value to the "skipped_duplicate" field.
func (_u *ImportJobUpdateOne) AddSkippedDuplicate(v int) *ImportJobUpdateOne {
	_u.mutation.AddSkippedDuplicate(v)
	return _u
}

// SetImagesLinked sets the "images_linked" field.
func (_u *ImportJobUpdateOne) SetImagesLinked(v int) *ImportJobUpdateOne {
	_u.mutation.ResetImagesLinked()
	_u.mutation.SetImagesLinked(v)
	return _u
}

// SetNillableImagesLinked sets the "images_linked" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableImagesLinked(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetImagesLinked(*v)
	}
	return _u
}

// AddImagesLinked adds value to the "images_linked" field.
func (_u *ImportJobUpdateOne) AddImagesLinked(v int) *ImportJobUpdateOne {
	_u.mutation.AddImagesLinked(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ImportJobUpdateOne) SetFailed(v int) *ImportJobUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFailed(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ImportJobUpdateOne) AddFailed(v int) *ImportJobUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *ImportJobUpdateOne) SetUsedFallback(v bool) *ImportJobUpdateOne {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableUsedFallback(v *bool) *ImportJobUpdateOne {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetFromCache sets the "from_cache" field.
func (_u *ImportJobUpdateOne) SetFromCache(v bool) *ImportJobUpdateOne {
	_u.mutation.SetFromCache(v)
	return _u
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFromCache(v *bool) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFromCache(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourceLabel(); ok {
		if err := importjob.SourceLabelValidator(v); err != nil {
			return &ValidationError{Name: "source_label", err: fmt.Errorf(`ent: validator failed for field "ImportJob.source_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceLabel(); ok {
		_spec.SetField(importjob.FieldSourceLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(importjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(importjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsExtracted(); ok {
		_spec.SetField(importjob.FieldQuestionsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsExtracted(); ok {
		_spec.AddField(importjob.FieldQuestionsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsPersisted(); ok {
		_spec.SetField(importjob.FieldQuestionsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPersisted(); ok {
		_spec.AddField(importjob.FieldQuestionsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedDuplicate(); ok {
		_spec.SetField(importjob.FieldSkippedDuplicate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedDuplicate(); ok {
		_spec.AddField(importjob.FieldSkippedDuplicate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImagesLinked(); ok {
		_spec.SetField(importjob.FieldImagesLinked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImagesLinked(); ok {
		_spec.AddField(importjob.FieldImagesLinked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(importjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(importjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(importjob.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FromCache(); ok {
		_spec.SetField(importjob.FieldFromCache, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
