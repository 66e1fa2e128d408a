// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hansaki/quizforge/gen/ent/predicate"
	"github.com/hansaki/quizforge/gen/ent/question"
	"github.com/hansaki/quizforge/gen/ent/questionimage"
)

// QuestionImageUpdate is the builder for updating QuestionImage entities.
type QuestionImageUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionImageMutation
}

// Where appends a list predicates to the QuestionImageUpdate builder.
func (_u *QuestionImageUpdate) Where(ps ...predicate.QuestionImage) *QuestionImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionImageUpdate) SetQuestionID(v uuid.UUID) *QuestionImageUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionImageUpdate) SetNillableQuestionID(v *uuid.UUID) *QuestionImageUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetLocator sets the "locator" field.
func (_u *QuestionImageUpdate) SetLocator(v string) *QuestionImageUpdate {
	_u.mutation.SetLocator(v)
	return _u
}

// SetNillableLocator sets the "locator" field if the given value is not nil.
func (_u *QuestionImageUpdate) SetNillableLocator(v *string) *QuestionImageUpdate {
	if v != nil {
		_u.SetLocator(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuestionImageUpdate) SetPosition(v int) *QuestionImageUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuestionImageUpdate) SetNillablePosition(v *int) *QuestionImageUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuestionImageUpdate) AddPosition(v int) *QuestionImageUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAltText sets the "alt_text" field.
func (_u *QuestionImageUpdate) SetAltText(v string) *QuestionImageUpdate {
	_u.mutation.SetAltText(v)
	return _u
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_u *QuestionImageUpdate) SetNillableAltText(v *string) *QuestionImageUpdate {
	if v != nil {
		_u.SetAltText(*v)
	}
	return _u
}

// ClearAltText clears the value of the "alt_text" field.
func (_u *QuestionImageUpdate) ClearAltText() *QuestionImageUpdate {
	_u.mutation.ClearAltText()
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *QuestionImageUpdate) SetQuestion(v *Question) *QuestionImageUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionImageMutation object of the builder.
func (_u *QuestionImageUpdate) Mutation() *QuestionImageMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *QuestionImageUpdate) ClearQuestion() *QuestionImageUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionImageUpdate) check() error {
	if v, ok := _u.mutation.Locator(); ok {
		if err := questionimage.LocatorValidator(v); err != nil {
			return &ValidationError{Name: "locator", err: fmt.Errorf(`ent: validator failed for field "QuestionImage.locator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := questionimage.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "QuestionImage.position": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionImage.question"`)
	}
	return nil
}

func (_u *QuestionImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionimage.Table, questionimage.Columns, sqlgraph.NewFieldSpec(questionimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Locator(); ok {
		_spec.SetField(questionimage.FieldLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(questionimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(questionimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AltText(); ok {
		_spec.SetField(questionimage.FieldAltText, field.TypeString, value)
	}
	if _u.mutation.AltTextCleared() {
		_spec.ClearField(questionimage.FieldAltText, field.TypeString)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionimage.QuestionTable,
			Columns: []string{questionimage.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionimage.QuestionTable,
			Columns: []string{questionimage.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionImageUpdateOne is the builder for updating a single QuestionImage entity.
type QuestionImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionImageMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionImageUpdateOne) SetQuestionID(v uuid.UUID) *QuestionImageUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionImageUpdateOne) SetNillableQuestionID(v *uuid.UUID) *QuestionImageUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetLocator sets the "locator" field.
func (_u *QuestionImageUpdateOne) SetLocator(v string) *QuestionImageUpdateOne {
	_u.mutation.SetLocator(v)
	return _u
}

// SetNillableLocator sets the "locator" field if the given value is not nil.
func (_u *QuestionImageUpdateOne) SetNillableLocator(v *string) *QuestionImageUpdateOne {
	if v != nil {
		_u.SetLocator(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuestionImageUpdateOne) SetPosition(v int) *QuestionImageUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuestionImageUpdateOne) SetNillablePosition(v *int) *QuestionImageUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuestionImageUpdateOne) AddPosition(v int) *QuestionImageUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAltText sets the "alt_text" field.
func (_u *QuestionImageUpdateOne) SetAltText(v string) *QuestionImageUpdateOne {
	_u.mutation.SetAltText(v)
	return _u
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_u *QuestionImageUpdateOne) SetNillableAltText(v *string) *QuestionImageUpdateOne {
	if v != nil {
		_u.SetAltText(*v)
	}
	return _u
}

// ClearAltText clears the value of the "alt_text" field.
func (_u *QuestionImageUpdateOne) ClearAltText() *QuestionImageUpdateOne {
	_u.mutation.ClearAltText()
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *QuestionImageUpdateOne) SetQuestion(v *Question) *QuestionImageUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionImageMutation object of the builder.
func (_u *QuestionImageUpdateOne) Mutation() *QuestionImageMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *QuestionImageUpdateOne) ClearQuestion() *QuestionImageUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the QuestionImageUpdate builder.
func (_u *QuestionImageUpdateOne) Where(ps ...predicate.QuestionImage) *QuestionImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionImageUpdateOne) Select(field string, fields ...string) *QuestionImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionImage entity.
func (_u *QuestionImageUpdateOne) Save(ctx context.Context) (*QuestionImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionImageUpdateOne) SaveX(ctx context.Context) *QuestionImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionImageUpdateOne) check() error {
	if v, ok := _u.mutation.Locator(); ok {
		if err := questionimage.LocatorValidator(v); err != nil {
			return &ValidationError{Name: "locator", err: fmt.Errorf(`ent: validator failed for field "QuestionImage.locator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := questionimage.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "QuestionImage.position": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionImage.question"`)
	}
	return nil
}

func (_u *QuestionImageUpdateOne) sqlSave(ctx context.Context) (_node *QuestionImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionimage.Table, questionimage.Columns, sqlgraph.NewFieldSpec(questionimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionimage.FieldID)
		for _, f := range fields {
			if !questionimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionimage.FieldID {
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
	if value, ok := _u.mutation.Locator(); ok {
		_spec.SetField(questionimage.FieldLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(questionimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(questionimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AltText(); ok {
		_spec.SetField(questionimage.FieldAltText, field.TypeString, value)
	}
	if _u.mutation.AltTextCleared() {
		_spec.ClearField(questionimage.FieldAltText, field.TypeString)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionimage.QuestionTable,
			Columns: []string{questionimage.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionimage.QuestionTable,
			Columns: []string{questionimage.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
