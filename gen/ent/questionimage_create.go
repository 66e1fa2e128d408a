// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hansaki/quizforge/gen/ent/question"
	"github.com/hansaki/quizforge/gen/ent/questionimage"
)

// QuestionImageCreate is the builder for creating a QuestionImage entity.
type QuestionImageCreate struct {
	config
	mutation *QuestionImageMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionImageCreate) SetQuestionID(v uuid.UUID) *QuestionImageCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetLocator sets the "locator" field.
func (_c *QuestionImageCreate) SetLocator(v string) *QuestionImageCreate {
	_c.mutation.SetLocator(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QuestionImageCreate) SetPosition(v int) *QuestionImageCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *QuestionImageCreate) SetNillablePosition(v *int) *QuestionImageCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetAltText sets the "alt_text" field.
func (_c *QuestionImageCreate) SetAltText(v string) *QuestionImageCreate {
	_c.mutation.SetAltText(v)
	return _c
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_c *QuestionImageCreate) SetNillableAltText(v *string) *QuestionImageCreate {
	if v != nil {
		_c.SetAltText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionImageCreate) SetID(v uuid.UUID) *QuestionImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionImageCreate) SetNillableID(v *uuid.UUID) *QuestionImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *QuestionImageCreate) SetQuestion(v *Question) *QuestionImageCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the QuestionImageMutation object of the builder.
func (_c *QuestionImageCreate) Mutation() *QuestionImageMutation {
	return _c.mutation
}

// Save creates the QuestionImage in the database.
func (_c *QuestionImageCreate) Save(ctx context.Context) (*QuestionImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionImageCreate) SaveX(ctx context.Context) *QuestionImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionImageCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := questionimage.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionImageCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionImage.question_id"`)}
	}
	if _, ok := _c.mutation.Locator(); !ok {
		return &ValidationError{Name: "locator", err: errors.New(`ent: missing required field "QuestionImage.locator"`)}
	}
	if v, ok := _c.mutation.Locator(); ok {
		if err := questionimage.LocatorValidator(v); err != nil {
			return &ValidationError{Name: "locator", err: fmt.Errorf(`ent: validator failed for field "QuestionImage.locator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "QuestionImage.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := questionimage.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "QuestionImage.position": %w`, err)}
		}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "QuestionImage.question"`)}
	}
	return nil
}

func (_c *QuestionImageCreate) sqlSave(ctx context.Context) (*QuestionImage, error) {
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

func (_c *QuestionImageCreate) createSpec() (*QuestionImage, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionimage.Table, sqlgraph.NewFieldSpec(questionimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Locator(); ok {
		_spec.SetField(questionimage.FieldLocator, field.TypeString, value)
		_node.Locator = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(questionimage.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.AltText(); ok {
		_spec.SetField(questionimage.FieldAltText, field.TypeString, value)
		_node.AltText = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionImageCreateBulk is the builder for creating many QuestionImage entities in bulk.
type QuestionImageCreateBulk struct {
	config
	err      error
	builders []*QuestionImageCreate
}

// Save creates the QuestionImage entities in the database.
func (_c *QuestionImageCreateBulk) Save(ctx context.Context) ([]*QuestionImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionImageMutation)
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
func (_c *QuestionImageCreateBulk) SaveX(ctx context.Context) []*QuestionImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
