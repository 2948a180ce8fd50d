// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// IngestedDocumentUpdate is the builder for updating IngestedDocument entities.
type IngestedDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *IngestedDocumentMutation
}

// Where appends a list predicates to the IngestedDocumentUpdate builder.
func (_u *IngestedDocumentUpdate) Where(ps ...predicate.IngestedDocument) *IngestedDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the IngestedDocumentMutation object of the builder.
func (_u *IngestedDocumentUpdate) Mutation() *IngestedDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestedDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestedDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestedDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestedDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestedDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingesteddocument.Table, ingesteddocument.Columns, sqlgraph.NewFieldSpec(ingesteddocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(ingesteddocument.FieldContentHash, field.TypeString)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(ingesteddocument.FieldDocumentDate, field.TypeString)
	}
	if _u.mutation.PolicyNumbersCleared() {
		_spec.ClearField(ingesteddocument.FieldPolicyNumbers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingesteddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestedDocumentUpdateOne is the builder for updating a single IngestedDocument entity.
type IngestedDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestedDocumentMutation
}

// Mutation returns the IngestedDocumentMutation object of the builder.
func (_u *IngestedDocumentUpdateOne) Mutation() *IngestedDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestedDocumentUpdate builder.
func (_u *IngestedDocumentUpdateOne) Where(ps ...predicate.IngestedDocument) *IngestedDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestedDocumentUpdateOne) Select(field string, fields ...string) *IngestedDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestedDocument entity.
func (_u *IngestedDocumentUpdateOne) Save(ctx context.Context) (*IngestedDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestedDocumentUpdateOne) SaveX(ctx context.Context) *IngestedDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestedDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestedDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestedDocumentUpdateOne) sqlSave(ctx context.Context) (_node *IngestedDocument, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingesteddocument.Table, ingesteddocument.Columns, sqlgraph.NewFieldSpec(ingesteddocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestedDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingesteddocument.FieldID)
		for _, f := range fields {
			if !ingesteddocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingesteddocument.FieldID {
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
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(ingesteddocument.FieldContentHash, field.TypeString)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(ingesteddocument.FieldDocumentDate, field.TypeString)
	}
	if _u.mutation.PolicyNumbersCleared() {
		_spec.ClearField(ingesteddocument.FieldPolicyNumbers, field.TypeJSON)
	}
	_node = &IngestedDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingesteddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
