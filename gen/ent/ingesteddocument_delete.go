// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// IngestedDocumentDelete is the builder for deleting a IngestedDocument entity.
type IngestedDocumentDelete struct {
	config
	hooks    []Hook
	mutation *IngestedDocumentMutation
}

// Where appends a list predicates to the IngestedDocumentDelete builder.
func (_d *IngestedDocumentDelete) Where(ps ...predicate.IngestedDocument) *IngestedDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IngestedDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IngestedDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IngestedDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ingesteddocument.Table, sqlgraph.NewFieldSpec(ingesteddocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// IngestedDocumentDeleteOne is the builder for deleting a single IngestedDocument entity.
type IngestedDocumentDeleteOne struct {
	_d *IngestedDocumentDelete
}

// Where appends a list predicates to the IngestedDocumentDelete builder.
func (_d *IngestedDocumentDeleteOne) Where(ps ...predicate.IngestedDocument) *IngestedDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IngestedDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ingesteddocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IngestedDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
