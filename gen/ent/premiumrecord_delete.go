// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecordDelete is the builder for deleting a PremiumRecord entity.
type PremiumRecordDelete struct {
	config
	hooks    []Hook
	mutation *PremiumRecordMutation
}

// Where appends a list predicates to the PremiumRecordDelete builder.
func (_d *PremiumRecordDelete) Where(ps ...predicate.PremiumRecord) *PremiumRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PremiumRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PremiumRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PremiumRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(premiumrecord.Table, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
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

// PremiumRecordDeleteOne is the builder for deleting a single PremiumRecord entity.
type PremiumRecordDeleteOne struct {
	_d *PremiumRecordDelete
}

// Where appends a list predicates to the PremiumRecordDelete builder.
func (_d *PremiumRecordDeleteOne) Where(ps ...predicate.PremiumRecord) *PremiumRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PremiumRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{premiumrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PremiumRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
