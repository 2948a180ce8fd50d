// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// InsurancePolicyDelete is the builder for deleting a InsurancePolicy entity.
type InsurancePolicyDelete struct {
	config
	hooks    []Hook
	mutation *InsurancePolicyMutation
}

// Where appends a list predicates to the InsurancePolicyDelete builder.
func (_d *InsurancePolicyDelete) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InsurancePolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InsurancePolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InsurancePolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(insurancepolicy.Table, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
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

// InsurancePolicyDeleteOne is the builder for deleting a single InsurancePolicy entity.
type InsurancePolicyDeleteOne struct {
	_d *InsurancePolicyDelete
}

// Where appends a list predicates to the InsurancePolicyDelete builder.
func (_d *InsurancePolicyDeleteOne) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InsurancePolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{insurancepolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InsurancePolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
