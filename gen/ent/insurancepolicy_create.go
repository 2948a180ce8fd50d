// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
)

// InsurancePolicyCreate is the builder for creating a InsurancePolicy entity.
type InsurancePolicyCreate struct {
	config
	mutation *InsurancePolicyMutation
	hooks    []Hook
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *InsurancePolicyCreate) SetPolicyNumber(v string) *InsurancePolicyCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *InsurancePolicyCreate) SetCustomerID(v uuid.UUID) *InsurancePolicyCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetAgentCode sets the "agent_code" field.
func (_c *InsurancePolicyCreate) SetAgentCode(v string) *InsurancePolicyCreate {
	_c.mutation.SetAgentCode(v)
	return _c
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableAgentCode(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetAgentCode(*v)
	}
	return _c
}

// SetPlanName sets the "plan_name" field.
func (_c *InsurancePolicyCreate) SetPlanName(v string) *InsurancePolicyCreate {
	_c.mutation.SetPlanName(v)
	return _c
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePlanName(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPlanName(*v)
	}
	return _c
}

// SetDateOfCommencement sets the "date_of_commencement" field.
func (_c *InsurancePolicyCreate) SetDateOfCommencement(v string) *InsurancePolicyCreate {
	_c.mutation.SetDateOfCommencement(v)
	return _c
}

// SetNillableDateOfCommencement sets the "date_of_commencement" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableDateOfCommencement(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetDateOfCommencement(*v)
	}
	return _c
}

// SetPaymentPeriod sets the "payment_period" field.
func (_c *InsurancePolicyCreate) SetPaymentPeriod(v string) *InsurancePolicyCreate {
	_c.mutation.SetPaymentPeriod(v)
	return _c
}

// SetNillablePaymentPeriod sets the "payment_period" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePaymentPeriod(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPaymentPeriod(*v)
	}
	return _c
}

// SetCurrentFupDate sets the "current_fup_date" field.
func (_c *InsurancePolicyCreate) SetCurrentFupDate(v string) *InsurancePolicyCreate {
	_c.mutation.SetCurrentFupDate(v)
	return _c
}

// SetNillableCurrentFupDate sets the "current_fup_date" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableCurrentFupDate(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetCurrentFupDate(*v)
	}
	return _c
}

// SetPremiumAmount sets the "premium_amount" field.
func (_c *InsurancePolicyCreate) SetPremiumAmount(v float64) *InsurancePolicyCreate {
	_c.mutation.SetPremiumAmount(v)
	return _c
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePremiumAmount(v *float64) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPremiumAmount(*v)
	}
	return _c
}

// SetSumAssured sets the "sum_assured" field.
func (_c *InsurancePolicyCreate) SetSumAssured(v float64) *InsurancePolicyCreate {
	_c.mutation.SetSumAssured(v)
	return _c
}

// SetNillableSumAssured sets the "sum_assured" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableSumAssured(v *float64) *InsurancePolicyCreate {
	if v != nil {
		_c.SetSumAssured(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InsurancePolicyCreate) SetStatus(v string) *InsurancePolicyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableStatus(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *InsurancePolicyCreate) SetExtractionMethod(v string) *InsurancePolicyCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableExtractionMethod(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetExtractionMethod(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsurancePolicyCreate) SetCreatedAt(v string) *InsurancePolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableCreatedAt(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InsurancePolicyCreate) SetUpdatedAt(v string) *InsurancePolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableUpdatedAt(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsurancePolicyCreate) SetID(v uuid.UUID) *InsurancePolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableID(v *uuid.UUID) *InsurancePolicyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *InsurancePolicyCreate) SetCustomer(v *Customer) *InsurancePolicyCreate {
	return _c.SetCustomerID(v.ID)
}

// Mutation returns the InsurancePolicyMutation object of the builder.
func (_c *InsurancePolicyCreate) Mutation() *InsurancePolicyMutation {
	return _c.mutation
}

// Save creates the InsurancePolicy in the database.
func (_c *InsurancePolicyCreate) Save(ctx context.Context) (*InsurancePolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsurancePolicyCreate) SaveX(ctx context.Context) *InsurancePolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsurancePolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsurancePolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsurancePolicyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := insurancepolicy.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		v := insurancepolicy.DefaultExtractionMethod
		_c.mutation.SetExtractionMethod(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := insurancepolicy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsurancePolicyCreate) check() error {
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "InsurancePolicy.policy_number"`)}
	}
	if v, ok := _c.mutation.PolicyNumber(); ok {
		if err := insurancepolicy.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.policy_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "InsurancePolicy.customer_id"`)}
	}
	if v, ok := _c.mutation.PaymentPeriod(); ok {
		if err := insurancepolicy.PaymentPeriodValidator(v); err != nil {
			return &ValidationError{Name: "payment_period", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.payment_period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InsurancePolicy.status"`)}
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "InsurancePolicy.extraction_method"`)}
	}
	if len(_c.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`ent: missing required edge "InsurancePolicy.customer"`)}
	}
	return nil
}

func (_c *InsurancePolicyCreate) sqlSave(ctx context.Context) (*InsurancePolicy, error) {
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

func (_c *InsurancePolicyCreate) createSpec() (*InsurancePolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &InsurancePolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insurancepolicy.Table, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(insurancepolicy.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.AgentCode(); ok {
		_spec.SetField(insurancepolicy.FieldAgentCode, field.TypeString, value)
		_node.AgentCode = &value
	}
	if value, ok := _c.mutation.PlanName(); ok {
		_spec.SetField(insurancepolicy.FieldPlanName, field.TypeString, value)
		_node.PlanName = &value
	}
	if value, ok := _c.mutation.DateOfCommencement(); ok {
		_spec.SetField(insurancepolicy.FieldDateOfCommencement, field.TypeString, value)
		_node.DateOfCommencement = &value
	}
	if value, ok := _c.mutation.PaymentPeriod(); ok {
		_spec.SetField(insurancepolicy.FieldPaymentPeriod, field.TypeString, value)
		_node.PaymentPeriod = &value
	}
	if value, ok := _c.mutation.CurrentFupDate(); ok {
		_spec.SetField(insurancepolicy.FieldCurrentFupDate, field.TypeString, value)
		_node.CurrentFupDate = &value
	}
	if value, ok := _c.mutation.PremiumAmount(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
		_node.PremiumAmount = &value
	}
	if value, ok := _c.mutation.SumAssured(); ok {
		_spec.SetField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
		_node.SumAssured = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(insurancepolicy.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(insurancepolicy.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldCreatedAt, field.TypeString, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldUpdatedAt, field.TypeString, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insurancepolicy.CustomerTable,
			Columns: []string{insurancepolicy.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InsurancePolicyCreateBulk is the builder for creating many InsurancePolicy entities in bulk.
type InsurancePolicyCreateBulk struct {
	config
	err      error
	builders []*InsurancePolicyCreate
}

// Save creates the InsurancePolicy entities in the database.
func (_c *InsurancePolicyCreateBulk) Save(ctx context.Context) ([]*InsurancePolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsurancePolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsurancePolicyMutation)
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
func (_c *InsurancePolicyCreateBulk) SaveX(ctx context.Context) []*InsurancePolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsurancePolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsurancePolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
