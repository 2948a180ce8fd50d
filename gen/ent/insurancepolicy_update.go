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
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// InsurancePolicyUpdate is the builder for updating InsurancePolicy entities.
type InsurancePolicyUpdate struct {
	config
	hooks    []Hook
	mutation *InsurancePolicyMutation
}

// Where appends a list predicates to the InsurancePolicyUpdate builder.
func (_u *InsurancePolicyUpdate) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *InsurancePolicyUpdate) SetCustomerID(v uuid.UUID) *InsurancePolicyUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableCustomerID(v *uuid.UUID) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetAgentCode sets the "agent_code" field.
func (_u *InsurancePolicyUpdate) SetAgentCode(v string) *InsurancePolicyUpdate {
	_u.mutation.SetAgentCode(v)
	return _u
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableAgentCode(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetAgentCode(*v)
	}
	return _u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (_u *InsurancePolicyUpdate) ClearAgentCode() *InsurancePolicyUpdate {
	_u.mutation.ClearAgentCode()
	return _u
}

// SetPlanName sets the "plan_name" field.
func (_u *InsurancePolicyUpdate) SetPlanName(v string) *InsurancePolicyUpdate {
	_u.mutation.SetPlanName(v)
	return _u
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePlanName(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPlanName(*v)
	}
	return _u
}

// ClearPlanName clears the value of the "plan_name" field.
func (_u *InsurancePolicyUpdate) ClearPlanName() *InsurancePolicyUpdate {
	_u.mutation.ClearPlanName()
	return _u
}

// SetDateOfCommencement sets the "date_of_commencement" field.
func (_u *InsurancePolicyUpdate) SetDateOfCommencement(v string) *InsurancePolicyUpdate {
	_u.mutation.SetDateOfCommencement(v)
	return _u
}

// SetNillableDateOfCommencement sets the "date_of_commencement" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableDateOfCommencement(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetDateOfCommencement(*v)
	}
	return _u
}

// ClearDateOfCommencement clears the value of the "date_of_commencement" field.
func (_u *InsurancePolicyUpdate) ClearDateOfCommencement() *InsurancePolicyUpdate {
	_u.mutation.ClearDateOfCommencement()
	return _u
}

// SetPaymentPeriod sets the "payment_period" field.
func (_u *InsurancePolicyUpdate) SetPaymentPeriod(v string) *InsurancePolicyUpdate {
	_u.mutation.SetPaymentPeriod(v)
	return _u
}

// SetNillablePaymentPeriod sets the "payment_period" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePaymentPeriod(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPaymentPeriod(*v)
	}
	return _u
}

// ClearPaymentPeriod clears the value of the "payment_period" field.
func (_u *InsurancePolicyUpdate) ClearPaymentPeriod() *InsurancePolicyUpdate {
	_u.mutation.ClearPaymentPeriod()
	return _u
}

// SetCurrentFupDate sets the "current_fup_date" field.
func (_u *InsurancePolicyUpdate) SetCurrentFupDate(v string) *InsurancePolicyUpdate {
	_u.mutation.SetCurrentFupDate(v)
	return _u
}

// SetNillableCurrentFupDate sets the "current_fup_date" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableCurrentFupDate(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetCurrentFupDate(*v)
	}
	return _u
}

// ClearCurrentFupDate clears the value of the "current_fup_date" field.
func (_u *InsurancePolicyUpdate) ClearCurrentFupDate() *InsurancePolicyUpdate {
	_u.mutation.ClearCurrentFupDate()
	return _u
}

// SetPremiumAmount sets the "premium_amount" field.
func (_u *InsurancePolicyUpdate) SetPremiumAmount(v float64) *InsurancePolicyUpdate {
	_u.mutation.ResetPremiumAmount()
	_u.mutation.SetPremiumAmount(v)
	return _u
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePremiumAmount(v *float64) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPremiumAmount(*v)
	}
	return _u
}

// AddPremiumAmount adds value to the "premium_amount" field.
func (_u *InsurancePolicyUpdate) AddPremiumAmount(v float64) *InsurancePolicyUpdate {
	_u.mutation.AddPremiumAmount(v)
	return _u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (_u *InsurancePolicyUpdate) ClearPremiumAmount() *InsurancePolicyUpdate {
	_u.mutation.ClearPremiumAmount()
	return _u
}

// SetSumAssured sets the "sum_assured" field.
func (_u *InsurancePolicyUpdate) SetSumAssured(v float64) *InsurancePolicyUpdate {
	_u.mutation.ResetSumAssured()
	_u.mutation.SetSumAssured(v)
	return _u
}

// SetNillableSumAssured sets the "sum_assured" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableSumAssured(v *float64) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetSumAssured(*v)
	}
	return _u
}

// AddSumAssured adds value to the "sum_assured" field.
func (_u *InsurancePolicyUpdate) AddSumAssured(v float64) *InsurancePolicyUpdate {
	_u.mutation.AddSumAssured(v)
	return _u
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (_u *InsurancePolicyUpdate) ClearSumAssured() *InsurancePolicyUpdate {
	_u.mutation.ClearSumAssured()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InsurancePolicyUpdate) SetStatus(v string) *InsurancePolicyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableStatus(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *InsurancePolicyUpdate) SetExtractionMethod(v string) *InsurancePolicyUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableExtractionMethod(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InsurancePolicyUpdate) SetCreatedAt(v string) *InsurancePolicyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableCreatedAt(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// ClearCreatedAt clears the value of the "created_at" field.
func (_u *InsurancePolicyUpdate) ClearCreatedAt() *InsurancePolicyUpdate {
	_u.mutation.ClearCreatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsurancePolicyUpdate) SetUpdatedAt(v string) *InsurancePolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableUpdatedAt(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (_u *InsurancePolicyUpdate) ClearUpdatedAt() *InsurancePolicyUpdate {
	_u.mutation.ClearUpdatedAt()
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdate) SetCustomer(v *Customer) *InsurancePolicyUpdate {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the InsurancePolicyMutation object of the builder.
func (_u *InsurancePolicyUpdate) Mutation() *InsurancePolicyMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdate) ClearCustomer() *InsurancePolicyUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsurancePolicyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsurancePolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsurancePolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsurancePolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsurancePolicyUpdate) check() error {
	if v, ok := _u.mutation.PaymentPeriod(); ok {
		if err := insurancepolicy.PaymentPeriodValidator(v); err != nil {
			return &ValidationError{Name: "payment_period", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.payment_period": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InsurancePolicy.customer"`)
	}
	return nil
}

func (_u *InsurancePolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insurancepolicy.Table, insurancepolicy.Columns, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentCode(); ok {
		_spec.SetField(insurancepolicy.FieldAgentCode, field.TypeString, value)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(insurancepolicy.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.PlanName(); ok {
		_spec.SetField(insurancepolicy.FieldPlanName, field.TypeString, value)
	}
	if _u.mutation.PlanNameCleared() {
		_spec.ClearField(insurancepolicy.FieldPlanName, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfCommencement(); ok {
		_spec.SetField(insurancepolicy.FieldDateOfCommencement, field.TypeString, value)
	}
	if _u.mutation.DateOfCommencementCleared() {
		_spec.ClearField(insurancepolicy.FieldDateOfCommencement, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentPeriod(); ok {
		_spec.SetField(insurancepolicy.FieldPaymentPeriod, field.TypeString, value)
	}
	if _u.mutation.PaymentPeriodCleared() {
		_spec.ClearField(insurancepolicy.FieldPaymentPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentFupDate(); ok {
		_spec.SetField(insurancepolicy.FieldCurrentFupDate, field.TypeString, value)
	}
	if _u.mutation.CurrentFupDateCleared() {
		_spec.ClearField(insurancepolicy.FieldCurrentFupDate, field.TypeString)
	}
	if value, ok := _u.mutation.PremiumAmount(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPremiumAmount(); ok {
		_spec.AddField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PremiumAmountCleared() {
		_spec.ClearField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SumAssured(); ok {
		_spec.SetField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSumAssured(); ok {
		_spec.AddField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if _u.mutation.SumAssuredCleared() {
		_spec.ClearField(insurancepolicy.FieldSumAssured, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(insurancepolicy.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(insurancepolicy.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldCreatedAt, field.TypeString, value)
	}
	if _u.mutation.CreatedAtCleared() {
		_spec.ClearField(insurancepolicy.FieldCreatedAt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldUpdatedAt, field.TypeString, value)
	}
	if _u.mutation.UpdatedAtCleared() {
		_spec.ClearField(insurancepolicy.FieldUpdatedAt, field.TypeString)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insurancepolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsurancePolicyUpdateOne is the builder for updating a single InsurancePolicy entity.
type InsurancePolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsurancePolicyMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *InsurancePolicyUpdateOne) SetCustomerID(v uuid.UUID) *InsurancePolicyUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableCustomerID(v *uuid.UUID) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetAgentCode sets the "agent_code" field.
func (_u *InsurancePolicyUpdateOne) SetAgentCode(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetAgentCode(v)
	return _u
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableAgentCode(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetAgentCode(*v)
	}
	return _u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (_u *InsurancePolicyUpdateOne) ClearAgentCode() *InsurancePolicyUpdateOne {
	_u.mutation.ClearAgentCode()
	return _u
}

// SetPlanName sets the "plan_name" field.
func (_u *InsurancePolicyUpdateOne) SetPlanName(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetPlanName(v)
	return _u
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePlanName(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPlanName(*v)
	}
	return _u
}

// ClearPlanName clears the value of the "plan_name" field.
func (_u *InsurancePolicyUpdateOne) ClearPlanName() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPlanName()
	return _u
}

// SetDateOfCommencement sets the "date_of_commencement" field.
func (_u *InsurancePolicyUpdateOne) SetDateOfCommencement(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetDateOfCommencement(v)
	return _u
}

// SetNillableDateOfCommencement sets the "date_of_commencement" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableDateOfCommencement(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetDateOfCommencement(*v)
	}
	return _u
}

// ClearDateOfCommencement clears the value of the "date_of_commencement" field.
func (_u *InsurancePolicyUpdateOne) ClearDateOfCommencement() *InsurancePolicyUpdateOne {
	_u.mutation.ClearDateOfCommencement()
	return _u
}

// SetPaymentPeriod sets the "payment_period" field.
func (_u *InsurancePolicyUpdateOne) SetPaymentPeriod(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetPaymentPeriod(v)
	return _u
}

// SetNillablePaymentPeriod sets the "payment_period" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePaymentPeriod(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPaymentPeriod(*v)
	}
	return _u
}

// ClearPaymentPeriod clears the value of the "payment_period" field.
func (_u *InsurancePolicyUpdateOne) ClearPaymentPeriod() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPaymentPeriod()
	return _u
}

// SetCurrentFupDate sets the "current_fup_date" field.
func (_u *InsurancePolicyUpdateOne) SetCurrentFupDate(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetCurrentFupDate(v)
	return _u
}

// SetNillableCurrentFupDate sets the "current_fup_date" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableCurrentFupDate(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetCurrentFupDate(*v)
	}
	return _u
}

// ClearCurrentFupDate clears the value of the "current_fup_date" field.
func (_u *InsurancePolicyUpdateOne) ClearCurrentFupDate() *InsurancePolicyUpdateOne {
	_u.mutation.ClearCurrentFupDate()
	return _u
}

// SetPremiumAmount sets the "premium_amount" field.
func (_u *InsurancePolicyUpdateOne) SetPremiumAmount(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.ResetPremiumAmount()
	_u.mutation.SetPremiumAmount(v)
	return _u
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePremiumAmount(v *float64) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPremiumAmount(*v)
	}
	return _u
}

// AddPremiumAmount adds value to the "premium_amount" field.
func (_u *InsurancePolicyUpdateOne) AddPremiumAmount(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.AddPremiumAmount(v)
	return _u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (_u *InsurancePolicyUpdateOne) ClearPremiumAmount() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPremiumAmount()
	return _u
}

// SetSumAssured sets the "sum_assured" field.
func (_u *InsurancePolicyUpdateOne) SetSumAssured(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.ResetSumAssured()
	_u.mutation.SetSumAssured(v)
	return _u
}

// SetNillableSumAssured sets the "sum_assured" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableSumAssured(v *float64) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetSumAssured(*v)
	}
	return _u
}

// AddSumAssured adds value to the "sum_assured" field.
func (_u *InsurancePolicyUpdateOne) AddSumAssured(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.AddSumAssured(v)
	return _u
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (_u *InsurancePolicyUpdateOne) ClearSumAssured() *InsurancePolicyUpdateOne {
	_u.mutation.ClearSumAssured()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InsurancePolicyUpdateOne) SetStatus(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableStatus(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *InsurancePolicyUpdateOne) SetExtractionMethod(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableExtractionMethod(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InsurancePolicyUpdateOne) SetCreatedAt(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableCreatedAt(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// ClearCreatedAt clears the value of the "created_at" field.
func (_u *InsurancePolicyUpdateOne) ClearCreatedAt() *InsurancePolicyUpdateOne {
	_u.mutation.ClearCreatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsurancePolicyUpdateOne) SetUpdatedAt(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableUpdatedAt(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (_u *InsurancePolicyUpdateOne) ClearUpdatedAt() *InsurancePolicyUpdateOne {
	_u.mutation.ClearUpdatedAt()
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdateOne) SetCustomer(v *Customer) *InsurancePolicyUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the InsurancePolicyMutation object of the builder.
func (_u *InsurancePolicyUpdateOne) Mutation() *InsurancePolicyMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdateOne) ClearCustomer() *InsurancePolicyUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// Where appends a list predicates to the InsurancePolicyUpdate builder.
func (_u *InsurancePolicyUpdateOne) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsurancePolicyUpdateOne) Select(field string, fields ...string) *InsurancePolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsurancePolicy entity.
func (_u *InsurancePolicyUpdateOne) Save(ctx context.Context) (*InsurancePolicy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsurancePolicyUpdateOne) SaveX(ctx context.Context) *InsurancePolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsurancePolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsurancePolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsurancePolicyUpdateOne) check() error {
	if v, ok := _u.mutation.PaymentPeriod(); ok {
		if err := insurancepolicy.PaymentPeriodValidator(v); err != nil {
			return &ValidationError{Name: "payment_period", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.payment_period": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InsurancePolicy.customer"`)
	}
	return nil
}

func (_u *InsurancePolicyUpdateOne) sqlSave(ctx context.Context) (_node *InsurancePolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insurancepolicy.Table, insurancepolicy.Columns, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsurancePolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insurancepolicy.FieldID)
		for _, f := range fields {
			if !insurancepolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insurancepolicy.FieldID {
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
	if value, ok := _u.mutation.AgentCode(); ok {
		_spec.SetField(insurancepolicy.FieldAgentCode, field.TypeString, value)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(insurancepolicy.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.PlanName(); ok {
		_spec.SetField(insurancepolicy.FieldPlanName, field.TypeString, value)
	}
	if _u.mutation.PlanNameCleared() {
		_spec.ClearField(insurancepolicy.FieldPlanName, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfCommencement(); ok {
		_spec.SetField(insurancepolicy.FieldDateOfCommencement, field.TypeString, value)
	}
	if _u.mutation.DateOfCommencementCleared() {
		_spec.ClearField(insurancepolicy.FieldDateOfCommencement, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentPeriod(); ok {
		_spec.SetField(insurancepolicy.FieldPaymentPeriod, field.TypeString, value)
	}
	if _u.mutation.PaymentPeriodCleared() {
		_spec.ClearField(insurancepolicy.FieldPaymentPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentFupDate(); ok {
		_spec.SetField(insurancepolicy.FieldCurrentFupDate, field.TypeString, value)
	}
	if _u.mutation.CurrentFupDateCleared() {
		_spec.ClearField(insurancepolicy.FieldCurrentFupDate, field.TypeString)
	}
	if value, ok := _u.mutation.PremiumAmount(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPremiumAmount(); ok {
		_spec.AddField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PremiumAmountCleared() {
		_spec.ClearField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SumAssured(); ok {
		_spec.SetField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSumAssured(); ok {
		_spec.AddField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if _u.mutation.SumAssuredCleared() {
		_spec.ClearField(insurancepolicy.FieldSumAssured, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(insurancepolicy.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(insurancepolicy.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldCreatedAt, field.TypeString, value)
	}
	if _u.mutation.CreatedAtCleared() {
		_spec.ClearField(insurancepolicy.FieldCreatedAt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldUpdatedAt, field.TypeString, value)
	}
	if _u.mutation.UpdatedAtCleared() {
		_spec.ClearField(insurancepolicy.FieldUpdatedAt, field.TypeString)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InsurancePolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insurancepolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
