// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecordUpdate is the builder for updating PremiumRecord entities.
type PremiumRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PremiumRecordMutation
}

// Where appends a list predicates to the PremiumRecordUpdate builder.
func (_u *PremiumRecordUpdate) Where(ps ...predicate.PremiumRecord) *PremiumRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PremiumRecordUpdate) SetDueDate(v string) *PremiumRecordUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableDueDate(v *string) *PremiumRecordUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *PremiumRecordUpdate) ClearDueDate() *PremiumRecordUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetPremiumAmount sets the "premium_amount" field.
func (_u *PremiumRecordUpdate) SetPremiumAmount(v float64) *PremiumRecordUpdate {
	_u.mutation.ResetPremiumAmount()
	_u.mutation.SetPremiumAmount(v)
	return _u
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillablePremiumAmount(v *float64) *PremiumRecordUpdate {
	if v != nil {
		_u.SetPremiumAmount(*v)
	}
	return _u
}

// AddPremiumAmount adds value to the "premium_amount" field.
func (_u *PremiumRecordUpdate) AddPremiumAmount(v float64) *PremiumRecordUpdate {
	_u.mutation.AddPremiumAmount(v)
	return _u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (_u *PremiumRecordUpdate) ClearPremiumAmount() *PremiumRecordUpdate {
	_u.mutation.ClearPremiumAmount()
	return _u
}

// SetGstAmount sets the "gst_amount" field.
func (_u *PremiumRecordUpdate) SetGstAmount(v float64) *PremiumRecordUpdate {
	_u.mutation.ResetGstAmount()
	_u.mutation.SetGstAmount(v)
	return _u
}

// SetNillableGstAmount sets the "gst_amount" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableGstAmount(v *float64) *PremiumRecordUpdate {
	if v != nil {
		_u.SetGstAmount(*v)
	}
	return _u
}

// AddGstAmount adds value to the "gst_amount" field.
func (_u *PremiumRecordUpdate) AddGstAmount(v float64) *PremiumRecordUpdate {
	_u.mutation.AddGstAmount(v)
	return _u
}

// ClearGstAmount clears the value of the "gst_amount" field.
func (_u *PremiumRecordUpdate) ClearGstAmount() *PremiumRecordUpdate {
	_u.mutation.ClearGstAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PremiumRecordUpdate) SetTotalAmount(v float64) *PremiumRecordUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableTotalAmount(v *float64) *PremiumRecordUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PremiumRecordUpdate) AddTotalAmount(v float64) *PremiumRecordUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *PremiumRecordUpdate) ClearTotalAmount() *PremiumRecordUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetDueCount sets the "due_count" field.
func (_u *PremiumRecordUpdate) SetDueCount(v int) *PremiumRecordUpdate {
	_u.mutation.ResetDueCount()
	_u.mutation.SetDueCount(v)
	return _u
}

// SetNillableDueCount sets the "due_count" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableDueCount(v *int) *PremiumRecordUpdate {
	if v != nil {
		_u.SetDueCount(*v)
	}
	return _u
}

// AddDueCount adds value to the "due_count" field.
func (_u *PremiumRecordUpdate) AddDueCount(v int) *PremiumRecordUpdate {
	_u.mutation.AddDueCount(v)
	return _u
}

// ClearDueCount clears the value of the "due_count" field.
func (_u *PremiumRecordUpdate) ClearDueCount() *PremiumRecordUpdate {
	_u.mutation.ClearDueCount()
	return _u
}

// SetEstimatedCommission sets the "estimated_commission" field.
func (_u *PremiumRecordUpdate) SetEstimatedCommission(v float64) *PremiumRecordUpdate {
	_u.mutation.ResetEstimatedCommission()
	_u.mutation.SetEstimatedCommission(v)
	return _u
}

// SetNillableEstimatedCommission sets the "estimated_commission" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableEstimatedCommission(v *float64) *PremiumRecordUpdate {
	if v != nil {
		_u.SetEstimatedCommission(*v)
	}
	return _u
}

// AddEstimatedCommission adds value to the "estimated_commission" field.
func (_u *PremiumRecordUpdate) AddEstimatedCommission(v float64) *PremiumRecordUpdate {
	_u.mutation.AddEstimatedCommission(v)
	return _u
}

// ClearEstimatedCommission clears the value of the "estimated_commission" field.
func (_u *PremiumRecordUpdate) ClearEstimatedCommission() *PremiumRecordUpdate {
	_u.mutation.ClearEstimatedCommission()
	return _u
}

// SetAgentCode sets the "agent_code" field.
func (_u *PremiumRecordUpdate) SetAgentCode(v string) *PremiumRecordUpdate {
	_u.mutation.SetAgentCode(v)
	return _u
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableAgentCode(v *string) *PremiumRecordUpdate {
	if v != nil {
		_u.SetAgentCode(*v)
	}
	return _u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (_u *PremiumRecordUpdate) ClearAgentCode() *PremiumRecordUpdate {
	_u.mutation.ClearAgentCode()
	return _u
}

// SetSourceDocument sets the "source_document" field.
func (_u *PremiumRecordUpdate) SetSourceDocument(v string) *PremiumRecordUpdate {
	_u.mutation.SetSourceDocument(v)
	return _u
}

// SetNillableSourceDocument sets the "source_document" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableSourceDocument(v *string) *PremiumRecordUpdate {
	if v != nil {
		_u.SetSourceDocument(*v)
	}
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *PremiumRecordUpdate) SetDocumentDate(v string) *PremiumRecordUpdate {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillableDocumentDate(v *string) *PremiumRecordUpdate {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *PremiumRecordUpdate) ClearDocumentDate() *PremiumRecordUpdate {
	_u.mutation.ClearDocumentDate()
	return _u
}

// Mutation returns the PremiumRecordMutation object of the builder.
func (_u *PremiumRecordUpdate) Mutation() *PremiumRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PremiumRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PremiumRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PremiumRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PremiumRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PremiumRecordUpdate) check() error {
	if v, ok := _u.mutation.SourceDocument(); ok {
		if err := premiumrecord.SourceDocumentValidator(v); err != nil {
			return &ValidationError{Name: "source_document", err: fmt.Errorf(`ent: validator failed for field "PremiumRecord.source_document": %w`, err)}
		}
	}
	return nil
}

func (_u *PremiumRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(premiumrecord.Table, premiumrecord.Columns, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(premiumrecord.FieldDueDate, field.TypeString, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(premiumrecord.FieldDueDate, field.TypeString)
	}
	if value, ok := _u.mutation.PremiumAmount(); ok {
		_spec.SetField(premiumrecord.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPremiumAmount(); ok {
		_spec.AddField(premiumrecord.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PremiumAmountCleared() {
		_spec.ClearField(premiumrecord.FieldPremiumAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GstAmount(); ok {
		_spec.SetField(premiumrecord.FieldGstAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstAmount(); ok {
		_spec.AddField(premiumrecord.FieldGstAmount, field.TypeFloat64, value)
	}
	if _u.mutation.GstAmountCleared() {
		_spec.ClearField(premiumrecord.FieldGstAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(premiumrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(premiumrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(premiumrecord.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DueCount(); ok {
		_spec.SetField(premiumrecord.FieldDueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDueCount(); ok {
		_spec.AddField(premiumrecord.FieldDueCount, field.TypeInt, value)
	}
	if _u.mutation.DueCountCleared() {
		_spec.ClearField(premiumrecord.FieldDueCount, field.TypeInt)
	}
	if value, ok := _u.mutation.EstimatedCommission(); ok {
		_spec.SetField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCommission(); ok {
		_spec.AddField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCommissionCleared() {
		_spec.ClearField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AgentCode(); ok {
		_spec.SetField(premiumrecord.FieldAgentCode, field.TypeString, value)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(premiumrecord.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.SourceDocument(); ok {
		_spec.SetField(premiumrecord.FieldSourceDocument, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(premiumrecord.FieldDocumentDate, field.TypeString, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(premiumrecord.FieldDocumentDate, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{premiumrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PremiumRecordUpdateOne is the builder for updating a single PremiumRecord entity.
type PremiumRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PremiumRecordMutation
}

// SetDueDate sets the "due_date" field.
func (_u *PremiumRecordUpdateOne) SetDueDate(v string) *PremiumRecordUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableDueDate(v *string) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *PremiumRecordUpdateOne) ClearDueDate() *PremiumRecordUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetPremiumAmount sets the "premium_amount" field.
func (_u *PremiumRecordUpdateOne) SetPremiumAmount(v float64) *PremiumRecordUpdateOne {
	_u.mutation.ResetPremiumAmount()
	_u.mutation.SetPremiumAmount(v)
	return _u
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillablePremiumAmount(v *float64) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetPremiumAmount(*v)
	}
	return _u
}

// AddPremiumAmount adds value to the "premium_amount" field.
func (_u *PremiumRecordUpdateOne) AddPremiumAmount(v float64) *PremiumRecordUpdateOne {
	_u.mutation.AddPremiumAmount(v)
	return _u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (_u *PremiumRecordUpdateOne) ClearPremiumAmount() *PremiumRecordUpdateOne {
	_u.mutation.ClearPremiumAmount()
	return _u
}

// SetGstAmount sets the "gst_amount" field.
func (_u *PremiumRecordUpdateOne) SetGstAmount(v float64) *PremiumRecordUpdateOne {
	_u.mutation.ResetGstAmount()
	_u.mutation.SetGstAmount(v)
	return _u
}

// SetNillableGstAmount sets the "gst_amount" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableGstAmount(v *float64) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetGstAmount(*v)
	}
	return _u
}

// AddGstAmount adds value to the "gst_amount" field.
func (_u *PremiumRecordUpdateOne) AddGstAmount(v float64) *PremiumRecordUpdateOne {
	_u.mutation.AddGstAmount(v)
	return _u
}

// ClearGstAmount clears the value of the "gst_amount" field.
func (_u *PremiumRecordUpdateOne) ClearGstAmount() *PremiumRecordUpdateOne {
	_u.mutation.ClearGstAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PremiumRecordUpdateOne) SetTotalAmount(v float64) *PremiumRecordUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableTotalAmount(v *float64) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PremiumRecordUpdateOne) AddTotalAmount(v float64) *PremiumRecordUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *PremiumRecordUpdateOne) ClearTotalAmount() *PremiumRecordUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetDueCount sets the "due_count" field.
func (_u *PremiumRecordUpdateOne) SetDueCount(v int) *PremiumRecordUpdateOne {
	_u.mutation.ResetDueCount()
	_u.mutation.SetDueCount(v)
	return _u
}

// SetNillableDueCount sets the "due_count" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableDueCount(v *int) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetDueCount(*v)
	}
	return _u
}

// AddDueCount adds value to the "due_count" field.
func (_u *PremiumRecordUpdateOne) AddDueCount(v int) *PremiumRecordUpdateOne {
	_u.mutation.AddDueCount(v)
	return _u
}

// ClearDueCount clears the value of the "due_count" field.
func (_u *PremiumRecordUpdateOne) ClearDueCount() *PremiumRecordUpdateOne {
	_u.mutation.ClearDueCount()
	return _u
}

// SetEstimatedCommission sets the "estimated_commission" field.
func (_u *PremiumRecordUpdateOne) SetEstimatedCommission(v float64) *PremiumRecordUpdateOne {
	_u.mutation.ResetEstimatedCommission()
	_u.mutation.SetEstimatedCommission(v)
	return _u
}

// SetNillableEstimatedCommission sets the "estimated_commission" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableEstimatedCommission(v *float64) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetEstimatedCommission(*v)
	}
	return _u
}

// AddEstimatedCommission adds value to the "estimated_commission" field.
func (_u *PremiumRecordUpdateOne) AddEstimatedCommission(v float64) *PremiumRecordUpdateOne {
	_u.mutation.AddEstimatedCommission(v)
	return _u
}

// ClearEstimatedCommission clears the value of the "estimated_commission" field.
func (_u *PremiumRecordUpdateOne) ClearEstimatedCommission() *PremiumRecordUpdateOne {
	_u.mutation.ClearEstimatedCommission()
	return _u
}

// SetAgentCode sets the "agent_code" field.
func (_u *PremiumRecordUpdateOne) SetAgentCode(v string) *PremiumRecordUpdateOne {
	_u.mutation.SetAgentCode(v)
	return _u
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableAgentCode(v *string) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetAgentCode(*v)
	}
	return _u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (_u *PremiumRecordUpdateOne) ClearAgentCode() *PremiumRecordUpdateOne {
	_u.mutation.ClearAgentCode()
	return _u
}

// SetSourceDocument sets the "source_document" field.
func (_u *PremiumRecordUpdateOne) SetSourceDocument(v string) *PremiumRecordUpdateOne {
	_u.mutation.SetSourceDocument(v)
	return _u
}

// SetNillableSourceDocument sets the "source_document" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableSourceDocument(v *string) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetSourceDocument(*v)
	}
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *PremiumRecordUpdateOne) SetDocumentDate(v string) *PremiumRecordUpdateOne {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillableDocumentDate(v *string) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *PremiumRecordUpdateOne) ClearDocumentDate() *PremiumRecordUpdateOne {
	_u.mutation.ClearDocumentDate()
	return _u
}

// Mutation returns the PremiumRecordMutation object of the builder.
func (_u *PremiumRecordUpdateOne) Mutation() *PremiumRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PremiumRecordUpdate builder.
func (_u *PremiumRecordUpdateOne) Where(ps ...predicate.PremiumRecord) *PremiumRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PremiumRecordUpdateOne) Select(field string, fields ...string) *PremiumRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PremiumRecord entity.
func (_u *PremiumRecordUpdateOne) Save(ctx context.Context) (*PremiumRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PremiumRecordUpdateOne) SaveX(ctx context.Context) *PremiumRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PremiumRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PremiumRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PremiumRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SourceDocument(); ok {
		if err := premiumrecord.SourceDocumentValidator(v); err != nil {
			return &ValidationError{Name: "source_document", err: fmt.Errorf(`ent: validator failed for field "PremiumRecord.source_document": %w`, err)}
		}
	}
	return nil
}

func (_u *PremiumRecordUpdateOne) sqlSave(ctx context.Context) (_node *PremiumRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(premiumrecord.Table, premiumrecord.Columns, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PremiumRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, premiumrecord.FieldID)
		for _, f := range fields {
			if !premiumrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != premiumrecord.FieldID {
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
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(premiumrecord.FieldDueDate, field.TypeString, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(premiumrecord.FieldDueDate, field.TypeString)
	}
	if value, ok := _u.mutation.PremiumAmount(); ok {
		_spec.SetField(premiumrecord.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPremiumAmount(); ok {
		_spec.AddField(premiumrecord.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PremiumAmountCleared() {
		_spec.ClearField(premiumrecord.FieldPremiumAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GstAmount(); ok {
		_spec.SetField(premiumrecord.FieldGstAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstAmount(); ok {
		_spec.AddField(premiumrecord.FieldGstAmount, field.TypeFloat64, value)
	}
	if _u.mutation.GstAmountCleared() {
		_spec.ClearField(premiumrecord.FieldGstAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(premiumrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(premiumrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(premiumrecord.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DueCount(); ok {
		_spec.SetField(premiumrecord.FieldDueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDueCount(); ok {
		_spec.AddField(premiumrecord.FieldDueCount, field.TypeInt, value)
	}
	if _u.mutation.DueCountCleared() {
		_spec.ClearField(premiumrecord.FieldDueCount, field.TypeInt)
	}
	if value, ok := _u.mutation.EstimatedCommission(); ok {
		_spec.SetField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCommission(); ok {
		_spec.AddField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCommissionCleared() {
		_spec.ClearField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AgentCode(); ok {
		_spec.SetField(premiumrecord.FieldAgentCode, field.TypeString, value)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(premiumrecord.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.SourceDocument(); ok {
		_spec.SetField(premiumrecord.FieldSourceDocument, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(premiumrecord.FieldDocumentDate, field.TypeString, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(premiumrecord.FieldDocumentDate, field.TypeString)
	}
	_node = &PremiumRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{premiumrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
