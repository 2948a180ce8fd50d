// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecordCreate is the builder for creating a PremiumRecord entity.
type PremiumRecordCreate struct {
	config
	mutation *PremiumRecordMutation
	hooks    []Hook
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *PremiumRecordCreate) SetPolicyNumber(v string) *PremiumRecordCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *PremiumRecordCreate) SetDueDate(v string) *PremiumRecordCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableDueDate(v *string) *PremiumRecordCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetPremiumAmount sets the "premium_amount" field.
func (_c *PremiumRecordCreate) SetPremiumAmount(v float64) *PremiumRecordCreate {
	_c.mutation.SetPremiumAmount(v)
	return _c
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillablePremiumAmount(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetPremiumAmount(*v)
	}
	return _c
}

// SetGstAmount sets the "gst_amount" field.
func (_c *PremiumRecordCreate) SetGstAmount(v float64) *PremiumRecordCreate {
	_c.mutation.SetGstAmount(v)
	return _c
}

// SetNillableGstAmount sets the "gst_amount" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableGstAmount(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetGstAmount(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *PremiumRecordCreate) SetTotalAmount(v float64) *PremiumRecordCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableTotalAmount(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetDueCount sets the "due_count" field.
func (_c *PremiumRecordCreate) SetDueCount(v int) *PremiumRecordCreate {
	_c.mutation.SetDueCount(v)
	return _c
}

// SetNillableDueCount sets the "due_count" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableDueCount(v *int) *PremiumRecordCreate {
	if v != nil {
		_c.SetDueCount(*v)
	}
	return _c
}

// SetEstimatedCommission sets the "estimated_commission" field.
func (_c *PremiumRecordCreate) SetEstimatedCommission(v float64) *PremiumRecordCreate {
	_c.mutation.SetEstimatedCommission(v)
	return _c
}

// SetNillableEstimatedCommission sets the "estimated_commission" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableEstimatedCommission(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetEstimatedCommission(*v)
	}
	return _c
}

// SetAgentCode sets the "agent_code" field.
func (_c *PremiumRecordCreate) SetAgentCode(v string) *PremiumRecordCreate {
	_c.mutation.SetAgentCode(v)
	return _c
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableAgentCode(v *string) *PremiumRecordCreate {
	if v != nil {
		_c.SetAgentCode(*v)
	}
	return _c
}

// SetSourceDocument sets the "source_document" field.
func (_c *PremiumRecordCreate) SetSourceDocument(v string) *PremiumRecordCreate {
	_c.mutation.SetSourceDocument(v)
	return _c
}

// SetDocumentDate sets the "document_date" field.
func (_c *PremiumRecordCreate) SetDocumentDate(v string) *PremiumRecordCreate {
	_c.mutation.SetDocumentDate(v)
	return _c
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableDocumentDate(v *string) *PremiumRecordCreate {
	if v != nil {
		_c.SetDocumentDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PremiumRecordCreate) SetID(v uuid.UUID) *PremiumRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableID(v *uuid.UUID) *PremiumRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PremiumRecordMutation object of the builder.
func (_c *PremiumRecordCreate) Mutation() *PremiumRecordMutation {
	return _c.mutation
}

// Save creates the PremiumRecord in the database.
func (_c *PremiumRecordCreate) Save(ctx context.Context) (*PremiumRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PremiumRecordCreate) SaveX(ctx context.Context) *PremiumRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PremiumRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PremiumRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PremiumRecordCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := premiumrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PremiumRecordCreate) check() error {
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "PremiumRecord.policy_number"`)}
	}
	if _, ok := _c.mutation.SourceDocument(); !ok {
		return &ValidationError{Name: "source_document", err: errors.New(`ent: missing required field "PremiumRecord.source_document"`)}
	}
	if v, ok := _c.mutation.SourceDocument(); ok {
		if err := premiumrecord.SourceDocumentValidator(v); err != nil {
			return &ValidationError{Name: "source_document", err: fmt.Errorf(`ent: validator failed for field "PremiumRecord.source_document": %w`, err)}
		}
	}
	return nil
}

func (_c *PremiumRecordCreate) sqlSave(ctx context.Context) (*PremiumRecord, error) {
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

func (_c *PremiumRecordCreate) createSpec() (*PremiumRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PremiumRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(premiumrecord.Table, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(premiumrecord.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(premiumrecord.FieldDueDate, field.TypeString, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.PremiumAmount(); ok {
		_spec.SetField(premiumrecord.FieldPremiumAmount, field.TypeFloat64, value)
		_node.PremiumAmount = &value
	}
	if value, ok := _c.mutation.GstAmount(); ok {
		_spec.SetField(premiumrecord.FieldGstAmount, field.TypeFloat64, value)
		_node.GstAmount = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(premiumrecord.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.DueCount(); ok {
		_spec.SetField(premiumrecord.FieldDueCount, field.TypeInt, value)
		_node.DueCount = &value
	}
	if value, ok := _c.mutation.EstimatedCommission(); ok {
		_spec.SetField(premiumrecord.FieldEstimatedCommission, field.TypeFloat64, value)
		_node.EstimatedCommission = &value
	}
	if value, ok := _c.mutation.AgentCode(); ok {
		_spec.SetField(premiumrecord.FieldAgentCode, field.TypeString, value)
		_node.AgentCode = &value
	}
	if value, ok := _c.mutation.SourceDocument(); ok {
		_spec.SetField(premiumrecord.FieldSourceDocument, field.TypeString, value)
		_node.SourceDocument = value
	}
	if value, ok := _c.mutation.DocumentDate(); ok {
		_spec.SetField(premiumrecord.FieldDocumentDate, field.TypeString, value)
		_node.DocumentDate = &value
	}
	return _node, _spec
}

// PremiumRecordCreateBulk is the builder for creating many PremiumRecord entities in bulk.
type PremiumRecordCreateBulk struct {
	config
	err      error
	builders []*PremiumRecordCreate
}

// Save creates the PremiumRecord entities in the database.
func (_c *PremiumRecordCreateBulk) Save(ctx context.Context) ([]*PremiumRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PremiumRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PremiumRecordMutation)
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
func (_c *PremiumRecordCreateBulk) SaveX(ctx context.Context) []*PremiumRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PremiumRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PremiumRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
