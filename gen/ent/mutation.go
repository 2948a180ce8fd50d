// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCustomer         = "Customer"
	TypeIngestedDocument = "IngestedDocument"
	TypeInsurancePolicy  = "InsurancePolicy"
	TypePremiumRecord    = "PremiumRecord"
)

// CustomerMutation represents an operation that mutates the Customer nodes in the graph.
type CustomerMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	phone             *string
	email             *string
	address           *string
	extraction_method *string
	created_at        *string
	updated_at        *string
	clearedFields     map[string]struct{}
	policies          map[uuid.UUID]struct{}
	removedpolicies   map[uuid.UUID]struct{}
	clearedpolicies   bool
	done              bool
	oldValue          func(context.Context) (*Customer, error)
	predicates        []predicate.Customer
}

var _ ent.Mutation = (*CustomerMutation)(nil)

// customerOption allows management of the mutation configuration using functional options.
type customerOption func(*CustomerMutation)

// newCustomerMutation creates new mutation for the Customer entity.
func newCustomerMutation(c config, op Op, opts ...customerOption) *CustomerMutation {
	m := &CustomerMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomerID sets the ID field of the mutation.
func withCustomerID(id uuid.UUID) customerOption {
	return func(m *CustomerMutation) {
		var (
			err   error
			once  sync.Once
			value *Customer
		)
		m.oldValue = func(ctx context.Context) (*Customer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Customer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomer sets the old Customer of the mutation.
func withCustomer(node *Customer) customerOption {
	return func(m *CustomerMutation) {
		m.oldValue = func(context.Context) (*Customer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Customer entities.
func (m *CustomerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Customer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CustomerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CustomerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CustomerMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *CustomerMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CustomerMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CustomerMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[customer.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CustomerMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[customer.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CustomerMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, customer.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *CustomerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CustomerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CustomerMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[customer.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CustomerMutation) EmailCleared() bool {
	_, ok := m.clearedFields[customer.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CustomerMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, customer.FieldEmail)
}

// SetAddress sets the "address" field.
func (m *CustomerMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *CustomerMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *CustomerMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[customer.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *CustomerMutation) AddressCleared() bool {
	_, ok := m.clearedFields[customer.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *CustomerMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, customer.FieldAddress)
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *CustomerMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *CustomerMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *CustomerMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomerMutation) SetCreatedAt(s string) {
	m.created_at = &s
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomerMutation) CreatedAt() (r string, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldCreatedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ClearCreatedAt clears the value of the "created_at" field.
func (m *CustomerMutation) ClearCreatedAt() {
	m.created_at = nil
	m.clearedFields[customer.FieldCreatedAt] = struct{}{}
}

// CreatedAtCleared returns if the "created_at" field was cleared in this mutation.
func (m *CustomerMutation) CreatedAtCleared() bool {
	_, ok := m.clearedFields[customer.FieldCreatedAt]
	return ok
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomerMutation) ResetCreatedAt() {
	m.created_at = nil
	delete(m.clearedFields, customer.FieldCreatedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomerMutation) SetUpdatedAt(s string) {
	m.updated_at = &s
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomerMutation) UpdatedAt() (r string, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldUpdatedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (m *CustomerMutation) ClearUpdatedAt() {
	m.updated_at = nil
	m.clearedFields[customer.FieldUpdatedAt] = struct{}{}
}

// UpdatedAtCleared returns if the "updated_at" field was cleared in this mutation.
func (m *CustomerMutation) UpdatedAtCleared() bool {
	_, ok := m.clearedFields[customer.FieldUpdatedAt]
	return ok
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomerMutation) ResetUpdatedAt() {
	m.updated_at = nil
	delete(m.clearedFields, customer.FieldUpdatedAt)
}

// AddPolicyIDs adds the "policies" edge to the InsurancePolicy entity by ids.
func (m *CustomerMutation) AddPolicyIDs(ids ...uuid.UUID) {
	if m.policies == nil {
		m.policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.policies[ids[i]] = struct{}{}
	}
}

// ClearPolicies clears the "policies" edge to the InsurancePolicy entity.
func (m *CustomerMutation) ClearPolicies() {
	m.clearedpolicies = true
}

// PoliciesCleared reports if the "policies" edge to the InsurancePolicy entity was cleared.
func (m *CustomerMutation) PoliciesCleared() bool {
	return m.clearedpolicies
}

// RemovePolicyIDs removes the "policies" edge to the InsurancePolicy entity by IDs.
func (m *CustomerMutation) RemovePolicyIDs(ids ...uuid.UUID) {
	if m.removedpolicies == nil {
		m.removedpolicies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.policies, ids[i])
		m.removedpolicies[ids[i]] = struct{}{}
	}
}

// RemovedPolicies returns the removed IDs of the "policies" edge to the InsurancePolicy entity.
func (m *CustomerMutation) RemovedPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.removedpolicies {
		ids = append(ids, id)
	}
	return
}

// PoliciesIDs returns the "policies" edge IDs in the mutation.
func (m *CustomerMutation) PoliciesIDs() (ids []uuid.UUID) {
	for id := range m.policies {
		ids = append(ids, id)
	}
	return
}

// ResetPolicies resets all changes to the "policies" edge.
func (m *CustomerMutation) ResetPolicies() {
	m.policies = nil
	m.clearedpolicies = false
	m.removedpolicies = nil
}

// Where appends a list predicates to the CustomerMutation builder.
func (m *CustomerMutation) Where(ps ...predicate.Customer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Customer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Customer).
func (m *CustomerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, customer.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, customer.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, customer.FieldEmail)
	}
	if m.address != nil {
		fields = append(fields, customer.FieldAddress)
	}
	if m.extraction_method != nil {
		fields = append(fields, customer.FieldExtractionMethod)
	}
	if m.created_at != nil {
		fields = append(fields, customer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customer.FieldName:
		return m.Name()
	case customer.FieldPhone:
		return m.Phone()
	case customer.FieldEmail:
		return m.Email()
	case customer.FieldAddress:
		return m.Address()
	case customer.FieldExtractionMethod:
		return m.ExtractionMethod()
	case customer.FieldCreatedAt:
		return m.CreatedAt()
	case customer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customer.FieldName:
		return m.OldName(ctx)
	case customer.FieldPhone:
		return m.OldPhone(ctx)
	case customer.FieldEmail:
		return m.OldEmail(ctx)
	case customer.FieldAddress:
		return m.OldAddress(ctx)
	case customer.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case customer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Customer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case customer.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case customer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case customer.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case customer.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case customer.FieldCreatedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customer.FieldUpdatedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customer.FieldPhone) {
		fields = append(fields, customer.FieldPhone)
	}
	if m.FieldCleared(customer.FieldEmail) {
		fields = append(fields, customer.FieldEmail)
	}
	if m.FieldCleared(customer.FieldAddress) {
		fields = append(fields, customer.FieldAddress)
	}
	if m.FieldCleared(customer.FieldCreatedAt) {
		fields = append(fields, customer.FieldCreatedAt)
	}
	if m.FieldCleared(customer.FieldUpdatedAt) {
		fields = append(fields, customer.FieldUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomerMutation) ClearField(name string) error {
	switch name {
	case customer.FieldPhone:
		m.ClearPhone()
		return nil
	case customer.FieldEmail:
		m.ClearEmail()
		return nil
	case customer.FieldAddress:
		m.ClearAddress()
		return nil
	case customer.FieldCreatedAt:
		m.ClearCreatedAt()
		return nil
	case customer.FieldUpdatedAt:
		m.ClearUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Customer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomerMutation) ResetField(name string) error {
	switch name {
	case customer.FieldName:
		m.ResetName()
		return nil
	case customer.FieldPhone:
		m.ResetPhone()
		return nil
	case customer.FieldEmail:
		m.ResetEmail()
		return nil
	case customer.FieldAddress:
		m.ResetAddress()
		return nil
	case customer.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case customer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.policies != nil {
		edges = append(edges, customer.EdgePolicies)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.policies))
		for id := range m.policies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpolicies != nil {
		edges = append(edges, customer.EdgePolicies)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.removedpolicies))
		for id := range m.removedpolicies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpolicies {
		edges = append(edges, customer.EdgePolicies)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomerMutation) EdgeCleared(name string) bool {
	switch name {
	case customer.EdgePolicies:
		return m.clearedpolicies
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomerMutation) ResetEdge(name string) error {
	switch name {
	case customer.EdgePolicies:
		m.ResetPolicies()
		return nil
	}
	return fmt.Errorf("unknown Customer edge %s", name)
}

// IngestedDocumentMutation represents an operation that mutates the IngestedDocument nodes in the graph.
type IngestedDocumentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	file_name            *string
	file_path            *string
	document_type        *string
	content_hash         *string
	document_date        *string
	policy_numbers       *[]string
	appendpolicy_numbers []string
	processed_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*IngestedDocument, error)
	predicates           []predicate.IngestedDocument
}

var _ ent.Mutation = (*IngestedDocumentMutation)(nil)

// ingesteddocumentOption allows management of the mutation configuration using functional options.
type ingesteddocumentOption func(*IngestedDocumentMutation)

// newIngestedDocumentMutation creates new mutation for the IngestedDocument entity.
func newIngestedDocumentMutation(c config, op Op, opts ...ingesteddocumentOption) *IngestedDocumentMutation {
	m := &IngestedDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestedDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestedDocumentID sets the ID field of the mutation.
func withIngestedDocumentID(id uuid.UUID) ingesteddocumentOption {
	return func(m *IngestedDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestedDocument
		)
		m.oldValue = func(ctx context.Context) (*IngestedDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestedDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestedDocument sets the old IngestedDocument of the mutation.
func withIngestedDocument(node *IngestedDocument) ingesteddocumentOption {
	return func(m *IngestedDocumentMutation) {
		m.oldValue = func(context.Context) (*IngestedDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestedDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestedDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestedDocument entities.
func (m *IngestedDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestedDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestedDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestedDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileName sets the "file_name" field.
func (m *IngestedDocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *IngestedDocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *IngestedDocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *IngestedDocumentMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *IngestedDocumentMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *IngestedDocumentMutation) ResetFilePath() {
	m.file_path = nil
}

// SetDocumentType sets the "document_type" field.
func (m *IngestedDocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *IngestedDocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *IngestedDocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetContentHash sets the "content_hash" field.
func (m *IngestedDocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *IngestedDocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *IngestedDocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[ingesteddocument.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *IngestedDocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[ingesteddocument.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *IngestedDocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, ingesteddocument.FieldContentHash)
}

// SetDocumentDate sets the "document_date" field.
func (m *IngestedDocumentMutation) SetDocumentDate(s string) {
	m.document_date = &s
}

// DocumentDate returns the value of the "document_date" field in the mutation.
func (m *IngestedDocumentMutation) DocumentDate() (r string, exists bool) {
	v := m.document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentDate returns the old "document_date" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldDocumentDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentDate: %w", err)
	}
	return oldValue.DocumentDate, nil
}

// ClearDocumentDate clears the value of the "document_date" field.
func (m *IngestedDocumentMutation) ClearDocumentDate() {
	m.document_date = nil
	m.clearedFields[ingesteddocument.FieldDocumentDate] = struct{}{}
}

// DocumentDateCleared returns if the "document_date" field was cleared in this mutation.
func (m *IngestedDocumentMutation) DocumentDateCleared() bool {
	_, ok := m.clearedFields[ingesteddocument.FieldDocumentDate]
	return ok
}

// ResetDocumentDate resets all changes to the "document_date" field.
func (m *IngestedDocumentMutation) ResetDocumentDate() {
	m.document_date = nil
	delete(m.clearedFields, ingesteddocument.FieldDocumentDate)
}

// SetPolicyNumbers sets the "policy_numbers" field.
func (m *IngestedDocumentMutation) SetPolicyNumbers(s []string) {
	m.policy_numbers = &s
	m.appendpolicy_numbers = nil
}

// PolicyNumbers returns the value of the "policy_numbers" field in the mutation.
func (m *IngestedDocumentMutation) PolicyNumbers() (r []string, exists bool) {
	v := m.policy_numbers
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumbers returns the old "policy_numbers" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldPolicyNumbers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumbers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumbers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumbers: %w", err)
	}
	return oldValue.PolicyNumbers, nil
}

// AppendPolicyNumbers adds s to the "policy_numbers" field.
func (m *IngestedDocumentMutation) AppendPolicyNumbers(s []string) {
	m.appendpolicy_numbers = append(m.appendpolicy_numbers, s...)
}

// AppendedPolicyNumbers returns the list of values that were appended to the "policy_numbers" field in this mutation.
func (m *IngestedDocumentMutation) AppendedPolicyNumbers() ([]string, bool) {
	if len(m.appendpolicy_numbers) == 0 {
		return nil, false
	}
	return m.appendpolicy_numbers, true
}

// ClearPolicyNumbers clears the value of the "policy_numbers" field.
func (m *IngestedDocumentMutation) ClearPolicyNumbers() {
	m.policy_numbers = nil
	m.appendpolicy_numbers = nil
	m.clearedFields[ingesteddocument.FieldPolicyNumbers] = struct{}{}
}

// PolicyNumbersCleared returns if the "policy_numbers" field was cleared in this mutation.
func (m *IngestedDocumentMutation) PolicyNumbersCleared() bool {
	_, ok := m.clearedFields[ingesteddocument.FieldPolicyNumbers]
	return ok
}

// ResetPolicyNumbers resets all changes to the "policy_numbers" field.
func (m *IngestedDocumentMutation) ResetPolicyNumbers() {
	m.policy_numbers = nil
	m.appendpolicy_numbers = nil
	delete(m.clearedFields, ingesteddocument.FieldPolicyNumbers)
}

// SetProcessedAt sets the "processed_at" field.
func (m *IngestedDocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *IngestedDocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the IngestedDocument entity.
// If the IngestedDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestedDocumentMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *IngestedDocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// Where appends a list predicates to the IngestedDocumentMutation builder.
func (m *IngestedDocumentMutation) Where(ps ...predicate.IngestedDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestedDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestedDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestedDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestedDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestedDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestedDocument).
func (m *IngestedDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestedDocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.file_name != nil {
		fields = append(fields, ingesteddocument.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, ingesteddocument.FieldFilePath)
	}
	if m.document_type != nil {
		fields = append(fields, ingesteddocument.FieldDocumentType)
	}
	if m.content_hash != nil {
		fields = append(fields, ingesteddocument.FieldContentHash)
	}
	if m.document_date != nil {
		fields = append(fields, ingesteddocument.FieldDocumentDate)
	}
	if m.policy_numbers != nil {
		fields = append(fields, ingesteddocument.FieldPolicyNumbers)
	}
	if m.processed_at != nil {
		fields = append(fields, ingesteddocument.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestedDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingesteddocument.FieldFileName:
		return m.FileName()
	case ingesteddocument.FieldFilePath:
		return m.FilePath()
	case ingesteddocument.FieldDocumentType:
		return m.DocumentType()
	case ingesteddocument.FieldContentHash:
		return m.ContentHash()
	case ingesteddocument.FieldDocumentDate:
		return m.DocumentDate()
	case ingesteddocument.FieldPolicyNumbers:
		return m.PolicyNumbers()
	case ingesteddocument.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestedDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingesteddocument.FieldFileName:
		return m.OldFileName(ctx)
	case ingesteddocument.FieldFilePath:
		return m.OldFilePath(ctx)
	case ingesteddocument.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case ingesteddocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case ingesteddocument.FieldDocumentDate:
		return m.OldDocumentDate(ctx)
	case ingesteddocument.FieldPolicyNumbers:
		return m.OldPolicyNumbers(ctx)
	case ingesteddocument.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestedDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestedDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingesteddocument.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case ingesteddocument.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case ingesteddocument.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case ingesteddocument.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case ingesteddocument.FieldDocumentDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentDate(v)
		return nil
	case ingesteddocument.FieldPolicyNumbers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumbers(v)
		return nil
	case ingesteddocument.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestedDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestedDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestedDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestedDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IngestedDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestedDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingesteddocument.FieldContentHash) {
		fields = append(fields, ingesteddocument.FieldContentHash)
	}
	if m.FieldCleared(ingesteddocument.FieldDocumentDate) {
		fields = append(fields, ingesteddocument.FieldDocumentDate)
	}
	if m.FieldCleared(ingesteddocument.FieldPolicyNumbers) {
		fields = append(fields, ingesteddocument.FieldPolicyNumbers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestedDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestedDocumentMutation) ClearField(name string) error {
	switch name {
	case ingesteddocument.FieldContentHash:
		m.ClearContentHash()
		return nil
	case ingesteddocument.FieldDocumentDate:
		m.ClearDocumentDate()
		return nil
	case ingesteddocument.FieldPolicyNumbers:
		m.ClearPolicyNumbers()
		return nil
	}
	return fmt.Errorf("unknown IngestedDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestedDocumentMutation) ResetField(name string) error {
	switch name {
	case ingesteddocument.FieldFileName:
		m.ResetFileName()
		return nil
	case ingesteddocument.FieldFilePath:
		m.ResetFilePath()
		return nil
	case ingesteddocument.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case ingesteddocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case ingesteddocument.FieldDocumentDate:
		m.ResetDocumentDate()
		return nil
	case ingesteddocument.FieldPolicyNumbers:
		m.ResetPolicyNumbers()
		return nil
	case ingesteddocument.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestedDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestedDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestedDocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestedDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestedDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestedDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestedDocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestedDocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestedDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestedDocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestedDocument edge %s", name)
}

// InsurancePolicyMutation represents an operation that mutates the InsurancePolicy nodes in the graph.
type InsurancePolicyMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	policy_number        *string
	agent_code           *string
	plan_name            *string
	date_of_commencement *string
	payment_period       *string
	current_fup_date     *string
	premium_amount       *float64
	addpremium_amount    *float64
	sum_assured          *float64
	addsum_assured       *float64
	status               *string
	extraction_method    *string
	created_at           *string
	updated_at           *string
	clearedFields        map[string]struct{}
	customer             *uuid.UUID
	clearedcustomer      bool
	done                 bool
	oldValue             func(context.Context) (*InsurancePolicy, error)
	predicates           []predicate.InsurancePolicy
}

var _ ent.Mutation = (*InsurancePolicyMutation)(nil)

// insurancepolicyOption allows management of the mutation configuration using functional options.
type insurancepolicyOption func(*InsurancePolicyMutation)

// newInsurancePolicyMutation creates new mutation for the InsurancePolicy entity.
func newInsurancePolicyMutation(c config, op Op, opts ...insurancepolicyOption) *InsurancePolicyMutation {
	m := &InsurancePolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeInsurancePolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsurancePolicyID sets the ID field of the mutation.
func withInsurancePolicyID(id uuid.UUID) insurancepolicyOption {
	return func(m *InsurancePolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *InsurancePolicy
		)
		m.oldValue = func(ctx context.Context) (*InsurancePolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InsurancePolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsurancePolicy sets the old InsurancePolicy of the mutation.
func withInsurancePolicy(node *InsurancePolicy) insurancepolicyOption {
	return func(m *InsurancePolicyMutation) {
		m.oldValue = func(context.Context) (*InsurancePolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsurancePolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsurancePolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InsurancePolicy entities.
func (m *InsurancePolicyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsurancePolicyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsurancePolicyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InsurancePolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPolicyNumber sets the "policy_number" field.
func (m *InsurancePolicyMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *InsurancePolicyMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *InsurancePolicyMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *InsurancePolicyMutation) SetCustomerID(u uuid.UUID) {
	m.customer = &u
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *InsurancePolicyMutation) CustomerID() (r uuid.UUID, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldCustomerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *InsurancePolicyMutation) ResetCustomerID() {
	m.customer = nil
}

// SetAgentCode sets the "agent_code" field.
func (m *InsurancePolicyMutation) SetAgentCode(s string) {
	m.agent_code = &s
}

// AgentCode returns the value of the "agent_code" field in the mutation.
func (m *InsurancePolicyMutation) AgentCode() (r string, exists bool) {
	v := m.agent_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentCode returns the old "agent_code" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldAgentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentCode: %w", err)
	}
	return oldValue.AgentCode, nil
}

// ClearAgentCode clears the value of the "agent_code" field.
func (m *InsurancePolicyMutation) ClearAgentCode() {
	m.agent_code = nil
	m.clearedFields[insurancepolicy.FieldAgentCode] = struct{}{}
}

// AgentCodeCleared returns if the "agent_code" field was cleared in this mutation.
func (m *InsurancePolicyMutation) AgentCodeCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldAgentCode]
	return ok
}

// ResetAgentCode resets all changes to the "agent_code" field.
func (m *InsurancePolicyMutation) ResetAgentCode() {
	m.agent_code = nil
	delete(m.clearedFields, insurancepolicy.FieldAgentCode)
}

// SetPlanName sets the "plan_name" field.
func (m *InsurancePolicyMutation) SetPlanName(s string) {
	m.plan_name = &s
}

// PlanName returns the value of the "plan_name" field in the mutation.
func (m *InsurancePolicyMutation) PlanName() (r string, exists bool) {
	v := m.plan_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanName returns the old "plan_name" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPlanName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanName: %w", err)
	}
	return oldValue.PlanName, nil
}

// ClearPlanName clears the value of the "plan_name" field.
func (m *InsurancePolicyMutation) ClearPlanName() {
	m.plan_name = nil
	m.clearedFields[insurancepolicy.FieldPlanName] = struct{}{}
}

// PlanNameCleared returns if the "plan_name" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PlanNameCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPlanName]
	return ok
}

// ResetPlanName resets all changes to the "plan_name" field.
func (m *InsurancePolicyMutation) ResetPlanName() {
	m.plan_name = nil
	delete(m.clearedFields, insurancepolicy.FieldPlanName)
}

// SetDateOfCommencement sets the "date_of_commencement" field.
func (m *InsurancePolicyMutation) SetDateOfCommencement(s string) {
	m.date_of_commencement = &s
}

// DateOfCommencement returns the value of the "date_of_commencement" field in the mutation.
func (m *InsurancePolicyMutation) DateOfCommencement() (r string, exists bool) {
	v := m.date_of_commencement
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfCommencement returns the old "date_of_commencement" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldDateOfCommencement(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfCommencement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfCommencement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfCommencement: %w", err)
	}
	return oldValue.DateOfCommencement, nil
}

// ClearDateOfCommencement clears the value of the "date_of_commencement" field.
func (m *InsurancePolicyMutation) ClearDateOfCommencement() {
	m.date_of_commencement = nil
	m.clearedFields[insurancepolicy.FieldDateOfCommencement] = struct{}{}
}

// DateOfCommencementCleared returns if the "date_of_commencement" field was cleared in this mutation.
func (m *InsurancePolicyMutation) DateOfCommencementCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldDateOfCommencement]
	return ok
}

// ResetDateOfCommencement resets all changes to the "date_of_commencement" field.
func (m *InsurancePolicyMutation) ResetDateOfCommencement() {
	m.date_of_commencement = nil
	delete(m.clearedFields, insurancepolicy.FieldDateOfCommencement)
}

// SetPaymentPeriod sets the "payment_period" field.
func (m *InsurancePolicyMutation) SetPaymentPeriod(s string) {
	m.payment_period = &s
}

// PaymentPeriod returns the value of the "payment_period" field in the mutation.
func (m *InsurancePolicyMutation) PaymentPeriod() (r string, exists bool) {
	v := m.payment_period
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentPeriod returns the old "payment_period" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPaymentPeriod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentPeriod: %w", err)
	}
	return oldValue.PaymentPeriod, nil
}

// ClearPaymentPeriod clears the value of the "payment_period" field.
func (m *InsurancePolicyMutation) ClearPaymentPeriod() {
	m.payment_period = nil
	m.clearedFields[insurancepolicy.FieldPaymentPeriod] = struct{}{}
}

// PaymentPeriodCleared returns if the "payment_period" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PaymentPeriodCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPaymentPeriod]
	return ok
}

// ResetPaymentPeriod resets all changes to the "payment_period" field.
func (m *InsurancePolicyMutation) ResetPaymentPeriod() {
	m.payment_period = nil
	delete(m.clearedFields, insurancepolicy.FieldPaymentPeriod)
}

// SetCurrentFupDate sets the "current_fup_date" field.
func (m *InsurancePolicyMutation) SetCurrentFupDate(s string) {
	m.current_fup_date = &s
}

// CurrentFupDate returns the value of the "current_fup_date" field in the mutation.
func (m *InsurancePolicyMutation) CurrentFupDate() (r string, exists bool) {
	v := m.current_fup_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentFupDate returns the old "current_fup_date" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldCurrentFupDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentFupDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentFupDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentFupDate: %w", err)
	}
	return oldValue.CurrentFupDate, nil
}

// ClearCurrentFupDate clears the value of the "current_fup_date" field.
func (m *InsurancePolicyMutation) ClearCurrentFupDate() {
	m.current_fup_date = nil
	m.clearedFields[insurancepolicy.FieldCurrentFupDate] = struct{}{}
}

// CurrentFupDateCleared returns if the "current_fup_date" field was cleared in this mutation.
func (m *InsurancePolicyMutation) CurrentFupDateCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldCurrentFupDate]
	return ok
}

// ResetCurrentFupDate resets all changes to the "current_fup_date" field.
func (m *InsurancePolicyMutation) ResetCurrentFupDate() {
	m.current_fup_date = nil
	delete(m.clearedFields, insurancepolicy.FieldCurrentFupDate)
}

// SetPremiumAmount sets the "premium_amount" field.
func (m *InsurancePolicyMutation) SetPremiumAmount(f float64) {
	m.premium_amount = &f
	m.addpremium_amount = nil
}

// PremiumAmount returns the value of the "premium_amount" field in the mutation.
func (m *InsurancePolicyMutation) PremiumAmount() (r float64, exists bool) {
	v := m.premium_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiumAmount returns the old "premium_amount" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPremiumAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiumAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiumAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiumAmount: %w", err)
	}
	return oldValue.PremiumAmount, nil
}

// AddPremiumAmount adds f to the "premium_amount" field.
func (m *InsurancePolicyMutation) AddPremiumAmount(f float64) {
	if m.addpremium_amount != nil {
		*m.addpremium_amount += f
	} else {
		m.addpremium_amount = &f
	}
}

// AddedPremiumAmount returns the value that was added to the "premium_amount" field in this mutation.
func (m *InsurancePolicyMutation) AddedPremiumAmount() (r float64, exists bool) {
	v := m.addpremium_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (m *InsurancePolicyMutation) ClearPremiumAmount() {
	m.premium_amount = nil
	m.addpremium_amount = nil
	m.clearedFields[insurancepolicy.FieldPremiumAmount] = struct{}{}
}

// PremiumAmountCleared returns if the "premium_amount" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PremiumAmountCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPremiumAmount]
	return ok
}

// ResetPremiumAmount resets all changes to the "premium_amount" field.
func (m *InsurancePolicyMutation) ResetPremiumAmount() {
	m.premium_amount = nil
	m.addpremium_amount = nil
	delete(m.clearedFields, insurancepolicy.FieldPremiumAmount)
}

// SetSumAssured sets the "sum_assured" field.
func (m *InsurancePolicyMutation) SetSumAssured(f float64) {
	m.sum_assured = &f
	m.addsum_assured = nil
}

// SumAssured returns the value of the "sum_assured" field in the mutation.
func (m *InsurancePolicyMutation) SumAssured() (r float64, exists bool) {
	v := m.sum_assured
	if v == nil {
		return
	}
	return *v, true
}

// OldSumAssured returns the old "sum_assured" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldSumAssured(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSumAssured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSumAssured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSumAssured: %w", err)
	}
	return oldValue.SumAssured, nil
}

// AddSumAssured adds f to the "sum_assured" field.
func (m *InsurancePolicyMutation) AddSumAssured(f float64) {
	if m.addsum_assured != nil {
		*m.addsum_assured += f
	} else {
		m.addsum_assured = &f
	}
}

// AddedSumAssured returns the value that was added to the "sum_assured" field in this mutation.
func (m *InsurancePolicyMutation) AddedSumAssured() (r float64, exists bool) {
	v := m.addsum_assured
	if v == nil {
		return
	}
	return *v, true
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (m *InsurancePolicyMutation) ClearSumAssured() {
	m.sum_assured = nil
	m.addsum_assured = nil
	m.clearedFields[insurancepolicy.FieldSumAssured] = struct{}{}
}

// SumAssuredCleared returns if the "sum_assured" field was cleared in this mutation.
func (m *InsurancePolicyMutation) SumAssuredCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldSumAssured]
	return ok
}

// ResetSumAssured resets all changes to the "sum_assured" field.
func (m *InsurancePolicyMutation) ResetSumAssured() {
	m.sum_assured = nil
	m.addsum_assured = nil
	delete(m.clearedFields, insurancepolicy.FieldSumAssured)
}

// SetStatus sets the "status" field.
func (m *InsurancePolicyMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InsurancePolicyMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InsurancePolicyMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *InsurancePolicyMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *InsurancePolicyMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *InsurancePolicyMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsurancePolicyMutation) SetCreatedAt(s string) {
	m.created_at = &s
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsurancePolicyMutation) CreatedAt() (r string, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldCreatedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ClearCreatedAt clears the value of the "created_at" field.
func (m *InsurancePolicyMutation) ClearCreatedAt() {
	m.created_at = nil
	m.clearedFields[insurancepolicy.FieldCreatedAt] = struct{}{}
}

// CreatedAtCleared returns if the "created_at" field was cleared in this mutation.
func (m *InsurancePolicyMutation) CreatedAtCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldCreatedAt]
	return ok
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsurancePolicyMutation) ResetCreatedAt() {
	m.created_at = nil
	delete(m.clearedFields, insurancepolicy.FieldCreatedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InsurancePolicyMutation) SetUpdatedAt(s string) {
	m.updated_at = &s
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InsurancePolicyMutation) UpdatedAt() (r string, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldUpdatedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (m *InsurancePolicyMutation) ClearUpdatedAt() {
	m.updated_at = nil
	m.clearedFields[insurancepolicy.FieldUpdatedAt] = struct{}{}
}

// UpdatedAtCleared returns if the "updated_at" field was cleared in this mutation.
func (m *InsurancePolicyMutation) UpdatedAtCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldUpdatedAt]
	return ok
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InsurancePolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
	delete(m.clearedFields, insurancepolicy.FieldUpdatedAt)
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *InsurancePolicyMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[insurancepolicy.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *InsurancePolicyMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *InsurancePolicyMutation) CustomerIDs() (ids []uuid.UUID) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *InsurancePolicyMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// Where appends a list predicates to the InsurancePolicyMutation builder.
func (m *InsurancePolicyMutation) Where(ps ...predicate.InsurancePolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsurancePolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsurancePolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InsurancePolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsurancePolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsurancePolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InsurancePolicy).
func (m *InsurancePolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsurancePolicyMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.policy_number != nil {
		fields = append(fields, insurancepolicy.FieldPolicyNumber)
	}
	if m.customer != nil {
		fields = append(fields, insurancepolicy.FieldCustomerID)
	}
	if m.agent_code != nil {
		fields = append(fields, insurancepolicy.FieldAgentCode)
	}
	if m.plan_name != nil {
		fields = append(fields, insurancepolicy.FieldPlanName)
	}
	if m.date_of_commencement != nil {
		fields = append(fields, insurancepolicy.FieldDateOfCommencement)
	}
	if m.payment_period != nil {
		fields = append(fields, insurancepolicy.FieldPaymentPeriod)
	}
	if m.current_fup_date != nil {
		fields = append(fields, insurancepolicy.FieldCurrentFupDate)
	}
	if m.premium_amount != nil {
		fields = append(fields, insurancepolicy.FieldPremiumAmount)
	}
	if m.sum_assured != nil {
		fields = append(fields, insurancepolicy.FieldSumAssured)
	}
	if m.status != nil {
		fields = append(fields, insurancepolicy.FieldStatus)
	}
	if m.extraction_method != nil {
		fields = append(fields, insurancepolicy.FieldExtractionMethod)
	}
	if m.created_at != nil {
		fields = append(fields, insurancepolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, insurancepolicy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsurancePolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		return m.PolicyNumber()
	case insurancepolicy.FieldCustomerID:
		return m.CustomerID()
	case insurancepolicy.FieldAgentCode:
		return m.AgentCode()
	case insurancepolicy.FieldPlanName:
		return m.PlanName()
	case insurancepolicy.FieldDateOfCommencement:
		return m.DateOfCommencement()
	case insurancepolicy.FieldPaymentPeriod:
		return m.PaymentPeriod()
	case insurancepolicy.FieldCurrentFupDate:
		return m.CurrentFupDate()
	case insurancepolicy.FieldPremiumAmount:
		return m.PremiumAmount()
	case insurancepolicy.FieldSumAssured:
		return m.SumAssured()
	case insurancepolicy.FieldStatus:
		return m.Status()
	case insurancepolicy.FieldExtractionMethod:
		return m.ExtractionMethod()
	case insurancepolicy.FieldCreatedAt:
		return m.CreatedAt()
	case insurancepolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsurancePolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case insurancepolicy.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case insurancepolicy.FieldAgentCode:
		return m.OldAgentCode(ctx)
	case insurancepolicy.FieldPlanName:
		return m.OldPlanName(ctx)
	case insurancepolicy.FieldDateOfCommencement:
		return m.OldDateOfCommencement(ctx)
	case insurancepolicy.FieldPaymentPeriod:
		return m.OldPaymentPeriod(ctx)
	case insurancepolicy.FieldCurrentFupDate:
		return m.OldCurrentFupDate(ctx)
	case insurancepolicy.FieldPremiumAmount:
		return m.OldPremiumAmount(ctx)
	case insurancepolicy.FieldSumAssured:
		return m.OldSumAssured(ctx)
	case insurancepolicy.FieldStatus:
		return m.OldStatus(ctx)
	case insurancepolicy.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case insurancepolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insurancepolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InsurancePolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsurancePolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case insurancepolicy.FieldCustomerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case insurancepolicy.FieldAgentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentCode(v)
		return nil
	case insurancepolicy.FieldPlanName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanName(v)
		return nil
	case insurancepolicy.FieldDateOfCommencement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfCommencement(v)
		return nil
	case insurancepolicy.FieldPaymentPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentPeriod(v)
		return nil
	case insurancepolicy.FieldCurrentFupDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentFupDate(v)
		return nil
	case insurancepolicy.FieldPremiumAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiumAmount(v)
		return nil
	case insurancepolicy.FieldSumAssured:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSumAssured(v)
		return nil
	case insurancepolicy.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case insurancepolicy.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case insurancepolicy.FieldCreatedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insurancepolicy.FieldUpdatedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsurancePolicyMutation) AddedFields() []string {
	var fields []string
	if m.addpremium_amount != nil {
		fields = append(fields, insurancepolicy.FieldPremiumAmount)
	}
	if m.addsum_assured != nil {
		fields = append(fields, insurancepolicy.FieldSumAssured)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsurancePolicyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insurancepolicy.FieldPremiumAmount:
		return m.AddedPremiumAmount()
	case insurancepolicy.FieldSumAssured:
		return m.AddedSumAssured()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsurancePolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insurancepolicy.FieldPremiumAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPremiumAmount(v)
		return nil
	case insurancepolicy.FieldSumAssured:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSumAssured(v)
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsurancePolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insurancepolicy.FieldAgentCode) {
		fields = append(fields, insurancepolicy.FieldAgentCode)
	}
	if m.FieldCleared(insurancepolicy.FieldPlanName) {
		fields = append(fields, insurancepolicy.FieldPlanName)
	}
	if m.FieldCleared(insurancepolicy.FieldDateOfCommencement) {
		fields = append(fields, insurancepolicy.FieldDateOfCommencement)
	}
	if m.FieldCleared(insurancepolicy.FieldPaymentPeriod) {
		fields = append(fields, insurancepolicy.FieldPaymentPeriod)
	}
	if m.FieldCleared(insurancepolicy.FieldCurrentFupDate) {
		fields = append(fields, insurancepolicy.FieldCurrentFupDate)
	}
	if m.FieldCleared(insurancepolicy.FieldPremiumAmount) {
		fields = append(fields, insurancepolicy.FieldPremiumAmount)
	}
	if m.FieldCleared(insurancepolicy.FieldSumAssured) {
		fields = append(fields, insurancepolicy.FieldSumAssured)
	}
	if m.FieldCleared(insurancepolicy.FieldCreatedAt) {
		fields = append(fields, insurancepolicy.FieldCreatedAt)
	}
	if m.FieldCleared(insurancepolicy.FieldUpdatedAt) {
		fields = append(fields, insurancepolicy.FieldUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsurancePolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsurancePolicyMutation) ClearField(name string) error {
	switch name {
	case insurancepolicy.FieldAgentCode:
		m.ClearAgentCode()
		return nil
	case insurancepolicy.FieldPlanName:
		m.ClearPlanName()
		return nil
	case insurancepolicy.FieldDateOfCommencement:
		m.ClearDateOfCommencement()
		return nil
	case insurancepolicy.FieldPaymentPeriod:
		m.ClearPaymentPeriod()
		return nil
	case insurancepolicy.FieldCurrentFupDate:
		m.ClearCurrentFupDate()
		return nil
	case insurancepolicy.FieldPremiumAmount:
		m.ClearPremiumAmount()
		return nil
	case insurancepolicy.FieldSumAssured:
		m.ClearSumAssured()
		return nil
	case insurancepolicy.FieldCreatedAt:
		m.ClearCreatedAt()
		return nil
	case insurancepolicy.FieldUpdatedAt:
		m.ClearUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsurancePolicyMutation) ResetField(name string) error {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case insurancepolicy.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case insurancepolicy.FieldAgentCode:
		m.ResetAgentCode()
		return nil
	case insurancepolicy.FieldPlanName:
		m.ResetPlanName()
		return nil
	case insurancepolicy.FieldDateOfCommencement:
		m.ResetDateOfCommencement()
		return nil
	case insurancepolicy.FieldPaymentPeriod:
		m.ResetPaymentPeriod()
		return nil
	case insurancepolicy.FieldCurrentFupDate:
		m.ResetCurrentFupDate()
		return nil
	case insurancepolicy.FieldPremiumAmount:
		m.ResetPremiumAmount()
		return nil
	case insurancepolicy.FieldSumAssured:
		m.ResetSumAssured()
		return nil
	case insurancepolicy.FieldStatus:
		m.ResetStatus()
		return nil
	case insurancepolicy.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case insurancepolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insurancepolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsurancePolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.customer != nil {
		edges = append(edges, insurancepolicy.EdgeCustomer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsurancePolicyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insurancepolicy.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsurancePolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsurancePolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsurancePolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcustomer {
		edges = append(edges, insurancepolicy.EdgeCustomer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsurancePolicyMutation) EdgeCleared(name string) bool {
	switch name {
	case insurancepolicy.EdgeCustomer:
		return m.clearedcustomer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsurancePolicyMutation) ClearEdge(name string) error {
	switch name {
	case insurancepolicy.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsurancePolicyMutation) ResetEdge(name string) error {
	switch name {
	case insurancepolicy.EdgeCustomer:
		m.ResetCustomer()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy edge %s", name)
}

// PremiumRecordMutation represents an operation that mutates the PremiumRecord nodes in the graph.
type PremiumRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	policy_number           *string
	due_date                *string
	premium_amount          *float64
	addpremium_amount       *float64
	gst_amount              *float64
	addgst_amount           *float64
	total_amount            *float64
	addtotal_amount         *float64
	due_count               *int
	adddue_count            *int
	estimated_commission    *float64
	addestimated_commission *float64
	agent_code              *string
	source_document         *string
	document_date           *string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*PremiumRecord, error)
	predicates              []predicate.PremiumRecord
}

var _ ent.Mutation = (*PremiumRecordMutation)(nil)

// premiumrecordOption allows management of the mutation configuration using functional options.
type premiumrecordOption func(*PremiumRecordMutation)

// newPremiumRecordMutation creates new mutation for the PremiumRecord entity.
func newPremiumRecordMutation(c config, op Op, opts ...premiumrecordOption) *PremiumRecordMutation {
	m := &PremiumRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePremiumRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPremiumRecordID sets the ID field of the mutation.
func withPremiumRecordID(id uuid.UUID) premiumrecordOption {
	return func(m *PremiumRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PremiumRecord
		)
		m.oldValue = func(ctx context.Context) (*PremiumRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PremiumRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPremiumRecord sets the old PremiumRecord of the mutation.
func withPremiumRecord(node *PremiumRecord) premiumrecordOption {
	return func(m *PremiumRecordMutation) {
		m.oldValue = func(context.Context) (*PremiumRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PremiumRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PremiumRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PremiumRecord entities.
func (m *PremiumRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PremiumRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PremiumRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PremiumRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPolicyNumber sets the "policy_number" field.
func (m *PremiumRecordMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *PremiumRecordMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *PremiumRecordMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetDueDate sets the "due_date" field.
func (m *PremiumRecordMutation) SetDueDate(s string) {
	m.due_date = &s
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *PremiumRecordMutation) DueDate() (r string, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldDueDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *PremiumRecordMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[premiumrecord.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *PremiumRecordMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *PremiumRecordMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, premiumrecord.FieldDueDate)
}

// SetPremiumAmount sets the "premium_amount" field.
func (m *PremiumRecordMutation) SetPremiumAmount(f float64) {
	m.premium_amount = &f
	m.addpremium_amount = nil
}

// PremiumAmount returns the value of the "premium_amount" field in the mutation.
func (m *PremiumRecordMutation) PremiumAmount() (r float64, exists bool) {
	v := m.premium_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiumAmount returns the old "premium_amount" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldPremiumAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiumAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiumAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiumAmount: %w", err)
	}
	return oldValue.PremiumAmount, nil
}

// AddPremiumAmount adds f to the "premium_amount" field.
func (m *PremiumRecordMutation) AddPremiumAmount(f float64) {
	if m.addpremium_amount != nil {
		*m.addpremium_amount += f
	} else {
		m.addpremium_amount = &f
	}
}

// AddedPremiumAmount returns the value that was added to the "premium_amount" field in this mutation.
func (m *PremiumRecordMutation) AddedPremiumAmount() (r float64, exists bool) {
	v := m.addpremium_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (m *PremiumRecordMutation) ClearPremiumAmount() {
	m.premium_amount = nil
	m.addpremium_amount = nil
	m.clearedFields[premiumrecord.FieldPremiumAmount] = struct{}{}
}

// PremiumAmountCleared returns if the "premium_amount" field was cleared in this mutation.
func (m *PremiumRecordMutation) PremiumAmountCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldPremiumAmount]
	return ok
}

// ResetPremiumAmount resets all changes to the "premium_amount" field.
func (m *PremiumRecordMutation) ResetPremiumAmount() {
	m.premium_amount = nil
	m.addpremium_amount = nil
	delete(m.clearedFields, premiumrecord.FieldPremiumAmount)
}

// SetGstAmount sets the "gst_amount" field.
func (m *PremiumRecordMutation) SetGstAmount(f float64) {
	m.gst_amount = &f
	m.addgst_amount = nil
}

// GstAmount returns the value of the "gst_amount" field in the mutation.
func (m *PremiumRecordMutation) GstAmount() (r float64, exists bool) {
	v := m.gst_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGstAmount returns the old "gst_amount" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldGstAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGstAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGstAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGstAmount: %w", err)
	}
	return oldValue.GstAmount, nil
}

// AddGstAmount adds f to the "gst_amount" field.
func (m *PremiumRecordMutation) AddGstAmount(f float64) {
	if m.addgst_amount != nil {
		*m.addgst_amount += f
	} else {
		m.addgst_amount = &f
	}
}

// AddedGstAmount returns the value that was added to the "gst_amount" field in this mutation.
func (m *PremiumRecordMutation) AddedGstAmount() (r float64, exists bool) {
	v := m.addgst_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearGstAmount clears the value of the "gst_amount" field.
func (m *PremiumRecordMutation) ClearGstAmount() {
	m.gst_amount = nil
	m.addgst_amount = nil
	m.clearedFields[premiumrecord.FieldGstAmount] = struct{}{}
}

// GstAmountCleared returns if the "gst_amount" field was cleared in this mutation.
func (m *PremiumRecordMutation) GstAmountCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldGstAmount]
	return ok
}

// ResetGstAmount resets all changes to the "gst_amount" field.
func (m *PremiumRecordMutation) ResetGstAmount() {
	m.gst_amount = nil
	m.addgst_amount = nil
	delete(m.clearedFields, premiumrecord.FieldGstAmount)
}

// SetTotalAmount sets the "total_amount" field.
func (m *PremiumRecordMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *PremiumRecordMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *PremiumRecordMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *PremiumRecordMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *PremiumRecordMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[premiumrecord.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *PremiumRecordMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *PremiumRecordMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, premiumrecord.FieldTotalAmount)
}

// SetDueCount sets the "due_count" field.
func (m *PremiumRecordMutation) SetDueCount(i int) {
	m.due_count = &i
	m.adddue_count = nil
}

// DueCount returns the value of the "due_count" field in the mutation.
func (m *PremiumRecordMutation) DueCount() (r int, exists bool) {
	v := m.due_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDueCount returns the old "due_count" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldDueCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueCount: %w", err)
	}
	return oldValue.DueCount, nil
}

// AddDueCount adds i to the "due_count" field.
func (m *PremiumRecordMutation) AddDueCount(i int) {
	if m.adddue_count != nil {
		*m.adddue_count += i
	} else {
		m.adddue_count = &i
	}
}

// AddedDueCount returns the value that was added to the "due_count" field in this mutation.
func (m *PremiumRecordMutation) AddedDueCount() (r int, exists bool) {
	v := m.adddue_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearDueCount clears the value of the "due_count" field.
func (m *PremiumRecordMutation) ClearDueCount() {
	m.due_count = nil
	m.adddue_count = nil
	m.clearedFields[premiumrecord.FieldDueCount] = struct{}{}
}

// DueCountCleared returns if the "due_count" field was cleared in this mutation.
func (m *PremiumRecordMutation) DueCountCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldDueCount]
	return ok
}

// ResetDueCount resets all changes to the "due_count" field.
func (m *PremiumRecordMutation) ResetDueCount() {
	m.due_count = nil
	m.adddue_count = nil
	delete(m.clearedFields, premiumrecord.FieldDueCount)
}

// SetEstimatedCommission sets the "estimated_commission" field.
func (m *PremiumRecordMutation) SetEstimatedCommission(f float64) {
	m.estimated_commission = &f
	m.addestimated_commission = nil
}

// EstimatedCommission returns the value of the "estimated_commission" field in the mutation.
func (m *PremiumRecordMutation) EstimatedCommission() (r float64, exists bool) {
	v := m.estimated_commission
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCommission returns the old "estimated_commission" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldEstimatedCommission(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCommission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCommission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCommission: %w", err)
	}
	return oldValue.EstimatedCommission, nil
}

// AddEstimatedCommission adds f to the "estimated_commission" field.
func (m *PremiumRecordMutation) AddEstimatedCommission(f float64) {
	if m.addestimated_commission != nil {
		*m.addestimated_commission += f
	} else {
		m.addestimated_commission = &f
	}
}

// AddedEstimatedCommission returns the value that was added to the "estimated_commission" field in this mutation.
func (m *PremiumRecordMutation) AddedEstimatedCommission() (r float64, exists bool) {
	v := m.addestimated_commission
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCommission clears the value of the "estimated_commission" field.
func (m *PremiumRecordMutation) ClearEstimatedCommission() {
	m.estimated_commission = nil
	m.addestimated_commission = nil
	m.clearedFields[premiumrecord.FieldEstimatedCommission] = struct{}{}
}

// EstimatedCommissionCleared returns if the "estimated_commission" field was cleared in this mutation.
func (m *PremiumRecordMutation) EstimatedCommissionCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldEstimatedCommission]
	return ok
}

// ResetEstimatedCommission resets all changes to the "estimated_commission" field.
func (m *PremiumRecordMutation) ResetEstimatedCommission() {
	m.estimated_commission = nil
	m.addestimated_commission = nil
	delete(m.clearedFields, premiumrecord.FieldEstimatedCommission)
}

// SetAgentCode sets the "agent_code" field.
func (m *PremiumRecordMutation) SetAgentCode(s string) {
	m.agent_code = &s
}

// AgentCode returns the value of the "agent_code" field in the mutation.
func (m *PremiumRecordMutation) AgentCode() (r string, exists bool) {
	v := m.agent_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentCode returns the old "agent_code" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldAgentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentCode: %w", err)
	}
	return oldValue.AgentCode, nil
}

// ClearAgentCode clears the value of the "agent_code" field.
func (m *PremiumRecordMutation) ClearAgentCode() {
	m.agent_code = nil
	m.clearedFields[premiumrecord.FieldAgentCode] = struct{}{}
}

// AgentCodeCleared returns if the "agent_code" field was cleared in this mutation.
func (m *PremiumRecordMutation) AgentCodeCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldAgentCode]
	return ok
}

// ResetAgentCode resets all changes to the "agent_code" field.
func (m *PremiumRecordMutation) ResetAgentCode() {
	m.agent_code = nil
	delete(m.clearedFields, premiumrecord.FieldAgentCode)
}

// SetSourceDocument sets the "source_document" field.
func (m *PremiumRecordMutation) SetSourceDocument(s string) {
	m.source_document = &s
}

// SourceDocument returns the value of the "source_document" field in the mutation.
func (m *PremiumRecordMutation) SourceDocument() (r string, exists bool) {
	v := m.source_document
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocument returns the old "source_document" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldSourceDocument(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocument: %w", err)
	}
	return oldValue.SourceDocument, nil
}

// ResetSourceDocument resets all changes to the "source_document" field.
func (m *PremiumRecordMutation) ResetSourceDocument() {
	m.source_document = nil
}

// SetDocumentDate sets the "document_date" field.
func (m *PremiumRecordMutation) SetDocumentDate(s string) {
	m.document_date = &s
}

// DocumentDate returns the value of the "document_date" field in the mutation.
func (m *PremiumRecordMutation) DocumentDate() (r string, exists bool) {
	v := m.document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentDate returns the old "document_date" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldDocumentDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentDate: %w", err)
	}
	return oldValue.DocumentDate, nil
}

// ClearDocumentDate clears the value of the "document_date" field.
func (m *PremiumRecordMutation) ClearDocumentDate() {
	m.document_date = nil
	m.clearedFields[premiumrecord.FieldDocumentDate] = struct{}{}
}

// DocumentDateCleared returns if the "document_date" field was cleared in this mutation.
func (m *PremiumRecordMutation) DocumentDateCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldDocumentDate]
	return ok
}

// ResetDocumentDate resets all changes to the "document_date" field.
func (m *PremiumRecordMutation) ResetDocumentDate() {
	m.document_date = nil
	delete(m.clearedFields, premiumrecord.FieldDocumentDate)
}

// Where appends a list predicates to the PremiumRecordMutation builder.
func (m *PremiumRecordMutation) Where(ps ...predicate.PremiumRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PremiumRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PremiumRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PremiumRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PremiumRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PremiumRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PremiumRecord).
func (m *PremiumRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PremiumRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.policy_number != nil {
		fields = append(fields, premiumrecord.FieldPolicyNumber)
	}
	if m.due_date != nil {
		fields = append(fields, premiumrecord.FieldDueDate)
	}
	if m.premium_amount != nil {
		fields = append(fields, premiumrecord.FieldPremiumAmount)
	}
	if m.gst_amount != nil {
		fields = append(fields, premiumrecord.FieldGstAmount)
	}
	if m.total_amount != nil {
		fields = append(fields, premiumrecord.FieldTotalAmount)
	}
	if m.due_count != nil {
		fields = append(fields, premiumrecord.FieldDueCount)
	}
	if m.estimated_commission != nil {
		fields = append(fields, premiumrecord.FieldEstimatedCommission)
	}
	if m.agent_code != nil {
		fields = append(fields, premiumrecord.FieldAgentCode)
	}
	if m.source_document != nil {
		fields = append(fields, premiumrecord.FieldSourceDocument)
	}
	if m.document_date != nil {
		fields = append(fields, premiumrecord.FieldDocumentDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PremiumRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case premiumrecord.FieldPolicyNumber:
		return m.PolicyNumber()
	case premiumrecord.FieldDueDate:
		return m.DueDate()
	case premiumrecord.FieldPremiumAmount:
		return m.PremiumAmount()
	case premiumrecord.FieldGstAmount:
		return m.GstAmount()
	case premiumrecord.FieldTotalAmount:
		return m.TotalAmount()
	case premiumrecord.FieldDueCount:
		return m.DueCount()
	case premiumrecord.FieldEstimatedCommission:
		return m.EstimatedCommission()
	case premiumrecord.FieldAgentCode:
		return m.AgentCode()
	case premiumrecord.FieldSourceDocument:
		return m.SourceDocument()
	case premiumrecord.FieldDocumentDate:
		return m.DocumentDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PremiumRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case premiumrecord.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case premiumrecord.FieldDueDate:
		return m.OldDueDate(ctx)
	case premiumrecord.FieldPremiumAmount:
		return m.OldPremiumAmount(ctx)
	case premiumrecord.FieldGstAmount:
		return m.OldGstAmount(ctx)
	case premiumrecord.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case premiumrecord.FieldDueCount:
		return m.OldDueCount(ctx)
	case premiumrecord.FieldEstimatedCommission:
		return m.OldEstimatedCommission(ctx)
	case premiumrecord.FieldAgentCode:
		return m.OldAgentCode(ctx)
	case premiumrecord.FieldSourceDocument:
		return m.OldSourceDocument(ctx)
	case premiumrecord.FieldDocumentDate:
		return m.OldDocumentDate(ctx)
	}
	return nil, fmt.Errorf("unknown PremiumRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PremiumRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case premiumrecord.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case premiumrecord.FieldDueDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case premiumrecord.FieldPremiumAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiumAmount(v)
		return nil
	case premiumrecord.FieldGstAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGstAmount(v)
		return nil
	case premiumrecord.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case premiumrecord.FieldDueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueCount(v)
		return nil
	case premiumrecord.FieldEstimatedCommission:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCommission(v)
		return nil
	case premiumrecord.FieldAgentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentCode(v)
		return nil
	case premiumrecord.FieldSourceDocument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocument(v)
		return nil
	case premiumrecord.FieldDocumentDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentDate(v)
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PremiumRecordMutation) AddedFields() []string {
	var fields []string
	if m.addpremium_amount != nil {
		fields = append(fields, premiumrecord.FieldPremiumAmount)
	}
	if m.addgst_amount != nil {
		fields = append(fields, premiumrecord.FieldGstAmount)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, premiumrecord.FieldTotalAmount)
	}
	if m.adddue_count != nil {
		fields = append(fields, premiumrecord.FieldDueCount)
	}
	if m.addestimated_commission != nil {
		fields = append(fields, premiumrecord.FieldEstimatedCommission)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PremiumRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case premiumrecord.FieldPremiumAmount:
		return m.AddedPremiumAmount()
	case premiumrecord.FieldGstAmount:
		return m.AddedGstAmount()
	case premiumrecord.FieldTotalAmount:
		return m.AddedTotalAmount()
	case premiumrecord.FieldDueCount:
		return m.AddedDueCount()
	case premiumrecord.FieldEstimatedCommission:
		return m.AddedEstimatedCommission()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PremiumRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case premiumrecord.FieldPremiumAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPremiumAmount(v)
		return nil
	case premiumrecord.FieldGstAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGstAmount(v)
		return nil
	case premiumrecord.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case premiumrecord.FieldDueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDueCount(v)
		return nil
	case premiumrecord.FieldEstimatedCommission:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCommission(v)
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PremiumRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(premiumrecord.FieldDueDate) {
		fields = append(fields, premiumrecord.FieldDueDate)
	}
	if m.FieldCleared(premiumrecord.FieldPremiumAmount) {
		fields = append(fields, premiumrecord.FieldPremiumAmount)
	}
	if m.FieldCleared(premiumrecord.FieldGstAmount) {
		fields = append(fields, premiumrecord.FieldGstAmount)
	}
	if m.FieldCleared(premiumrecord.FieldTotalAmount) {
		fields = append(fields, premiumrecord.FieldTotalAmount)
	}
	if m.FieldCleared(premiumrecord.FieldDueCount) {
		fields = append(fields, premiumrecord.FieldDueCount)
	}
	if m.FieldCleared(premiumrecord.FieldEstimatedCommission) {
		fields = append(fields, premiumrecord.FieldEstimatedCommission)
	}
	if m.FieldCleared(premiumrecord.FieldAgentCode) {
		fields = append(fields, premiumrecord.FieldAgentCode)
	}
	if m.FieldCleared(premiumrecord.FieldDocumentDate) {
		fields = append(fields, premiumrecord.FieldDocumentDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PremiumRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PremiumRecordMutation) ClearField(name string) error {
	switch name {
	case premiumrecord.FieldDueDate:
		m.ClearDueDate()
		return nil
	case premiumrecord.FieldPremiumAmount:
		m.ClearPremiumAmount()
		return nil
	case premiumrecord.FieldGstAmount:
		m.ClearGstAmount()
		return nil
	case premiumrecord.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case premiumrecord.FieldDueCount:
		m.ClearDueCount()
		return nil
	case premiumrecord.FieldEstimatedCommission:
		m.ClearEstimatedCommission()
		return nil
	case premiumrecord.FieldAgentCode:
		m.ClearAgentCode()
		return nil
	case premiumrecord.FieldDocumentDate:
		m.ClearDocumentDate()
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PremiumRecordMutation) ResetField(name string) error {
	switch name {
	case premiumrecord.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case premiumrecord.FieldDueDate:
		m.ResetDueDate()
		return nil
	case premiumrecord.FieldPremiumAmount:
		m.ResetPremiumAmount()
		return nil
	case premiumrecord.FieldGstAmount:
		m.ResetGstAmount()
		return nil
	case premiumrecord.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case premiumrecord.FieldDueCount:
		m.ResetDueCount()
		return nil
	case premiumrecord.FieldEstimatedCommission:
		m.ResetEstimatedCommission()
		return nil
	case premiumrecord.FieldAgentCode:
		m.ResetAgentCode()
		return nil
	case premiumrecord.FieldSourceDocument:
		m.ResetSourceDocument()
		return nil
	case premiumrecord.FieldDocumentDate:
		m.ResetDocumentDate()
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PremiumRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PremiumRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PremiumRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PremiumRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PremiumRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PremiumRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PremiumRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PremiumRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PremiumRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PremiumRecord edge %s", name)
}
