// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
)

// IngestedDocumentCreate is the builder for creating a IngestedDocument entity.
type IngestedDocumentCreate struct {
	config
	mutation *IngestedDocumentMutation
	hooks    []Hook
}

// SetFileName sets the "file_name" field.
func (_c *IngestedDocumentCreate) SetFileName(v string) *IngestedDocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *IngestedDocumentCreate) SetFilePath(v string) *IngestedDocumentCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *IngestedDocumentCreate) SetDocumentType(v string) *IngestedDocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *IngestedDocumentCreate) SetContentHash(v string) *IngestedDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *IngestedDocumentCreate) SetNillableContentHash(v *string) *IngestedDocumentCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetDocumentDate sets the "document_date" field.
func (_c *IngestedDocumentCreate) SetDocumentDate(v string) *IngestedDocumentCreate {
	_c.mutation.SetDocumentDate(v)
	return _c
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_c *IngestedDocumentCreate) SetNillableDocumentDate(v *string) *IngestedDocumentCreate {
	if v != nil {
		_c.SetDocumentDate(*v)
	}
	return _c
}

// SetPolicyNumbers sets the "policy_numbers" field.
func (_c *IngestedDocumentCreate) SetPolicyNumbers(v []string) *IngestedDocumentCreate {
	_c.mutation.SetPolicyNumbers(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *IngestedDocumentCreate) SetProcessedAt(v time.Time) *IngestedDocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *IngestedDocumentCreate) SetNillableProcessedAt(v *time.Time) *IngestedDocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestedDocumentCreate) SetID(v uuid.UUID) *IngestedDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestedDocumentCreate) SetNillableID(v *uuid.UUID) *IngestedDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the IngestedDocumentMutation object of the builder.
func (_c *IngestedDocumentCreate) Mutation() *IngestedDocumentMutation {
	return _c.mutation
}

// Save creates the IngestedDocument in the database.
func (_c *IngestedDocumentCreate) Save(ctx context.Context) (*IngestedDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestedDocumentCreate) SaveX(ctx context.Context) *IngestedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestedDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestedDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestedDocumentCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := ingesteddocument.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingesteddocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestedDocumentCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "IngestedDocument.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := ingesteddocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "IngestedDocument.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "IngestedDocument.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := ingesteddocument.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "IngestedDocument.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "IngestedDocument.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := ingesteddocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "IngestedDocument.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "IngestedDocument.processed_at"`)}
	}
	return nil
}

func (_c *IngestedDocumentCreate) sqlSave(ctx context.Context) (*IngestedDocument, error) {
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

func (_c *IngestedDocumentCreate) createSpec() (*IngestedDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestedDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingesteddocument.Table, sqlgraph.NewFieldSpec(ingesteddocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(ingesteddocument.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(ingesteddocument.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(ingesteddocument.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(ingesteddocument.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.DocumentDate(); ok {
		_spec.SetField(ingesteddocument.FieldDocumentDate, field.TypeString, value)
		_node.DocumentDate = &value
	}
	if value, ok := _c.mutation.PolicyNumbers(); ok {
		_spec.SetField(ingesteddocument.FieldPolicyNumbers, field.TypeJSON, value)
		_node.PolicyNumbers = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(ingesteddocument.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	return _node, _spec
}

// IngestedDocumentCreateBulk is the builder for creating many IngestedDocument entities in bulk.
type IngestedDocumentCreateBulk struct {
	config
	err      error
	builders []*IngestedDocumentCreate
}

// Save creates the IngestedDocument entities in the database.
func (_c *IngestedDocumentCreateBulk) Save(ctx context.Context) ([]*IngestedDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestedDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestedDocumentMutation)
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
func (_c *IngestedDocumentCreateBulk) SaveX(ctx context.Context) []*IngestedDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestedDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestedDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
