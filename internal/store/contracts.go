// Package store defines the persistence contract the reconciliation engine
// and pipeline write through. The production implementation sits on the ent
// client in internal/repository; MemStore backs tests and dry runs.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/internal/entity"
)

// ErrRollback aborts a WithinTx function without surfacing a failure to the
// caller. WithinTx rolls the transaction back and returns nil.
var ErrRollback = errors.New("store: rollback requested")

// Store is the record-level API. Lookups return (nil, nil) when the record
// does not exist; an error always means the lookup itself failed.
type Store interface {
	FindCustomerByName(ctx context.Context, name string) (*entity.Customer, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, c *entity.Customer) error
	UpdateCustomer(ctx context.Context, c *entity.Customer) error

	FindPolicy(ctx context.Context, policyNumber string) (*entity.Policy, error)
	CreatePolicy(ctx context.Context, p *entity.Policy) error
	UpdatePolicy(ctx context.Context, p *entity.Policy) error

	AppendPremiumRecord(ctx context.Context, r *entity.PremiumRecord) error

	FindDocumentByHash(ctx context.Context, hash string) (*entity.IngestedDocument, error)
	FindDocumentByFilename(ctx context.Context, filename string) (*entity.IngestedDocument, error)
	RecordDocument(ctx context.Context, d *entity.IngestedDocument) error
}

// TxStore runs a function against a transactional view of the store. The
// transaction commits when fn returns nil, rolls back otherwise. Returning
// ErrRollback rolls back silently.
type TxStore interface {
	Store
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
