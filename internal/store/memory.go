package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/internal/entity"
)

// MemStore keeps every record in maps. It backs unit tests and the batch
// CLI's dry-run mode, where operators want the full reconciliation report
// without touching the database.
type MemStore struct {
	mu        sync.Mutex
	customers map[string]*entity.Customer // keyed by name
	policies  map[string]*entity.Policy   // keyed by policy number
	premiums  []*entity.PremiumRecord
	documents []*entity.IngestedDocument
}

func NewMemStore() *MemStore {
	return &MemStore{
		customers: make(map[string]*entity.Customer),
		policies:  make(map[string]*entity.Policy),
	}
}

func (m *MemStore) FindCustomerByName(_ context.Context, name string) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[name]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *MemStore) FindCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemStore) CreateCustomer(_ context.Context, c *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.customers[c.Name] = &cp
	return nil
}

func (m *MemStore) UpdateCustomer(_ context.Context, c *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// A name correction moves the entry to its new key.
	for name, cur := range m.customers {
		if cur.ID == c.ID && name != c.Name {
			delete(m.customers, name)
			break
		}
	}
	cp := *c
	m.customers[c.Name] = &cp
	return nil
}

func (m *MemStore) FindPolicy(_ context.Context, policyNumber string) (*entity.Policy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.policies[policyNumber]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MemStore) CreatePolicy(_ context.Context, p *entity.Policy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.policies[p.PolicyNumber] = &cp
	return nil
}

func (m *MemStore) UpdatePolicy(_ context.Context, p *entity.Policy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.policies[p.PolicyNumber] = &cp
	return nil
}

func (m *MemStore) AppendPremiumRecord(_ context.Context, r *entity.PremiumRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.premiums = append(m.premiums, &cp)
	return nil
}

func (m *MemStore) FindDocumentByHash(_ context.Context, hash string) (*entity.IngestedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.documents {
		if d.ContentHash != nil && *d.ContentHash == hash {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemStore) FindDocumentByFilename(_ context.Context, filename string) (*entity.IngestedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.documents {
		if d.FileName == filename {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemStore) RecordDocument(_ context.Context, d *entity.IngestedDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.documents = append(m.documents, &cp)
	return nil
}

// WithinTx snapshots the maps, runs fn against the live store, and restores
// the snapshot on failure. Single-writer semantics are enough here; the
// batch pipeline processes one document at a time.
func (m *MemStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	snap := m.snapshot()
	if err := fn(ctx, m); err != nil {
		m.restore(snap)
		if errors.Is(err, ErrRollback) {
			return nil
		}
		return err
	}
	return nil
}

type memSnapshot struct {
	customers map[string]*entity.Customer
	policies  map[string]*entity.Policy
	premiums  []*entity.PremiumRecord
	documents []*entity.IngestedDocument
}

func (m *MemStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := memSnapshot{
		customers: make(map[string]*entity.Customer, len(m.customers)),
		policies:  make(map[string]*entity.Policy, len(m.policies)),
		premiums:  make([]*entity.PremiumRecord, len(m.premiums)),
		documents: make([]*entity.IngestedDocument, len(m.documents)),
	}
	for k, v := range m.customers {
		cp := *v
		s.customers[k] = &cp
	}
	for k, v := range m.policies {
		cp := *v
		s.policies[k] = &cp
	}
	copy(s.premiums, m.premiums)
	copy(s.documents, m.documents)
	return s
}

func (m *MemStore) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = s.customers
	m.policies = s.policies
	m.premiums = s.premiums
	m.documents = s.documents
}

// Counts reports record totals, used by tests and the dry-run summary.
func (m *MemStore) Counts() (customers, policies, premiums, documents int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.customers), len(m.policies), len(m.premiums), len(m.documents)
}

// Customers returns a copy of every customer record.
func (m *MemStore) Customers() []*entity.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out
}

// Policies returns a copy of every policy record.
func (m *MemStore) Policies() []*entity.Policy {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Policy, 0, len(m.policies))
	for _, p := range m.policies {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// PremiumRecords returns a copy of every appended premium record.
func (m *MemStore) PremiumRecords() []*entity.PremiumRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.PremiumRecord, 0, len(m.premiums))
	for _, r := range m.premiums {
		cp := *r
		out = append(out, &cp)
	}
	return out
}
