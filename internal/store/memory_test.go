package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/internal/entity"
)

func TestMemStoreLookupsReturnNilWhenAbsent(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	if c, err := m.FindCustomerByName(ctx, "nobody"); err != nil || c != nil {
		t.Errorf("FindCustomerByName = (%v, %v), want (nil, nil)", c, err)
	}
	if p, err := m.FindPolicy(ctx, "308700508"); err != nil || p != nil {
		t.Errorf("FindPolicy = (%v, %v), want (nil, nil)", p, err)
	}
	if d, err := m.FindDocumentByHash(ctx, "abc"); err != nil || d != nil {
		t.Errorf("FindDocumentByHash = (%v, %v), want (nil, nil)", d, err)
	}
}

func TestMemStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	id := uuid.New()
	if err := m.CreateCustomer(ctx, &entity.Customer{ID: id, Name: "K Murugan"}); err != nil {
		t.Fatal(err)
	}
	c, _ := m.FindCustomerByName(ctx, "K Murugan")
	c.Name = "mutated"

	again, _ := m.FindCustomerByName(ctx, "K Murugan")
	if again == nil || again.Name != "K Murugan" {
		t.Error("mutating a returned record must not touch the store")
	}
}

func TestMemStoreUpdateCustomerMovesNameKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	id := uuid.New()
	_ = m.CreateCustomer(ctx, &entity.Customer{ID: id, Name: "C Nondichamy"})
	if err := m.UpdateCustomer(ctx, &entity.Customer{ID: id, Name: "C. Nondichamy"}); err != nil {
		t.Fatal(err)
	}

	if old, _ := m.FindCustomerByName(ctx, "C Nondichamy"); old != nil {
		t.Error("old name key should be gone after rename")
	}
	renamed, _ := m.FindCustomerByName(ctx, "C. Nondichamy")
	if renamed == nil || renamed.ID != id {
		t.Fatalf("renamed customer = %+v", renamed)
	}
	byID, _ := m.FindCustomerByID(ctx, id)
	if byID == nil || byID.Name != "C. Nondichamy" {
		t.Errorf("FindCustomerByID = %+v", byID)
	}
}

func TestWithinTxCommitsOnNil(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	err := m.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		return tx.CreateCustomer(ctx, &entity.Customer{ID: uuid.New(), Name: "K Murugan"})
	})
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := m.FindCustomerByName(ctx, "K Murugan"); c == nil {
		t.Error("committed write missing")
	}
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()
	boom := errors.New("boom")

	err := m.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.CreateCustomer(ctx, &entity.Customer{ID: uuid.New(), Name: "K Murugan"}); err != nil {
			return err
		}
		if err := tx.CreatePolicy(ctx, &entity.Policy{PolicyNumber: "308700508"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	customers, policies, premiums, documents := m.Counts()
	if customers+policies+premiums+documents != 0 {
		t.Errorf("store not empty after rollback: %d/%d/%d/%d",
			customers, policies, premiums, documents)
	}
}

func TestWithinTxErrRollbackIsSilent(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	err := m.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		_ = tx.CreateCustomer(ctx, &entity.Customer{ID: uuid.New(), Name: "K Murugan"})
		return ErrRollback
	})
	if err != nil {
		t.Fatalf("ErrRollback must not surface: %v", err)
	}
	if c, _ := m.FindCustomerByName(ctx, "K Murugan"); c != nil {
		t.Error("write should have been rolled back")
	}
}
