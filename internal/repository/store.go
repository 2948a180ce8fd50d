package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/gen/ent"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/internal/entity"
	"github.com/licagency/policy-tracker/internal/store"
)

// entStore adapts the generated Ent client to the store contract. The same
// type serves both the root client and a transactional client, which is
// what makes WithinTx work.
type entStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStore(client *ent.Client, logger *slog.Logger) store.TxStore {
	return &entStore{client: client, logger: logger}
}

func (s *entStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}
	inner := &entStore{client: tx.Client(), logger: s.logger}
	if err := fn(ctx, inner); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("transaction rollback failed", "error", rbErr)
		}
		if errors.Is(err, store.ErrRollback) {
			return nil
		}
		return err
	}
	return tx.Commit()
}

func (s *entStore) FindCustomerByName(ctx context.Context, name string) (*entity.Customer, error) {
	row, err := s.client.Customer.Query().Where(customer.Name(name)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCustomer(row), nil
}

func (s *entStore) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	row, err := s.client.Customer.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCustomer(row), nil
}

func (s *entStore) CreateCustomer(ctx context.Context, c *entity.Customer) error {
	_, err := s.client.Customer.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetNillablePhone(c.Phone).
		SetNillableEmail(c.Email).
		SetNillableAddress(c.Address).
		SetExtractionMethod(c.ExtractionMethod).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt).
		Save(ctx)
	return err
}

func (s *entStore) UpdateCustomer(ctx context.Context, c *entity.Customer) error {
	_, err := s.client.Customer.UpdateOneID(c.ID).
		SetName(c.Name).
		SetNillablePhone(c.Phone).
		SetNillableEmail(c.Email).
		SetNillableAddress(c.Address).
		SetExtractionMethod(c.ExtractionMethod).
		SetUpdatedAt(c.UpdatedAt).
		Save(ctx)
	return err
}

func (s *entStore) FindPolicy(ctx context.Context, policyNumber string) (*entity.Policy, error) {
	row, err := s.client.InsurancePolicy.Query().Where(insurancepolicy.PolicyNumber(policyNumber)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toPolicy(row), nil
}

func (s *entStore) CreatePolicy(ctx context.Context, p *entity.Policy) error {
	_, err := s.client.InsurancePolicy.Create().
		SetPolicyNumber(p.PolicyNumber).
		SetCustomerID(p.CustomerID).
		SetNillableAgentCode(p.AgentCode).
		SetNillablePlanName(p.PlanName).
		SetNillableDateOfCommencement(p.DateOfCommencement).
		SetNillablePaymentPeriod(p.PaymentPeriod).
		SetNillableCurrentFupDate(p.CurrentFUPDate).
		SetNillablePremiumAmount(p.PremiumAmount).
		SetNillableSumAssured(p.SumAssured).
		SetStatus(p.Status).
		SetExtractionMethod(p.ExtractionMethod).
		SetCreatedAt(p.CreatedAt).
		SetUpdatedAt(p.UpdatedAt).
		Save(ctx)
	return err
}

func (s *entStore) UpdatePolicy(ctx context.Context, p *entity.Policy) error {
	_, err := s.client.InsurancePolicy.Update().
		Where(insurancepolicy.PolicyNumber(p.PolicyNumber)).
		SetCustomerID(p.CustomerID).
		SetNillableAgentCode(p.AgentCode).
		SetNillablePlanName(p.PlanName).
		SetNillableDateOfCommencement(p.DateOfCommencement).
		SetNillablePaymentPeriod(p.PaymentPeriod).
		SetNillableCurrentFupDate(p.CurrentFUPDate).
		SetNillablePremiumAmount(p.PremiumAmount).
		SetNillableSumAssured(p.SumAssured).
		SetStatus(p.Status).
		SetUpdatedAt(p.UpdatedAt).
		Save(ctx)
	return err
}

func (s *entStore) AppendPremiumRecord(ctx context.Context, r *entity.PremiumRecord) error {
	_, err := s.client.PremiumRecord.Create().
		SetID(r.ID).
		SetPolicyNumber(r.PolicyNumber).
		SetNillableDueDate(r.DueDate).
		SetNillablePremiumAmount(r.PremiumAmount).
		SetNillableGstAmount(r.GSTAmount).
		SetNillableTotalAmount(r.TotalAmount).
		SetNillableDueCount(r.DueCount).
		SetNillableEstimatedCommission(r.EstimatedCommission).
		SetNillableAgentCode(r.AgentCode).
		SetSourceDocument(r.SourceDocument).
		SetNillableDocumentDate(r.DocumentDate).
		Save(ctx)
	return err
}

func (s *entStore) FindDocumentByHash(ctx context.Context, hash string) (*entity.IngestedDocument, error) {
	row, err := s.client.IngestedDocument.Query().
		Where(ingesteddocument.ContentHash(hash)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

func (s *entStore) FindDocumentByFilename(ctx context.Context, filename string) (*entity.IngestedDocument, error) {
	row, err := s.client.IngestedDocument.Query().
		Where(ingesteddocument.FileName(filename)).First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

func (s *entStore) RecordDocument(ctx context.Context, d *entity.IngestedDocument) error {
	_, err := s.client.IngestedDocument.Create().
		SetID(d.ID).
		SetFileName(d.FileName).
		SetFilePath(d.FilePath).
		SetDocumentType(d.DocumentType).
		SetNillableContentHash(d.ContentHash).
		SetNillableDocumentDate(d.DocumentDate).
		SetPolicyNumbers(d.PolicyNumbers).
		Save(ctx)
	return err
}
