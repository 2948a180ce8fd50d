// Package recon merges freshly extracted policy facts into the record store.
// Decisions are made per field, never as a wholesale replace, so that a low
// quality document can only fill gaps while an authoritative one corrects.
package recon

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
	"github.com/licagency/policy-tracker/internal/parse"
	"github.com/licagency/policy-tracker/internal/store"
)

// CustomerResolver maps an extracted name to a Customer record, creating
// one when absent. The default is exact-match linkage; anything smarter
// (phonetic, multi-field) slots in here without touching the engine.
type CustomerResolver interface {
	Resolve(ctx context.Context, tx store.Store, name string, doc *entity.SourceDocument) (*entity.Customer, error)
}

// exactNameResolver links rows to customers by exact normalized name.
// Collisions merge and typo variants split; both are accepted limitations
// of the upstream statements, which carry no stronger identity.
type exactNameResolver struct{}

func (exactNameResolver) Resolve(ctx context.Context, tx store.Store, name string, doc *entity.SourceDocument) (*entity.Customer, error) {
	c, err := tx.FindCustomerByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	c = &entity.Customer{
		ID:               uuid.New(),
		Name:             name,
		ExtractionMethod: doc.ExtractionMethod,
		CreatedAt:        doc.DocumentDate,
		UpdatedAt:        doc.DocumentDate,
	}
	if err := tx.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Result summarizes one document's reconciliation.
type Result struct {
	Created int
	Updated int
	Skipped int
	Failed  int
}

// Changed reports whether the document produced at least one create or
// update. A document where nothing changed carries no new information.
func (r Result) Changed() bool { return r.Created+r.Updated > 0 }

type Engine struct {
	resolver CustomerResolver
	logger   *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{resolver: exactNameResolver{}, logger: logger.With("component", "recon")}
}

// NewEngineWithResolver substitutes the customer linkage strategy.
func NewEngineWithResolver(r CustomerResolver, logger *slog.Logger) *Engine {
	return &Engine{resolver: r, logger: logger.With("component", "recon")}
}

// Reconcile applies every row of a document against the store. Row failures
// are isolated: a rejected write counts against Failed and the remaining
// rows still run.
func (e *Engine) Reconcile(ctx context.Context, tx store.Store, doc *entity.SourceDocument, rows []entity.RowExtraction) Result {
	var res Result
	for i := range rows {
		outcome, err := e.reconcileRow(ctx, tx, doc, &rows[i])
		if err != nil {
			res.Failed++
			e.logger.Warn("row reconciliation failed",
				"policy_number", rows[i].PolicyNumber, "error", err)
			continue
		}
		switch outcome {
		case rowCreated:
			res.Created++
		case rowUpdated:
			res.Updated++
		default:
			res.Skipped++
		}
	}
	return res
}

type rowOutcome int

const (
	rowSkipped rowOutcome = iota
	rowCreated
	rowUpdated
)

func (e *Engine) reconcileRow(ctx context.Context, tx store.Store, doc *entity.SourceDocument, row *entity.RowExtraction) (rowOutcome, error) {
	policy, err := tx.FindPolicy(ctx, row.PolicyNumber)
	if err != nil {
		return rowSkipped, err
	}
	if policy == nil {
		return e.createPolicy(ctx, tx, doc, row)
	}
	return e.updatePolicy(ctx, tx, doc, row, policy)
}

func (e *Engine) createPolicy(ctx context.Context, tx store.Store, doc *entity.SourceDocument, row *entity.RowExtraction) (rowOutcome, error) {
	customer, err := e.resolver.Resolve(ctx, tx, row.CustomerName, doc)
	if err != nil {
		return rowSkipped, err
	}

	policy := &entity.Policy{
		PolicyNumber:     row.PolicyNumber,
		CustomerID:       customer.ID,
		Status:           constants.PolicyStatusActive,
		ExtractionMethod: doc.ExtractionMethod,
		CreatedAt:        doc.DocumentDate,
		UpdatedAt:        doc.DocumentDate,
	}
	setIfNonEmpty(&policy.PlanName, row.PlanName)
	setIfNonEmpty(&policy.DateOfCommencement, row.DateOfCommencement)
	setIfNonEmpty(&policy.PaymentPeriod, row.PaymentPeriod)
	setIfNonEmpty(&policy.CurrentFUPDate, row.FUPDate)
	setIfNonEmpty(&policy.AgentCode, doc.AgentCode)
	if row.PremiumAmount != nil {
		policy.PremiumAmount = copyFloat(row.PremiumAmount)
	}
	if row.SumAssured != nil {
		v := parse.NormalizeSumAssured(*row.SumAssured)
		policy.SumAssured = &v
	}

	if err := tx.CreatePolicy(ctx, policy); err != nil {
		return rowSkipped, err
	}
	if err := e.appendPremiumHistory(ctx, tx, doc, row); err != nil {
		return rowSkipped, err
	}
	return rowCreated, nil
}

func (e *Engine) updatePolicy(ctx context.Context, tx store.Store, doc *entity.SourceDocument, row *entity.RowExtraction, policy *entity.Policy) (rowOutcome, error) {
	authoritative := doc.Type == constants.DocTypeCommission
	changed := false

	// FUP only advances. ISO strings compare lexicographically.
	if row.FUPDate != "" && (policy.CurrentFUPDate == nil || row.FUPDate > *policy.CurrentFUPDate) {
		policy.CurrentFUPDate = strPtr(row.FUPDate)
		changed = true
	}

	changed = applyString(&policy.PlanName, row.PlanName, authoritative) || changed
	changed = applyFloat(&policy.PremiumAmount, row.PremiumAmount, authoritative) || changed
	changed = applyString(&policy.AgentCode, doc.AgentCode, authoritative) || changed

	// Everything else fills gaps only.
	changed = applyString(&policy.DateOfCommencement, row.DateOfCommencement, false) || changed
	changed = applyString(&policy.PaymentPeriod, row.PaymentPeriod, false) || changed
	if row.SumAssured != nil && policy.SumAssured == nil {
		v := parse.NormalizeSumAssured(*row.SumAssured)
		policy.SumAssured = &v
		changed = true
	}

	corrected, err := e.correctCustomerName(ctx, tx, doc, row, policy)
	if err != nil {
		return rowSkipped, err
	}

	if !changed && !corrected {
		return rowSkipped, nil
	}

	if changed {
		if doc.DocumentDate > policy.UpdatedAt {
			policy.UpdatedAt = doc.DocumentDate
		}
		if err := tx.UpdatePolicy(ctx, policy); err != nil {
			return rowSkipped, err
		}
		if err := e.appendPremiumHistory(ctx, tx, doc, row); err != nil {
			return rowSkipped, err
		}
	}
	return rowUpdated, nil
}

// correctCustomerName overwrites the stored display name when a commission
// statement disagrees with it. Commission statements carry the policyholder
// name as printed by the insurer, so they win over earlier guesses.
func (e *Engine) correctCustomerName(ctx context.Context, tx store.Store, doc *entity.SourceDocument, row *entity.RowExtraction, policy *entity.Policy) (bool, error) {
	if doc.Type != constants.DocTypeCommission || row.CustomerName == "" {
		return false, nil
	}
	customer, err := tx.FindCustomerByID(ctx, policy.CustomerID)
	if err != nil {
		return false, err
	}
	if customer == nil || customer.Name == row.CustomerName {
		return false, nil
	}
	e.logger.Info("customer name corrected from commission statement",
		"policy_number", policy.PolicyNumber, "from", customer.Name, "to", row.CustomerName)
	customer.Name = row.CustomerName
	if doc.DocumentDate > customer.UpdatedAt {
		customer.UpdatedAt = doc.DocumentDate
	}
	if err := tx.UpdateCustomer(ctx, customer); err != nil {
		return false, err
	}
	return true, nil
}

// appendPremiumHistory adds a due-list history row. History rows ride along
// with a create or update only, so a document that changed nothing leaves
// no history behind.
func (e *Engine) appendPremiumHistory(ctx context.Context, tx store.Store, doc *entity.SourceDocument, row *entity.RowExtraction) error {
	if doc.Type != constants.DocTypePremiumDue {
		return nil
	}
	rec := &entity.PremiumRecord{
		ID:                  uuid.New(),
		PolicyNumber:        row.PolicyNumber,
		PremiumAmount:       copyFloat(row.PremiumAmount),
		GSTAmount:           copyFloat(row.GSTAmount),
		TotalAmount:         copyFloat(row.TotalAmount),
		EstimatedCommission: copyFloat(row.EstimatedCommission),
		SourceDocument:      doc.Filename,
	}
	if row.FUPDate != "" {
		rec.DueDate = strPtr(row.FUPDate)
	}
	if row.DueCount != nil {
		n := *row.DueCount
		rec.DueCount = &n
	}
	if doc.AgentCode != "" {
		rec.AgentCode = strPtr(doc.AgentCode)
	}
	if doc.DocumentDate != "" {
		rec.DocumentDate = strPtr(doc.DocumentDate)
	}
	return tx.AppendPremiumRecord(ctx, rec)
}

// applyString writes v into dst under the per-field rules: an authoritative
// source overwrites a differing value, anything else fills a gap only.
func applyString(dst **string, v string, authoritative bool) bool {
	if v == "" {
		return false
	}
	if *dst == nil {
		*dst = strPtr(v)
		return true
	}
	if authoritative && **dst != v {
		*dst = strPtr(v)
		return true
	}
	return false
}

func applyFloat(dst **float64, v *float64, authoritative bool) bool {
	if v == nil {
		return false
	}
	if *dst == nil {
		*dst = copyFloat(v)
		return true
	}
	if authoritative && **dst != *v {
		*dst = copyFloat(v)
		return true
	}
	return false
}

func setIfNonEmpty(dst **string, v string) {
	if v != "" {
		*dst = strPtr(v)
	}
}

func strPtr(s string) *string { return &s }

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
