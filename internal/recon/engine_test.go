package recon

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
	"github.com/licagency/policy-tracker/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func commissionDoc(date string) *entity.SourceDocument {
	return &entity.SourceDocument{
		Filename:         "CM-74N.pdf",
		Type:             constants.DocTypeCommission,
		DocumentDate:     date,
		AgentCode:        "1234567N",
		ExtractionMethod: constants.ExtractionPattern,
	}
}

func premiumDueDoc(date string) *entity.SourceDocument {
	return &entity.SourceDocument{
		Filename:         "Premdue.pdf",
		Type:             constants.DocTypePremiumDue,
		DocumentDate:     date,
		ExtractionMethod: constants.ExtractionPattern,
	}
}

func f64(v float64) *float64 { return &v }

func TestReconcileCreatesPolicyAndCustomer(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	rows := []entity.RowExtraction{{
		PolicyNumber:        "308700508",
		CustomerName:        "C Nondichamy",
		PlanName:            "814-21",
		FUPDate:             "2025-05-27",
		PremiumAmount:       f64(2640),
		EstimatedCommission: f64(132),
	}}
	res := e.Reconcile(ctx, st, commissionDoc("2025-05-01"), rows)
	if res.Created != 1 || res.Updated != 0 || res.Failed != 0 {
		t.Fatalf("result = %+v, want 1 created", res)
	}

	c, err := st.FindCustomerByName(ctx, "C Nondichamy")
	if err != nil || c == nil {
		t.Fatalf("customer not created: %v", err)
	}
	p, err := st.FindPolicy(ctx, "308700508")
	if err != nil || p == nil {
		t.Fatalf("policy not created: %v", err)
	}
	if p.CustomerID != c.ID {
		t.Error("policy not linked to customer")
	}
	if p.PlanName == nil || *p.PlanName != "814-21" {
		t.Errorf("plan = %v", p.PlanName)
	}
	if p.CurrentFUPDate == nil || *p.CurrentFUPDate != "2025-05-27" {
		t.Errorf("fup = %v", p.CurrentFUPDate)
	}
	if p.PremiumAmount == nil || *p.PremiumAmount != 2640 {
		t.Errorf("premium = %v", p.PremiumAmount)
	}
	if p.AgentCode == nil || *p.AgentCode != "1234567N" {
		t.Errorf("agent code = %v", p.AgentCode)
	}
	if p.CreatedAt != "2025-05-01" || p.UpdatedAt != "2025-05-01" {
		t.Errorf("timestamps = %q/%q, want document date", p.CreatedAt, p.UpdatedAt)
	}
}

func TestReconcileMonotonicFUP(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	seed := []entity.RowExtraction{{
		PolicyNumber: "308700600",
		CustomerName: "K Murugan",
		FUPDate:      "2025-06-01",
	}}
	e.Reconcile(ctx, st, premiumDueDoc("2025-06-01"), seed)

	// A stale document cannot move the due date backwards.
	stale := []entity.RowExtraction{{
		PolicyNumber: "308700600",
		CustomerName: "K Murugan",
		FUPDate:      "2025-05-01",
	}}
	res := e.Reconcile(ctx, st, premiumDueDoc("2025-05-01"), stale)
	if res.Updated != 0 || res.Skipped != 1 {
		t.Fatalf("stale update result = %+v, want skipped", res)
	}
	p, _ := st.FindPolicy(ctx, "308700600")
	if *p.CurrentFUPDate != "2025-06-01" {
		t.Errorf("fup = %q, want 2025-06-01 preserved", *p.CurrentFUPDate)
	}

	// A later document advances it.
	fresh := []entity.RowExtraction{{
		PolicyNumber: "308700600",
		CustomerName: "K Murugan",
		FUPDate:      "2025-09-01",
	}}
	res = e.Reconcile(ctx, st, premiumDueDoc("2025-09-01"), fresh)
	if res.Updated != 1 {
		t.Fatalf("advance result = %+v, want 1 updated", res)
	}
	p, _ = st.FindPolicy(ctx, "308700600")
	if *p.CurrentFUPDate != "2025-09-01" {
		t.Errorf("fup = %q, want 2025-09-01", *p.CurrentFUPDate)
	}
}

func TestReconcileAuthorityPrecedence(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	e.Reconcile(ctx, st, commissionDoc("2025-04-01"), []entity.RowExtraction{{
		PolicyNumber:  "308700700",
		CustomerName:  "R Subramanian",
		PremiumAmount: f64(2640),
	}})

	// Premium-due documents never change an already-present amount.
	res := e.Reconcile(ctx, st, premiumDueDoc("2025-05-01"), []entity.RowExtraction{{
		PolicyNumber:  "308700700",
		CustomerName:  "R Subramanian",
		PremiumAmount: f64(9999),
	}})
	if res.Updated != 0 {
		t.Fatalf("premium-due overwrote an existing amount: %+v", res)
	}
	p, _ := st.FindPolicy(ctx, "308700700")
	if *p.PremiumAmount != 2640 {
		t.Errorf("premium = %v, want 2640 preserved", *p.PremiumAmount)
	}

	// Commission documents always win.
	res = e.Reconcile(ctx, st, commissionDoc("2025-06-01"), []entity.RowExtraction{{
		PolicyNumber:  "308700700",
		CustomerName:  "R Subramanian",
		PremiumAmount: f64(2700),
	}})
	if res.Updated != 1 {
		t.Fatalf("commission update result = %+v, want 1 updated", res)
	}
	p, _ = st.FindPolicy(ctx, "308700700")
	if *p.PremiumAmount != 2700 {
		t.Errorf("premium = %v, want 2700", *p.PremiumAmount)
	}
	if p.UpdatedAt != "2025-06-01" {
		t.Errorf("updated_at = %q, want widened to 2025-06-01", p.UpdatedAt)
	}
}

func TestReconcileFillsNullFieldsFromAnySource(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	e.Reconcile(ctx, st, commissionDoc("2025-04-01"), []entity.RowExtraction{{
		PolicyNumber: "308700800",
		CustomerName: "K Murugan",
	}})

	res := e.Reconcile(ctx, st, premiumDueDoc("2025-05-01"), []entity.RowExtraction{{
		PolicyNumber:       "308700800",
		CustomerName:       "K Murugan",
		DateOfCommencement: "2019-03-14",
		PaymentPeriod:      string(constants.PeriodQuarterly),
		PremiumAmount:      f64(4980),
		SumAssured:         f64(5),
	}})
	if res.Updated != 1 {
		t.Fatalf("result = %+v, want 1 updated", res)
	}
	p, _ := st.FindPolicy(ctx, "308700800")
	if p.DateOfCommencement == nil || *p.DateOfCommencement != "2019-03-14" {
		t.Errorf("doc = %v", p.DateOfCommencement)
	}
	if p.PaymentPeriod == nil || *p.PaymentPeriod != "Quarterly" {
		t.Errorf("period = %v", p.PaymentPeriod)
	}
	if p.PremiumAmount == nil || *p.PremiumAmount != 4980 {
		t.Errorf("premium = %v, want filled when null", p.PremiumAmount)
	}
	if p.SumAssured == nil || *p.SumAssured != 500000 {
		t.Errorf("sum assured = %v, want normalized 500000", p.SumAssured)
	}
}

func TestReconcileCommissionCorrectsCustomerName(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	e.Reconcile(ctx, st, premiumDueDoc("2025-04-01"), []entity.RowExtraction{{
		PolicyNumber: "308700900",
		CustomerName: "C Nondichamy",
	}})

	res := e.Reconcile(ctx, st, commissionDoc("2025-05-01"), []entity.RowExtraction{{
		PolicyNumber: "308700900",
		CustomerName: "C. Nondichamy",
	}})
	if res.Updated != 1 {
		t.Fatalf("result = %+v, want 1 updated for the name correction", res)
	}

	p, _ := st.FindPolicy(ctx, "308700900")
	c, _ := st.FindCustomerByID(ctx, p.CustomerID)
	if c == nil || c.Name != "C. Nondichamy" {
		t.Fatalf("customer = %+v, want corrected name", c)
	}
	if old, _ := st.FindCustomerByName(ctx, "C Nondichamy"); old != nil {
		t.Error("old name should no longer resolve")
	}
}

func TestReconcilePremiumDueKeepsNameOverCommissionless(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	e.Reconcile(ctx, st, commissionDoc("2025-04-01"), []entity.RowExtraction{{
		PolicyNumber: "308700910",
		CustomerName: "R Subramanian",
	}})

	// Premium-due names never overwrite.
	res := e.Reconcile(ctx, st, premiumDueDoc("2025-05-01"), []entity.RowExtraction{{
		PolicyNumber: "308700910",
		CustomerName: "R Subrahmanian",
	}})
	if res.Updated != 0 || res.Skipped != 1 {
		t.Fatalf("result = %+v, want skipped", res)
	}
	p, _ := st.FindPolicy(ctx, "308700910")
	c, _ := st.FindCustomerByID(ctx, p.CustomerID)
	if c.Name != "R Subramanian" {
		t.Errorf("name = %q, want original preserved", c.Name)
	}
}

func TestReconcileAppendsPremiumHistory(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	doc := premiumDueDoc("2025-06-01")
	doc.AgentCode = "1234567N"
	res := e.Reconcile(ctx, st, doc, []entity.RowExtraction{{
		PolicyNumber:  "308700920",
		CustomerName:  "K Murugan",
		FUPDate:       "2025-06-01",
		PremiumAmount: f64(4980),
		GSTAmount:     f64(224.10),
		TotalAmount:   f64(5204.10),
	}})
	if res.Created != 1 {
		t.Fatalf("result = %+v", res)
	}

	recs := st.PremiumRecords()
	if len(recs) != 1 {
		t.Fatalf("premium records = %d, want 1", len(recs))
	}
	r := recs[0]
	if r.PolicyNumber != "308700920" || r.SourceDocument != "Premdue.pdf" {
		t.Errorf("record = %+v", r)
	}
	if r.DueDate == nil || *r.DueDate != "2025-06-01" {
		t.Errorf("due date = %v", r.DueDate)
	}
	if r.AgentCode == nil || *r.AgentCode != "1234567N" {
		t.Errorf("agent code = %v", r.AgentCode)
	}

	// Re-ingesting identical facts is a no-op and appends nothing.
	res = e.Reconcile(ctx, st, doc, []entity.RowExtraction{{
		PolicyNumber:  "308700920",
		CustomerName:  "K Murugan",
		FUPDate:       "2025-06-01",
		PremiumAmount: f64(4980),
	}})
	if res.Changed() {
		t.Fatalf("identical facts changed something: %+v", res)
	}
	if got := len(st.PremiumRecords()); got != 1 {
		t.Errorf("premium records = %d, want still 1", got)
	}
}

func TestReconcileCommissionDocsDoNotAppendHistory(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	e := NewEngine(testLogger())

	e.Reconcile(ctx, st, commissionDoc("2025-05-01"), []entity.RowExtraction{{
		PolicyNumber:  "308700930",
		CustomerName:  "C Nondichamy",
		PremiumAmount: f64(2640),
	}})
	if got := len(st.PremiumRecords()); got != 0 {
		t.Errorf("premium records = %d, want 0 for commission documents", got)
	}
}
