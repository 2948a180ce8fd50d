package processor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/dedup"
	"github.com/licagency/policy-tracker/internal/store"
)

const commissionDoc = `COMMISSION STATEMENT FOR MAY

S.NO PH NAME POLICY NO PLAN FUP DATE PAID ON PREM COMM
1 C NONDICHAMY 308700508 814-21 27/05/2025 26/05/2025 2640.00 132.00
2 K MURUGAN 308700509 915-16 14/06/2025 13/06/2025 1800.00 90.00

TOTAL 4440.00 222.00
`

const premiumDueDoc = `PREMIUM DUE LIST FOR AGENT 1234567N

S.NO POLICY NO NAME OF ASSURED DOC PLAN MODE FUP PREM DUES GST TOTAL COMM
3 308700512 R SUBRAMANIAN 14/03/2019 814/21 Qly 06/2025 4980.00 1 224.10 5204.10 187.50

TOTAL 4980.00
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessCommissionDocument(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())

	path := writeDoc(t, t.TempDir(), "CM-1234567N-20250501.txt", commissionDoc)
	res := p.Process(ctx, path)

	if res.Outcome != constants.OutcomeProcessed {
		t.Fatalf("outcome = %s (%s), want processed", res.Outcome, res.Reason)
	}
	if res.Type != constants.DocTypeCommission {
		t.Errorf("type = %s", res.Type)
	}
	if res.CandidateRows != 2 || res.ValidRows != 2 {
		t.Errorf("rows = %d/%d, want 2/2", res.ValidRows, res.CandidateRows)
	}
	if res.Recon.Created != 2 {
		t.Errorf("created = %d, want 2", res.Recon.Created)
	}

	customers, policies, premiums, documents := mem.Counts()
	if customers != 2 || policies != 2 || premiums != 0 || documents != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 2/2/0/1",
			customers, policies, premiums, documents)
	}

	pol, err := mem.FindPolicy(ctx, "308700508")
	if err != nil || pol == nil {
		t.Fatalf("FindPolicy: %v %v", pol, err)
	}
	if pol.PlanName == nil || *pol.PlanName != "814-21" {
		t.Errorf("plan = %v", pol.PlanName)
	}
	if pol.CurrentFUPDate == nil || *pol.CurrentFUPDate != "2025-05-27" {
		t.Errorf("fup = %v", pol.CurrentFUPDate)
	}
	if pol.PremiumAmount == nil || *pol.PremiumAmount != 2640 {
		t.Errorf("premium = %v", pol.PremiumAmount)
	}
	if pol.AgentCode == nil || *pol.AgentCode != "1234567N" {
		t.Errorf("agent = %v", pol.AgentCode)
	}
	if pol.CreatedAt != "2025-05-01" {
		t.Errorf("created_at = %q, want document date", pol.CreatedAt)
	}

	cust, _ := mem.FindCustomerByName(ctx, "C Nondichamy")
	if cust == nil {
		t.Error("normalized customer name not found")
	}
}

func TestProcessPremiumDueDocument(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())

	path := writeDoc(t, t.TempDir(), "Premdue-202505.txt", premiumDueDoc)
	res := p.Process(ctx, path)

	if res.Outcome != constants.OutcomeProcessed {
		t.Fatalf("outcome = %s (%s), want processed", res.Outcome, res.Reason)
	}
	if res.Type != constants.DocTypePremiumDue {
		t.Errorf("type = %s", res.Type)
	}

	pol, _ := mem.FindPolicy(ctx, "308700512")
	if pol == nil {
		t.Fatal("policy not created")
	}
	if pol.DateOfCommencement == nil || *pol.DateOfCommencement != "2019-03-14" {
		t.Errorf("doc = %v", pol.DateOfCommencement)
	}
	if pol.PaymentPeriod == nil || *pol.PaymentPeriod != string(constants.PeriodQuarterly) {
		t.Errorf("period = %v", pol.PaymentPeriod)
	}

	recs := mem.PremiumRecords()
	if len(recs) != 1 {
		t.Fatalf("premium records = %d, want 1", len(recs))
	}
	rec := recs[0]
	if rec.PolicyNumber != "308700512" {
		t.Errorf("record policy = %s", rec.PolicyNumber)
	}
	if rec.DueDate == nil || *rec.DueDate != "2025-06-01" {
		t.Errorf("due date = %v", rec.DueDate)
	}
	if rec.GSTAmount == nil || *rec.GSTAmount != 224.10 {
		t.Errorf("gst = %v", rec.GSTAmount)
	}
	if rec.AgentCode == nil || *rec.AgentCode != "1234567N" {
		t.Errorf("agent = %v", rec.AgentCode)
	}
	if rec.SourceDocument != "Premdue-202505.txt" {
		t.Errorf("source = %s", rec.SourceDocument)
	}
}

func TestProcessDuplicateByContentHash(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())
	dir := t.TempDir()

	first := writeDoc(t, dir, "CM-1234567N-20250501.txt", commissionDoc)
	if res := p.Process(ctx, first); res.Outcome != constants.OutcomeProcessed {
		t.Fatalf("first pass: %s (%s)", res.Outcome, res.Reason)
	}

	// Same bytes under a new name, as a re-download would arrive.
	second := writeDoc(t, dir, "CM-1234567N-20250501 (1).txt", commissionDoc)
	res := p.Process(ctx, second)

	if res.Outcome != constants.OutcomeDuplicate {
		t.Fatalf("outcome = %s (%s), want duplicate", res.Outcome, res.Reason)
	}
	if res.DuplicateMethod != dedup.MethodContent {
		t.Errorf("method = %s, want content_hash", res.DuplicateMethod)
	}

	customers, policies, premiums, documents := mem.Counts()
	if customers != 2 || policies != 2 || premiums != 0 || documents != 1 {
		t.Errorf("counts = %d/%d/%d/%d after duplicate, want 2/2/0/1",
			customers, policies, premiums, documents)
	}
}

func TestProcessAllRowsAlreadyCurrent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())
	dir := t.TempDir()

	first := writeDoc(t, dir, "CM-1234567N-20250501.txt", commissionDoc)
	if res := p.Process(ctx, first); res.Outcome != constants.OutcomeProcessed {
		t.Fatalf("first pass: %s (%s)", res.Outcome, res.Reason)
	}

	// A later statement with a different opening block but the same rows:
	// not a byte duplicate, yet it carries nothing new.
	second := writeDoc(t, dir, "CM-1234567N-20250601.txt",
		"COMMISSION STATEMENT FOR JUNE\n"+commissionDoc)
	res := p.Process(ctx, second)

	if res.Outcome != constants.OutcomeDuplicate {
		t.Fatalf("outcome = %s (%s), want duplicate", res.Outcome, res.Reason)
	}
	if res.Reason != "all rows already current" {
		t.Errorf("reason = %q", res.Reason)
	}
	if res.Recon.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", res.Recon.Skipped)
	}

	customers, policies, premiums, documents := mem.Counts()
	if customers != 2 || policies != 2 || premiums != 0 || documents != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want no new writes",
			customers, policies, premiums, documents)
	}
}

func TestProcessRejectsUnreadableDocument(t *testing.T) {
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())

	path := writeDoc(t, t.TempDir(), "CM-1234567N-20250501.txt", "  x  ")
	res := p.Process(context.Background(), path)

	if res.Outcome != constants.OutcomeError {
		t.Fatalf("outcome = %s, want error", res.Outcome)
	}
	if res.Reason != "no extractable text" {
		t.Errorf("reason = %q", res.Reason)
	}
}

func TestProcessWithoutAnyCandidateRows(t *testing.T) {
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())

	path := writeDoc(t, t.TempDir(), "notes.txt",
		"quarterly office memo about stationery supplies and ledgers\nnothing tabular here\n")
	res := p.Process(context.Background(), path)

	if res.Outcome != constants.OutcomeError {
		t.Fatalf("outcome = %s (%s), want error", res.Outcome, res.Reason)
	}
	if res.Reason != "no row parser produced any candidate rows" {
		t.Errorf("reason = %q", res.Reason)
	}
	if res.Type != constants.DocTypeUnknown {
		t.Errorf("type = %s, want unknown", res.Type)
	}
}

func TestProcessUnsupportedExtension(t *testing.T) {
	mem := store.NewMemStore()
	p := New(mem, nil, testLogger())

	path := writeDoc(t, t.TempDir(), "report.csv", "308700508,C NONDICHAMY\n")
	res := p.Process(context.Background(), path)

	if res.Outcome != constants.OutcomeError {
		t.Fatalf("outcome = %s, want error", res.Outcome)
	}
}
