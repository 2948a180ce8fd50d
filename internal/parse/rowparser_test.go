package parse

import (
	"io"
	"log/slog"
	"testing"

	"github.com/licagency/policy-tracker/constants"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommissionParser(t *testing.T) {
	table := `S.No PH Name Policy No Plan-Term Due Date DOC Branch FUP Premium Commission
1 C NONDICHAMY 308700508 814-21 27/05/2025 27/08/2018 CBK2 26/05/2025 2640.00 132.00
2 R SUBRAMANIAN 308700512 814-21 14/06/2025 14/03/2019 CBK2 14/05/2025 4980.00 249.00
garbage line without anything useful
`
	p := ForType(constants.DocTypeCommission, testLogger())
	rows, candidates := p.Parse(table)

	if candidates != 2 {
		t.Fatalf("candidates = %d, want 2", candidates)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	r := rows[0]
	if r.PolicyNumber != "308700508" {
		t.Errorf("policy number = %q", r.PolicyNumber)
	}
	if r.CustomerName != "C Nondichamy" {
		t.Errorf("customer name = %q, want C Nondichamy", r.CustomerName)
	}
	if r.PlanName != "814-21" {
		t.Errorf("plan = %q, want 814-21", r.PlanName)
	}
	if r.FUPDate != "2025-05-27" {
		t.Errorf("fup = %q, want 2025-05-27", r.FUPDate)
	}
	if r.PremiumAmount == nil || *r.PremiumAmount != 2640.00 {
		t.Errorf("premium = %v, want 2640.00", r.PremiumAmount)
	}
	if r.EstimatedCommission == nil || *r.EstimatedCommission != 132.00 {
		t.Errorf("commission = %v, want 132.00", r.EstimatedCommission)
	}
	if !r.Guessed("premium_amount") || !r.Guessed("estimated_commission") {
		t.Error("positional amounts should be flagged best-effort")
	}
}

func TestCommissionParserRejectsBadNames(t *testing.T) {
	// Candidate matches the row shape but the name cell is table debris.
	table := "1 Premium Due Date 308700508 814-21 27/05/2025 2640.00 132.00\n"
	p := ForType(constants.DocTypeCommission, testLogger())
	rows, candidates := p.Parse(table)
	if candidates == 0 {
		t.Fatal("expected at least one candidate")
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0 (name should be rejected)", len(rows))
	}
}

func TestPremiumDueParser(t *testing.T) {
	table := `S.No Policy No Name of the Assured DOC Plan Mode FUP Inst.Prem Due GST Tot.Prem Commission
3 308700512 R SUBRAMANIAN 14/03/2019 814/21 Qly 06/2025 4980.00 1 224.10 5204.10 187.50
`
	p := ForType(constants.DocTypePremiumDue, testLogger())
	rows, candidates := p.Parse(table)

	if candidates != 1 || len(rows) != 1 {
		t.Fatalf("candidates=%d rows=%d, want 1/1", candidates, len(rows))
	}
	r := rows[0]
	if r.PolicyNumber != "308700512" {
		t.Errorf("policy number = %q", r.PolicyNumber)
	}
	if r.CustomerName != "R Subramanian" {
		t.Errorf("name = %q", r.CustomerName)
	}
	if r.DateOfCommencement != "2019-03-14" {
		t.Errorf("doc = %q, want 2019-03-14", r.DateOfCommencement)
	}
	if r.PlanName != "814/21" {
		t.Errorf("plan = %q", r.PlanName)
	}
	if r.PaymentPeriod != string(constants.PeriodQuarterly) {
		t.Errorf("period = %q, want Quarterly", r.PaymentPeriod)
	}
	if r.FUPDate != "2025-06-01" {
		t.Errorf("fup = %q, want 2025-06-01", r.FUPDate)
	}
	if r.PremiumAmount == nil || *r.PremiumAmount != 4980.00 {
		t.Errorf("premium = %v", r.PremiumAmount)
	}
	if r.DueCount == nil || *r.DueCount != 1 {
		t.Errorf("due count = %v", r.DueCount)
	}
	if r.GSTAmount == nil || *r.GSTAmount != 224.10 {
		t.Errorf("gst = %v", r.GSTAmount)
	}
	if r.TotalAmount == nil || *r.TotalAmount != 5204.10 {
		t.Errorf("total = %v", r.TotalAmount)
	}
	if r.EstimatedCommission == nil || *r.EstimatedCommission != 187.50 {
		t.Errorf("commission = %v", r.EstimatedCommission)
	}
}

func TestClaimsParserYieldsPolicyAndNameOnly(t *testing.T) {
	table := `S.NO POLICY TYPE DUE DATE SUM CLAIMANT AMOUNT SETTLED
2 308700990 SB 28/11/2025 45000 K MURUGAN 12500.00 N
`
	p := ForType(constants.DocTypeClaims, testLogger())
	rows, candidates := p.Parse(table)
	if candidates != 1 || len(rows) != 1 {
		t.Fatalf("candidates=%d rows=%d, want 1/1", candidates, len(rows))
	}
	r := rows[0]
	if r.PolicyNumber != "308700990" || r.CustomerName != "K Murugan" {
		t.Errorf("got (%q, %q)", r.PolicyNumber, r.CustomerName)
	}
	if r.PremiumAmount != nil || r.FUPDate != "" {
		t.Error("claims rows must not assert premium or FUP facts")
	}
}

func TestGenericParser(t *testing.T) {
	text := `some unclassified statement
ref 308700777 for RAMAN PILLAI outstanding review
no policy on this line
308700778 without any name 123 456
`
	p := ForType(constants.DocTypeUnknown, testLogger())
	rows, candidates := p.Parse(text)
	if candidates != 2 {
		t.Fatalf("candidates = %d, want 2", candidates)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].PolicyNumber != "308700777" {
		t.Errorf("policy = %q", rows[0].PolicyNumber)
	}
	if rows[0].CustomerName != "Raman Pillai" {
		t.Errorf("name = %q", rows[0].CustomerName)
	}
}
