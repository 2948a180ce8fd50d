package parse

import (
	"strings"
	"testing"

	"github.com/licagency/policy-tracker/constants"
)

func TestLocateTableFindsCommissionHeader(t *testing.T) {
	text := `LIC OF INDIA
AGENCY COMMISSION STATEMENT
Agent 1234567N

S.No PH Name Policy No Plan Due Date
1 C NONDICHAMY 308700508 814-21 27/05/2025
2 R SUBRAMANIAN 308700512 814-21 14/06/2025
Total 2
Footer text that is not part of the table`

	got := LocateTable(text, constants.DocTypeCommission)
	if !strings.Contains(got, "308700508") || !strings.Contains(got, "308700512") {
		t.Fatalf("table slice missing data rows:\n%s", got)
	}
	if strings.Contains(got, "Footer text") {
		t.Errorf("table slice should stop at the total line:\n%s", got)
	}
	if strings.Contains(got, "AGENCY COMMISSION STATEMENT") {
		t.Errorf("table slice should start at the header, got preamble:\n%s", got)
	}
}

func TestLocateTableHeaderNotConfirmedWithoutPolicyNumbers(t *testing.T) {
	// A header with no 9-digit number below it within the confirm window is
	// not trusted; the locator falls back to the whole text.
	text := "S.No PH Name Policy No Plan\nnothing below\nat all"
	got := LocateTable(text, constants.DocTypeCommission)
	if got != text {
		t.Errorf("expected whole text back, got:\n%s", got)
	}
}

func TestLocateTableFallsBackToFirstPolicyLine(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("preamble line\n")
	}
	b.WriteString("1 K MURUGAN 308700999 814-21 01/06/2025\n")
	got := LocateTable(b.String(), constants.DocTypeUnknown)
	if !strings.Contains(got, "308700999") {
		t.Fatalf("fallback slice missing the policy line:\n%s", got)
	}
	if strings.Count(got, "preamble line") > contextLines {
		t.Errorf("fallback should back up at most %d context lines:\n%s", contextLines, got)
	}
}

func TestLocateTableEndsAfterConsecutiveBlanks(t *testing.T) {
	text := "S.No PH Name Policy No\n1 K MURUGAN 308700999 814-21\n\n\n\ntrailing section\nmore trailing"
	got := LocateTable(text, constants.DocTypeCommission)
	if strings.Contains(got, "trailing section") {
		t.Errorf("three blank lines should end the table:\n%s", got)
	}
}
