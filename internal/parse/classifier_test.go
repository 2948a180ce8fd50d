package parse

import (
	"testing"

	"github.com/licagency/policy-tracker/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     constants.DocumentType
	}{
		{"commission filename prefix", "CM-1234567N-20250501.pdf", "", constants.DocTypeCommission},
		{"commission filename word", "agency-commission-may.pdf", "", constants.DocTypeCommission},
		{"premium due filename", "Premdue-202505.pdf", "", constants.DocTypePremiumDue},
		{"claims filename", "Claims-Due-List-20251128.pdf", "", constants.DocTypeClaims},
		{"filename beats text", "CM-74N-20250501.pdf", "premium due list", constants.DocTypeCommission},
		{"commission text", "scan001.pdf", "AGENCY COMMISSION STATEMENT", constants.DocTypeCommission},
		{"ph name text", "scan001.pdf", "S.No PH Name Policy", constants.DocTypeCommission},
		{"premium due text", "scan002.pdf", "Premium Due List For 06/2025", constants.DocTypePremiumDue},
		{"name of assured text", "scan002.pdf", "Policy No Name of the Assured", constants.DocTypePremiumDue},
		{"claimant text", "scan003.pdf", "CLAIMANT AMOUNT SETTLED", constants.DocTypeClaims},
		{"nothing matches", "scan004.pdf", "quarterly newsletter", constants.DocTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.filename, tt.text); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.filename, tt.text, got, tt.want)
			}
		})
	}
}
