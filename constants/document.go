package constants

import "strings"

// DocumentType identifies the table layout of a scanned business document.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypeCommission DocumentType = "commission"
	DocTypePremiumDue DocumentType = "premium_due"
	DocTypeClaims     DocumentType = "claims"
	DocTypeUnknown    DocumentType = "unknown"
)

// PaymentPeriod is the canonical premium payment mode for a policy.
type PaymentPeriod string

const (
	PeriodMonthly    PaymentPeriod = "Monthly"
	PeriodQuarterly  PaymentPeriod = "Quarterly"
	PeriodHalfYearly PaymentPeriod = "HalfYearly"
	PeriodYearly     PaymentPeriod = "Yearly"
)

// paymentModes maps the abbreviated mode column values (Mly, Qly, Hly, Yly)
// found in premium-due tables to canonical periods.
var paymentModes = map[string]PaymentPeriod{
	"mly": PeriodMonthly,
	"qly": PeriodQuarterly,
	"hly": PeriodHalfYearly,
	"yly": PeriodYearly,
}

// MapPaymentPeriod converts a raw mode token to a canonical PaymentPeriod.
// Returns "" when the token is not a known mode.
func MapPaymentPeriod(mode string) PaymentPeriod {
	if p, ok := paymentModes[strings.ToLower(strings.TrimSpace(mode))]; ok {
		return p
	}
	return ""
}

// Extraction methods recorded on customers and policies.
const (
	ExtractionPattern = "pattern"
	ExtractionAI      = "ai"
	ExtractionManual  = "manual"
)

// PolicyStatusActive is the default status for newly created policies.
const PolicyStatusActive = "Active"
