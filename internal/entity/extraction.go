package entity

import "github.com/licagency/policy-tracker/constants"

// RowExtraction is one (policy, customer, fields) tuple produced by a row
// parser from a single table row. All dates are ISO strings; nil pointers mean
// "not asserted by this document".
type RowExtraction struct {
	PolicyNumber        string
	CustomerName        string
	PlanName            string
	DateOfCommencement  string
	PaymentPeriod       string
	FUPDate             string
	PremiumAmount       *float64
	GSTAmount           *float64
	TotalAmount         *float64
	DueCount            *int
	EstimatedCommission *float64
	SumAssured          *float64

	// BestEffort names the fields that were filled by the positional
	// numeric-remainder heuristic rather than a matched column, so downstream
	// code can tell confidently-parsed values from guessed ones.
	BestEffort []string
}

// Guessed reports whether the named field was filled positionally.
func (r RowExtraction) Guessed(field string) bool {
	for _, f := range r.BestEffort {
		if f == field {
			return true
		}
	}
	return false
}

// SourceDocument carries one incoming document through the pipeline.
type SourceDocument struct {
	Path             string
	Filename         string
	Type             constants.DocumentType
	Pages            []string
	Text             string
	ContentHash      string // empty when no text was hashable
	DocumentDate     string // ISO; inferred business date, not ingestion time
	AgentCode        string
	ExtractionMethod string
}
