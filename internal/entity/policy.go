package entity

import "github.com/google/uuid"

// Policy represents an insurance policy for data transfer between layers.
// All dates are ISO YYYY-MM-DD strings; ordering is lexicographic.
type Policy struct {
	PolicyNumber       string    `json:"policy_number"` // exactly 9 decimal digits
	CustomerID         uuid.UUID `json:"customer_id"`
	AgentCode          *string   `json:"agent_code,omitempty"`
	PlanName           *string   `json:"plan_name,omitempty"`
	DateOfCommencement *string   `json:"date_of_commencement,omitempty"`
	PaymentPeriod      *string   `json:"payment_period,omitempty"`
	CurrentFUPDate     *string   `json:"current_fup_date,omitempty"` // monotonically non-decreasing
	PremiumAmount      *float64  `json:"premium_amount,omitempty"`
	SumAssured         *float64  `json:"sum_assured,omitempty"`
	Status             string    `json:"status"`
	ExtractionMethod   string    `json:"extraction_method"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
}
