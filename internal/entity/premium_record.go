package entity

import "github.com/google/uuid"

// PremiumRecord is one append-only premium history row for a policy.
// Rows are never updated in place; new extractions append new rows.
type PremiumRecord struct {
	ID                  uuid.UUID `json:"id"`
	PolicyNumber        string    `json:"policy_number"`
	DueDate             *string   `json:"due_date,omitempty"`
	PremiumAmount       *float64  `json:"premium_amount,omitempty"`
	GSTAmount           *float64  `json:"gst_amount,omitempty"`
	TotalAmount         *float64  `json:"total_amount,omitempty"`
	DueCount            *int      `json:"due_count,omitempty"`
	EstimatedCommission *float64  `json:"estimated_commission,omitempty"`
	AgentCode           *string   `json:"agent_code,omitempty"`
	SourceDocument      string    `json:"source_document"`
	DocumentDate        *string   `json:"document_date,omitempty"`
}
