package entity

import "github.com/google/uuid"

// Customer represents a policy holder for data transfer between layers.
//
// CreatedAt and UpdatedAt are ISO dates carrying document-date semantics:
// the earliest and latest document dates asserting this customer, not
// wall-clock time.
type Customer struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            *string   `json:"phone,omitempty"`
	Email            *string   `json:"email,omitempty"`
	Address          *string   `json:"address,omitempty"`
	ExtractionMethod string    `json:"extraction_method"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}
