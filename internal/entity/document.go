package entity

import "github.com/google/uuid"

// IngestedDocument is the audit row for a source document that produced at
// least one accepted record. Rows are created once and never mutated.
type IngestedDocument struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"file_name"`
	FilePath      string    `json:"file_path"`
	DocumentType  string    `json:"document_type"`
	ContentHash   *string   `json:"content_hash,omitempty"` // md5 over a normalized leading-text sample
	DocumentDate  *string   `json:"document_date,omitempty"`
	PolicyNumbers []string  `json:"policy_numbers,omitempty"`
}
