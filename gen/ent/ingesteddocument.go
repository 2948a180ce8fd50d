// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
)

// IngestedDocument is the model entity for the IngestedDocument schema.
type IngestedDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash *string `json:"content_hash,omitempty"`
	// DocumentDate holds the value of the "document_date" field.
	DocumentDate *string `json:"document_date,omitempty"`
	// PolicyNumbers holds the value of the "policy_numbers" field.
	PolicyNumbers []string `json:"policy_numbers,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt  time.Time `json:"processed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestedDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingesteddocument.FieldPolicyNumbers:
			values[i] = new([]byte)
		case ingesteddocument.FieldFileName, ingesteddocument.FieldFilePath, ingesteddocument.FieldDocumentType, ingesteddocument.FieldContentHash, ingesteddocument.FieldDocumentDate:
			values[i] = new(sql.NullString)
		case ingesteddocument.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case ingesteddocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestedDocument fields.
func (_m *IngestedDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingesteddocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ingesteddocument.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case ingesteddocument.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case ingesteddocument.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case ingesteddocument.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = new(string)
				*_m.ContentHash = value.String
			}
		case ingesteddocument.FieldDocumentDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_date", values[i])
			} else if value.Valid {
				_m.DocumentDate = new(string)
				*_m.DocumentDate = value.String
			}
		case ingesteddocument.FieldPolicyNumbers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field policy_numbers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PolicyNumbers); err != nil {
					return fmt.Errorf("unmarshal field policy_numbers: %w", err)
				}
			}
		case ingesteddocument.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestedDocument.
// This includes values selected through modifiers, order, etc.
func (_m *IngestedDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngestedDocument.
// Note that you need to call IngestedDocument.Unwrap() before calling this method if this IngestedDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestedDocument) Update() *IngestedDocumentUpdateOne {
	return NewIngestedDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestedDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestedDocument) Unwrap() *IngestedDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestedDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestedDocument) String() string {
	var builder strings.Builder
	builder.WriteString("IngestedDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	if v := _m.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocumentDate; v != nil {
		builder.WriteString("document_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("policy_numbers=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyNumbers))
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IngestedDocuments is a parsable slice of IngestedDocument.
type IngestedDocuments []*IngestedDocument
