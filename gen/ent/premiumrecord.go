// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecord is the model entity for the PremiumRecord schema.
type PremiumRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *string `json:"due_date,omitempty"`
	// PremiumAmount holds the value of the "premium_amount" field.
	PremiumAmount *float64 `json:"premium_amount,omitempty"`
	// GstAmount holds the value of the "gst_amount" field.
	GstAmount *float64 `json:"gst_amount,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// DueCount holds the value of the "due_count" field.
	DueCount *int `json:"due_count,omitempty"`
	// EstimatedCommission holds the value of the "estimated_commission" field.
	EstimatedCommission *float64 `json:"estimated_commission,omitempty"`
	// AgentCode holds the value of the "agent_code" field.
	AgentCode *string `json:"agent_code,omitempty"`
	// SourceDocument holds the value of the "source_document" field.
	SourceDocument string `json:"source_document,omitempty"`
	// DocumentDate holds the value of the "document_date" field.
	DocumentDate *string `json:"document_date,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PremiumRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case premiumrecord.FieldPremiumAmount, premiumrecord.FieldGstAmount, premiumrecord.FieldTotalAmount, premiumrecord.FieldEstimatedCommission:
			values[i] = new(sql.NullFloat64)
		case premiumrecord.FieldDueCount:
			values[i] = new(sql.NullInt64)
		case premiumrecord.FieldPolicyNumber, premiumrecord.FieldDueDate, premiumrecord.FieldAgentCode, premiumrecord.FieldSourceDocument, premiumrecord.FieldDocumentDate:
			values[i] = new(sql.NullString)
		case premiumrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PremiumRecord fields.
func (_m *PremiumRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case premiumrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case premiumrecord.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case premiumrecord.FieldDueDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(string)
				*_m.DueDate = value.String
			}
		case premiumrecord.FieldPremiumAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field premium_amount", values[i])
			} else if value.Valid {
				_m.PremiumAmount = new(float64)
				*_m.PremiumAmount = value.Float64
			}
		case premiumrecord.FieldGstAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gst_amount", values[i])
			} else if value.Valid {
				_m.GstAmount = new(float64)
				*_m.GstAmount = value.Float64
			}
		case premiumrecord.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case premiumrecord.FieldDueCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field due_count", values[i])
			} else if value.Valid {
				_m.DueCount = new(int)
				*_m.DueCount = int(value.Int64)
			}
		case premiumrecord.FieldEstimatedCommission:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_commission", values[i])
			} else if value.Valid {
				_m.EstimatedCommission = new(float64)
				*_m.EstimatedCommission = value.Float64
			}
		case premiumrecord.FieldAgentCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_code", values[i])
			} else if value.Valid {
				_m.AgentCode = new(string)
				*_m.AgentCode = value.String
			}
		case premiumrecord.FieldSourceDocument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_document", values[i])
			} else if value.Valid {
				_m.SourceDocument = value.String
			}
		case premiumrecord.FieldDocumentDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_date", values[i])
			} else if value.Valid {
				_m.DocumentDate = new(string)
				*_m.DocumentDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PremiumRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PremiumRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PremiumRecord.
// Note that you need to call PremiumRecord.Unwrap() before calling this method if this PremiumRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PremiumRecord) Update() *PremiumRecordUpdateOne {
	return NewPremiumRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PremiumRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PremiumRecord) Unwrap() *PremiumRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PremiumRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PremiumRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PremiumRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PremiumAmount; v != nil {
		builder.WriteString("premium_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GstAmount; v != nil {
		builder.WriteString("gst_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DueCount; v != nil {
		builder.WriteString("due_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EstimatedCommission; v != nil {
		builder.WriteString("estimated_commission=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentCode; v != nil {
		builder.WriteString("agent_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_document=")
	builder.WriteString(_m.SourceDocument)
	builder.WriteString(", ")
	if v := _m.DocumentDate; v != nil {
		builder.WriteString("document_date=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// PremiumRecords is a parsable slice of PremiumRecord.
type PremiumRecords []*PremiumRecord
