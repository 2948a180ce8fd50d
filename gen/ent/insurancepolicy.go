// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
)

// InsurancePolicy is the model entity for the InsurancePolicy schema.
type InsurancePolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID uuid.UUID `json:"customer_id,omitempty"`
	// AgentCode holds the value of the "agent_code" field.
	AgentCode *string `json:"agent_code,omitempty"`
	// PlanName holds the value of the "plan_name" field.
	PlanName *string `json:"plan_name,omitempty"`
	// DateOfCommencement holds the value of the "date_of_commencement" field.
	DateOfCommencement *string `json:"date_of_commencement,omitempty"`
	// PaymentPeriod holds the value of the "payment_period" field.
	PaymentPeriod *string `json:"payment_period,omitempty"`
	// CurrentFupDate holds the value of the "current_fup_date" field.
	CurrentFupDate *string `json:"current_fup_date,omitempty"`
	// PremiumAmount holds the value of the "premium_amount" field.
	PremiumAmount *float64 `json:"premium_amount,omitempty"`
	// SumAssured holds the value of the "sum_assured" field.
	SumAssured *float64 `json:"sum_assured,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod string `json:"extraction_method,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt string `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt string `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsurancePolicyQuery when eager-loading is set.
	Edges        InsurancePolicyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsurancePolicyEdges holds the relations/edges for other nodes in the graph.
type InsurancePolicyEdges struct {
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InsurancePolicyEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InsurancePolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insurancepolicy.FieldPremiumAmount, insurancepolicy.FieldSumAssured:
			values[i] = new(sql.NullFloat64)
		case insurancepolicy.FieldPolicyNumber, insurancepolicy.FieldAgentCode, insurancepolicy.FieldPlanName, insurancepolicy.FieldDateOfCommencement, insurancepolicy.FieldPaymentPeriod, insurancepolicy.FieldCurrentFupDate, insurancepolicy.FieldStatus, insurancepolicy.FieldExtractionMethod, insurancepolicy.FieldCreatedAt, insurancepolicy.FieldUpdatedAt:
			values[i] = new(sql.NullString)
		case insurancepolicy.FieldID, insurancepolicy.FieldCustomerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InsurancePolicy fields.
func (_m *InsurancePolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insurancepolicy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case insurancepolicy.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case insurancepolicy.FieldCustomerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value != nil {
				_m.CustomerID = *value
			}
		case insurancepolicy.FieldAgentCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_code", values[i])
			} else if value.Valid {
				_m.AgentCode = new(string)
				*_m.AgentCode = value.String
			}
		case insurancepolicy.FieldPlanName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_name", values[i])
			} else if value.Valid {
				_m.PlanName = new(string)
				*_m.PlanName = value.String
			}
		case insurancepolicy.FieldDateOfCommencement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_commencement", values[i])
			} else if value.Valid {
				_m.DateOfCommencement = new(string)
				*_m.DateOfCommencement = value.String
			}
		case insurancepolicy.FieldPaymentPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_period", values[i])
			} else if value.Valid {
				_m.PaymentPeriod = new(string)
				*_m.PaymentPeriod = value.String
			}
		case insurancepolicy.FieldCurrentFupDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_fup_date", values[i])
			} else if value.Valid {
				_m.CurrentFupDate = new(string)
				*_m.CurrentFupDate = value.String
			}
		case insurancepolicy.FieldPremiumAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field premium_amount", values[i])
			} else if value.Valid {
				_m.PremiumAmount = new(float64)
				*_m.PremiumAmount = value.Float64
			}
		case insurancepolicy.FieldSumAssured:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sum_assured", values[i])
			} else if value.Valid {
				_m.SumAssured = new(float64)
				*_m.SumAssured = value.Float64
			}
		case insurancepolicy.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case insurancepolicy.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = value.String
			}
		case insurancepolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.String
			}
		case insurancepolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InsurancePolicy.
// This includes values selected through modifiers, order, etc.
func (_m *InsurancePolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCustomer queries the "customer" edge of the InsurancePolicy entity.
func (_m *InsurancePolicy) QueryCustomer() *CustomerQuery {
	return NewInsurancePolicyClient(_m.config).QueryCustomer(_m)
}

// Update returns a builder for updating this InsurancePolicy.
// Note that you need to call InsurancePolicy.Unwrap() before calling this method if this InsurancePolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InsurancePolicy) Update() *InsurancePolicyUpdateOne {
	return NewInsurancePolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InsurancePolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InsurancePolicy) Unwrap() *InsurancePolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InsurancePolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InsurancePolicy) String() string {
	var builder strings.Builder
	builder.WriteString("InsurancePolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerID))
	builder.WriteString(", ")
	if v := _m.AgentCode; v != nil {
		builder.WriteString("agent_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanName; v != nil {
		builder.WriteString("plan_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateOfCommencement; v != nil {
		builder.WriteString("date_of_commencement=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentPeriod; v != nil {
		builder.WriteString("payment_period=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentFupDate; v != nil {
		builder.WriteString("current_fup_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PremiumAmount; v != nil {
		builder.WriteString("premium_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SumAssured; v != nil {
		builder.WriteString("sum_assured=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("extraction_method=")
	builder.WriteString(_m.ExtractionMethod)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt)
	builder.WriteByte(')')
	return builder.String()
}

// InsurancePolicies is a parsable slice of InsurancePolicy.
type InsurancePolicies []*InsurancePolicy
