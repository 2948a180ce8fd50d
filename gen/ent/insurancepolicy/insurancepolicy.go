// Code generated by ent, DO NOT EDIT.

package insurancepolicy

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the insurancepolicy type in the database.
	Label = "insurance_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldAgentCode holds the string denoting the agent_code field in the database.
	FieldAgentCode = "agent_code"
	// FieldPlanName holds the string denoting the plan_name field in the database.
	FieldPlanName = "plan_name"
	// FieldDateOfCommencement holds the string denoting the date_of_commencement field in the database.
	FieldDateOfCommencement = "date_of_commencement"
	// FieldPaymentPeriod holds the string denoting the payment_period field in the database.
	FieldPaymentPeriod = "payment_period"
	// FieldCurrentFupDate holds the string denoting the current_fup_date field in the database.
	FieldCurrentFupDate = "current_fup_date"
	// FieldPremiumAmount holds the string denoting the premium_amount field in the database.
	FieldPremiumAmount = "premium_amount"
	// FieldSumAssured holds the string denoting the sum_assured field in the database.
	FieldSumAssured = "sum_assured"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCustomer holds the string denoting the customer edge name in mutations.
	EdgeCustomer = "customer"
	// Table holds the table name of the insurancepolicy in the database.
	Table = "policies"
	// CustomerTable is the table that holds the customer relation/edge.
	CustomerTable = "policies"
	// CustomerInverseTable is the table name for the Customer entity.
	// It exists in this package in order to avoid circular dependency with the "customer" package.
	CustomerInverseTable = "customers"
	// CustomerColumn is the table column denoting the customer relation/edge.
	CustomerColumn = "customer_id"
)

// Columns holds all SQL columns for insurancepolicy fields.
var Columns = []string{
	FieldID,
	FieldPolicyNumber,
	FieldCustomerID,
	FieldAgentCode,
	FieldPlanName,
	FieldDateOfCommencement,
	FieldPaymentPeriod,
	FieldCurrentFupDate,
	FieldPremiumAmount,
	FieldSumAssured,
	FieldStatus,
	FieldExtractionMethod,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	PolicyNumberValidator func(string) error
	// PaymentPeriodValidator is a validator for the "payment_period" field. It is called by the builders before save.
	PaymentPeriodValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultExtractionMethod holds the default value on creation for the "extraction_method" field.
	DefaultExtractionMethod string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InsurancePolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByAgentCode orders the results by the agent_code field.
func ByAgentCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentCode, opts...).ToFunc()
}

// ByPlanName orders the results by the plan_name field.
func ByPlanName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanName, opts...).ToFunc()
}

// ByDateOfCommencement orders the results by the date_of_commencement field.
func ByDateOfCommencement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfCommencement, opts...).ToFunc()
}

// ByPaymentPeriod orders the results by the payment_period field.
func ByPaymentPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentPeriod, opts...).ToFunc()
}

// ByCurrentFupDate orders the results by the current_fup_date field.
func ByCurrentFupDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentFupDate, opts...).ToFunc()
}

// ByPremiumAmount orders the results by the premium_amount field.
func ByPremiumAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiumAmount, opts...).ToFunc()
}

// BySumAssured orders the results by the sum_assured field.
func BySumAssured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSumAssured, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCustomerField orders the results by customer field.
func ByCustomerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomerStep(), sql.OrderByField(field, opts...))
	}
}
func newCustomerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
	)
}
