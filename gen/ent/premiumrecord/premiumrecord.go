// Code generated by ent, DO NOT EDIT.

package premiumrecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the premiumrecord type in the database.
	Label = "premium_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldPremiumAmount holds the string denoting the premium_amount field in the database.
	FieldPremiumAmount = "premium_amount"
	// FieldGstAmount holds the string denoting the gst_amount field in the database.
	FieldGstAmount = "gst_amount"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldDueCount holds the string denoting the due_count field in the database.
	FieldDueCount = "due_count"
	// FieldEstimatedCommission holds the string denoting the estimated_commission field in the database.
	FieldEstimatedCommission = "estimated_commission"
	// FieldAgentCode holds the string denoting the agent_code field in the database.
	FieldAgentCode = "agent_code"
	// FieldSourceDocument holds the string denoting the source_document field in the database.
	FieldSourceDocument = "source_document"
	// FieldDocumentDate holds the string denoting the document_date field in the database.
	FieldDocumentDate = "document_date"
	// Table holds the table name of the premiumrecord in the database.
	Table = "premium_records"
)

// Columns holds all SQL columns for premiumrecord fields.
var Columns = []string{
	FieldID,
	FieldPolicyNumber,
	FieldDueDate,
	FieldPremiumAmount,
	FieldGstAmount,
	FieldTotalAmount,
	FieldDueCount,
	FieldEstimatedCommission,
	FieldAgentCode,
	FieldSourceDocument,
	FieldDocumentDate,
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
	// SourceDocumentValidator is a validator for the "source_document" field. It is called by the builders before save.
	SourceDocumentValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PremiumRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByPremiumAmount orders the results by the premium_amount field.
func ByPremiumAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiumAmount, opts...).ToFunc()
}

// ByGstAmount orders the results by the gst_amount field.
func ByGstAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGstAmount, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByDueCount orders the results by the due_count field.
func ByDueCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueCount, opts...).ToFunc()
}

// ByEstimatedCommission orders the results by the estimated_commission field.
func ByEstimatedCommission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCommission, opts...).ToFunc()
}

// ByAgentCode orders the results by the agent_code field.
func ByAgentCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentCode, opts...).ToFunc()
}

// BySourceDocument orders the results by the source_document field.
func BySourceDocument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDocument, opts...).ToFunc()
}

// ByDocumentDate orders the results by the document_date field.
func ByDocumentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentDate, opts...).ToFunc()
}
