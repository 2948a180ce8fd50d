// Code generated by ent, DO NOT EDIT.

package premiumrecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldID, id))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPolicyNumber, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueDate, v))
}

// PremiumAmount applies equality check predicate on the "premium_amount" field. It's identical to PremiumAmountEQ.
func PremiumAmount(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPremiumAmount, v))
}

// GstAmount applies equality check predicate on the "gst_amount" field. It's identical to GstAmountEQ.
func GstAmount(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldGstAmount, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldTotalAmount, v))
}

// DueCount applies equality check predicate on the "due_count" field. It's identical to DueCountEQ.
func DueCount(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueCount, v))
}

// EstimatedCommission applies equality check predicate on the "estimated_commission" field. It's identical to EstimatedCommissionEQ.
func EstimatedCommission(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldEstimatedCommission, v))
}

// AgentCode applies equality check predicate on the "agent_code" field. It's identical to AgentCodeEQ.
func AgentCode(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldAgentCode, v))
}

// SourceDocument applies equality check predicate on the "source_document" field. It's identical to SourceDocumentEQ.
func SourceDocument(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldSourceDocument, v))
}

// DocumentDate applies equality check predicate on the "document_date" field. It's identical to DocumentDateEQ.
func DocumentDate(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDocumentDate, v))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldDueDate, v))
}

// DueDateContains applies the Contains predicate on the "due_date" field.
func DueDateContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldDueDate, v))
}

// DueDateHasPrefix applies the HasPrefix predicate on the "due_date" field.
func DueDateHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldDueDate, v))
}

// DueDateHasSuffix applies the HasSuffix predicate on the "due_date" field.
func DueDateHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldDueDate))
}

// DueDateEqualFold applies the EqualFold predicate on the "due_date" field.
func DueDateEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldDueDate, v))
}

// DueDateContainsFold applies the ContainsFold predicate on the "due_date" field.
func DueDateContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldDueDate, v))
}

// PremiumAmountEQ applies the EQ predicate on the "premium_amount" field.
func PremiumAmountEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldPremiumAmount, v))
}

// PremiumAmountNEQ applies the NEQ predicate on the "premium_amount" field.
func PremiumAmountNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldPremiumAmount, v))
}

// PremiumAmountIn applies the In predicate on the "premium_amount" field.
func PremiumAmountIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldPremiumAmount, vs...))
}

// PremiumAmountNotIn applies the NotIn predicate on the "premium_amount" field.
func PremiumAmountNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldPremiumAmount, vs...))
}

// PremiumAmountGT applies the GT predicate on the "premium_amount" field.
func PremiumAmountGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldPremiumAmount, v))
}

// PremiumAmountGTE applies the GTE predicate on the "premium_amount" field.
func PremiumAmountGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldPremiumAmount, v))
}

// PremiumAmountLT applies the LT predicate on the "premium_amount" field.
func PremiumAmountLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldPremiumAmount, v))
}

// PremiumAmountLTE applies the LTE predicate on the "premium_amount" field.
func PremiumAmountLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldPremiumAmount, v))
}

// PremiumAmountIsNil applies the IsNil predicate on the "premium_amount" field.
func PremiumAmountIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldPremiumAmount))
}

// PremiumAmountNotNil applies the NotNil predicate on the "premium_amount" field.
func PremiumAmountNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldPremiumAmount))
}

// GstAmountEQ applies the EQ predicate on the "gst_amount" field.
func GstAmountEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldGstAmount, v))
}

// GstAmountNEQ applies the NEQ predicate on the "gst_amount" field.
func GstAmountNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldGstAmount, v))
}

// GstAmountIn applies the In predicate on the "gst_amount" field.
func GstAmountIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldGstAmount, vs...))
}

// GstAmountNotIn applies the NotIn predicate on the "gst_amount" field.
func GstAmountNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldGstAmount, vs...))
}

// GstAmountGT applies the GT predicate on the "gst_amount" field.
func GstAmountGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldGstAmount, v))
}

// GstAmountGTE applies the GTE predicate on the "gst_amount" field.
func GstAmountGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldGstAmount, v))
}

// GstAmountLT applies the LT predicate on the "gst_amount" field.
func GstAmountLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldGstAmount, v))
}

// GstAmountLTE applies the LTE predicate on the "gst_amount" field.
func GstAmountLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldGstAmount, v))
}

// GstAmountIsNil applies the IsNil predicate on the "gst_amount" field.
func GstAmountIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldGstAmount))
}

// GstAmountNotNil applies the NotNil predicate on the "gst_amount" field.
func GstAmountNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldGstAmount))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldTotalAmount))
}

// DueCountEQ applies the EQ predicate on the "due_count" field.
func DueCountEQ(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDueCount, v))
}

// DueCountNEQ applies the NEQ predicate on the "due_count" field.
func DueCountNEQ(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldDueCount, v))
}

// DueCountIn applies the In predicate on the "due_count" field.
func DueCountIn(vs ...int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldDueCount, vs...))
}

// DueCountNotIn applies the NotIn predicate on the "due_count" field.
func DueCountNotIn(vs ...int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldDueCount, vs...))
}

// DueCountGT applies the GT predicate on the "due_count" field.
func DueCountGT(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldDueCount, v))
}

// DueCountGTE applies the GTE predicate on the "due_count" field.
func DueCountGTE(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldDueCount, v))
}

// DueCountLT applies the LT predicate on the "due_count" field.
func DueCountLT(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldDueCount, v))
}

// DueCountLTE applies the LTE predicate on the "due_count" field.
func DueCountLTE(v int) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldDueCount, v))
}

// DueCountIsNil applies the IsNil predicate on the "due_count" field.
func DueCountIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldDueCount))
}

// DueCountNotNil applies the NotNil predicate on the "due_count" field.
func DueCountNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldDueCount))
}

// EstimatedCommissionEQ applies the EQ predicate on the "estimated_commission" field.
func EstimatedCommissionEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldEstimatedCommission, v))
}

// EstimatedCommissionNEQ applies the NEQ predicate on the "estimated_commission" field.
func EstimatedCommissionNEQ(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldEstimatedCommission, v))
}

// EstimatedCommissionIn applies the In predicate on the "estimated_commission" field.
func EstimatedCommissionIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldEstimatedCommission, vs...))
}

// EstimatedCommissionNotIn applies the NotIn predicate on the "estimated_commission" field.
func EstimatedCommissionNotIn(vs ...float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldEstimatedCommission, vs...))
}

// EstimatedCommissionGT applies the GT predicate on the "estimated_commission" field.
func EstimatedCommissionGT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldEstimatedCommission, v))
}

// EstimatedCommissionGTE applies the GTE predicate on the "estimated_commission" field.
func EstimatedCommissionGTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldEstimatedCommission, v))
}

// EstimatedCommissionLT applies the LT predicate on the "estimated_commission" field.
func EstimatedCommissionLT(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldEstimatedCommission, v))
}

// EstimatedCommissionLTE applies the LTE predicate on the "estimated_commission" field.
func EstimatedCommissionLTE(v float64) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldEstimatedCommission, v))
}

// EstimatedCommissionIsNil applies the IsNil predicate on the "estimated_commission" field.
func EstimatedCommissionIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldEstimatedCommission))
}

// EstimatedCommissionNotNil applies the NotNil predicate on the "estimated_commission" field.
func EstimatedCommissionNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldEstimatedCommission))
}

// AgentCodeEQ applies the EQ predicate on the "agent_code" field.
func AgentCodeEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldAgentCode, v))
}

// AgentCodeNEQ applies the NEQ predicate on the "agent_code" field.
func AgentCodeNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldAgentCode, v))
}

// AgentCodeIn applies the In predicate on the "agent_code" field.
func AgentCodeIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldAgentCode, vs...))
}

// AgentCodeNotIn applies the NotIn predicate on the "agent_code" field.
func AgentCodeNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldAgentCode, vs...))
}

// AgentCodeGT applies the GT predicate on the "agent_code" field.
func AgentCodeGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldAgentCode, v))
}

// AgentCodeGTE applies the GTE predicate on the "agent_code" field.
func AgentCodeGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldAgentCode, v))
}

// AgentCodeLT applies the LT predicate on the "agent_code" field.
func AgentCodeLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldAgentCode, v))
}

// AgentCodeLTE applies the LTE predicate on the "agent_code" field.
func AgentCodeLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldAgentCode, v))
}

// AgentCodeContains applies the Contains predicate on the "agent_code" field.
func AgentCodeContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldAgentCode, v))
}

// AgentCodeHasPrefix applies the HasPrefix predicate on the "agent_code" field.
func AgentCodeHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldAgentCode, v))
}

// AgentCodeHasSuffix applies the HasSuffix predicate on the "agent_code" field.
func AgentCodeHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldAgentCode, v))
}

// AgentCodeIsNil applies the IsNil predicate on the "agent_code" field.
func AgentCodeIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldAgentCode))
}

// AgentCodeNotNil applies the NotNil predicate on the "agent_code" field.
func AgentCodeNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldAgentCode))
}

// AgentCodeEqualFold applies the EqualFold predicate on the "agent_code" field.
func AgentCodeEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldAgentCode, v))
}

// AgentCodeContainsFold applies the ContainsFold predicate on the "agent_code" field.
func AgentCodeContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldAgentCode, v))
}

// SourceDocumentEQ applies the EQ predicate on the "source_document" field.
func SourceDocumentEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldSourceDocument, v))
}

// SourceDocumentNEQ applies the NEQ predicate on the "source_document" field.
func SourceDocumentNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldSourceDocument, v))
}

// SourceDocumentIn applies the In predicate on the "source_document" field.
func SourceDocumentIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldSourceDocument, vs...))
}

// SourceDocumentNotIn applies the NotIn predicate on the "source_document" field.
func SourceDocumentNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldSourceDocument, vs...))
}

// SourceDocumentGT applies the GT predicate on the "source_document" field.
func SourceDocumentGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldSourceDocument, v))
}

// SourceDocumentGTE applies the GTE predicate on the "source_document" field.
func SourceDocumentGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldSourceDocument, v))
}

// SourceDocumentLT applies the LT predicate on the "source_document" field.
func SourceDocumentLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldSourceDocument, v))
}

// SourceDocumentLTE applies the LTE predicate on the "source_document" field.
func SourceDocumentLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldSourceDocument, v))
}

// SourceDocumentContains applies the Contains predicate on the "source_document" field.
func SourceDocumentContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldSourceDocument, v))
}

// SourceDocumentHasPrefix applies the HasPrefix predicate on the "source_document" field.
func SourceDocumentHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldSourceDocument, v))
}

// SourceDocumentHasSuffix applies the HasSuffix predicate on the "source_document" field.
func SourceDocumentHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldSourceDocument, v))
}

// SourceDocumentEqualFold applies the EqualFold predicate on the "source_document" field.
func SourceDocumentEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldSourceDocument, v))
}

// SourceDocumentContainsFold applies the ContainsFold predicate on the "source_document" field.
func SourceDocumentContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldSourceDocument, v))
}

// DocumentDateEQ applies the EQ predicate on the "document_date" field.
func DocumentDateEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEQ(FieldDocumentDate, v))
}

// DocumentDateNEQ applies the NEQ predicate on the "document_date" field.
func DocumentDateNEQ(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNEQ(FieldDocumentDate, v))
}

// DocumentDateIn applies the In predicate on the "document_date" field.
func DocumentDateIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIn(FieldDocumentDate, vs...))
}

// DocumentDateNotIn applies the NotIn predicate on the "document_date" field.
func DocumentDateNotIn(vs ...string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotIn(FieldDocumentDate, vs...))
}

// DocumentDateGT applies the GT predicate on the "document_date" field.
func DocumentDateGT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGT(FieldDocumentDate, v))
}

// DocumentDateGTE applies the GTE predicate on the "document_date" field.
func DocumentDateGTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldGTE(FieldDocumentDate, v))
}

// DocumentDateLT applies the LT predicate on the "document_date" field.
func DocumentDateLT(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLT(FieldDocumentDate, v))
}

// DocumentDateLTE applies the LTE predicate on the "document_date" field.
func DocumentDateLTE(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldLTE(FieldDocumentDate, v))
}

// DocumentDateContains applies the Contains predicate on the "document_date" field.
func DocumentDateContains(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContains(FieldDocumentDate, v))
}

// DocumentDateHasPrefix applies the HasPrefix predicate on the "document_date" field.
func DocumentDateHasPrefix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasPrefix(FieldDocumentDate, v))
}

// DocumentDateHasSuffix applies the HasSuffix predicate on the "document_date" field.
func DocumentDateHasSuffix(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldHasSuffix(FieldDocumentDate, v))
}

// DocumentDateIsNil applies the IsNil predicate on the "document_date" field.
func DocumentDateIsNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldIsNull(FieldDocumentDate))
}

// DocumentDateNotNil applies the NotNil predicate on the "document_date" field.
func DocumentDateNotNil() predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldNotNull(FieldDocumentDate))
}

// DocumentDateEqualFold applies the EqualFold predicate on the "document_date" field.
func DocumentDateEqualFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldEqualFold(FieldDocumentDate, v))
}

// DocumentDateContainsFold applies the ContainsFold predicate on the "document_date" field.
func DocumentDateContainsFold(v string) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.FieldContainsFold(FieldDocumentDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PremiumRecord) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PremiumRecord) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PremiumRecord) predicate.PremiumRecord {
	return predicate.PremiumRecord(sql.NotPredicates(p))
}
