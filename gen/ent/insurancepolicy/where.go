// Code generated by ent, DO NOT EDIT.

package insurancepolicy

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldID, id))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPolicyNumber, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCustomerID, v))
}

// AgentCode applies equality check predicate on the "agent_code" field. It's identical to AgentCodeEQ.
func AgentCode(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldAgentCode, v))
}

// PlanName applies equality check predicate on the "plan_name" field. It's identical to PlanNameEQ.
func PlanName(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPlanName, v))
}

// DateOfCommencement applies equality check predicate on the "date_of_commencement" field. It's identical to DateOfCommencementEQ.
func DateOfCommencement(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldDateOfCommencement, v))
}

// PaymentPeriod applies equality check predicate on the "payment_period" field. It's identical to PaymentPeriodEQ.
func PaymentPeriod(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPaymentPeriod, v))
}

// CurrentFupDate applies equality check predicate on the "current_fup_date" field. It's identical to CurrentFupDateEQ.
func CurrentFupDate(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCurrentFupDate, v))
}

// PremiumAmount applies equality check predicate on the "premium_amount" field. It's identical to PremiumAmountEQ.
func PremiumAmount(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPremiumAmount, v))
}

// SumAssured applies equality check predicate on the "sum_assured" field. It's identical to SumAssuredEQ.
func SumAssured(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldSumAssured, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldStatus, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldExtractionMethod, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...uuid.UUID) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldCustomerID, vs...))
}

// AgentCodeEQ applies the EQ predicate on the "agent_code" field.
func AgentCodeEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldAgentCode, v))
}

// AgentCodeNEQ applies the NEQ predicate on the "agent_code" field.
func AgentCodeNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldAgentCode, v))
}

// AgentCodeIn applies the In predicate on the "agent_code" field.
func AgentCodeIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldAgentCode, vs...))
}

// AgentCodeNotIn applies the NotIn predicate on the "agent_code" field.
func AgentCodeNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldAgentCode, vs...))
}

// AgentCodeGT applies the GT predicate on the "agent_code" field.
func AgentCodeGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldAgentCode, v))
}

// AgentCodeGTE applies the GTE predicate on the "agent_code" field.
func AgentCodeGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldAgentCode, v))
}

// AgentCodeLT applies the LT predicate on the "agent_code" field.
func AgentCodeLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldAgentCode, v))
}

// AgentCodeLTE applies the LTE predicate on the "agent_code" field.
func AgentCodeLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldAgentCode, v))
}

// AgentCodeContains applies the Contains predicate on the "agent_code" field.
func AgentCodeContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldAgentCode, v))
}

// AgentCodeHasPrefix applies the HasPrefix predicate on the "agent_code" field.
func AgentCodeHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldAgentCode, v))
}

// AgentCodeHasSuffix applies the HasSuffix predicate on the "agent_code" field.
func AgentCodeHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldAgentCode, v))
}

// AgentCodeIsNil applies the IsNil predicate on the "agent_code" field.
func AgentCodeIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldAgentCode))
}

// AgentCodeNotNil applies the NotNil predicate on the "agent_code" field.
func AgentCodeNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldAgentCode))
}

// AgentCodeEqualFold applies the EqualFold predicate on the "agent_code" field.
func AgentCodeEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldAgentCode, v))
}

// AgentCodeContainsFold applies the ContainsFold predicate on the "agent_code" field.
func AgentCodeContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldAgentCode, v))
}

// PlanNameEQ applies the EQ predicate on the "plan_name" field.
func PlanNameEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPlanName, v))
}

// PlanNameNEQ applies the NEQ predicate on the "plan_name" field.
func PlanNameNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPlanName, v))
}

// PlanNameIn applies the In predicate on the "plan_name" field.
func PlanNameIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPlanName, vs...))
}

// PlanNameNotIn applies the NotIn predicate on the "plan_name" field.
func PlanNameNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPlanName, vs...))
}

// PlanNameGT applies the GT predicate on the "plan_name" field.
func PlanNameGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPlanName, v))
}

// PlanNameGTE applies the GTE predicate on the "plan_name" field.
func PlanNameGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPlanName, v))
}

// PlanNameLT applies the LT predicate on the "plan_name" field.
func PlanNameLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPlanName, v))
}

// PlanNameLTE applies the LTE predicate on the "plan_name" field.
func PlanNameLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPlanName, v))
}

// PlanNameContains applies the Contains predicate on the "plan_name" field.
func PlanNameContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPlanName, v))
}

// PlanNameHasPrefix applies the HasPrefix predicate on the "plan_name" field.
func PlanNameHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPlanName, v))
}

// PlanNameHasSuffix applies the HasSuffix predicate on the "plan_name" field.
func PlanNameHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPlanName, v))
}

// PlanNameIsNil applies the IsNil predicate on the "plan_name" field.
func PlanNameIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPlanName))
}

// PlanNameNotNil applies the NotNil predicate on the "plan_name" field.
func PlanNameNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPlanName))
}

// PlanNameEqualFold applies the EqualFold predicate on the "plan_name" field.
func PlanNameEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPlanName, v))
}

// PlanNameContainsFold applies the ContainsFold predicate on the "plan_name" field.
func PlanNameContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPlanName, v))
}

// DateOfCommencementEQ applies the EQ predicate on the "date_of_commencement" field.
func DateOfCommencementEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldDateOfCommencement, v))
}

// DateOfCommencementNEQ applies the NEQ predicate on the "date_of_commencement" field.
func DateOfCommencementNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldDateOfCommencement, v))
}

// DateOfCommencementIn applies the In predicate on the "date_of_commencement" field.
func DateOfCommencementIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldDateOfCommencement, vs...))
}

// DateOfCommencementNotIn applies the NotIn predicate on the "date_of_commencement" field.
func DateOfCommencementNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldDateOfCommencement, vs...))
}

// DateOfCommencementGT applies the GT predicate on the "date_of_commencement" field.
func DateOfCommencementGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldDateOfCommencement, v))
}

// DateOfCommencementGTE applies the GTE predicate on the "date_of_commencement" field.
func DateOfCommencementGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldDateOfCommencement, v))
}

// DateOfCommencementLT applies the LT predicate on the "date_of_commencement" field.
func DateOfCommencementLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldDateOfCommencement, v))
}

// DateOfCommencementLTE applies the LTE predicate on the "date_of_commencement" field.
func DateOfCommencementLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldDateOfCommencement, v))
}

// DateOfCommencementContains applies the Contains predicate on the "date_of_commencement" field.
func DateOfCommencementContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldDateOfCommencement, v))
}

// DateOfCommencementHasPrefix applies the HasPrefix predicate on the "date_of_commencement" field.
func DateOfCommencementHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldDateOfCommencement, v))
}

// DateOfCommencementHasSuffix applies the HasSuffix predicate on the "date_of_commencement" field.
func DateOfCommencementHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldDateOfCommencement, v))
}

// DateOfCommencementIsNil applies the IsNil predicate on the "date_of_commencement" field.
func DateOfCommencementIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldDateOfCommencement))
}

// DateOfCommencementNotNil applies the NotNil predicate on the "date_of_commencement" field.
func DateOfCommencementNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldDateOfCommencement))
}

// DateOfCommencementEqualFold applies the EqualFold predicate on the "date_of_commencement" field.
func DateOfCommencementEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldDateOfCommencement, v))
}

// DateOfCommencementContainsFold applies the ContainsFold predicate on the "date_of_commencement" field.
func DateOfCommencementContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldDateOfCommencement, v))
}

// PaymentPeriodEQ applies the EQ predicate on the "payment_period" field.
func PaymentPeriodEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPaymentPeriod, v))
}

// PaymentPeriodNEQ applies the NEQ predicate on the "payment_period" field.
func PaymentPeriodNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPaymentPeriod, v))
}

// PaymentPeriodIn applies the In predicate on the "payment_period" field.
func PaymentPeriodIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPaymentPeriod, vs...))
}

// PaymentPeriodNotIn applies the NotIn predicate on the "payment_period" field.
func PaymentPeriodNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPaymentPeriod, vs...))
}

// PaymentPeriodGT applies the GT predicate on the "payment_period" field.
func PaymentPeriodGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPaymentPeriod, v))
}

// PaymentPeriodGTE applies the GTE predicate on the "payment_period" field.
func PaymentPeriodGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPaymentPeriod, v))
}

// PaymentPeriodLT applies the LT predicate on the "payment_period" field.
func PaymentPeriodLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPaymentPeriod, v))
}

// PaymentPeriodLTE applies the LTE predicate on the "payment_period" field.
func PaymentPeriodLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPaymentPeriod, v))
}

// PaymentPeriodContains applies the Contains predicate on the "payment_period" field.
func PaymentPeriodContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldPaymentPeriod, v))
}

// PaymentPeriodHasPrefix applies the HasPrefix predicate on the "payment_period" field.
func PaymentPeriodHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldPaymentPeriod, v))
}

// PaymentPeriodHasSuffix applies the HasSuffix predicate on the "payment_period" field.
func PaymentPeriodHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldPaymentPeriod, v))
}

// PaymentPeriodIsNil applies the IsNil predicate on the "payment_period" field.
func PaymentPeriodIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPaymentPeriod))
}

// PaymentPeriodNotNil applies the NotNil predicate on the "payment_period" field.
func PaymentPeriodNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPaymentPeriod))
}

// PaymentPeriodEqualFold applies the EqualFold predicate on the "payment_period" field.
func PaymentPeriodEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldPaymentPeriod, v))
}

// PaymentPeriodContainsFold applies the ContainsFold predicate on the "payment_period" field.
func PaymentPeriodContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldPaymentPeriod, v))
}

// CurrentFupDateEQ applies the EQ predicate on the "current_fup_date" field.
func CurrentFupDateEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCurrentFupDate, v))
}

// CurrentFupDateNEQ applies the NEQ predicate on the "current_fup_date" field.
func CurrentFupDateNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldCurrentFupDate, v))
}

// CurrentFupDateIn applies the In predicate on the "current_fup_date" field.
func CurrentFupDateIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldCurrentFupDate, vs...))
}

// CurrentFupDateNotIn applies the NotIn predicate on the "current_fup_date" field.
func CurrentFupDateNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldCurrentFupDate, vs...))
}

// CurrentFupDateGT applies the GT predicate on the "current_fup_date" field.
func CurrentFupDateGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldCurrentFupDate, v))
}

// CurrentFupDateGTE applies the GTE predicate on the "current_fup_date" field.
func CurrentFupDateGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldCurrentFupDate, v))
}

// CurrentFupDateLT applies the LT predicate on the "current_fup_date" field.
func CurrentFupDateLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldCurrentFupDate, v))
}

// CurrentFupDateLTE applies the LTE predicate on the "current_fup_date" field.
func CurrentFupDateLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldCurrentFupDate, v))
}

// CurrentFupDateContains applies the Contains predicate on the "current_fup_date" field.
func CurrentFupDateContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldCurrentFupDate, v))
}

// CurrentFupDateHasPrefix applies the HasPrefix predicate on the "current_fup_date" field.
func CurrentFupDateHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldCurrentFupDate, v))
}

// CurrentFupDateHasSuffix applies the HasSuffix predicate on the "current_fup_date" field.
func CurrentFupDateHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldCurrentFupDate, v))
}

// CurrentFupDateIsNil applies the IsNil predicate on the "current_fup_date" field.
func CurrentFupDateIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldCurrentFupDate))
}

// CurrentFupDateNotNil applies the NotNil predicate on the "current_fup_date" field.
func CurrentFupDateNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldCurrentFupDate))
}

// CurrentFupDateEqualFold applies the EqualFold predicate on the "current_fup_date" field.
func CurrentFupDateEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldCurrentFupDate, v))
}

// CurrentFupDateContainsFold applies the ContainsFold predicate on the "current_fup_date" field.
func CurrentFupDateContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldCurrentFupDate, v))
}

// PremiumAmountEQ applies the EQ predicate on the "premium_amount" field.
func PremiumAmountEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldPremiumAmount, v))
}

// PremiumAmountNEQ applies the NEQ predicate on the "premium_amount" field.
func PremiumAmountNEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldPremiumAmount, v))
}

// PremiumAmountIn applies the In predicate on the "premium_amount" field.
func PremiumAmountIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldPremiumAmount, vs...))
}

// PremiumAmountNotIn applies the NotIn predicate on the "premium_amount" field.
func PremiumAmountNotIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldPremiumAmount, vs...))
}

// PremiumAmountGT applies the GT predicate on the "premium_amount" field.
func PremiumAmountGT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldPremiumAmount, v))
}

// PremiumAmountGTE applies the GTE predicate on the "premium_amount" field.
func PremiumAmountGTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldPremiumAmount, v))
}

// PremiumAmountLT applies the LT predicate on the "premium_amount" field.
func PremiumAmountLT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldPremiumAmount, v))
}

// PremiumAmountLTE applies the LTE predicate on the "premium_amount" field.
func PremiumAmountLTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldPremiumAmount, v))
}

// PremiumAmountIsNil applies the IsNil predicate on the "premium_amount" field.
func PremiumAmountIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldPremiumAmount))
}

// PremiumAmountNotNil applies the NotNil predicate on the "premium_amount" field.
func PremiumAmountNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldPremiumAmount))
}

// SumAssuredEQ applies the EQ predicate on the "sum_assured" field.
func SumAssuredEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldSumAssured, v))
}

// SumAssuredNEQ applies the NEQ predicate on the "sum_assured" field.
func SumAssuredNEQ(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldSumAssured, v))
}

// SumAssuredIn applies the In predicate on the "sum_assured" field.
func SumAssuredIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldSumAssured, vs...))
}

// SumAssuredNotIn applies the NotIn predicate on the "sum_assured" field.
func SumAssuredNotIn(vs ...float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldSumAssured, vs...))
}

// SumAssuredGT applies the GT predicate on the "sum_assured" field.
func SumAssuredGT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldSumAssured, v))
}

// SumAssuredGTE applies the GTE predicate on the "sum_assured" field.
func SumAssuredGTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldSumAssured, v))
}

// SumAssuredLT applies the LT predicate on the "sum_assured" field.
func SumAssuredLT(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldSumAssured, v))
}

// SumAssuredLTE applies the LTE predicate on the "sum_assured" field.
func SumAssuredLTE(v float64) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldSumAssured, v))
}

// SumAssuredIsNil applies the IsNil predicate on the "sum_assured" field.
func SumAssuredIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldSumAssured))
}

// SumAssuredNotNil applies the NotNil predicate on the "sum_assured" field.
func SumAssuredNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldSumAssured))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// CreatedAtContains applies the Contains predicate on the "created_at" field.
func CreatedAtContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldCreatedAt, v))
}

// CreatedAtHasPrefix applies the HasPrefix predicate on the "created_at" field.
func CreatedAtHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldCreatedAt, v))
}

// CreatedAtHasSuffix applies the HasSuffix predicate on the "created_at" field.
func CreatedAtHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldCreatedAt, v))
}

// CreatedAtIsNil applies the IsNil predicate on the "created_at" field.
func CreatedAtIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldCreatedAt))
}

// CreatedAtNotNil applies the NotNil predicate on the "created_at" field.
func CreatedAtNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldCreatedAt))
}

// CreatedAtEqualFold applies the EqualFold predicate on the "created_at" field.
func CreatedAtEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldCreatedAt, v))
}

// CreatedAtContainsFold applies the ContainsFold predicate on the "created_at" field.
func CreatedAtContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// UpdatedAtContains applies the Contains predicate on the "updated_at" field.
func UpdatedAtContains(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContains(FieldUpdatedAt, v))
}

// UpdatedAtHasPrefix applies the HasPrefix predicate on the "updated_at" field.
func UpdatedAtHasPrefix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasPrefix(FieldUpdatedAt, v))
}

// UpdatedAtHasSuffix applies the HasSuffix predicate on the "updated_at" field.
func UpdatedAtHasSuffix(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldHasSuffix(FieldUpdatedAt, v))
}

// UpdatedAtIsNil applies the IsNil predicate on the "updated_at" field.
func UpdatedAtIsNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldIsNull(FieldUpdatedAt))
}

// UpdatedAtNotNil applies the NotNil predicate on the "updated_at" field.
func UpdatedAtNotNil() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldNotNull(FieldUpdatedAt))
}

// UpdatedAtEqualFold applies the EqualFold predicate on the "updated_at" field.
func UpdatedAtEqualFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldEqualFold(FieldUpdatedAt, v))
}

// UpdatedAtContainsFold applies the ContainsFold predicate on the "updated_at" field.
func UpdatedAtContainsFold(v string) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.FieldContainsFold(FieldUpdatedAt, v))
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.InsurancePolicy {
	return predicate.InsurancePolicy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsurancePolicy) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsurancePolicy) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsurancePolicy) predicate.InsurancePolicy {
	return predicate.InsurancePolicy(sql.NotPredicates(p))
}
