// Code generated by ent, DO NOT EDIT.

package ingesteddocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldID, id))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldFileName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldFilePath, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldDocumentType, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldContentHash, v))
}

// DocumentDate applies equality check predicate on the "document_date" field. It's identical to DocumentDateEQ.
func DocumentDate(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldDocumentDate, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContainsFold(FieldFileName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContainsFold(FieldFilePath, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContainsFold(FieldDocumentType, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContainsFold(FieldContentHash, v))
}

// DocumentDateEQ applies the EQ predicate on the "document_date" field.
func DocumentDateEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldDocumentDate, v))
}

// DocumentDateNEQ applies the NEQ predicate on the "document_date" field.
func DocumentDateNEQ(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldDocumentDate, v))
}

// DocumentDateIn applies the In predicate on the "document_date" field.
func DocumentDateIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldDocumentDate, vs...))
}

// DocumentDateNotIn applies the NotIn predicate on the "document_date" field.
func DocumentDateNotIn(vs ...string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldDocumentDate, vs...))
}

// DocumentDateGT applies the GT predicate on the "document_date" field.
func DocumentDateGT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldDocumentDate, v))
}

// DocumentDateGTE applies the GTE predicate on the "document_date" field.
func DocumentDateGTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldDocumentDate, v))
}

// DocumentDateLT applies the LT predicate on the "document_date" field.
func DocumentDateLT(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldDocumentDate, v))
}

// DocumentDateLTE applies the LTE predicate on the "document_date" field.
func DocumentDateLTE(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldDocumentDate, v))
}

// DocumentDateContains applies the Contains predicate on the "document_date" field.
func DocumentDateContains(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContains(FieldDocumentDate, v))
}

// DocumentDateHasPrefix applies the HasPrefix predicate on the "document_date" field.
func DocumentDateHasPrefix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasPrefix(FieldDocumentDate, v))
}

// DocumentDateHasSuffix applies the HasSuffix predicate on the "document_date" field.
func DocumentDateHasSuffix(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldHasSuffix(FieldDocumentDate, v))
}

// DocumentDateIsNil applies the IsNil predicate on the "document_date" field.
func DocumentDateIsNil() predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIsNull(FieldDocumentDate))
}

// DocumentDateNotNil applies the NotNil predicate on the "document_date" field.
func DocumentDateNotNil() predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotNull(FieldDocumentDate))
}

// DocumentDateEqualFold applies the EqualFold predicate on the "document_date" field.
func DocumentDateEqualFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEqualFold(FieldDocumentDate, v))
}

// DocumentDateContainsFold applies the ContainsFold predicate on the "document_date" field.
func DocumentDateContainsFold(v string) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldContainsFold(FieldDocumentDate, v))
}

// PolicyNumbersIsNil applies the IsNil predicate on the "policy_numbers" field.
func PolicyNumbersIsNil() predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIsNull(FieldPolicyNumbers))
}

// PolicyNumbersNotNil applies the NotNil predicate on the "policy_numbers" field.
func PolicyNumbersNotNil() predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotNull(FieldPolicyNumbers))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.FieldLTE(FieldProcessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestedDocument) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestedDocument) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestedDocument) predicate.IngestedDocument {
	return predicate.IngestedDocument(sql.NotPredicates(p))
}
