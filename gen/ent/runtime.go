// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/db/ent/schema"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescExtractionMethod is the schema descriptor for extraction_method field.
	customerDescExtractionMethod := customerFields[5].Descriptor()
	// customer.DefaultExtractionMethod holds the default value on creation for the extraction_method field.
	customer.DefaultExtractionMethod = customerDescExtractionMethod.Default.(string)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	ingesteddocumentFields := schema.IngestedDocument{}.Fields()
	_ = ingesteddocumentFields
	// ingesteddocumentDescFileName is the schema descriptor for file_name field.
	ingesteddocumentDescFileName := ingesteddocumentFields[1].Descriptor()
	// ingesteddocument.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	ingesteddocument.FileNameValidator = ingesteddocumentDescFileName.Validators[0].(func(string) error)
	// ingesteddocumentDescFilePath is the schema descriptor for file_path field.
	ingesteddocumentDescFilePath := ingesteddocumentFields[2].Descriptor()
	// ingesteddocument.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	ingesteddocument.FilePathValidator = ingesteddocumentDescFilePath.Validators[0].(func(string) error)
	// ingesteddocumentDescDocumentType is the schema descriptor for document_type field.
	ingesteddocumentDescDocumentType := ingesteddocumentFields[3].Descriptor()
	// ingesteddocument.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	ingesteddocument.DocumentTypeValidator = ingesteddocumentDescDocumentType.Validators[0].(func(string) error)
	// ingesteddocumentDescProcessedAt is the schema descriptor for processed_at field.
	ingesteddocumentDescProcessedAt := ingesteddocumentFields[7].Descriptor()
	// ingesteddocument.DefaultProcessedAt holds the default value on creation for the processed_at field.
	ingesteddocument.DefaultProcessedAt = ingesteddocumentDescProcessedAt.Default.(func() time.Time)
	// ingesteddocumentDescID is the schema descriptor for id field.
	ingesteddocumentDescID := ingesteddocumentFields[0].Descriptor()
	// ingesteddocument.DefaultID holds the default value on creation for the id field.
	ingesteddocument.DefaultID = ingesteddocumentDescID.Default.(func() uuid.UUID)
	insurancepolicyFields := schema.InsurancePolicy{}.Fields()
	_ = insurancepolicyFields
	// insurancepolicyDescPolicyNumber is the schema descriptor for policy_number field.
	insurancepolicyDescPolicyNumber := insurancepolicyFields[1].Descriptor()
	// insurancepolicy.PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	insurancepolicy.PolicyNumberValidator = insurancepolicyDescPolicyNumber.Validators[0].(func(string) error)
	// insurancepolicyDescPaymentPeriod is the schema descriptor for payment_period field.
	insurancepolicyDescPaymentPeriod := insurancepolicyFields[6].Descriptor()
	// insurancepolicy.PaymentPeriodValidator is a validator for the "payment_period" field. It is called by the builders before save.
	insurancepolicy.PaymentPeriodValidator = insurancepolicyDescPaymentPeriod.Validators[0].(func(string) error)
	// insurancepolicyDescStatus is the schema descriptor for status field.
	insurancepolicyDescStatus := insurancepolicyFields[10].Descriptor()
	// insurancepolicy.DefaultStatus holds the default value on creation for the status field.
	insurancepolicy.DefaultStatus = insurancepolicyDescStatus.Default.(string)
	// insurancepolicyDescExtractionMethod is the schema descriptor for extraction_method field.
	insurancepolicyDescExtractionMethod := insurancepolicyFields[11].Descriptor()
	// insurancepolicy.DefaultExtractionMethod holds the default value on creation for the extraction_method field.
	insurancepolicy.DefaultExtractionMethod = insurancepolicyDescExtractionMethod.Default.(string)
	// insurancepolicyDescID is the schema descriptor for id field.
	insurancepolicyDescID := insurancepolicyFields[0].Descriptor()
	// insurancepolicy.DefaultID holds the default value on creation for the id field.
	insurancepolicy.DefaultID = insurancepolicyDescID.Default.(func() uuid.UUID)
	premiumrecordFields := schema.PremiumRecord{}.Fields()
	_ = premiumrecordFields
	// premiumrecordDescSourceDocument is the schema descriptor for source_document field.
	premiumrecordDescSourceDocument := premiumrecordFields[9].Descriptor()
	// premiumrecord.SourceDocumentValidator is a validator for the "source_document" field. It is called by the builders before save.
	premiumrecord.SourceDocumentValidator = premiumrecordDescSourceDocument.Validators[0].(func(string) error)
	// premiumrecordDescID is the schema descriptor for id field.
	premiumrecordDescID := premiumrecordFields[0].Descriptor()
	// premiumrecord.DefaultID holds the default value on creation for the id field.
	premiumrecord.DefaultID = premiumrecordDescID.Default.(func() uuid.UUID)
}
