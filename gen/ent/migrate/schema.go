// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "extraction_method", Type: field.TypeString, Default: "pattern"},
		{Name: "created_at", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeString, Nullable: true},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
	}
	// IngestedDocumentsColumns holds the columns for the "ingested_documents" table.
	IngestedDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "document_date", Type: field.TypeString, Nullable: true},
		{Name: "policy_numbers", Type: field.TypeJSON, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// IngestedDocumentsTable holds the schema information for the "ingested_documents" table.
	IngestedDocumentsTable = &schema.Table{
		Name:       "ingested_documents",
		Columns:    IngestedDocumentsColumns,
		PrimaryKey: []*schema.Column{IngestedDocumentsColumns[0]},
	}
	// PoliciesColumns holds the columns for the "policies" table.
	PoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "policy_number", Type: field.TypeString, Unique: true},
		{Name: "agent_code", Type: field.TypeString, Nullable: true},
		{Name: "plan_name", Type: field.TypeString, Nullable: true},
		{Name: "date_of_commencement", Type: field.TypeString, Nullable: true},
		{Name: "payment_period", Type: field.TypeString, Nullable: true},
		{Name: "current_fup_date", Type: field.TypeString, Nullable: true},
		{Name: "premium_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "sum_assured", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "status", Type: field.TypeString, Default: "Active"},
		{Name: "extraction_method", Type: field.TypeString, Default: "pattern"},
		{Name: "created_at", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeString, Nullable: true},
		{Name: "customer_id", Type: field.TypeUUID},
	}
	// PoliciesTable holds the schema information for the "policies" table.
	PoliciesTable = &schema.Table{
		Name:       "policies",
		Columns:    PoliciesColumns,
		PrimaryKey: []*schema.Column{PoliciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policies_customers_policies",
				Columns:    []*schema.Column{PoliciesColumns[13]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PremiumRecordsColumns holds the columns for the "premium_records" table.
	PremiumRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "policy_number", Type: field.TypeString},
		{Name: "due_date", Type: field.TypeString, Nullable: true},
		{Name: "premium_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gst_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "due_count", Type: field.TypeInt, Nullable: true},
		{Name: "estimated_commission", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "agent_code", Type: field.TypeString, Nullable: true},
		{Name: "source_document", Type: field.TypeString},
		{Name: "document_date", Type: field.TypeString, Nullable: true},
	}
	// PremiumRecordsTable holds the schema information for the "premium_records" table.
	PremiumRecordsTable = &schema.Table{
		Name:       "premium_records",
		Columns:    PremiumRecordsColumns,
		PrimaryKey: []*schema.Column{PremiumRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "premiumrecord_policy_number",
				Unique:  false,
				Columns: []*schema.Column{PremiumRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		IngestedDocumentsTable,
		PoliciesTable,
		PremiumRecordsTable,
	}
)

func init() {
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	IngestedDocumentsTable.Annotation = &entsql.Annotation{
		Table: "ingested_documents",
	}
	PoliciesTable.ForeignKeys[0].RefTable = CustomersTable
	PoliciesTable.Annotation = &entsql.Annotation{
		Table: "policies",
	}
	PremiumRecordsTable.Annotation = &entsql.Annotation{
		Table: "premium_records",
	}
}
