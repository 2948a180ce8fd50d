package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PremiumRecord is append-only due-list history. Rows reference policies by
// number rather than FK so history survives whatever happens to the policy
// row.
type PremiumRecord struct{ ent.Schema }

func (PremiumRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "premium_records"},
	}
}

func (PremiumRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("policy_number").Immutable(),
		field.String("due_date").Optional().Nillable(),
		field.Float("premium_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("gst_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("due_count").Optional().Nillable(),
		field.Float("estimated_commission").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("agent_code").Optional().Nillable(),
		field.String("source_document").NotEmpty(),
		field.String("document_date").Optional().Nillable(),
	}
}

func (PremiumRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("policy_number"),
	}
}
