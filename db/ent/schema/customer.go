package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Customer struct{ ent.Schema }

func (Customer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "customers"},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Exact normalized name is the linkage key across documents.
		field.String("name").NotEmpty().Unique(),
		field.String("phone").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("extraction_method").Default("pattern"),
		// Business dates from the source documents, ISO YYYY-MM-DD. These
		// are not ingestion timestamps.
		field.String("created_at").Optional(),
		field.String("updated_at").Optional(),
	}
}

func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("policies", InsurancePolicy.Type),
	}
}
