package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/db/ent/schema/utils"
)

// IngestedDocument is the audit row behind duplicate detection. Created
// once per accepted document, never updated.
type IngestedDocument struct{ ent.Schema }

func (IngestedDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingested_documents"},
	}
}

func (IngestedDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_name").NotEmpty().Immutable(),
		field.String("file_path").NotEmpty().Immutable(),
		field.String("document_type").Immutable().
			Validate(utils.EnumValidator("commission", "premium_due", "claims", "unknown")),
		// Unique hash is what makes re-ingestion of identical content a
		// duplicate regardless of filename. Optional because some text
		// dumps have nothing hashable.
		field.String("content_hash").Optional().Nillable().Unique().Immutable(),
		field.String("document_date").Optional().Nillable().Immutable(),
		field.Strings("policy_numbers").Optional().Immutable(),
		// Wall-clock ingestion time, unlike document_date which is the
		// business date printed on the statement.
		field.Time("processed_at").Default(time.Now).Immutable(),
	}
}
