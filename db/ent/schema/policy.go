package schema

import (
	"errors"
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/db/ent/schema/utils"
)

var rePolicyNumber = regexp.MustCompile(`^[0-9]{9}$`)

var errPolicyNumber = errors.New("policy number must be exactly 9 digits")

type InsurancePolicy struct{ ent.Schema }

func (InsurancePolicy) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "policies"},
	}
}

func (InsurancePolicy) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("policy_number").
			Unique().
			Immutable().
			Validate(func(s string) error {
				if rePolicyNumber.MatchString(s) {
					return nil
				}
				return errPolicyNumber
			}),
		field.UUID("customer_id", uuid.UUID{}),
		field.String("agent_code").Optional().Nillable(),
		field.String("plan_name").Optional().Nillable(),
		field.String("date_of_commencement").Optional().Nillable(),
		field.String("payment_period").Optional().Nillable().
			Validate(utils.EnumValidator("Monthly", "Quarterly", "HalfYearly", "Yearly")),
		// ISO date string; lexicographic order is date order. Only ever
		// moves forward.
		field.String("current_fup_date").Optional().Nillable(),
		field.Float("premium_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("sum_assured").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("status").Default("Active"),
		field.String("extraction_method").Default("pattern"),
		field.String("created_at").Optional(),
		field.String("updated_at").Optional(),
	}
}

func (InsurancePolicy) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY policies -> ONE customer (FK: policies.customer_id)
		edge.From("customer", Customer.Type).
			Ref("policies").
			Field("customer_id").
			Required().
			Unique(),
	}
}
