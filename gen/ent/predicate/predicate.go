// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// IngestedDocument is the predicate function for ingesteddocument builders.
type IngestedDocument func(*sql.Selector)

// InsurancePolicy is the predicate function for insurancepolicy builders.
type InsurancePolicy func(*sql.Selector)

// PremiumRecord is the predicate function for premiumrecord builders.
type PremiumRecord func(*sql.Selector)
