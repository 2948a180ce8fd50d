// Package llm is the fallback extraction path: when pattern parsing gets
// nothing out of a document, the raw text goes to a model constrained to a
// row schema, and the response is sanitized and validated before any row
// reaches reconciliation.
package llm

import (
	"context"

	"github.com/licagency/policy-tracker/internal/entity"
)

// RowExtractor is the contract the pipeline calls. Implementations must
// only return rows that passed schema validation.
type RowExtractor interface {
	ExtractRows(ctx context.Context, doc *entity.SourceDocument) ([]entity.RowExtraction, error)
}
