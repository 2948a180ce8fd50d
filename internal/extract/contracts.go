// Package extract turns a document file into per-page text.
package extract

import (
	"context"
	"strings"
	"time"
)

// TextExtractor is the first pipeline stage: file -> per-page text.
// Unreadable pages come back as empty strings in place, so page indexes
// stay meaningful for the table locator.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Pages      []string
	SourceType string // "PDF" | "TEXT"
	Duration   time.Duration
	Warnings   []string
}

// Text joins all pages with form feeds, the separator plain text exports
// already use between pages.
func (r TextExtractionResult) Text() string {
	return strings.Join(r.Pages, "\f")
}
