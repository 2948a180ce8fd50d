package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads text-layer PDFs page by page. Statement tables live
// or die by line boundaries, so extraction goes through the row-grouped
// API first and only falls back to plain text when row grouping fails.
// Scanned PDFs without a text layer yield empty pages, surfaced as
// warnings; the pipeline turns a fully empty document into an error
// outcome.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger.With("component", "extract.pdf")}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	res := TextExtractionResult{SourceType: "PDF"}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return res, fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return res, fmt.Errorf("read pdf: %w", err)
	}

	numPages := reader.NumPage()
	res.Pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			res.Pages = append(res.Pages, "")
			continue
		}
		text, err := pageText(page)
		if err != nil {
			e.logger.Warn("page text extraction failed", "path", path, "page", i, "error", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", i, err))
			res.Pages = append(res.Pages, "")
			continue
		}
		res.Pages = append(res.Pages, text)
	}

	res.Duration = time.Since(start)
	return res, nil
}

// pageText reconstructs one line per visual row. Row grouping preserves
// the column order the row parsers match against.
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		// Degraded but still usable for the classifier and date scan.
		return page.GetPlainText(nil)
	}

	var b strings.Builder
	for _, row := range rows {
		for j, word := range row.Content {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
