package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/licagency/policy-tracker/constants"
)

// TextFileExtractor passes .txt exports through, splitting on form feeds
// so exports that mark page breaks keep their page structure.
type TextFileExtractor struct{}

func (TextFileExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	res := TextExtractionResult{SourceType: "TEXT"}
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read text file: %w", err)
	}
	res.Pages = strings.Split(string(data), "\f")
	res.Duration = time.Since(start)
	return res, nil
}

// ForFile routes a path to the extractor for its extension.
func ForFile(path string, logger *slog.Logger) (TextExtractor, error) {
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "pdf":
		return NewPDFExtractor(logger), nil
	case "txt":
		return TextFileExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}
