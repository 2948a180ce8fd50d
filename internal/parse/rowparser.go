package parse

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
)

// RowParser turns located table text into extraction tuples for one document
// type. Parsers never fail: unmatched rows are skipped and counted.
type RowParser interface {
	// Parse returns the accepted extractions plus the number of raw row
	// candidates seen (rows that matched some pattern before name validation).
	Parse(tableText string) ([]entity.RowExtraction, int)
	Type() constants.DocumentType
}

// ForType selects the parser strategy for a classified document type.
// Unknown documents get the generic best-effort parser.
func ForType(t constants.DocumentType, logger *slog.Logger) RowParser {
	if logger == nil {
		logger = slog.Default()
	}
	switch t {
	case constants.DocTypeCommission:
		return &commissionParser{logger: logger}
	case constants.DocTypePremiumDue:
		return &premiumDueParser{logger: logger}
	case constants.DocTypeClaims:
		return &claimsParser{logger: logger}
	default:
		return &genericParser{logger: logger}
	}
}

var (
	reNumericToken = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// Shared fallback: policy number leading, name trailing.
	rePolicyThenName = regexp.MustCompile(`^\s*(\d{9})\s+([A-Z][A-Za-z\s.]{3,50}?)(?:\s+\d|\s*$)`)
)

// numericTokens extracts every decimal token from a row remainder, in order.
func numericTokens(s string) []float64 {
	raw := reNumericToken.FindAllString(s, -1)
	out := make([]float64, 0, len(raw))
	for _, tok := range raw {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// isHeaderOrNoise filters lines that are table headers, rules, or empty.
func isHeaderOrNoise(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "---") {
		return true
	}
	upper := strings.ToUpper(trimmed)
	return strings.HasPrefix(upper, "S.NO") ||
		strings.Contains(upper, "PH NAME") ||
		strings.Contains(upper, "POLICYNO") ||
		strings.Contains(upper, "POLICY NO")
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
