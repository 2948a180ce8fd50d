package parse

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
)

// Commission statement row:
//
//	1 C NONDICHAMY 308700508 814-21 27/05/2025 27/08/2018 CBK2 26/05/2025 2640.00 132.00
//
// Serial, PH name, policy number, plan/term, due date, then a positional tail
// where premium is the second-to-last numeric token and commission the last.
var (
	reCommissionRow = regexp.MustCompile(`^\s*(\d+)\s+([A-Z][A-Za-z\s.]{2,50}?)\s+(\d{9})\s+(\d{3}[-/]\d{2})\s+(\d{1,2}/\d{1,2}/\d{4})?\s*(.*)$`)

	commissionFallbacks = []*regexp.Regexp{
		rePolicyThenName,
		// Name followed by an amount, policy elsewhere on the line.
		regexp.MustCompile(`^\s*([A-Z][A-Za-z\s.]{5,45})\s+(?:Rs\.?\s*\d+|\d+\.\d+)`),
	}
)

type commissionParser struct {
	logger *slog.Logger
}

func (p *commissionParser) Type() constants.DocumentType { return constants.DocTypeCommission }

func (p *commissionParser) Parse(tableText string) ([]entity.RowExtraction, int) {
	var rows []entity.RowExtraction
	candidates := 0

	for _, line := range strings.Split(tableText, "\n") {
		if isHeaderOrNoise(line) {
			continue
		}
		line = strings.TrimSpace(line)

		m := reCommissionRow.FindStringSubmatch(line)
		if m == nil {
			if row, ok := p.fallbackRow(line); ok {
				candidates++
				if row.CustomerName != "" {
					rows = append(rows, row)
				}
			}
			continue
		}
		candidates++

		name := CleanName(m[2])
		if name == "" {
			continue
		}
		row := entity.RowExtraction{
			PolicyNumber: m[3],
			CustomerName: name,
			PlanName:     m[4],
			FUPDate:      ParseDate(m[5]),
		}

		// Positional tail: premium second-to-last, commission last. Brittle by
		// construction; both are flagged best-effort.
		if amounts := numericTokens(m[6]); len(amounts) >= 2 {
			row.PremiumAmount = floatPtr(amounts[len(amounts)-2])
			row.EstimatedCommission = floatPtr(amounts[len(amounts)-1])
			row.BestEffort = append(row.BestEffort, "premium_amount", "estimated_commission")
		}

		rows = append(rows, row)
	}
	return rows, candidates
}

// fallbackRow retries a non-matching line against the looser patterns. It
// reports whether the line produced a candidate at all; a candidate with an
// empty CustomerName was rejected by the normalizer.
func (p *commissionParser) fallbackRow(line string) (entity.RowExtraction, bool) {
	if m := rePolicyThenName.FindStringSubmatch(line); m != nil {
		return entity.RowExtraction{
			PolicyNumber: m[1],
			CustomerName: CleanName(m[2]),
		}, true
	}
	if pn := rePolicyNumber.FindString(line); pn != "" {
		rest := strings.Replace(line, pn, " ", 1)
		if m := commissionFallbacks[1].FindStringSubmatch(rest); m != nil {
			return entity.RowExtraction{
				PolicyNumber: pn,
				CustomerName: CleanName(m[1]),
			}, true
		}
	}
	return entity.RowExtraction{}, false
}
