package parse

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
)

// Premium due list row:
//
//	3 308700512 R SUBRAMANIAN 14/03/2019 814/21 Qly 06/2025 4980.00 1 224.10 5204.10 187.50
//
// Serial, policy number, PH name, commencement date, plan, payment mode,
// FUP month, then installment premium, due count, GST, total, commission.
var rePremiumDueRow = regexp.MustCompile(`^\s*(\d+)\s+(\d{9})\s+([A-Z][A-Za-z\s.]{2,50}?)\s+(\d{1,2}/\d{1,2}/\d{4})\s+(\d{3}/\d{2})\s+(\S+)\s+(\d{1,2}/\d{4})\s*(.*)$`)

type premiumDueParser struct {
	logger *slog.Logger
}

func (p *premiumDueParser) Type() constants.DocumentType { return constants.DocTypePremiumDue }

func (p *premiumDueParser) Parse(tableText string) ([]entity.RowExtraction, int) {
	var rows []entity.RowExtraction
	candidates := 0

	for _, line := range strings.Split(tableText, "\n") {
		if isHeaderOrNoise(line) {
			continue
		}
		line = strings.TrimSpace(line)

		m := rePremiumDueRow.FindStringSubmatch(line)
		if m == nil {
			if fm := rePolicyThenName.FindStringSubmatch(line); fm != nil {
				candidates++
				if name := CleanName(fm[2]); name != "" {
					rows = append(rows, entity.RowExtraction{
						PolicyNumber: fm[1],
						CustomerName: name,
					})
				}
			}
			continue
		}
		candidates++

		name := CleanName(m[3])
		if name == "" {
			continue
		}
		row := entity.RowExtraction{
			PolicyNumber:       m[2],
			CustomerName:       name,
			DateOfCommencement: ParseDate(m[4]),
			PlanName:           m[5],
			PaymentPeriod:      string(constants.MapPaymentPeriod(m[6])),
			FUPDate:            ParseDate(m[7]),
		}

		// Tail columns in fixed order. Column widths drift between statements,
		// so everything read positionally is flagged best-effort.
		amounts := numericTokens(m[8])
		if len(amounts) >= 1 {
			row.PremiumAmount = floatPtr(amounts[0])
			row.BestEffort = append(row.BestEffort, "premium_amount")
		}
		if len(amounts) >= 2 {
			row.DueCount = intPtr(int(amounts[1]))
			row.BestEffort = append(row.BestEffort, "due_count")
		}
		if len(amounts) >= 3 {
			row.GSTAmount = floatPtr(amounts[2])
			row.BestEffort = append(row.BestEffort, "gst_amount")
		}
		if len(amounts) >= 4 {
			row.TotalAmount = floatPtr(amounts[3])
			row.BestEffort = append(row.BestEffort, "total_amount")
		}
		if len(amounts) >= 5 {
			row.EstimatedCommission = floatPtr(amounts[4])
			row.BestEffort = append(row.BestEffort, "estimated_commission")
		}

		rows = append(rows, row)
	}
	return rows, candidates
}
