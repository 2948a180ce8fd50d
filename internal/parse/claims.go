package parse

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
)

// Claims due list row:
//
//	2 308700990 SB 28/11/2025 45000 K MURUGAN 12500.00 N
//
// Serial, policy number, claim type, due date, sum, claimant name, amount,
// and a settled flag. Claims rows only confirm the policy and the name;
// the monetary columns describe the claim, not the policy.
var reClaimsRow = regexp.MustCompile(`^\s*(\d+)\s+(\d{9})\s+\S+\s+(\d{1,2}/\d{1,2}/\d{4})\s+(\d+)\s+([A-Z][A-Za-z\s]{2,30}?)\s+(\d+\.\d+)\s*[YN]?`)

type claimsParser struct {
	logger *slog.Logger
}

func (p *claimsParser) Type() constants.DocumentType { return constants.DocTypeClaims }

func (p *claimsParser) Parse(tableText string) ([]entity.RowExtraction, int) {
	var rows []entity.RowExtraction
	candidates := 0

	for _, line := range strings.Split(tableText, "\n") {
		if isHeaderOrNoise(line) {
			continue
		}
		line = strings.TrimSpace(line)

		m := reClaimsRow.FindStringSubmatch(line)
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

		name := CleanName(m[5])
		if name == "" {
			continue
		}
		rows = append(rows, entity.RowExtraction{
			PolicyNumber: m[2],
			CustomerName: name,
		})
	}
	return rows, candidates
}
