package parse

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
)

// Name shapes tried, in order, against the line with the policy number
// removed. Proper case first because it is the least ambiguous.
var genericNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3})\b`),
	regexp.MustCompile(`\b([A-Z]{2,}(?:\s+[A-Z]{2,}){0,3})\b`),
	regexp.MustCompile(`\b([A-Z]\.?\s*[A-Z][A-Za-z]+(?:\s+[A-Za-z]+){0,2})\b`),
}

// genericParser handles documents that classified as unknown, or that a
// typed parser produced nothing for. Any line carrying a nine digit number
// is a candidate; the name is whatever capitalized run survives cleaning.
type genericParser struct {
	logger *slog.Logger
}

func (p *genericParser) Type() constants.DocumentType { return constants.DocTypeUnknown }

func (p *genericParser) Parse(tableText string) ([]entity.RowExtraction, int) {
	var rows []entity.RowExtraction
	candidates := 0

	for _, line := range strings.Split(tableText, "\n") {
		if isHeaderOrNoise(line) {
			continue
		}
		pn := rePolicyNumber.FindString(line)
		if pn == "" {
			continue
		}
		candidates++

		rest := strings.Replace(line, pn, " ", 1)
		name := ""
		for _, pat := range genericNamePatterns {
			for _, m := range pat.FindAllStringSubmatch(rest, -1) {
				if cleaned := CleanName(m[1]); cleaned != "" {
					name = cleaned
					break
				}
			}
			if name != "" {
				break
			}
		}
		if name == "" {
			continue
		}
		rows = append(rows, entity.RowExtraction{
			PolicyNumber: pn,
			CustomerName: name,
		})
	}
	return rows, candidates
}
