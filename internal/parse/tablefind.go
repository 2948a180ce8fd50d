package parse

import (
	"regexp"
	"strings"

	"github.com/licagency/policy-tracker/constants"
)

const (
	// confirmWindow is how many lines below a candidate header we look for a
	// 9-digit policy number before trusting the header.
	confirmWindow = 20
	// maxTableLines bounds the end-of-table scan.
	maxTableLines = 100
	// contextLines is how far we back up when only a 9-digit line was found.
	contextLines = 5
)

var (
	rePolicyNumber = regexp.MustCompile(`\b\d{9}\b`)

	// Per-type table headers, most specific first.
	headerPatterns = map[constants.DocumentType][]*regexp.Regexp{
		constants.DocTypeCommission: {
			regexp.MustCompile(`(?i)S\.?\s*No.*PH\s*Name.*Policy`),
		},
		constants.DocTypePremiumDue: {
			regexp.MustCompile(`(?i)S\.?\s*No.*Policy\s*No.*Name of (?:the )?Assured`),
			regexp.MustCompile(`(?i)Policy\s*No.*D\.?o\.?C.*FUP`),
		},
		constants.DocTypeClaims: {
			regexp.MustCompile(`(?i)S\.?\s*NO.*POLICY.*DUE\s*DATE`),
		},
	}

	// Generic headers tried for unknown documents and as a second chance for
	// typed ones.
	genericHeaderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)POLICY\s*(?:NO|NUMBER)`),
		regexp.MustCompile(`(?i)\bNAME OF (?:THE )?ASSURED\b`),
		regexp.MustCompile(`(?i)\bPH\s*NAME\b`),
		regexp.MustCompile(`(?i)\bCLAIMANT\b`),
	}

	endPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*(?:page\s+)?total\b`),
		regexp.MustCompile(`(?i)\bgrand\s+total\b`),
		regexp.MustCompile(`(?i)page\s+\d+\s+of\s+\d+`),
		regexp.MustCompile(`(?i)^\s*generated on\b`),
		regexp.MustCompile(`^===`),
	}
)

// LocateTable returns the contiguous slice of text most likely containing the
// customer/policy table for the classified document type. When no table can be
// located, the whole text is returned and the caller's parser degrades to
// best-effort generic extraction.
func LocateTable(text string, docType constants.DocumentType) string {
	lines := strings.Split(text, "\n")

	start := findHeader(lines, docType)
	if start == -1 {
		// No header found: fall back to the first line with a 9-digit number,
		// backing up a few lines for context.
		for i, line := range lines {
			if rePolicyNumber.MatchString(line) {
				start = i - contextLines
				if start < 0 {
					start = 0
				}
				break
			}
		}
	}
	if start == -1 {
		return text
	}

	end := findTableEnd(lines, start)
	return strings.Join(lines[start:end], "\n")
}

func findHeader(lines []string, docType constants.DocumentType) int {
	patterns := append([]*regexp.Regexp{}, headerPatterns[docType]...)
	patterns = append(patterns, genericHeaderPatterns...)

	for _, re := range patterns {
		for i, line := range lines {
			if !re.MatchString(line) {
				continue
			}
			// Confirm by requiring a policy number nearby.
			limit := i + confirmWindow
			if limit > len(lines) {
				limit = len(lines)
			}
			for j := i; j < limit; j++ {
				if rePolicyNumber.MatchString(lines[j]) {
					return i
				}
			}
		}
	}
	return -1
}

func findTableEnd(lines []string, start int) int {
	blanks := 0
	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			blanks++
			if blanks >= 3 {
				return i
			}
			continue
		}
		blanks = 0
		for _, re := range endPatterns {
			if re.MatchString(line) {
				return i
			}
		}
		if i-start > maxTableLines {
			return i
		}
	}
	return len(lines)
}
