package parse

import (
	"regexp"
	"strconv"
)

var (
	// Filename date forms: CM-74N-20250501, Premdue-202505, Claims-Due-List-20250501.
	filenameDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)CM-\w+-(\d{8})`),
		regexp.MustCompile(`(?i)Premdue-(\d{6})`),
		regexp.MustCompile(`(?i)Claims-Due-List\D*(\d{8})`),
	}

	// Content date forms, tried in order when the filename has no date.
	contentDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Premium Due List.*For.*?(\d{2}/\d{4})`),
		regexp.MustCompile(`Commission.*?(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`Processed on (\d{2}/\d{2}/\d{4})`),
	}

	reAgentCode = regexp.MustCompile(`(\d{7}N)`)
)

// DocumentDate infers the business date of a document from filename patterns
// first, then content patterns. Returns an ISO date or "" when nothing
// matches. The business date is distinct from ingestion wall-clock time.
func DocumentDate(filename, text string) string {
	for _, re := range filenameDatePatterns {
		m := re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		if iso := compactDate(m[1]); iso != "" {
			return iso
		}
	}
	for _, re := range contentDatePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if iso := ParseDate(m[1]); iso != "" {
			return iso
		}
	}
	return ""
}

// compactDate parses YYYYMMDD or YYYYMM (taken as the 1st of the month).
func compactDate(s string) string {
	switch len(s) {
	case 8:
		year, _ := strconv.Atoi(s[:4])
		month, _ := strconv.Atoi(s[4:6])
		day, _ := strconv.Atoi(s[6:8])
		return isoDate(year, month, day)
	case 6:
		year, _ := strconv.Atoi(s[:4])
		month, _ := strconv.Atoi(s[4:6])
		return isoDate(year, month, 1)
	}
	return ""
}

// AgentCode detects the 7-digit+N agent code from the filename first, then
// the leading text. Returns "" when absent.
func AgentCode(filename, text string) string {
	if m := reAgentCode.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	if m := reAgentCode.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
