package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Ordered date forms tried by ParseDate. yearFirst marks forms whose first
// capture group is the year; monthYear marks MM/YYYY forms that default to
// the first of the month.
var dateForms = []struct {
	re        *regexp.Regexp
	yearFirst bool
	monthYear bool
}{
	{re: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)},
	{re: regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)},
	{re: regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`), yearFirst: true},
	{re: regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), yearFirst: true},
	{re: regexp.MustCompile(`^(\d{1,2})[/-](\d{4})$`), monthYear: true},
}

// ParseDate parses a raw date token in one of the supported document formats
// (DD/MM/YYYY, DD-MM-YYYY, YYYY/MM/DD, YYYY-MM-DD, or MM/YYYY meaning the 1st
// of the month) and returns an ISO YYYY-MM-DD string. Invalid or unmatched
// input yields "" rather than an error; days are validated against the real
// calendar, so 31/02/2025 is rejected.
func ParseDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, form := range dateForms {
		m := form.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var year, month, day int
		switch {
		case form.monthYear:
			month, _ = strconv.Atoi(m[1])
			year, _ = strconv.Atoi(m[2])
			day = 1
		case form.yearFirst:
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		default:
			day, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
		}
		if iso := isoDate(year, month, day); iso != "" {
			return iso
		}
	}
	return ""
}

// isoDate validates a (year, month, day) triple against plausible bounds and
// the real calendar, returning the ISO form or "".
func isoDate(year, month, day int) string {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
