package parse

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reHonorificPrefix = regexp.MustCompile(`(?i)^(?:Mr|Mrs|Ms|Dr|Prof)\.?\s+`)
	reSuffix          = regexp.MustCompile(`(?i)\s+(?:Jr|Sr|III|IV)\.?$`)
	reDigitsOnly      = regexp.MustCompile(`^\d+$`)
	reDateLikeWord    = regexp.MustCompile(`^\d+[./-]\d+`)
	reCodeLikeWord    = regexp.MustCompile(`^[A-Z]+\d+$`)
)

// noiseWords are table artifacts that leak into the name column of scanned
// documents. They are stripped word-by-word before validation.
var noiseWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"Date", "Amount", "Due", "Premium", "Policy", "Number", "Code", "Branch",
		"Commission", "Summary", "Agency", "Total", "Grand", "Sub", "Claim",
		"Claims", "Rs", "Rupees", "Only", "Paisa", "Lakhs", "Crores", "Death",
		"Maturity", "Claimant", "Benefit", "Assured", "Holder", "File", "Name",
		"Address", "Phone", "Email", "Mobile", "Contact", "Details", "Information",
		"Type", "Plan", "Gross", "Neft", "Risk", "Cbo", "Adj", "Commn", "Pln", "Tm",
	} {
		noiseWords[strings.ToLower(w)] = struct{}{}
	}
}

// CleanName normalizes a raw candidate name into a validated, title-cased
// human name. It returns "" when the candidate is not a plausible name:
// pure digits (policy numbers masquerading as names), more digits than
// letters, nothing left after noise-word stripping, or a result outside the
// 3..60 character window.
func CleanName(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return ""
	}

	name = reHonorificPrefix.ReplaceAllString(name, "")
	name = reSuffix.ReplaceAllString(name, "")

	if reDigitsOnly.MatchString(strings.ReplaceAll(name, " ", "")) {
		return ""
	}

	digits, alphas := 0, 0
	for _, r := range name {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			alphas++
		}
	}
	if digits > alphas {
		return ""
	}

	var kept []string
	for _, word := range strings.Fields(name) {
		if len(word) == 1 {
			// Keep bare initials ("C"), drop stray punctuation.
			if unicode.IsLetter(rune(word[0])) {
				kept = append(kept, titleWord(word))
			}
			continue
		}
		if _, noise := noiseWords[strings.ToLower(word)]; noise {
			continue
		}
		if reDigitsOnly.MatchString(word) || reDateLikeWord.MatchString(word) || reCodeLikeWord.MatchString(word) {
			continue
		}
		kept = append(kept, titleWord(word))
	}

	if len(kept) == 0 || len(kept) > 5 {
		return ""
	}
	final := strings.Join(kept, " ")
	if len(final) < 3 || len(final) > 60 {
		return ""
	}
	return final
}

// titleWord uppercases the first letter of a word and lowercases the rest,
// leaving punctuation (initials like "C.") in place.
func titleWord(w string) string {
	runes := []rune(w)
	seen := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if !seen {
			runes[i] = unicode.ToUpper(r)
			seen = true
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// NormalizeSumAssured converts abbreviated sum-assured column values to
// rupees: values under 50 are lakhs, 50-999 are thousands, and anything at or
// above 1000 is taken as already expanded. The result is floored at 50,000.
func NormalizeSumAssured(v float64) float64 {
	if v <= 0 {
		return 0
	}
	converted := v
	switch {
	case v < 50:
		converted = v * 100000
	case v < 1000:
		converted = v * 1000
	}
	if converted < 50000 {
		converted = 50000
	}
	return converted
}
