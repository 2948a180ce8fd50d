package parse

import (
	"strings"

	"github.com/licagency/policy-tracker/constants"
)

// classifierRule is one ordered cue: a case-insensitive substring matched
// against the filename or the page text.
type classifierRule struct {
	cue      string
	docType  constants.DocumentType
	filename bool
}

// Filename cues run before text cues; within each group the first match wins.
var classifierRules = []classifierRule{
	{cue: "cm-", docType: constants.DocTypeCommission, filename: true},
	{cue: "commission", docType: constants.DocTypeCommission, filename: true},
	{cue: "premdue", docType: constants.DocTypePremiumDue, filename: true},
	{cue: "premium", docType: constants.DocTypePremiumDue, filename: true},
	{cue: "claim", docType: constants.DocTypeClaims, filename: true},

	{cue: "commission", docType: constants.DocTypeCommission},
	{cue: "ph name", docType: constants.DocTypeCommission},
	{cue: "premium due", docType: constants.DocTypePremiumDue},
	{cue: "name of assured", docType: constants.DocTypePremiumDue},
	{cue: "name of the assured", docType: constants.DocTypePremiumDue},
	{cue: "claimant", docType: constants.DocTypeClaims},
	{cue: "claim", docType: constants.DocTypeClaims},
}

// Classify decides which row parser applies to a document from its filename
// and extracted page text. Unknown triggers the generic fallback parser.
func Classify(filename, text string) constants.DocumentType {
	name := strings.ToLower(filename)
	body := strings.ToLower(text)
	for _, r := range classifierRules {
		if r.filename && strings.Contains(name, r.cue) {
			return r.docType
		}
	}
	for _, r := range classifierRules {
		if !r.filename && strings.Contains(body, r.cue) {
			return r.docType
		}
	}
	return constants.DocTypeUnknown
}
