package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// NormalizeAndSanitizeJSON cleans a model response before validation:
//   - renames known field synonyms to the schema's names
//   - drops null and empty optionals
//   - coerces string numerics to numbers for the amount fields
//   - removes unknown keys (additionalProperties is false)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	rows, _ := m["rows"].([]any)
	for i, rv := range rows {
		row, ok := rv.(map[string]any)
		if !ok {
			continue
		}
		sanitizeRow(row, strconv.Itoa(i), &dropped)
		rows[i] = row
	}
	m = map[string]any{"rows": rows}

	if len(dropped) > 0 {
		logger.Debug("sanitized model response", "adjustments", dropped)
	}
	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}

var rowFieldSynonyms = map[string]string{
	"policy_no":       "policy_number",
	"policyno":        "policy_number",
	"name":            "customer_name",
	"ph_name":         "customer_name",
	"plan":            "plan_name",
	"doc":             "date_of_commencement",
	"mode":            "payment_period",
	"fup":             "fup_date",
	"due_date":        "fup_date",
	"premium":         "premium_amount",
	"inst_premium":    "premium_amount",
	"gst":             "gst_amount",
	"total":           "total_amount",
	"commission":      "estimated_commission",
	"sa":              "sum_assured",
}

var rowNumericFields = []string{
	"premium_amount", "gst_amount", "total_amount",
	"estimated_commission", "sum_assured", "due_count",
}

var rowKnownFields = map[string]struct{}{
	"policy_number": {}, "customer_name": {}, "plan_name": {},
	"date_of_commencement": {}, "payment_period": {}, "fup_date": {},
	"premium_amount": {}, "gst_amount": {}, "total_amount": {},
	"due_count": {}, "estimated_commission": {}, "sum_assured": {},
}

func sanitizeRow(row map[string]any, tag string, dropped *[]string) {
	for from, to := range rowFieldSynonyms {
		if v, ok := row[from]; ok {
			if _, exists := row[to]; !exists {
				row[to] = v
			}
			delete(row, from)
			*dropped = append(*dropped, tag+":"+from+"->"+to)
		}
	}

	for _, k := range rowNumericFields {
		v, ok := row[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				row[k] = f
			} else {
				delete(row, k)
				*dropped = append(*dropped, tag+":"+k+"(unparseable)")
			}
		case nil:
			delete(row, k)
			*dropped = append(*dropped, tag+":"+k+"(null)")
		}
	}

	for k, v := range row {
		if _, ok := rowKnownFields[k]; !ok {
			delete(row, k)
			*dropped = append(*dropped, tag+":"+k+"(unknown)")
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			delete(row, k)
			*dropped = append(*dropped, tag+":"+k+"(empty)")
		}
	}
}
