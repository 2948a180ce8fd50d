package llm

// BuildRowsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is passed to the model as a structured output constraint
// and also used locally to validate whatever comes back.
func BuildRowsJSONSchema() map[string]any {
	row := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"policy_number":        map[string]any{"type": "string", "pattern": `^\d{9}$`},
			"customer_name":        map[string]any{"type": "string", "minLength": 3, "maxLength": 60},
			"plan_name":            map[string]any{"type": "string"},
			"date_of_commencement": dateProp(),
			"payment_period":       map[string]any{"type": "string", "enum": []string{"Monthly", "Quarterly", "HalfYearly", "Yearly"}},
			"fup_date":             dateProp(),
			"premium_amount":       map[string]any{"type": "number", "minimum": 0},
			"gst_amount":           map[string]any{"type": "number", "minimum": 0},
			"total_amount":         map[string]any{"type": "number", "minimum": 0},
			"due_count":            map[string]any{"type": "integer", "minimum": 0},
			"estimated_commission": map[string]any{"type": "number", "minimum": 0},
			"sum_assured":          map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"policy_number", "customer_name"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"rows": map[string]any{"type": "array", "items": row},
		},
		"required": []string{"rows"},
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}
