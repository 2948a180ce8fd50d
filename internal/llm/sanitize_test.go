package llm

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sanitizedRows(t *testing.T, raw string) []map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Rows []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatal(err)
	}
	return payload.Rows
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	rows := sanitizedRows(t, `{"rows":[
		{"policy_no":"308700508","ph_name":"C Nondichamy","plan":"814-21","fup":"2025-05-27"}
	]}`)
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	row := rows[0]
	if row["policy_number"] != "308700508" {
		t.Errorf("policy_number = %v", row["policy_number"])
	}
	if row["customer_name"] != "C Nondichamy" {
		t.Errorf("customer_name = %v", row["customer_name"])
	}
	if row["plan_name"] != "814-21" {
		t.Errorf("plan_name = %v", row["plan_name"])
	}
	if row["fup_date"] != "2025-05-27" {
		t.Errorf("fup_date = %v", row["fup_date"])
	}
	if _, ok := row["policy_no"]; ok {
		t.Error("synonym key should be gone")
	}
}

func TestSanitizeSynonymNeverClobbersCanonical(t *testing.T) {
	rows := sanitizedRows(t, `{"rows":[
		{"policy_number":"308700508","policy_no":"999999999","customer_name":"K Murugan"}
	]}`)
	if rows[0]["policy_number"] != "308700508" {
		t.Errorf("policy_number = %v, want canonical value kept", rows[0]["policy_number"])
	}
}

func TestSanitizeCoercesNumericStrings(t *testing.T) {
	rows := sanitizedRows(t, `{"rows":[
		{"policy_number":"308700508","customer_name":"K Murugan",
		 "premium_amount":"2,640.00","gst_amount":"not a number","total_amount":null,"due_count":"1"}
	]}`)
	row := rows[0]
	if v, ok := row["premium_amount"].(float64); !ok || v != 2640 {
		t.Errorf("premium_amount = %v", row["premium_amount"])
	}
	if v, ok := row["due_count"].(float64); !ok || v != 1 {
		t.Errorf("due_count = %v", row["due_count"])
	}
	if _, ok := row["gst_amount"]; ok {
		t.Error("unparseable amount should be dropped")
	}
	if _, ok := row["total_amount"]; ok {
		t.Error("null amount should be dropped")
	}
}

func TestSanitizeDropsUnknownAndEmptyKeys(t *testing.T) {
	rows := sanitizedRows(t, `{"rows":[
		{"policy_number":"308700508","customer_name":"K Murugan",
		 "confidence":0.9,"plan_name":"  "}
	]}`)
	row := rows[0]
	if _, ok := row["confidence"]; ok {
		t.Error("unknown key should be dropped")
	}
	if _, ok := row["plan_name"]; ok {
		t.Error("blank optional should be dropped")
	}
	if len(row) != 2 {
		t.Errorf("row = %v, want only policy_number and customer_name", row)
	}
}

func TestSanitizeReportsAdjustments(t *testing.T) {
	_, dropped, err := NormalizeAndSanitizeJSON([]byte(
		`{"rows":[{"policy_no":"308700508","customer_name":"K Murugan"}]}`), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(dropped) != 1 || dropped[0] != "0:policy_no->policy_number" {
		t.Errorf("dropped = %v", dropped)
	}
}

func TestValidateRowsSchema(t *testing.T) {
	schema := BuildRowsJSONSchema()

	valid := []byte(`{"rows":[
		{"policy_number":"308700508","customer_name":"C Nondichamy",
		 "fup_date":"2025-05-27","premium_amount":2640,"due_count":1}
	]}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	for name, bad := range map[string][]byte{
		"short policy number": []byte(`{"rows":[{"policy_number":"12345","customer_name":"K Murugan"}]}`),
		"missing name":        []byte(`{"rows":[{"policy_number":"308700508"}]}`),
		"unknown field":       []byte(`{"rows":[{"policy_number":"308700508","customer_name":"K Murugan","notes":"x"}]}`),
		"non-iso date":        []byte(`{"rows":[{"policy_number":"308700508","customer_name":"K Murugan","fup_date":"27/05/2025"}]}`),
		"missing rows":        []byte(`{}`),
	} {
		if err := ValidateJSONAgainstSchema(schema, bad); err == nil {
			t.Errorf("%s: payload passed validation", name)
		}
	}
}
