package parse

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"day month year slash", "27/05/2025", "2025-05-27"},
		{"day month year dash", "27-05-2025", "2025-05-27"},
		{"iso already", "2025-05-27", "2025-05-27"},
		{"year first slash", "2025/05/27", "2025-05-27"},
		{"month year defaults to first", "05/2025", "2025-05-01"},
		{"month year dash", "6-2025", "2025-06-01"},
		{"single digit day and month", "1/2/2025", "2025-02-01"},
		{"invalid day of month", "31/02/2025", ""},
		{"nonexistent leap day", "29/02/2025", ""},
		{"real leap day", "29/02/2024", "2024-02-29"},
		{"month out of range", "15/13/2025", ""},
		{"year too old", "01/01/1850", ""},
		{"garbage", "not a date", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"padded input", "  27/05/2025  ", "2025-05-27"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDate(tt.in); got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDocumentDate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     string
	}{
		{"commission filename", "CM-1234567N-20250501.pdf", "", "2025-05-01"},
		{"premium due filename month only", "Premdue-202505.pdf", "", "2025-05-01"},
		{"claims filename", "Claims-Due-List-ABC-20251128.pdf", "", "2025-11-28"},
		{"filename wins over content", "CM-74N-20250501.pdf", "Processed on 26/04/2025", "2025-05-01"},
		{"content premium due period", "scan001.pdf", "Premium Due List For 06/2025", "2025-06-01"},
		{"content processed on", "scan002.pdf", "Processed on 26/05/2025", "2025-05-26"},
		{"nothing anywhere", "scan003.pdf", "no dates here", ""},
		{"invalid compact date rejected", "CM-74N-20251345.pdf", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocumentDate(tt.filename, tt.text); got != tt.want {
				t.Errorf("DocumentDate(%q, %q) = %q, want %q", tt.filename, tt.text, got, tt.want)
			}
		})
	}
}

func TestAgentCode(t *testing.T) {
	if got := AgentCode("CM-1234567N-20250501.pdf", ""); got != "1234567N" {
		t.Errorf("AgentCode from filename = %q, want 1234567N", got)
	}
	if got := AgentCode("scan.pdf", "Agency Code: 7654321N Branch CBK2"); got != "7654321N" {
		t.Errorf("AgentCode from text = %q, want 7654321N", got)
	}
	if got := AgentCode("scan.pdf", "no code"); got != "" {
		t.Errorf("AgentCode = %q, want empty", got)
	}
}
