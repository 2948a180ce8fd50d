package parse

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple uppercase", "C NONDICHAMY", "C Nondichamy"},
		{"initial with dot and messy spacing", "  c.   nondichamy  ", "C. Nondichamy"},
		{"policy number is not a name", "308700508", ""},
		{"digits outweigh letters", "12345 AB 67890", ""},
		{"honorific stripped", "Mr. K MURUGAN", "K Murugan"},
		{"suffix stripped", "RAMAN PILLAI Jr", "Raman Pillai"},
		{"noise words dropped", "Premium Due R SUBRAMANIAN", "R Subramanian"},
		{"date fragment dropped", "27/05/2025 K MURUGAN", "K Murugan"},
		{"branch code dropped", "CBK2 K MURUGAN", "K Murugan"},
		{"too short after cleaning", "A", ""},
		{"only noise words", "Premium Due Date Amount", ""},
		{"too many words", "One Two Three Four Five Six Seven", ""},
		{"empty", "", ""},
		{"mixed case normalized", "rAMAN sUBRAMANIAN", "Raman Subramanian"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.in); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSumAssured(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"lakh shorthand", 5, 500000},
		{"just under lakh cutoff", 49, 4900000},
		{"thousand shorthand", 500, 500000},
		{"already expanded", 250000, 250000},
		{"floor applies", 1000, 50000},
		{"zero stays zero", 0, 0},
		{"negative stays zero", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSumAssured(tt.in); got != tt.want {
				t.Errorf("NormalizeSumAssured(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
