package recon

import "testing"

func TestIsGenericName(t *testing.T) {
	if !IsGenericName("Customer_308700508") {
		t.Error("minted placeholder should be generic")
	}
	if IsGenericName("C Nondichamy") {
		t.Error("real name should not be generic")
	}
}

func TestMergeNames(t *testing.T) {
	tests := []struct {
		name      string
		primary   map[string]string
		secondary map[string]string
		want      map[string]string
	}{
		{
			name:      "union of disjoint sources",
			primary:   map[string]string{"308700501": "K Murugan"},
			secondary: map[string]string{"308700502": "R Subramanian"},
			want:      map[string]string{"308700501": "K Murugan", "308700502": "R Subramanian"},
		},
		{
			name:      "non-generic beats placeholder either way",
			primary:   map[string]string{"308700501": "Customer_308700501"},
			secondary: map[string]string{"308700501": "K Murugan"},
			want:      map[string]string{"308700501": "K Murugan"},
		},
		{
			name:      "placeholder never displaces a name",
			primary:   map[string]string{"308700501": "K Murugan"},
			secondary: map[string]string{"308700501": "Customer_308700501"},
			want:      map[string]string{"308700501": "K Murugan"},
		},
		{
			name:      "longer name wins between two real names",
			primary:   map[string]string{"308700501": "K Murugan"},
			secondary: map[string]string{"308700501": "Kandasamy Murugan"},
			want:      map[string]string{"308700501": "Kandasamy Murugan"},
		},
		{
			name:      "equal length ties go to primary",
			primary:   map[string]string{"308700501": "K Murugan"},
			secondary: map[string]string{"308700501": "K Murugen"},
			want:      map[string]string{"308700501": "K Murugan"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeNames(tt.primary, tt.secondary)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for pn, name := range tt.want {
				if got[pn] != name {
					t.Errorf("policy %s: got %q, want %q", pn, got[pn], name)
				}
			}
		})
	}
}

func TestMergeNamesOrderIndependent(t *testing.T) {
	a := map[string]string{"308700501": "Customer_308700501", "308700502": "R Subramanian"}
	b := map[string]string{"308700501": "K Murugan", "308700503": "C Nondichamy"}

	ab := MergeNames(a, b)
	ba := MergeNames(b, a)
	for _, pn := range []string{"308700501", "308700502", "308700503"} {
		if ab[pn] != ba[pn] {
			t.Errorf("policy %s merges differently by order: %q vs %q", pn, ab[pn], ba[pn])
		}
	}
}
