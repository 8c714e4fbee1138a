package currency

import "testing"

func TestFromCountry(t *testing.T) {
	tests := []struct {
		country string
		want    string
		ok      bool
	}{
		{"FR", "EUR", true},
		{"fr", "EUR", true},
		{"CA", "CAD", true},
		{"JP", "JPY", true},
		{"LI", "CHF", true},
		{"BJ", "XOF", true},
		{"CI", "XOF", true},
		{"AQ", "", false}, // mapped but has no currency
		{"ZZ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FromCountry(tt.country)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromCountry(%q) = (%q, %v), want (%q, %v)", tt.country, got, ok, tt.want, tt.ok)
		}
	}
}
