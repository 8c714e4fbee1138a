package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range MissionStatuses {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "archived", "Paid", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}
