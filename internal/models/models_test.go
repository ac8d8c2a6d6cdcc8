package models

import "testing"

func TestEntry_Status(t *testing.T) {
	tests := []struct {
		name     string
		complete bool
		want     string
	}{
		{"complete", true, StatusComplete},
		{"partial", false, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{ID: 7, Complete: tt.complete}
			if got := e.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
			if e.GetID() != 7 {
				t.Errorf("GetID() = %d, want 7", e.GetID())
			}
		})
	}
}
