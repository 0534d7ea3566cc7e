package postgres

import (
	"testing"

	"fitcoach/internal/domain"
)

func TestXPColumn(t *testing.T) {
	tests := []struct {
		field   domain.XPField
		want    string
		wantErr bool
	}{
		{domain.LastLogField, "last_log", false},
		{domain.LastDailyField, "last_daily", false},
		{"xp = 0; --", "", true},
	}
	for _, tc := range tests {
		got, err := xpColumn(tc.field)
		if (err != nil) != tc.wantErr {
			t.Fatalf("xpColumn(%q) err = %v", tc.field, err)
		}
		if got != tc.want {
			t.Errorf("xpColumn(%q) = %q; want %q", tc.field, got, tc.want)
		}
	}
}
