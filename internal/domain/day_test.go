package domain_test

import (
	"testing"
	"time"

	"fitcoach/internal/domain"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same instant", base, base, 0},
		{"same day earlier clock", base, time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC), 0},
		{"next day one minute later", base, base.Add(2 * time.Minute), 1},
		{"three days", base, base.AddDate(0, 0, 3), 3},
		{"backwards", base, base.AddDate(0, 0, -2), -2},
		{"month boundary", time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC), time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC), 1},
		{"non-UTC input", time.Date(2026, 3, 10, 20, 0, 0, 0, time.FixedZone("X", -5*3600)), time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.DaysBetween(tc.a, tc.b); got != tc.want {
				t.Errorf("DaysBetween(%v, %v) = %d; want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 1, 15, 23, 30, 0, 0, time.FixedZone("X", -2*3600))
	if got := domain.DayKey(ts); got != "2026-01-16" {
		t.Fatalf("DayKey = %q; want 2026-01-16", got)
	}
}
