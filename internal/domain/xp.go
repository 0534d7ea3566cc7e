package domain

import (
	"context"
	"slices"
	"time"
)

// Badge names.
const (
	BadgeFirstLog       = "First Log"
	BadgeTwoDayStreak   = "2-Day Streak"
	BadgeFirstDailyPlan = "First Daily Plan"
	BadgeThreeDayStreak = "3-Day Streak"
	BadgeSevenDay       = "7-Day Consistency"
)

// XPField names the per-stream timestamp an XP update advances.
type XPField string

const (
	LastLogField   XPField = "last_log"
	LastDailyField XPField = "last_daily"
)

// XPRecord is the single gamification record kept per user.
type XPRecord struct {
	User      string     `json:"user"`
	XP        int        `json:"xp"`
	Badges    []string   `json:"badges"`
	LastLog   *time.Time `json:"last_log,omitempty"`
	LastDaily *time.Time `json:"last_daily,omitempty"`
}

// HasBadge reports whether the record holds badge.
func (r *XPRecord) HasBadge(badge string) bool {
	return slices.Contains(r.Badges, badge)
}

// AddBadge adds badge unless it is already present. Badges are never removed.
func (r *XPRecord) AddBadge(badge string) {
	if !r.HasBadge(badge) {
		r.Badges = append(r.Badges, badge)
	}
}

// Touch sets the timestamp named by field.
func (r *XPRecord) Touch(field XPField, at time.Time) {
	switch field {
	case LastLogField:
		r.LastLog = &at
	case LastDailyField:
		r.LastDaily = &at
	}
}

// XPRepository is the port for XP persistence.
type XPRepository interface {
	GetXP(ctx context.Context, user string) (*XPRecord, error)
	// UpsertXP creates or replaces xp and badges for user and sets the
	// timestamp named by field. The other timestamp is left untouched.
	UpsertXP(ctx context.Context, user string, xp int, badges []string, field XPField, at time.Time) error
}
