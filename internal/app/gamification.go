package app

import (
	"time"

	"fitcoach/internal/domain"
)

// XP awarded per event.
const (
	ProgressLogXP = 10
	DailyPlanXP   = 5
)

// StreakWindow is how many of the newest daily plans are scanned for a streak.
const StreakWindow = 7

// ApplyProgressLog returns the XP record that results from a progress log at
// now. rec is the stored record, or nil if the user has none yet.
//
// XP is added on every log, including repeats on the same day. A log exactly
// one calendar day after the previous one earns the 2-Day Streak badge; a
// longer gap earns nothing but never removes a badge.
func ApplyProgressLog(rec *domain.XPRecord, user string, now time.Time) domain.XPRecord {
	if rec == nil {
		out := domain.XPRecord{User: user, XP: ProgressLogXP, Badges: []string{domain.BadgeFirstLog}}
		out.Touch(domain.LastLogField, now)
		return out
	}

	out := clone(rec)
	out.XP += ProgressLogXP
	if rec.LastLog != nil && domain.DaysBetween(*rec.LastLog, now) == 1 {
		out.AddBadge(domain.BadgeTwoDayStreak)
	}
	out.Touch(domain.LastLogField, now)
	return out
}

// ApplyDailyPlan returns the XP record that results from generating a new
// daily plan at now. history holds the newest daily plans, newest first, and
// already includes the one just generated.
func ApplyDailyPlan(rec *domain.XPRecord, user string, history []domain.DailyPlan, now time.Time) domain.XPRecord {
	if rec == nil {
		out := domain.XPRecord{User: user, XP: DailyPlanXP, Badges: []string{domain.BadgeFirstDailyPlan}}
		out.Touch(domain.LastDailyField, now)
		return out
	}

	out := clone(rec)
	out.XP += DailyPlanXP
	out.AddBadge(domain.BadgeFirstDailyPlan)

	streak := DailyStreak(history)
	if streak >= 3 {
		out.AddBadge(domain.BadgeThreeDayStreak)
	}
	if streak >= 7 {
		out.AddBadge(domain.BadgeSevenDay)
	}
	out.Touch(domain.LastDailyField, now)
	return out
}

// DailyStreak returns the length of the unbroken run of consecutive calendar
// days ending at the newest plan. history must be ordered newest first; only
// the first StreakWindow entries are considered.
func DailyStreak(history []domain.DailyPlan) int {
	if len(history) == 0 {
		return 0
	}
	if len(history) > StreakWindow {
		history = history[:StreakWindow]
	}
	streak := 1
	for i := 1; i < len(history); i++ {
		if domain.DaysBetween(history[i].Timestamp, history[i-1].Timestamp) != 1 {
			break
		}
		streak++
	}
	return streak
}

func clone(rec *domain.XPRecord) domain.XPRecord {
	out := *rec
	out.Badges = append([]string(nil), rec.Badges...)
	return out
}
