package domain

import (
	"context"
	"time"
)

// Plan is a generated fitness and diet plan together with the profile it was
// generated from. Plans are append-only.
type Plan struct {
	ID        string      `json:"_id"`
	User      string      `json:"user"`
	Inputs    UserProfile `json:"inputs"`
	Plan      string      `json:"plan"`
	Timestamp time.Time   `json:"timestamp"`
}

// DailyPlan is a generated routine for a single UTC calendar day.
type DailyPlan struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Date      string    `json:"date"`
	Plan      string    `json:"plan"`
	Timestamp time.Time `json:"timestamp"`
}

// PlanRepository is the port for profile plan persistence.
type PlanRepository interface {
	SaveProfilePlan(ctx context.Context, user string, inputs UserProfile, planText string, createdAt time.Time) (*Plan, error)
	LatestProfilePlan(ctx context.Context, user string) (*Plan, error)
	ListProfilePlans(ctx context.Context, user string) ([]Plan, error)
}

// DailyPlanRepository is the port for daily plan persistence.
type DailyPlanRepository interface {
	// FindDailyPlan returns the first plan stored for (user, day), or nil.
	FindDailyPlan(ctx context.Context, user, day string) (*DailyPlan, error)
	SaveDailyPlan(ctx context.Context, user, day, planText string, createdAt time.Time) (*DailyPlan, error)
	RecentDailyPlans(ctx context.Context, user string, limit int) ([]DailyPlan, error)
}
