package app

import (
	"context"
	"time"

	"fitcoach/internal/domain"
)

// DailyPlanService generates and caches one routine per user per UTC day.
type DailyPlanService struct {
	plans    domain.PlanRepository
	progress domain.ProgressRepository
	daily    domain.DailyPlanRepository
	xp       domain.XPRepository
	gen      domain.TextGenerator
	now      func() time.Time
}

// NewDailyPlanService creates a DailyPlanService.
func NewDailyPlanService(
	plans domain.PlanRepository,
	progress domain.ProgressRepository,
	daily domain.DailyPlanRepository,
	xp domain.XPRepository,
	gen domain.TextGenerator,
) *DailyPlanService {
	return &DailyPlanService{plans: plans, progress: progress, daily: daily, xp: xp, gen: gen, now: time.Now}
}

// WithClock replaces the time source.
func (s *DailyPlanService) WithClock(now func() time.Time) *DailyPlanService {
	s.now = now
	return s
}

// Today returns the user's routine for the current UTC day. The first call of
// the day generates and stores it and applies the daily-plan XP event; later
// calls the same day return the stored text unchanged.
func (s *DailyPlanService) Today(ctx context.Context, user string) (string, error) {
	if user == "" {
		return "", domain.Invalid("Missing email")
	}

	now := s.now().UTC()
	plan, created, err := s.findOrCreate(ctx, user, domain.DayKey(now), now)
	if err != nil {
		return "", err
	}
	if !created {
		return plan.Plan, nil
	}

	rec, err := s.xp.GetXP(ctx, user)
	if err != nil {
		return "", err
	}
	var history []domain.DailyPlan
	if rec != nil {
		history, err = s.daily.RecentDailyPlans(ctx, user, StreakWindow)
		if err != nil {
			return "", err
		}
	}
	next := ApplyDailyPlan(rec, user, history, now)
	if err := s.xp.UpsertXP(ctx, user, next.XP, next.Badges, domain.LastDailyField, now); err != nil {
		return "", err
	}
	return plan.Plan, nil
}

// findOrCreate returns the stored plan for (user, day) or generates, stores
// and returns a new one. created reports which happened.
func (s *DailyPlanService) findOrCreate(ctx context.Context, user, day string, now time.Time) (*domain.DailyPlan, bool, error) {
	existing, err := s.daily.FindDailyPlan(ctx, user, day)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	planText, weightLog, err := loadCoachContext(ctx, s.plans, s.progress, user, "No existing plan.")
	if err != nil {
		return nil, false, err
	}
	text, err := s.gen.Generate(ctx, DailyPrompt(planText, weightLog))
	if err != nil {
		return nil, false, err
	}
	plan, err := s.daily.SaveDailyPlan(ctx, user, day, text, now)
	if err != nil {
		return nil, false, err
	}
	return plan, true, nil
}

// History returns the newest daily plans for user.
func (s *DailyPlanService) History(ctx context.Context, user string) ([]domain.DailyPlan, error) {
	if user == "" {
		return nil, domain.Invalid("Missing email")
	}
	return s.daily.RecentDailyPlans(ctx, user, StreakWindow)
}
