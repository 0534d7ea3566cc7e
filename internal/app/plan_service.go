// Package app holds the application services and business logic.
package app

import (
	"context"
	"time"

	"fitcoach/internal/domain"
)

// PlanService encapsulates profile plan generation use cases.
type PlanService struct {
	plans domain.PlanRepository
	gen   domain.TextGenerator
	now   func() time.Time
}

// NewPlanService creates a PlanService backed by the given repository and
// text generator.
func NewPlanService(plans domain.PlanRepository, gen domain.TextGenerator) *PlanService {
	return &PlanService{plans: plans, gen: gen, now: time.Now}
}

// WithClock replaces the time source.
func (s *PlanService) WithClock(now func() time.Time) *PlanService {
	s.now = now
	return s
}

// Generate validates the profile, asks the model for a plan and stores it.
func (s *PlanService) Generate(ctx context.Context, in domain.ProfileInput) (string, error) {
	profile, err := domain.ValidateProfile(in)
	if err != nil {
		return "", err
	}
	text, err := s.gen.Generate(ctx, PlanPrompt(profile))
	if err != nil {
		return "", err
	}
	if _, err := s.plans.SaveProfilePlan(ctx, in.UserEmail, profile, text, s.now().UTC()); err != nil {
		return "", err
	}
	return text, nil
}

// List returns every plan for user, newest first.
func (s *PlanService) List(ctx context.Context, user string) ([]domain.Plan, error) {
	if user == "" {
		return nil, domain.Invalid("Missing email")
	}
	return s.plans.ListProfilePlans(ctx, user)
}
