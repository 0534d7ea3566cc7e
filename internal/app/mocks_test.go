package app_test

import (
	"context"
	"time"

	"fitcoach/internal/domain"
)

type mockProgressRepo struct {
	saveFn   func(ctx context.Context, user string, weight float64, note string, t time.Time) (time.Time, error)
	recentFn func(ctx context.Context, user string, limit int) ([]domain.ProgressEntry, error)
	allFn    func(ctx context.Context, user string) ([]domain.ProgressEntry, error)
}

func (m *mockProgressRepo) SaveProgress(ctx context.Context, user string, weight float64, note string, t time.Time) (time.Time, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, user, weight, note, t)
	}
	return t, nil
}

func (m *mockProgressRepo) RecentProgress(ctx context.Context, user string, limit int) ([]domain.ProgressEntry, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, user, limit)
	}
	return nil, nil
}

func (m *mockProgressRepo) AllProgress(ctx context.Context, user string) ([]domain.ProgressEntry, error) {
	if m.allFn != nil {
		return m.allFn(ctx, user)
	}
	return nil, nil
}

type mockXPRepo struct {
	getFn    func(ctx context.Context, user string) (*domain.XPRecord, error)
	upsertFn func(ctx context.Context, user string, xp int, badges []string, field domain.XPField, at time.Time) error
}

func (m *mockXPRepo) GetXP(ctx context.Context, user string) (*domain.XPRecord, error) {
	if m.getFn != nil {
		return m.getFn(ctx, user)
	}
	return nil, nil
}

func (m *mockXPRepo) UpsertXP(ctx context.Context, user string, xp int, badges []string, field domain.XPField, at time.Time) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user, xp, badges, field, at)
	}
	return nil
}

type mockPlanRepo struct {
	saveFn   func(ctx context.Context, user string, inputs domain.UserProfile, text string, t time.Time) (*domain.Plan, error)
	latestFn func(ctx context.Context, user string) (*domain.Plan, error)
	listFn   func(ctx context.Context, user string) ([]domain.Plan, error)
}

func (m *mockPlanRepo) SaveProfilePlan(ctx context.Context, user string, inputs domain.UserProfile, text string, t time.Time) (*domain.Plan, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, user, inputs, text, t)
	}
	return &domain.Plan{User: user, Inputs: inputs, Plan: text, Timestamp: t}, nil
}

func (m *mockPlanRepo) LatestProfilePlan(ctx context.Context, user string) (*domain.Plan, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, user)
	}
	return nil, nil
}

func (m *mockPlanRepo) ListProfilePlans(ctx context.Context, user string) ([]domain.Plan, error) {
	if m.listFn != nil {
		return m.listFn(ctx, user)
	}
	return nil, nil
}

// fakeGen records prompts and returns a canned answer.
type fakeGen struct {
	text    string
	err     error
	prompts []string
}

func (g *fakeGen) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }
