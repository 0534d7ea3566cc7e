package app

import (
	"context"

	"fitcoach/internal/domain"

	"golang.org/x/sync/errgroup"
)

// recentWeightLogSize is how many progress entries are quoted in prompts.
const recentWeightLogSize = 5

// loadCoachContext fetches the latest plan text and the recent weight log for
// user. noPlan is used when the user has no plan yet.
func loadCoachContext(ctx context.Context, plans domain.PlanRepository, progress domain.ProgressRepository, user, noPlan string) (string, string, error) {
	var (
		planText = noPlan
		entries  []domain.ProgressEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := plans.LatestProfilePlan(gctx, user)
		if err != nil {
			return err
		}
		if p != nil {
			planText = p.Plan
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = progress.RecentProgress(gctx, user, recentWeightLogSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return planText, WeightLog(entries), nil
}
