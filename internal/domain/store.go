package domain

import "context"

// TextGenerator is the port for the hosted language model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store bundles every persistence port behind one handle so an adapter can be
// opened once at startup and shared by all services.
type Store interface {
	PlanRepository
	DailyPlanRepository
	ProgressRepository
	XPRepository
	Ping(ctx context.Context) error
	Close() error
}
