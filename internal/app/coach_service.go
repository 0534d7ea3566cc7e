package app

import (
	"context"

	"fitcoach/internal/domain"
)

// Defaults applied to chat requests.
const (
	AnonymousUser   = "anonymous"
	DefaultLanguage = "English"
)

// CoachService answers free-form questions using the user's plan and log.
type CoachService struct {
	plans    domain.PlanRepository
	progress domain.ProgressRepository
	gen      domain.TextGenerator
}

// NewCoachService creates a CoachService.
func NewCoachService(plans domain.PlanRepository, progress domain.ProgressRepository, gen domain.TextGenerator) *CoachService {
	return &CoachService{plans: plans, progress: progress, gen: gen}
}

// Reply generates a reply to message. Empty user and language fall back to
// AnonymousUser and DefaultLanguage.
func (s *CoachService) Reply(ctx context.Context, message, user, language string) (string, error) {
	if message == "" {
		return "", domain.Invalid("Missing message")
	}
	if user == "" {
		user = AnonymousUser
	}
	if language == "" {
		language = DefaultLanguage
	}

	planText, weightLog, err := loadCoachContext(ctx, s.plans, s.progress, user, "No plan available.")
	if err != nil {
		return "", err
	}
	return s.gen.Generate(ctx, ChatPrompt(message, planText, weightLog, language))
}
