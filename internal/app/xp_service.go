package app

import (
	"context"

	"fitcoach/internal/domain"
)

// XPSummary is the public view of a user's XP record.
type XPSummary struct {
	XP     int      `json:"xp"`
	Badges []string `json:"badges"`
}

// XPService reads gamification state.
type XPService struct {
	xp domain.XPRepository
}

// NewXPService creates an XPService.
func NewXPService(xp domain.XPRepository) *XPService {
	return &XPService{xp: xp}
}

// Get returns the user's XP and badges; a user without a record has zero XP
// and no badges.
func (s *XPService) Get(ctx context.Context, user string) (XPSummary, error) {
	if user == "" {
		return XPSummary{}, domain.Invalid("Missing email")
	}
	rec, err := s.xp.GetXP(ctx, user)
	if err != nil {
		return XPSummary{}, err
	}
	if rec == nil {
		return XPSummary{XP: 0, Badges: []string{}}, nil
	}
	badges := rec.Badges
	if badges == nil {
		badges = []string{}
	}
	return XPSummary{XP: rec.XP, Badges: badges}, nil
}
