package app

import (
	"context"
	"time"

	"fitcoach/internal/domain"
)

// Check-in messages.
const (
	CheckInDoneMessage    = "You've logged your progress today. Great job!"
	CheckInPendingMessage = "Don't forget to log your weight and review your plan!"
)

// CheckIn reports whether a user has logged progress on the current day.
type CheckIn struct {
	LoggedToday bool   `json:"loggedToday"`
	Message     string `json:"message"`
}

// ProgressService encapsulates progress-tracking use cases.
type ProgressService struct {
	progress domain.ProgressRepository
	xp       domain.XPRepository
	now      func() time.Time
}

// NewProgressService creates a ProgressService.
func NewProgressService(progress domain.ProgressRepository, xp domain.XPRepository) *ProgressService {
	return &ProgressService{progress: progress, xp: xp, now: time.Now}
}

// WithClock replaces the time source.
func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	s.now = now
	return s
}

// Track stores a weight log and applies the progress-log XP event.
func (s *ProgressService) Track(ctx context.Context, user, weight, note string) error {
	if user == "" || weight == "" {
		return domain.Invalid("Missing user or weight")
	}
	w, err := domain.ParseNumber(weight)
	if err != nil {
		return domain.Invalid("Invalid numeric input.")
	}
	if w == 0 {
		return domain.Invalid("Missing user or weight")
	}

	now := s.now().UTC()
	if _, err := s.progress.SaveProgress(ctx, user, w, note, now); err != nil {
		return err
	}

	// Not atomic: concurrent logs for one user may lose an update.
	rec, err := s.xp.GetXP(ctx, user)
	if err != nil {
		return err
	}
	next := ApplyProgressLog(rec, user, now)
	return s.xp.UpsertXP(ctx, user, next.XP, next.Badges, domain.LastLogField, now)
}

// List returns every progress entry for user.
func (s *ProgressService) List(ctx context.Context, user string) ([]domain.ProgressEntry, error) {
	if user == "" {
		return nil, domain.Invalid("Missing userEmail")
	}
	return s.progress.AllProgress(ctx, user)
}

// CheckIn reports whether user has logged progress today (UTC).
func (s *ProgressService) CheckIn(ctx context.Context, user string) (CheckIn, error) {
	if user == "" {
		return CheckIn{}, domain.Invalid("Missing email")
	}
	recent, err := s.progress.RecentProgress(ctx, user, 1)
	if err != nil {
		return CheckIn{}, err
	}
	var last *time.Time
	if len(recent) > 0 {
		last = &recent[0].Timestamp
	}
	return CheckInStatus(last, s.now()), nil
}

// CheckInStatus reports whether last falls on the same UTC day as now.
func CheckInStatus(last *time.Time, now time.Time) CheckIn {
	if last != nil && domain.DayKey(*last) == domain.DayKey(now) {
		return CheckIn{LoggedToday: true, Message: CheckInDoneMessage}
	}
	return CheckIn{LoggedToday: false, Message: CheckInPendingMessage}
}
