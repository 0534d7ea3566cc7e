// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitcoach/internal/domain"

	"github.com/google/uuid"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	plans    []domain.Plan
	daily    []domain.DailyPlan
	progress []domain.ProgressEntry
	xp       map[string]domain.XPRecord
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{xp: make(map[string]domain.XPRecord)}
}

// Ensure interfaces are met.
var _ domain.Store = (*DB)(nil)

// Ping always succeeds.
func (db *DB) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (db *DB) Close() error { return nil }

// --- PlanRepository ---

// SaveProfilePlan appends a plan.
func (db *DB) SaveProfilePlan(ctx context.Context, user string, inputs domain.UserProfile, planText string, createdAt time.Time) (*domain.Plan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p := domain.Plan{
		ID:        uuid.NewString(),
		User:      user,
		Inputs:    inputs,
		Plan:      planText,
		Timestamp: createdAt.UTC(),
	}
	db.plans = append(db.plans, p)
	return &p, nil
}

// LatestProfilePlan returns the newest plan for user.
func (db *DB) LatestProfilePlan(ctx context.Context, user string) (*domain.Plan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var latest *domain.Plan
	for i := range db.plans {
		p := &db.plans[i]
		if p.User != user {
			continue
		}
		if latest == nil || p.Timestamp.After(latest.Timestamp) {
			latest = p
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	return &ret, nil
}

// ListProfilePlans returns every plan for user, newest first.
func (db *DB) ListProfilePlans(ctx context.Context, user string) ([]domain.Plan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Plan, 0)
	for _, p := range db.plans {
		if p.User == user {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

// --- DailyPlanRepository ---

// FindDailyPlan returns the first plan stored for (user, day).
func (db *DB) FindDailyPlan(ctx context.Context, user, day string) (*domain.DailyPlan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, p := range db.daily {
		if p.User == user && p.Date == day {
			ret := p
			return &ret, nil
		}
	}
	return nil, nil
}

// SaveDailyPlan appends a daily plan.
func (db *DB) SaveDailyPlan(ctx context.Context, user, day, planText string, createdAt time.Time) (*domain.DailyPlan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p := domain.DailyPlan{
		ID:        uuid.NewString(),
		User:      user,
		Date:      day,
		Plan:      planText,
		Timestamp: createdAt.UTC(),
	}
	db.daily = append(db.daily, p)
	return &p, nil
}

// RecentDailyPlans lists the newest daily plans for user.
func (db *DB) RecentDailyPlans(ctx context.Context, user string, limit int) ([]domain.DailyPlan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.DailyPlan, 0)
	for _, p := range db.daily {
		if p.User == user {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- ProgressRepository ---

// SaveProgress appends a progress entry.
func (db *DB) SaveProgress(ctx context.Context, user string, weight float64, note string, createdAt time.Time) (time.Time, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ts := createdAt.UTC()
	db.progress = append(db.progress, domain.ProgressEntry{
		ID:        uuid.NewString(),
		User:      user,
		Weight:    weight,
		Note:      note,
		Timestamp: ts,
	})
	return ts, nil
}

// RecentProgress lists the newest progress entries for user.
func (db *DB) RecentProgress(ctx context.Context, user string, limit int) ([]domain.ProgressEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := db.progressFor(user)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// AllProgress lists every progress entry for user in insertion order.
func (db *DB) AllProgress(ctx context.Context, user string) ([]domain.ProgressEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.progressFor(user), nil
}

func (db *DB) progressFor(user string) []domain.ProgressEntry {
	result := make([]domain.ProgressEntry, 0)
	for _, e := range db.progress {
		if e.User == user {
			result = append(result, e)
		}
	}
	return result
}

// --- XPRepository ---

// GetXP returns the XP record for user, or nil.
func (db *DB) GetXP(ctx context.Context, user string) (*domain.XPRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.xp[user]
	if !ok {
		return nil, nil
	}
	rec.Badges = append([]string(nil), rec.Badges...)
	return &rec, nil
}

// UpsertXP creates or updates the XP record for user.
func (db *DB) UpsertXP(ctx context.Context, user string, xp int, badges []string, field domain.XPField, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec := db.xp[user]
	rec.User = user
	rec.XP = xp
	rec.Badges = append([]string(nil), badges...)
	rec.Touch(field, at.UTC())
	db.xp[user] = rec
	return nil
}
