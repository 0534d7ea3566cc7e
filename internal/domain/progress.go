package domain

import (
	"context"
	"time"
)

// ProgressEntry represents a single weight log submitted by a user.
type ProgressEntry struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Weight    float64   `json:"weight"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressRepository is the port for progress persistence.
type ProgressRepository interface {
	SaveProgress(ctx context.Context, user string, weight float64, note string, createdAt time.Time) (time.Time, error)
	// RecentProgress returns up to limit entries, newest first.
	RecentProgress(ctx context.Context, user string, limit int) ([]ProgressEntry, error)
	// AllProgress returns every entry for user in insertion order.
	AllProgress(ctx context.Context, user string) ([]ProgressEntry, error)
}
