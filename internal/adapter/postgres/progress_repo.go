package postgres

import (
	"context"
	"strconv"
	"time"

	"fitcoach/internal/domain"
)

// SaveProgress inserts a progress entry and returns its stored timestamp.
func (d *DB) SaveProgress(ctx context.Context, user string, weight float64, note string, createdAt time.Time) (time.Time, error) {
	ts := createdAt.UTC()
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO progress(user_email, weight, note, created_at) VALUES($1, $2, $3, $4);",
		user, weight, note, ts,
	)
	if err != nil {
		return time.Time{}, domain.WrapStore("save progress", err)
	}
	return ts, nil
}

// RecentProgress returns the newest progress entries up to limit.
func (d *DB) RecentProgress(ctx context.Context, user string, limit int) ([]domain.ProgressEntry, error) {
	return d.queryProgress(ctx, "recent progress",
		"SELECT id, user_email, weight, note, created_at FROM progress WHERE user_email=$1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		user, limit,
	)
}

// AllProgress returns every progress entry for user in insertion order.
func (d *DB) AllProgress(ctx context.Context, user string) ([]domain.ProgressEntry, error) {
	return d.queryProgress(ctx, "all progress",
		"SELECT id, user_email, weight, note, created_at FROM progress WHERE user_email=$1 ORDER BY id;",
		user,
	)
}

func (d *DB) queryProgress(ctx context.Context, op, query string, args ...any) ([]domain.ProgressEntry, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapStore(op, err)
	}
	defer rows.Close()

	out := make([]domain.ProgressEntry, 0)
	for rows.Next() {
		var (
			e  domain.ProgressEntry
			id int64
		)
		if err := rows.Scan(&id, &e.User, &e.Weight, &e.Note, &e.Timestamp); err != nil {
			return nil, domain.WrapStore(op, err)
		}
		e.ID = strconv.FormatInt(id, 10)
		e.Timestamp = e.Timestamp.UTC()
		out = append(out, e)
	}
	return out, domain.WrapStore(op, rows.Err())
}
