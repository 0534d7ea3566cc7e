package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"fitcoach/internal/domain"
)

// FindDailyPlan returns the earliest plan stored for (user, day).
func (d *DB) FindDailyPlan(ctx context.Context, user, day string) (*domain.DailyPlan, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, user_email, day, plan, created_at FROM daily_plans WHERE user_email=$1 AND day=$2 ORDER BY id LIMIT 1;",
		user, day,
	)
	p, err := scanDailyPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapStore("find daily plan", err)
	}
	return p, nil
}

// SaveDailyPlan inserts a daily plan.
func (d *DB) SaveDailyPlan(ctx context.Context, user, day, planText string, createdAt time.Time) (*domain.DailyPlan, error) {
	ts := createdAt.UTC()
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO daily_plans(user_email, day, plan, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		user, day, planText, ts,
	).Scan(&id)
	if err != nil {
		return nil, domain.WrapStore("save daily plan", err)
	}
	return &domain.DailyPlan{ID: strconv.FormatInt(id, 10), User: user, Date: day, Plan: planText, Timestamp: ts}, nil
}

// RecentDailyPlans returns the newest daily plans up to limit.
func (d *DB) RecentDailyPlans(ctx context.Context, user string, limit int) ([]domain.DailyPlan, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_email, day, plan, created_at FROM daily_plans WHERE user_email=$1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		user, limit,
	)
	if err != nil {
		return nil, domain.WrapStore("recent daily plans", err)
	}
	defer rows.Close()

	out := make([]domain.DailyPlan, 0, limit)
	for rows.Next() {
		p, err := scanDailyPlan(rows)
		if err != nil {
			return nil, domain.WrapStore("recent daily plans", err)
		}
		out = append(out, *p)
	}
	return out, domain.WrapStore("recent daily plans", rows.Err())
}

func scanDailyPlan(s scanner) (*domain.DailyPlan, error) {
	var (
		p  domain.DailyPlan
		id int64
	)
	if err := s.Scan(&id, &p.User, &p.Date, &p.Plan, &p.Timestamp); err != nil {
		return nil, err
	}
	p.ID = strconv.FormatInt(id, 10)
	p.Timestamp = p.Timestamp.UTC()
	return &p, nil
}
