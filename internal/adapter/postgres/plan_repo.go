package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"fitcoach/internal/domain"
)

// SaveProfilePlan inserts a plan together with the profile it was built from.
func (d *DB) SaveProfilePlan(ctx context.Context, user string, inputs domain.UserProfile, planText string, createdAt time.Time) (*domain.Plan, error) {
	raw, err := json.Marshal(inputs)
	if err != nil {
		return nil, domain.WrapStore("save plan", err)
	}
	ts := createdAt.UTC()
	var id int64
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO plans(user_email, inputs, plan, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		user, raw, planText, ts,
	).Scan(&id)
	if err != nil {
		return nil, domain.WrapStore("save plan", err)
	}
	return &domain.Plan{ID: strconv.FormatInt(id, 10), User: user, Inputs: inputs, Plan: planText, Timestamp: ts}, nil
}

// LatestProfilePlan returns the newest plan for user.
func (d *DB) LatestProfilePlan(ctx context.Context, user string) (*domain.Plan, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, user_email, inputs, plan, created_at FROM plans WHERE user_email=$1 ORDER BY created_at DESC, id DESC LIMIT 1;",
		user,
	)
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapStore("latest plan", err)
	}
	return p, nil
}

// ListProfilePlans returns every plan for user, newest first.
func (d *DB) ListProfilePlans(ctx context.Context, user string) ([]domain.Plan, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_email, inputs, plan, created_at FROM plans WHERE user_email=$1 ORDER BY created_at DESC, id DESC;",
		user,
	)
	if err != nil {
		return nil, domain.WrapStore("list plans", err)
	}
	defer rows.Close()

	out := make([]domain.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, domain.WrapStore("list plans", err)
		}
		out = append(out, *p)
	}
	return out, domain.WrapStore("list plans", rows.Err())
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(s scanner) (*domain.Plan, error) {
	var (
		p   domain.Plan
		id  int64
		raw []byte
	)
	if err := s.Scan(&id, &p.User, &raw, &p.Plan, &p.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &p.Inputs); err != nil {
		return nil, err
	}
	p.ID = strconv.FormatInt(id, 10)
	p.Timestamp = p.Timestamp.UTC()
	return &p, nil
}
