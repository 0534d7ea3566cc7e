package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitcoach/internal/domain"

	"github.com/lib/pq"
)

// GetXP returns the XP record for user, or nil if none exists.
func (d *DB) GetXP(ctx context.Context, user string) (*domain.XPRecord, error) {
	var (
		rec       domain.XPRecord
		badges    pq.StringArray
		lastLog   sql.NullTime
		lastDaily sql.NullTime
	)
	err := d.sql.QueryRowContext(ctx,
		"SELECT user_email, xp, badges, last_log, last_daily FROM xp WHERE user_email=$1;",
		user,
	).Scan(&rec.User, &rec.XP, &badges, &lastLog, &lastDaily)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapStore("get xp", err)
	}
	rec.Badges = []string(badges)
	if lastLog.Valid {
		t := lastLog.Time.UTC()
		rec.LastLog = &t
	}
	if lastDaily.Valid {
		t := lastDaily.Time.UTC()
		rec.LastDaily = &t
	}
	return &rec, nil
}

// UpsertXP creates or replaces xp and badges for user and sets one timestamp
// column.
func (d *DB) UpsertXP(ctx context.Context, user string, xp int, badges []string, field domain.XPField, at time.Time) error {
	col, err := xpColumn(field)
	if err != nil {
		return domain.WrapStore("upsert xp", err)
	}
	query := fmt.Sprintf(
		"INSERT INTO xp(user_email, xp, badges, %[1]s) VALUES($1, $2, $3, $4) "+
			"ON CONFLICT (user_email) DO UPDATE SET xp=EXCLUDED.xp, badges=EXCLUDED.badges, %[1]s=EXCLUDED.%[1]s;",
		col,
	)
	if badges == nil {
		badges = []string{}
	}
	_, err = d.sql.ExecContext(ctx, query, user, xp, pq.Array(badges), at.UTC())
	return domain.WrapStore("upsert xp", err)
}

func xpColumn(field domain.XPField) (string, error) {
	switch field {
	case domain.LastLogField:
		return "last_log", nil
	case domain.LastDailyField:
		return "last_daily", nil
	}
	return "", fmt.Errorf("unknown xp field %q", field)
}
