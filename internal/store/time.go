package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auctionbase/internal/model"
)

// ErrClockUnset is returned when the simulated clock table has no row.
var ErrClockUnset = errors.New("simulated clock not set")

// GetSimTime returns the simulated current time. Every time-dependent
// operation takes the result as an explicit argument instead of reading the
// clock itself.
func GetSimTime(ctx context.Context, db *sql.DB) (time.Time, error) {
	var ts string
	err := db.QueryRowContext(ctx, `SELECT time FROM sim_time`).Scan(&ts)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrClockUnset
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("getting simulated time: %w", err)
	}

	parsed, err := time.Parse(model.TimeLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing simulated time %q: %w", ts, err)
	}
	return parsed, nil
}

// SetSimTime replaces the single simulated-clock row. The timestamp must be
// in model.TimeLayout format; the value read back is exactly the value set.
func SetSimTime(ctx context.Context, db *sql.DB, ts string) error {
	if _, err := time.Parse(model.TimeLayout, ts); err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sim_time`); err != nil {
		return fmt.Errorf("clearing simulated time: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO sim_time (time) VALUES (?)`, ts); err != nil {
		return fmt.Errorf("setting simulated time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing simulated time: %w", err)
	}
	return nil
}

// SeedSimTime inserts a default clock row if none exists yet. Safe to call on
// every startup.
func SeedSimTime(ctx context.Context, db *sql.DB, ts string) error {
	if _, err := time.Parse(model.TimeLayout, ts); err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO sim_time (time) SELECT ? WHERE NOT EXISTS (SELECT 1 FROM sim_time)`, ts)
	if err != nil {
		return fmt.Errorf("seeding simulated time: %w", err)
	}
	return nil
}
