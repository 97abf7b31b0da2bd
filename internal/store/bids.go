package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auctionbase/internal/model"
)

// ErrOutbid is returned when a bid no longer exceeds the item's current price
// at commit time.
var ErrOutbid = errors.New("bid does not exceed the current price")

// ListBids returns all bids for an item, newest first.
func ListBids(ctx context.Context, db *sql.DB, itemID int64) ([]model.Bid, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT item_id, user_id, amount, time FROM bids
		 WHERE item_id = ? ORDER BY time DESC, amount DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bids: %w", err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.ItemID, &b.UserID, &b.Amount, &b.Time); err != nil {
			return nil, fmt.Errorf("scanning bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// GetWinningBid returns the highest bid for an item, or nil if there are no bids.
func GetWinningBid(ctx context.Context, db *sql.DB, itemID int64) (*model.Bid, error) {
	b := &model.Bid{}
	err := db.QueryRowContext(ctx,
		`SELECT item_id, user_id, amount, time FROM bids
		 WHERE item_id = ? AND amount = (SELECT max(amount) FROM bids WHERE item_id = ?)`,
		itemID, itemID,
	).Scan(&b.ItemID, &b.UserID, &b.Amount, &b.Time)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting winning bid: %w", err)
	}
	return b, nil
}

// PlaceBid records a bid and raises the item's current price in a single
// transaction. The price update is conditional on the amount still exceeding
// the stored price, so two bidders racing past the same stale read cannot
// both win: the later commit affects zero rows, rolls back, and reports
// ErrOutbid with the bids table unchanged.
func PlaceBid(ctx context.Context, db *sql.DB, itemID int64, userID string, amount float64, at time.Time) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO bids (item_id, user_id, amount, time) VALUES (?, ?, ?, ?)`,
		itemID, userID, amount, at.Format(model.TimeLayout),
	); err != nil {
		return fmt.Errorf("recording bid: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE items SET currently = ?, number_of_bids = number_of_bids + 1
		 WHERE id = ? AND currently < ?`,
		amount, itemID, amount,
	)
	if err != nil {
		return fmt.Errorf("updating current price: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking price update: %w", err)
	}
	if affected == 0 {
		return ErrOutbid
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bid: %w", err)
	}
	return nil
}
