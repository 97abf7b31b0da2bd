package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"auctionbase/internal/model"
)

// SearchItems runs an item search with any combination of filters. Empty
// filter fields add no predicate; the status filter appends the one relevant
// time predicate against the given simulated time. An unrecognized status is
// an error rather than an unfiltered query.
func SearchItems(ctx context.Context, db *sql.DB, f model.SearchFilter, now time.Time) ([]model.SearchResult, error) {
	query := `SELECT i.id, i.name, i.description, i.currently, i.first_bid, i.buy_price,
	                 i.started, i.ends, i.number_of_bids, i.seller_id,
	                 group_concat(c.category, ', ') AS categories
	          FROM items i
	          JOIN categories c ON c.item_id = i.id
	          WHERE 1=1`
	var args []any

	if f.ItemID != "" {
		id, err := strconv.ParseInt(f.ItemID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q", f.ItemID)
		}
		query += ` AND i.id = ?`
		args = append(args, id)
	}
	if f.SellerID != "" {
		query += ` AND i.seller_id = ?`
		args = append(args, f.SellerID)
	}
	if f.Category != "" {
		// Subquery so the result still lists all of a matched item's categories.
		query += ` AND i.id IN (SELECT item_id FROM categories WHERE category = ?)`
		args = append(args, f.Category)
	}
	if f.Description != "" {
		query += ` AND i.description LIKE ?`
		args = append(args, "%"+f.Description+"%")
	}
	if f.MinPrice != "" {
		minPrice, err := strconv.ParseFloat(f.MinPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum price %q", f.MinPrice)
		}
		query += ` AND i.currently >= ?`
		args = append(args, minPrice)
	}
	if f.MaxPrice != "" {
		maxPrice, err := strconv.ParseFloat(f.MaxPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maximum price %q", f.MaxPrice)
		}
		query += ` AND i.currently <= ?`
		args = append(args, maxPrice)
	}

	// Timestamps are stored in a fixed-width format, so string comparison
	// in SQL orders chronologically.
	nowStr := now.Format(model.TimeLayout)
	switch f.Status {
	case "", model.StatusAll:
	case model.StatusOpen:
		query += ` AND i.started <= ? AND i.ends > ?`
		args = append(args, nowStr, nowStr)
	case model.StatusClosed:
		query += ` AND i.ends <= ?`
		args = append(args, nowStr)
	case model.StatusNotStarted:
		query += ` AND i.started > ?`
		args = append(args, nowStr)
	default:
		return nil, fmt.Errorf("unknown status filter %q", f.Status)
	}

	query += ` GROUP BY i.id ORDER BY i.id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	var results []model.SearchResult
	for rows.Next() {
		var r model.SearchResult
		var description, categories sql.NullString
		var buyPrice sql.NullFloat64
		if err := rows.Scan(&r.ID, &r.Name, &description, &r.Currently, &r.FirstBid,
			&buyPrice, &r.Started, &r.Ends, &r.NumberOfBids, &r.SellerID, &categories); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		r.Description = description.String
		r.Categories = categories.String
		if buyPrice.Valid {
			r.BuyPrice = &buyPrice.Float64
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
