package store

import (
	"database/sql"
	"testing"
)

// Seeding helpers. Users, items and categories are normally loaded from an
// external dataset, so tests insert rows directly.

func seedUser(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO users (id, rating, location, country) VALUES (?, 10, 'Palo Alto', 'USA')`, id)
	if err != nil {
		t.Fatalf("seeding user %s: %v", id, err)
	}
}

func seedItem(t *testing.T, db *sql.DB, id int64, seller string, firstBid float64, buyPrice *float64, started, ends string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO items (id, name, description, currently, first_bid, buy_price,
		                    started, ends, number_of_bids, seller_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		id, "Test Item", "a test listing", firstBid, firstBid, buyPrice, started, ends, seller)
	if err != nil {
		t.Fatalf("seeding item %d: %v", id, err)
	}
}

func seedCategory(t *testing.T, db *sql.DB, itemID int64, category string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO categories (item_id, category) VALUES (?, ?)`, itemID, category)
	if err != nil {
		t.Fatalf("seeding category %s: %v", category, err)
	}
}

func bidCount(t *testing.T, db *sql.DB, itemID int64) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT count(*) FROM bids WHERE item_id = ?`, itemID).Scan(&n); err != nil {
		t.Fatalf("counting bids: %v", err)
	}
	return n
}
