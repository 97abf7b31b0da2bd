package db

import (
	"database/sql"
	"fmt"
)

// schema is the full auction database schema. Users, items and categories are
// seeded from an external dataset; bids and the simulated clock are the only
// tables the application writes.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id       TEXT PRIMARY KEY,
    rating   INTEGER NOT NULL DEFAULT 0,
    location TEXT,
    country  TEXT
);

CREATE TABLE IF NOT EXISTS items (
    id             INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    description    TEXT,
    currently      REAL NOT NULL,
    first_bid      REAL NOT NULL,
    buy_price      REAL,
    started        DATETIME NOT NULL,
    ends           DATETIME NOT NULL,
    number_of_bids INTEGER NOT NULL DEFAULT 0,
    seller_id      TEXT NOT NULL REFERENCES users(id),
    image          BLOB,
    image_mime     TEXT
);

CREATE TABLE IF NOT EXISTS categories (
    item_id  INTEGER NOT NULL REFERENCES items(id),
    category TEXT NOT NULL,
    PRIMARY KEY (item_id, category)
);

CREATE TABLE IF NOT EXISTS bids (
    item_id INTEGER NOT NULL REFERENCES items(id),
    user_id TEXT NOT NULL REFERENCES users(id),
    amount  REAL NOT NULL,
    time    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_item ON bids(item_id);

CREATE TABLE IF NOT EXISTS sim_time (
    time TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
