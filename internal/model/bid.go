package model

import "time"

// Bid represents a single bid placed on an item.
type Bid struct {
	ItemID int64     `json:"item_id"`
	UserID string    `json:"user_id"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
}
