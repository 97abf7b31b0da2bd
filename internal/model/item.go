package model

import (
	"errors"
	"time"
)

// TimeLayout is the timestamp format used throughout the auction database.
const TimeLayout = "2006-01-02 15:04:05"

// Item statuses, derived from the simulated clock rather than stored.
// StatusAll is only valid as a search filter.
const (
	StatusNotStarted = "not_started"
	StatusOpen       = "open"
	StatusClosed     = "closed"
	StatusAll        = "all"
)

// Item represents an auction listing.
type Item struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Currently    float64   `json:"currently"`
	FirstBid     float64   `json:"first_bid"`
	BuyPrice     *float64  `json:"buy_price,omitempty"`
	Started      time.Time `json:"started"`
	Ends         time.Time `json:"ends"`
	NumberOfBids int       `json:"number_of_bids"`
	SellerID     string    `json:"seller_id"`
	ImageMime    string    `json:"image_mime,omitempty"`
}

// StatusAt derives the item's displayed status at the given simulated time.
// A met buy price forces the auction closed regardless of the time window;
// otherwise the item is open exactly while now is in [Started, Ends).
func (i *Item) StatusAt(now time.Time) string {
	if i.BuyPrice != nil && i.Currently >= *i.BuyPrice {
		return StatusClosed
	}
	if now.Before(i.Started) {
		return StatusNotStarted
	}
	if now.Before(i.Ends) {
		return StatusOpen
	}
	return StatusClosed
}

// EndedAt reports whether the auction is over at the given simulated time.
func (i *Item) EndedAt(now time.Time) bool {
	return i.StatusAt(now) == StatusClosed
}

// Bid rejection reasons, checked in a fixed order by CheckBid.
var (
	ErrOwnItem           = errors.New("cannot bid on own items")
	ErrAuctionEnded      = errors.New("auction ended")
	ErrAuctionNotStarted = errors.New("auction has not started")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// CheckBid validates a bid against the listing at the given simulated time.
// The amount must be non-negative and strictly exceed both the floor price
// and the current price.
func (i *Item) CheckBid(bidderID string, amount float64, now time.Time) error {
	switch {
	case bidderID == i.SellerID:
		return ErrOwnItem
	case !now.Before(i.Ends):
		return ErrAuctionEnded
	case now.Before(i.Started):
		return ErrAuctionNotStarted
	case amount < 0 || amount <= i.FirstBid || amount <= i.Currently:
		return ErrInvalidAmount
	}
	return nil
}

// InstantPurchase reports whether the amount meets the item's buy price.
func (i *Item) InstantPurchase(amount float64) bool {
	return i.BuyPrice != nil && amount >= *i.BuyPrice
}
