package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"auctionbase/internal/db"
	"auctionbase/internal/model"
)

func bidTime(t *testing.T) time.Time {
	t.Helper()
	at, err := time.Parse(model.TimeLayout, "2024-01-03 00:00:00")
	if err != nil {
		t.Fatalf("parsing bid time: %v", err)
	}
	return at
}

func TestPlaceBid(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seedUser(t, database, "seller1")
	seedUser(t, database, "alice")
	seedItem(t, database, 1, "seller1", 10, nil, "2024-01-01 00:00:00", "2024-01-05 00:00:00")

	if err := PlaceBid(ctx, database, 1, "alice", 15, bidTime(t)); err != nil {
		t.Fatalf("PlaceBid: %v", err)
	}

	item, _ := GetItem(ctx, database, 1)
	if item.Currently != 15 {
		t.Errorf("expected current price 15, got %v", item.Currently)
	}
	if item.NumberOfBids != 1 {
		t.Errorf("expected 1 bid, got %d", item.NumberOfBids)
	}
	if n := bidCount(t, database, 1); n != 1 {
		t.Errorf("expected 1 bid row, got %d", n)
	}
}

func TestPlaceBidNotExceedingPrice(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seedUser(t, database, "seller1")
	seedUser(t, database, "alice")
	seedUser(t, database, "bob")
	seedItem(t, database, 1, "seller1", 10, nil, "2024-01-01 00:00:00", "2024-01-05 00:00:00")

	if err := PlaceBid(ctx, database, 1, "alice", 20, bidTime(t)); err != nil {
		t.Fatalf("PlaceBid: %v", err)
	}

	// Bob's bid passed validation against a stale price but no longer
	// exceeds the stored one; the whole transaction must roll back.
	err := PlaceBid(ctx, database, 1, "bob", 20, bidTime(t))
	if !errors.Is(err, ErrOutbid) {
		t.Fatalf("expected ErrOutbid, got %v", err)
	}

	if n := bidCount(t, database, 1); n != 1 {
		t.Errorf("expected losing bid to be rolled back, got %d rows", n)
	}
	item, _ := GetItem(ctx, database, 1)
	if item.Currently != 20 || item.NumberOfBids != 1 {
		t.Errorf("expected price 20 with 1 bid, got %v with %d", item.Currently, item.NumberOfBids)
	}
}

func TestPlaceBidUnknownItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seedUser(t, database, "alice")

	// Foreign keys are on, so a bid on a nonexistent item must fail and
	// leave the bids table empty.
	if err := PlaceBid(ctx, database, 42, "alice", 15, bidTime(t)); err == nil {
		t.Fatal("expected error for unknown item")
	}
	if n := bidCount(t, database, 42); n != 0 {
		t.Errorf("expected no bid rows, got %d", n)
	}
}

func TestListBids(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seedUser(t, database, "seller1")
	seedUser(t, database, "alice")
	seedUser(t, database, "bob")
	seedItem(t, database, 1, "seller1", 10, nil, "2024-01-01 00:00:00", "2024-01-05 00:00:00")

	first, _ := time.Parse(model.TimeLayout, "2024-01-02 00:00:00")
	second, _ := time.Parse(model.TimeLayout, "2024-01-03 00:00:00")
	PlaceBid(ctx, database, 1, "alice", 15, first)
	PlaceBid(ctx, database, 1, "bob", 20, second)

	bids, err := ListBids(ctx, database, 1)
	if err != nil {
		t.Fatalf("ListBids: %v", err)
	}
	if len(bids) != 2 {
		t.Fatalf("expected 2 bids, got %d", len(bids))
	}
	if bids[0].UserID != "bob" {
		t.Errorf("expected newest bid first, got %q", bids[0].UserID)
	}
}

func TestGetWinningBid(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seedUser(t, database, "seller1")
	seedUser(t, database, "alice")
	seedUser(t, database, "bob")
	seedItem(t, database, 1, "seller1", 10, nil, "2024-01-01 00:00:00", "2024-01-05 00:00:00")

	none, err := GetWinningBid(ctx, database, 1)
	if err != nil {
		t.Fatalf("GetWinningBid: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil winner with no bids, got %+v", none)
	}

	PlaceBid(ctx, database, 1, "alice", 15, bidTime(t))
	PlaceBid(ctx, database, 1, "bob", 25, bidTime(t))

	winner, err := GetWinningBid(ctx, database, 1)
	if err != nil {
		t.Fatalf("GetWinningBid: %v", err)
	}
	if winner == nil || winner.UserID != "bob" || winner.Amount != 25 {
		t.Errorf("expected bob at 25, got %+v", winner)
	}
}
