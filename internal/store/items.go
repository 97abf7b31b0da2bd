package store

import (
	"context"
	"database/sql"
	"fmt"

	"auctionbase/internal/model"
)

// GetItem returns an item by ID, or nil if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	var buyPrice sql.NullFloat64
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, currently, first_bid, buy_price,
		        started, ends, number_of_bids, seller_id, image_mime
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &item.Currently, &item.FirstBid,
		&buyPrice, &item.Started, &item.Ends, &item.NumberOfBids, &item.SellerID, &imageMime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.ImageMime = imageMime.String
	if buyPrice.Valid {
		item.BuyPrice = &buyPrice.Float64
	}
	return item, nil
}

// GetItemCategories returns an item's categories as a single comma-separated
// string, empty if the item has none.
func GetItemCategories(ctx context.Context, db *sql.DB, itemID int64) (string, error) {
	var categories sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT group_concat(category, ', ')
		 FROM (SELECT category FROM categories WHERE item_id = ? ORDER BY category)`,
		itemID,
	).Scan(&categories)
	if err != nil {
		return "", fmt.Errorf("getting item categories: %w", err)
	}
	return categories.String, nil
}

// SetItemImage sets an item's photo.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's photo data and MIME type, nil data if unset.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}
