package store

import (
	"context"
	"database/sql"
	"fmt"

	"auctionbase/internal/model"
)

// GetUser returns a user by ID, or nil if no such user exists.
func GetUser(ctx context.Context, db *sql.DB, id string) (*model.User, error) {
	user := &model.User{}
	var location, country sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, rating, location, country FROM users WHERE id = ?`, id,
	).Scan(&user.ID, &user.Rating, &location, &country)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	user.Location = location.String
	user.Country = country.String
	return user, nil
}
