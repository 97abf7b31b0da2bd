package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	timeHandler := &TimeHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	bidsHandler := &BidsHandler{DB: db}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/time", timeHandler.Get)
	mux.HandleFunc("PUT /api/time", timeHandler.Set)

	mux.HandleFunc("GET /api/items", itemsHandler.Search)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)

	mux.HandleFunc("POST /api/bids", bidsHandler.Create)

	return mux
}
