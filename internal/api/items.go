package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"auctionbase/internal/model"
	"auctionbase/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	now, err := store.GetSimTime(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get simulated time")
		return
	}

	categories, err := store.GetItemCategories(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item categories")
		return
	}
	bids, err := store.ListBids(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list bids")
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	var winner string
	if item.NumberOfBids > 0 {
		winning, err := store.GetWinningBid(r.Context(), h.DB, id)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to get winning bid")
			return
		}
		if winning != nil {
			winner = winning.UserID
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"item":       item,
		"categories": categories,
		"bids":       bids,
		"status":     item.StatusAt(now),
		"ended":      item.EndedAt(now),
		"winner":     winner,
	})
}

// Search handles GET /api/items. Filters arrive as query parameters with the
// same semantics as the search form.
func (h *ItemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.SearchFilter{
		ItemID:      q.Get("itemID"),
		SellerID:    q.Get("userID"),
		Category:    q.Get("category"),
		Description: q.Get("description"),
		MinPrice:    q.Get("minPrice"),
		MaxPrice:    q.Get("maxPrice"),
		Status:      q.Get("status"),
	}

	if filter.Empty() {
		jsonError(w, http.StatusBadRequest, "no search criteria")
		return
	}

	now, err := store.GetSimTime(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get simulated time")
		return
	}

	results, err := store.SearchItems(r.Context(), h.DB, filter, now)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid search criteria")
		return
	}
	if results == nil {
		results = []model.SearchResult{}
	}

	jsonResponse(w, http.StatusOK, results)
}
