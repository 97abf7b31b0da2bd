package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"auctionbase/internal/store"
)

// BidsHandler handles bid placement.
type BidsHandler struct {
	DB *sql.DB
}

type createBidRequest struct {
	ItemID int64   `json:"item_id"`
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Create handles POST /api/bids, with the same validation chain as the web
// form: item exists, user exists, not the seller, auction window, amount.
func (h *BidsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBidRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == 0 || req.UserID == "" {
		jsonError(w, http.StatusBadRequest, "item_id and user_id required")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, req.ItemID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	user, err := store.GetUser(r.Context(), h.DB, req.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get user")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	now, err := store.GetSimTime(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get simulated time")
		return
	}

	if err := item.CheckBid(user.ID, req.Amount, now); err != nil {
		slog.Warn("rejected bid", "item", item.ID, "user", user.ID, "amount", req.Amount, "reason", err)
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.PlaceBid(r.Context(), h.DB, item.ID, user.ID, req.Amount, now); err != nil {
		if errors.Is(err, store.ErrOutbid) {
			jsonError(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to place bid", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to place bid")
		return
	}

	slog.Info("bid placed", "item", item.ID, "user", user.ID, "amount", req.Amount,
		"instant_purchase", item.InstantPurchase(req.Amount))
	jsonResponse(w, http.StatusCreated, map[string]any{
		"added":            true,
		"instant_purchase": item.InstantPurchase(req.Amount),
	})
}
