package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"auctionbase/internal/model"
	"auctionbase/internal/store"
)

// TimeHandler handles simulated clock endpoints.
type TimeHandler struct {
	DB *sql.DB
}

type setTimeRequest struct {
	Time string `json:"time"`
}

// Get handles GET /api/time.
func (h *TimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	now, err := store.GetSimTime(r.Context(), h.DB)
	if errors.Is(err, store.ErrClockUnset) {
		jsonError(w, http.StatusNotFound, "simulated clock not set")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get simulated time")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"time": now.Format(model.TimeLayout)})
}

// Set handles PUT /api/time.
func (h *TimeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setTimeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Time == "" {
		jsonError(w, http.StatusBadRequest, "time required")
		return
	}

	if err := store.SetSimTime(r.Context(), h.DB, req.Time); err != nil {
		slog.Warn("rejected simulated time update", "time", req.Time, "error", err)
		jsonError(w, http.StatusBadRequest, "invalid time value")
		return
	}

	slog.Info("simulated time updated", "time", req.Time)
	jsonResponse(w, http.StatusOK, map[string]string{"time": req.Time})
}
