package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"auctionbase/internal/imaging"
	"auctionbase/internal/model"
	"auctionbase/internal/store"
)

// itemDetailData is the context for the item detail page.
type itemDetailData struct {
	PageData
	Item       *model.Item
	Categories string
	Bids       []model.Bid
	Status     string
	Ended      bool
	Winner     string
	Now        time.Time
}

// ItemDetailPage handles GET /items?id=N.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	now, err := store.GetSimTime(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to get simulated time", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	categories, err := store.GetItemCategories(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item categories", "error", err)
	}
	bids, err := store.ListBids(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to list bids", "error", err)
	}

	// The winner only exists once someone has bid.
	var winner string
	if item.NumberOfBids > 0 {
		winning, err := store.GetWinningBid(r.Context(), s.DB, id)
		if err != nil {
			slog.Error("failed to get winning bid", "error", err)
		} else if winning != nil {
			winner = winning.UserID
		}
	}

	s.Templates.Render(w, "items.html", &itemDetailData{
		PageData:   PageData{Title: item.Name},
		Item:       item,
		Categories: categories,
		Bids:       bids,
		Status:     item.StatusAt(now),
		Ended:      item.EndedAt(now),
		Winner:     winner,
		Now:        now,
	})
}

// ItemImageGet handles GET /items/{id}/image.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}

// ItemImageSubmit handles POST /items/{id}/image.
func (s *Server) ItemImageSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Validate format by sniffing bytes, downscale, compress.
	result, err := imaging.Process(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.SetItemImage(r.Context(), s.DB, id, result.Data, result.MIME); err != nil {
		slog.Error("failed to save item image", "error", err)
		http.Error(w, "failed to save image", http.StatusInternalServerError)
		return
	}

	slog.Info("item image uploaded", "item", item.Name)
	http.Redirect(w, r, fmt.Sprintf("/items?id=%d", id), http.StatusSeeOther)
}
