package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"auctionbase/internal/model"
	"auctionbase/internal/store"
)

// bidFormData is the context for the bid form. Added reports the outcome of
// the insert itself when Attempted is set.
type bidFormData struct {
	PageData
	Attempted bool
	Added     bool
}

// AddBidPage handles GET /add_bid.
func (s *Server) AddBidPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "add_bid.html", &bidFormData{
		PageData: PageData{Title: "Place a Bid"},
	})
}

// renderBidError re-renders the bid form with an inline message. Nothing has
// been written when any validation step fails.
func (s *Server) renderBidError(w http.ResponseWriter, message string) {
	s.Templates.Render(w, "add_bid.html", &bidFormData{
		PageData: PageData{Title: "Place a Bid", Error: message},
	})
}

// AddBidSubmit handles POST /add_bid. The validation order is fixed: required
// fields, item exists, user exists, not the seller, auction window, amount.
func (s *Server) AddBidSubmit(w http.ResponseWriter, r *http.Request) {
	itemIDStr := r.FormValue("itemID")
	userID := r.FormValue("userID")
	amountStr := r.FormValue("price")

	if itemIDStr == "" || userID == "" || amountStr == "" {
		s.renderBidError(w, "Error: check valid ItemID, UserID, and Amount")
		return
	}

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		s.renderBidError(w, "Error: invalid ItemID")
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		s.renderBidError(w, "Error: invalid amount")
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, itemID)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		s.renderBidError(w, "Error: invalid ItemID")
		return
	}

	user, err := store.GetUser(r.Context(), s.DB, userID)
	if err != nil {
		slog.Error("failed to get user", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		s.renderBidError(w, "Error: invalid UserID")
		return
	}

	now, err := store.GetSimTime(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to get simulated time", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := item.CheckBid(user.ID, amount, now); err != nil {
		slog.Warn("rejected bid", "item", item.ID, "user", user.ID, "amount", amount, "reason", err)
		switch {
		case errors.Is(err, model.ErrOwnItem):
			s.renderBidError(w, "Error: cannot bid on own items")
		case errors.Is(err, model.ErrAuctionEnded):
			s.renderBidError(w, "Error: auction ended")
		case errors.Is(err, model.ErrAuctionNotStarted):
			s.renderBidError(w, "Error: auction has not started")
		default:
			s.renderBidError(w, "Error: invalid amount")
		}
		return
	}

	message := fmt.Sprintf("You have bid on %s at $%.2f.", item.Name, amount)
	if item.InstantPurchase(amount) {
		message = fmt.Sprintf("You now own %s at the buy price of $%.2f.", item.Name, amount)
	}

	if err := store.PlaceBid(r.Context(), s.DB, item.ID, user.ID, amount, now); err != nil {
		slog.Warn("bid insert failed", "item", item.ID, "user", user.ID, "amount", amount, "error", err)
		s.Templates.Render(w, "add_bid.html", &bidFormData{
			PageData:  PageData{Title: "Place a Bid", Error: "Error: bid could not be recorded"},
			Attempted: true,
		})
		return
	}

	slog.Info("bid placed", "item", item.ID, "user", user.ID, "amount", amount,
		"instant_purchase", item.InstantPurchase(amount))
	s.Templates.Render(w, "add_bid.html", &bidFormData{
		PageData:  PageData{Title: "Place a Bid", Success: message},
		Attempted: true,
		Added:     true,
	})
}
