package web

import (
	"log/slog"
	"net/http"

	"auctionbase/internal/model"
	"auctionbase/internal/store"
)

// searchData is the context for the search page. Searched distinguishes an
// empty result set from the blank form.
type searchData struct {
	PageData
	Filter   model.SearchFilter
	Searched bool
	Results  []model.SearchResult
}

// SearchPage handles GET /search (and the landing page).
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "search.html", &searchData{
		PageData: PageData{Title: "Search Auctions"},
	})
}

// SearchSubmit handles POST /search. At least one criterion besides the
// status filter must be set.
func (s *Server) SearchSubmit(w http.ResponseWriter, r *http.Request) {
	filter := model.SearchFilter{
		ItemID:      r.FormValue("itemID"),
		SellerID:    r.FormValue("userID"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		MinPrice:    r.FormValue("minPrice"),
		MaxPrice:    r.FormValue("maxPrice"),
		Status:      r.FormValue("status"),
	}

	if filter.Empty() {
		s.Templates.Render(w, "search.html", &searchData{
			PageData: PageData{Title: "Search Auctions", Error: "Error: no search criteria"},
			Filter:   filter,
		})
		return
	}

	now, err := store.GetSimTime(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to get simulated time", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	results, err := store.SearchItems(r.Context(), s.DB, filter, now)
	if err != nil {
		slog.Warn("search failed", "error", err)
		s.Templates.Render(w, "search.html", &searchData{
			PageData: PageData{Title: "Search Auctions", Error: "Error: invalid search criteria"},
			Filter:   filter,
		})
		return
	}

	s.Templates.Render(w, "search.html", &searchData{
		PageData: PageData{Title: "Search Auctions"},
		Filter:   filter,
		Searched: true,
		Results:  results,
	})
}
