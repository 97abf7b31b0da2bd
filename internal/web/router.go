package web

import (
	"database/sql"
	"net/http"

	webembed "auctionbase/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{DB: db, Templates: templates}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Simulated clock.
	mux.HandleFunc("GET /currtime", s.CurrTimePage)
	mux.HandleFunc("GET /selecttime", s.SelectTimePage)
	mux.HandleFunc("POST /selecttime", s.SelectTimeSubmit)

	// Bidding.
	mux.HandleFunc("GET /add_bid", s.AddBidPage)
	mux.HandleFunc("POST /add_bid", s.AddBidSubmit)

	// Listings.
	mux.HandleFunc("GET /search", s.SearchPage)
	mux.HandleFunc("POST /search", s.SearchSubmit)
	mux.HandleFunc("GET /items", s.ItemDetailPage)
	mux.HandleFunc("GET /items/{id}/image", s.ItemImageGet)
	mux.HandleFunc("POST /items/{id}/image", s.ItemImageSubmit)

	// Legacy passthrough route.
	mux.HandleFunc("GET /appbase", s.AppBasePage)

	// The landing page is the search form.
	mux.HandleFunc("GET /{$}", s.SearchPage)

	return mux, nil
}

// AppBasePage handles GET /appbase.
func (s *Server) AppBasePage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "appbase.html", &PageData{Title: "AuctionBase"})
}
