package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"auctionbase/internal/store"
)

// timeFormData is the context for the clock pages.
type timeFormData struct {
	PageData
	Now time.Time
}

// CurrTimePage handles GET /currtime.
func (s *Server) CurrTimePage(w http.ResponseWriter, r *http.Request) {
	now, err := store.GetSimTime(r.Context(), s.DB)
	if err != nil {
		if errors.Is(err, store.ErrClockUnset) {
			s.Templates.Render(w, "curr_time.html", &timeFormData{
				PageData: PageData{Title: "Current Time", Error: "The simulated clock has not been set."},
			})
			return
		}
		slog.Error("failed to get simulated time", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "curr_time.html", &timeFormData{
		PageData: PageData{Title: "Current Time"},
		Now:      now,
	})
}

// SelectTimePage handles GET /selecttime.
func (s *Server) SelectTimePage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "select_time.html", &timeFormData{
		PageData: PageData{Title: "Select Time"},
	})
}

// SelectTimeSubmit handles POST /selecttime. The form posts the timestamp as
// six separate numeric fields plus the submitter's name.
func (s *Server) SelectTimeSubmit(w http.ResponseWriter, r *http.Request) {
	month := r.FormValue("MM")
	day := r.FormValue("dd")
	year := r.FormValue("yyyy")
	hour := r.FormValue("HH")
	minute := r.FormValue("mm")
	second := r.FormValue("ss")
	name := r.FormValue("entername")

	ts := fmt.Sprintf("%s-%s-%s %s:%s:%s", year, month, day, hour, minute, second)

	if err := store.SetSimTime(r.Context(), s.DB, ts); err != nil {
		slog.Warn("rejected simulated time update", "user", name, "time", ts, "error", err)
		s.Templates.Render(w, "select_time.html", &timeFormData{
			PageData: PageData{Title: "Select Time", Error: fmt.Sprintf("Invalid time value: %s", ts)},
		})
		return
	}

	slog.Info("simulated time updated", "user", name, "time", ts)
	s.Templates.Render(w, "select_time.html", &timeFormData{
		PageData: PageData{
			Title:   "Select Time",
			Success: fmt.Sprintf("Time set to %s. (Submitted by: %s.)", ts, name),
		},
	})
}
