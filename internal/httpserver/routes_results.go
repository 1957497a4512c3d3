// internal/httpserver/routes_results.go
//
// Leaderboard routes.
//   - GET /results/leaderboard?pairs=8&date=today&limit=20
//
// pairs defaults to the configured board; date is empty for free play,
// "today" for today's daily deal, or an explicit YYYY-MM-DD.

package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/daily"
	"github.com/robalobadob/memory/internal/results"
)

type leaderboardRes struct {
	Pairs int             `json:"pairs"`
	Date  string          `json:"date,omitempty"`
	Rows  []results.LBRow `json:"rows"`
}

func (s *Server) mountResults(r chi.Router) {
	r.Route("/results", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	q := r.URL.Query()

	pairs := s.opts.Game.NumPairs
	if v := q.Get("pairs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_pairs")
			return
		}
		pairs = n
	}

	limit := 20
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}

	date := q.Get("date")
	switch date {
	case "":
	case "today":
		date = daily.DateKey(s.opts.Now())
	default:
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
	}

	rows, err := s.results.Leaderboard(r.Context(), pairs, date, limit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if rows == nil {
		rows = []results.LBRow{}
	}
	writeJSON(w, http.StatusOK, leaderboardRes{Pairs: pairs, Date: date, Rows: rows})
}
