package leaderboard

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hazyhaar/scores/shield"
)

// errStorageUnavailable is the stable error code returned when the store fails.
const errStorageUnavailable = "storage_unavailable"

// Handler returns the HTTP API:
//
//	GET /games/        all records, ranked
//	GET /games/{name}  records of one game, ranked
//	GET /healthz
//	GET /metrics
//
// Any other path is a 404.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	for _, mw := range shield.DefaultStack() {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Get("/games/", s.handleAllGames)
	r.Get("/games/{name}", s.handleGame)
	return r
}

func (s *Service) handleAllGames(w http.ResponseWriter, r *http.Request) {
	s.respondScores(w, r, AllGames)
}

func (s *Service) handleGame(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// chi matched against RawPath; decode escapes such as %2F.
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(name); err == nil {
			name = u
		}
	}
	s.respondScores(w, r, name)
}

// respondScores runs the query (the store lock is released when Scores
// returns) and only then encodes the response.
func (s *Service) respondScores(w http.ResponseWriter, r *http.Request, game string) {
	recs, err := s.Scores(r.Context(), game)
	if err != nil {
		shield.GetLogger(r.Context()).Error("leaderboard: query failed", "game", game, "error", err)
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
