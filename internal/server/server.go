package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"chuni-tracker/internal/domain"
	"chuni-tracker/internal/render"
	"chuni-tracker/internal/service"

	"github.com/rs/zerolog"
)

// User-facing failure text. Storage detail is logged, never echoed.
const (
	msgUserNotFound      = "User not found."
	msgNoRecentPlays     = "No recent plays found."
	msgSongNotFound      = "No song found with that title."
	msgInvalidDifficulty = "Invalid difficulty level. Please choose from: EASY, ADVANCE, EXPERT, MASTER, ULTIMA, WORLDS END."
	msgInternal          = "An error occurred while fetching the play log."
)

type Server struct {
	playlogSvc *service.PlaylogService
	songSvc    *service.SongService
	db         *sql.DB
	logger     zerolog.Logger
}

func NewServer(playlogSvc *service.PlaylogService, songSvc *service.SongService, db *sql.DB, logger zerolog.Logger) *Server {
	return &Server{playlogSvc: playlogSvc, songSvc: songSvc, db: db, logger: logger}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/plays/recent", s.handleRecentPlay)
	mux.HandleFunc("GET /api/v1/plays/recent3", s.handleRecentPlays)
	mux.HandleFunc("GET /api/v1/songs/lookup", s.handleSongLookup)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleRecentPlay(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		s.writeError(w, http.StatusBadRequest, "username is required")
		return
	}
	version, ok := s.parseVersion(w, r)
	if !ok {
		return
	}

	payload, err := s.playlogSvc.GetMostRecentPlay(r.Context(), username, version, r.URL.Query().Get("title"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleRecentPlays(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		s.writeError(w, http.StatusBadRequest, "username is required")
		return
	}
	version, ok := s.parseVersion(w, r)
	if !ok {
		return
	}

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, _ = strconv.Atoi(raw)
	}

	payloads, err := s.playlogSvc.GetRecentPlays(r.Context(), username, version, count)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Plays []render.DisplayPayload `json:"plays"`
	}{Plays: payloads})
}

func (s *Server) handleSongLookup(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		s.writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	payload, err := s.songSvc.Lookup(r.Context(), title, r.URL.Query().Get("difficulty"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Error().Err(err).Msg("health check failed")
		s.writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) parseVersion(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("version")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "version is required")
		return 0, false
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "version must be a number")
		return 0, false
	}
	return version, true
}

// writeServiceError maps the error taxonomy to status codes. Expected
// outcomes get their own message; anything else is a storage failure,
// logged in full and reported generically.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.writeError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, domain.ErrNoRecentPlays):
		s.writeError(w, http.StatusNotFound, msgNoRecentPlays)
	case errors.Is(err, domain.ErrSongNotFound):
		s.writeError(w, http.StatusNotFound, msgSongNotFound)
	case errors.Is(err, domain.ErrInvalidDifficulty):
		s.writeError(w, http.StatusBadRequest, msgInvalidDifficulty)
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
