package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	"brainrush/internal/gateway"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleWS upgrades the connection and hands it to the gateway. The request
// context tears the connection down when the server shuts down.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Debug().Err(err).Msg("websocket accept failed")
		return
	}

	client := gateway.NewClient(uuid.New().String(), conn)
	s.Hub.Register(client)
	go client.WritePump(r.Context())
	s.Hub.ServeClient(r.Context(), client, s.Engine)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":   "ok",
		"database": s.DB != nil,
	}
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status["database"] = false
		}
	}
	writeJSON(w, http.StatusOK, status)
}

// requireDB gates the stats API when the server runs without persistence.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.Stats == nil {
		writeError(w, http.StatusServiceUnavailable, "no database configured")
		return false
	}
	return true
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	rows, err := s.Stats.GetLeaderboard(50)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query failed")
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !s.requireDB(w) {
		return
	}
	summary, err := s.Stats.GetPlayerSummary(ps.ByName("name"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		log.Error().Err(err).Msg("player query failed")
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	records, err := s.DB.RecentSessions(50)
	if err != nil {
		log.Error().Err(err).Msg("sessions query failed")
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	stats, err := s.Stats.GetGlobalStats()
	if err != nil {
		log.Error().Err(err).Msg("stats query failed")
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
