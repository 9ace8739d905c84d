package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routes builds the HTTP surface: the websocket endpoint, the read-only
// stats API, operational endpoints, and the static client as the fallback.
func (s *Server) routes(staticDir string) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/ws", s.handleWS)
	router.HandlerFunc(http.MethodGet, "/health", s.handleHealth)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.HandlerFunc(http.MethodGet, "/api/leaderboard", s.handleLeaderboard)
	router.GET("/api/players/:name", s.handlePlayer)
	router.HandlerFunc(http.MethodGet, "/api/sessions", s.handleSessions)
	router.HandlerFunc(http.MethodGet, "/api/stats", s.handleStats)

	router.NotFound = http.FileServer(http.Dir(staticDir))

	return router
}
