// Package server wires the pieces together and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"brainrush/internal/config"
	"brainrush/internal/db"
	"brainrush/internal/game"
	"brainrush/internal/gateway"
	"brainrush/internal/players"
	"brainrush/internal/stats"
)

type Server struct {
	Engine *game.Engine
	Hub    *gateway.Hub
	DB     *db.DB         // nil if no database configured
	Stats  *stats.Queries // nil if no database configured
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	setupLogging(cfg.Verbose)

	cache := players.NewStore()
	database := openDatabase(cfg.DatabaseURL, cache)

	engineCfg := game.DefaultConfig()
	engineCfg.AdminPassword = cfg.AdminPassword

	hub := gateway.NewHub()

	// An interface holding a typed nil pointer is not nil; only assign a
	// connected database.
	var store game.Store
	if database != nil {
		store = database
	}
	engine := game.New(engineCfg, clockwork.NewRealClock(), hub, store, cache)
	go engine.Run(ctx)

	srv := &Server{Engine: engine, Hub: hub, DB: database}
	if database != nil {
		srv.Stats = stats.NewQueries(database)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           cors.Default().Handler(srv.routes(cfg.StaticDir)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// openDatabase connects, migrates and warms the player cache. Any failure
// degrades to running without persistence.
func openDatabase(dsn string, cache *players.Store) *db.DB {
	if dsn == "" {
		log.Info().Msg("no database configured, running with in-memory state only")
		return nil
	}

	database, err := db.Connect(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("database connect failed, running without persistence")
		return nil
	}
	if err := database.Migrate(); err != nil {
		log.Warn().Err(err).Msg("migration failed, running without persistence")
		database.Close()
		return nil
	}

	records, err := database.AllPlayers()
	if err != nil {
		log.Warn().Err(err).Msg("loading players failed")
	} else {
		known := make([]players.Player, 0, len(records))
		for _, r := range records {
			known = append(known, players.Player{
				Name:       r.Name,
				BestScore:  r.BestScore,
				TotalGames: r.TotalGames,
			})
		}
		cache.Load(known)
		log.Info().Int("players", len(known)).Msg("player cache warmed")
	}
	return database
}
