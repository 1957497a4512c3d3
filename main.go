// main.go
//
// HTTP server entry point.
// Loads .env and config, opens the results database, then serves the game
// API and sweeps expired sessions until interrupted.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/config"
	"github.com/robalobadob/memory/internal/httpserver"
	"github.com/robalobadob/memory/internal/results"
	"github.com/robalobadob/memory/internal/store"
	"github.com/robalobadob/memory/internal/typeface"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := results.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open results db")
	}
	defer db.Close()
	if err := results.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate results db")
	}

	faces, err := typeface.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, results.NewStore(db), httpserver.Options{
		Game:         cfg.Game(),
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL(),
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
		Measurer:     faces,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sweepLoop(ctx, srv, time.Hour)

	log.Info().Str("port", cfg.Port).Int("pairs", cfg.NumPairs).Msg("starting memory server")
	errc := make(chan error, 1)
	go func() { errc <- srv.Start(":" + cfg.Port) }()

	select {
	case err := <-errc:
		log.Fatal().Err(err).Msg("server exited")
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}
}

// sweepLoop periodically drops expired sessions until ctx is done.
func sweepLoop(ctx context.Context, srv *httpserver.Server, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			srv.Sweep(ctx)
		}
	}
}
