// cmd/desktop/main.go

// Command desktop plays the memory game in a native window.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/config"
	"github.com/robalobadob/memory/internal/frame"
	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/typeface"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	g, err := game.New(cfg.Game())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to deal")
	}
	faces, err := typeface.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	f := frame.New("Memory Game", cfg.FrameWidth, cfg.FrameHeight, faces)
	game.Bind(f, g, func(p game.Point, res game.ClickResult) {
		log.Debug().Float64("x", p.X).Float64("y", p.Y).
			Int("exposed", res.Exposed).Bool("matched", res.Matched).
			Msg("click")
		if res.Won {
			log.Info().Int("tries", g.Scoreboard.Tries).Msg("game won")
		}
	})

	log.Info().Int("pairs", cfg.NumPairs).Msg("starting memory game")
	if err := f.Start(); err != nil {
		log.Fatal().Err(err).Msg("window exited")
	}
}
