// internal/config/config.go

// Package config loads process settings from the environment.
//
// main loads .env files first (godotenv), so values from .env and from the
// real environment look the same here. Every key has a default, which keeps
// a bare `go run .` working.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/robalobadob/memory/internal/game"
)

// Config holds all process configuration.
type Config struct {
	Port         string `mapstructure:"port" validate:"required,numeric"`
	LogLevel     string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	DBPath       string `mapstructure:"db_path" validate:"required"`
	JWTSecret    string `mapstructure:"jwt_secret" validate:"required"`
	SessionDays  int    `mapstructure:"session_days" validate:"gt=0"`
	ClientOrigin string `mapstructure:"client_origin" validate:"required"`
	DailySalt    string `mapstructure:"daily_salt" validate:"required"`

	FrameWidth       float64 `mapstructure:"frame_width" validate:"gt=0"`
	FrameHeight      float64 `mapstructure:"frame_height" validate:"gt=0"`
	ScoreboardHeight float64 `mapstructure:"scoreboard_height" validate:"gte=0"`
	CardGutter       float64 `mapstructure:"card_gutter" validate:"gte=0"`
	NumPairs         int     `mapstructure:"num_pairs" validate:"gt=0"`
	CardsPerRow      int     `mapstructure:"cards_per_row" validate:"gt=0"`
}

var defaults = map[string]any{
	"port":              "5175",
	"log_level":         "info",
	"db_path":           "./data/memory.db",
	"jwt_secret":        "dev_secret_change_me",
	"session_days":      1,
	"client_origin":     "http://localhost:5173",
	"daily_salt":        "local_dev_salt",
	"frame_width":       game.DefaultFrameWidth,
	"frame_height":      game.DefaultFrameHeight,
	"scoreboard_height": game.DefaultScoreboardHeight,
	"card_gutter":       game.DefaultCardGutter,
	"num_pairs":         game.DefaultNumPairs,
	"cards_per_row":     game.DefaultCardsPerRow,
}

var validate = validator.New()

// Load reads the environment (PORT, LOG_LEVEL, NUM_PAIRS, ...) over the
// defaults and validates the result, including the board layout.
func Load() (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if err := cfg.Game().Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Game returns the board settings.
func (c *Config) Game() game.Config {
	return game.Config{
		FrameWidth:       c.FrameWidth,
		FrameHeight:      c.FrameHeight,
		ScoreboardHeight: c.ScoreboardHeight,
		CardGutter:       c.CardGutter,
		NumPairs:         c.NumPairs,
		CardsPerRow:      c.CardsPerRow,
	}
}

// SessionTTL is how long a session token stays valid.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionDays) * 24 * time.Hour
}
