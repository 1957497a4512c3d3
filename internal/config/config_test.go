package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/memory/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, game.DefaultConfig(), cfg.Game())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NUM_PAIRS", "6")
	t.Setenv("CARDS_PER_ROW", "3")
	t.Setenv("CARD_GUTTER", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 6, cfg.Game().NumPairs)
	assert.Equal(t, 3, cfg.Game().CardsPerRow)
	assert.Equal(t, 2.5, cfg.Game().CardGutter)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, val string
	}{
		{"log level", "LOG_LEVEL", "loud"},
		{"port", "PORT", "http"},
		{"pairs", "NUM_PAIRS", "0"},
		{"session days", "SESSION_DAYS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsUnevenGrid(t *testing.T) {
	t.Setenv("NUM_PAIRS", "5")
	t.Setenv("CARDS_PER_ROW", "4")

	_, err := Load()
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}
