// internal/game/types.go
//
// Core type definitions for the memory game engine.
// Defines:
//   - Config: board dimensions and deck size.
//   - Game: state for a single deal (deck, exposed queue, scoreboard, banner).
//   - ClickResult: what a single click did to the game.

package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidConfig is wrapped by every configuration rejection.
var ErrInvalidConfig = errors.New("invalid game config")

// Default board settings.
const (
	DefaultFrameWidth       = 800
	DefaultFrameHeight      = 800
	DefaultScoreboardHeight = 50
	DefaultCardGutter       = 5
	DefaultNumPairs         = 8
	DefaultCardsPerRow      = 4
)

// Config describes the canvas and the deck laid out on it.
type Config struct {
	FrameWidth       float64 // canvas width in pixels
	FrameHeight      float64 // canvas height in pixels, scoreboard included
	ScoreboardHeight float64 // strip reserved above the grid
	CardGutter       float64 // gap between cards and around the grid
	NumPairs         int     // N; the deck holds 2N cards
	CardsPerRow      int     // grid columns; must divide 2N
}

// DefaultConfig returns the 800x800, 8-pair, 4-column board.
func DefaultConfig() Config {
	return Config{
		FrameWidth:       DefaultFrameWidth,
		FrameHeight:      DefaultFrameHeight,
		ScoreboardHeight: DefaultScoreboardHeight,
		CardGutter:       DefaultCardGutter,
		NumPairs:         DefaultNumPairs,
		CardsPerRow:      DefaultCardsPerRow,
	}
}

// Rows returns the number of grid rows.
func (c Config) Rows() int {
	if c.CardsPerRow <= 0 {
		return 0
	}
	return c.NumPairs * 2 / c.CardsPerRow
}

// CardWidth is the width left for each column once gutters are taken out.
func (c Config) CardWidth() float64 {
	if c.CardsPerRow <= 0 {
		return 0
	}
	cols := float64(c.CardsPerRow)
	return (c.FrameWidth - c.CardGutter*cols - c.CardGutter) / cols
}

// CardHeight is the height left for each row below the scoreboard.
func (c Config) CardHeight() float64 {
	rows := float64(c.Rows())
	if rows == 0 {
		return 0
	}
	return ((c.FrameHeight - c.ScoreboardHeight) - c.CardGutter*rows - c.CardGutter) / rows
}

// Validate rejects boards that cannot be laid out as a full grid.
func (c Config) Validate() error {
	switch {
	case c.NumPairs <= 0:
		return fmt.Errorf("%w: num pairs must be positive, got %d", ErrInvalidConfig, c.NumPairs)
	case c.CardsPerRow <= 0:
		return fmt.Errorf("%w: cards per row must be positive, got %d", ErrInvalidConfig, c.CardsPerRow)
	case (c.NumPairs*2)%c.CardsPerRow != 0:
		return fmt.Errorf("%w: %d cards do not fill rows of %d", ErrInvalidConfig, c.NumPairs*2, c.CardsPerRow)
	case c.CardGutter < 0 || c.ScoreboardHeight < 0:
		return fmt.Errorf("%w: gutter and scoreboard height must not be negative", ErrInvalidConfig)
	case c.CardWidth() <= 0 || c.CardHeight() <= 0:
		return fmt.Errorf("%w: frame %gx%g leaves no room for cards", ErrInvalidConfig, c.FrameWidth, c.FrameHeight)
	}
	return nil
}

// Game holds the state of a single memory game.
// A Game is not safe for concurrent use; hosts serialize calls.
type Game struct {
	cfg   Config
	cardW float64
	cardH float64
	rng   *rand.Rand

	cards   []*Card // deck, row-major
	exposed []*Card // face-up cards awaiting resolution, oldest first

	Scoreboard   *Scoreboard
	Notification *Notification
}

// ClickResult summarises the effect of one click.
type ClickResult struct {
	Exposed int  `json:"exposed"` // cards turned face up by this click
	Matched bool `json:"matched"` // a pair was resolved during this click
	Counted bool `json:"counted"` // tries was incremented
	Won     bool `json:"won"`     // every pair is matched after this click
}

// Option customises a Game at construction.
type Option func(*Game)

// WithSeed makes the shuffle deterministic. Every Reset draws the next deal
// from the same seeded stream.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand supplies the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}
