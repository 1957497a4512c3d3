// internal/game/scoreboard.go
//
// Score and tries strip above the grid.

package game

import "fmt"

const scoreFontSize = 30

// Scoreboard tracks found pairs and counted attempts.
type Scoreboard struct {
	Score int // pairs matched
	Tries int // clicks that completed a pairing attempt

	width float64
}

func newScoreboard(width float64) *Scoreboard {
	return &Scoreboard{width: width}
}

// Reset zeroes both counters.
func (s *Scoreboard) Reset() {
	s.Score = 0
	s.Tries = 0
}

// Text formats the board as "score / tries".
func (s *Scoreboard) Text() string {
	return fmt.Sprintf("%d / %d", s.Score, s.Tries)
}

// Draw centres the text horizontally, one font size below the top edge.
func (s *Scoreboard) Draw(cv Canvas) {
	text := s.Text()
	w := cv.TextWidth(text, scoreFontSize, FontSerif)
	pos := Point{X: (s.width - w) / 2, Y: scoreFontSize}
	cv.DrawText(text, pos, scoreFontSize, ColorScore, FontSerif)
}
