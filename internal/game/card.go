// internal/game/card.go
//
// A single card: its pair, bounds and face-up state.

package game

import "strconv"

// Card is a single tile on the board.
type Card struct {
	Pair    int  // pair number shared with exactly one other card
	Bounds  Rect // position on the canvas
	Exposed bool // face up (matched cards stay face up)
	Matched bool // permanently resolved as part of a found pair
}

// HitTest reports whether p falls on the card, edges included.
func (c *Card) HitTest(p Point) bool {
	return c.Bounds.Contains(p)
}

// Label is the text printed on the card face.
func (c *Card) Label() string { return strconv.Itoa(c.Pair) }

// Draw renders the face when exposed and the back otherwise.
func (c *Card) Draw(cv Canvas) {
	corners := c.Bounds.Corners()
	if !c.Exposed {
		cv.DrawPolygon(corners, 1, ColorCardBack, ColorCardBack)
		return
	}

	fill := ColorCardFace
	if c.Matched {
		fill = ColorCardMatched
	}
	cv.DrawPolygon(corners, 1, fill, fill)

	text := c.Label()
	size := c.Bounds.Height / 2
	w := cv.TextWidth(text, size, FontSerif)
	pos := Point{
		X: c.Bounds.Left + (c.Bounds.Width-w)/2,
		Y: c.Bounds.Top + (c.Bounds.Height+size)/2,
	}
	cv.DrawText(text, pos, size, ColorCardLabel, FontSerif)
}
