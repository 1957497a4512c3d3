// internal/game/canvas.go
//
// Drawing and window abstractions the game renders through, plus the
// palette shared by its renderers.

package game

import "image/color"

// FontFamily names a generic font family understood by a Canvas.
type FontFamily string

const (
	FontSerif     FontFamily = "serif"
	FontSansSerif FontFamily = "sans-serif"
	FontMonospace FontFamily = "monospace"
)

// Palette used by the card, scoreboard and notification renderers.
var (
	ColorCardFace    color.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // white
	ColorCardMatched color.Color = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff} // gray
	ColorCardBack    color.Color = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff} // green
	ColorCardLabel   color.Color = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff} // red
	ColorScore       color.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBanner      color.Color = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff} // yellow
)

// Canvas is the drawing surface handed to the draw handler on every frame.
// Text positions are baseline-left, matching the way the renderers centre
// their labels.
type Canvas interface {
	// DrawPolygon fills the closed polygon through points and strokes its
	// outline with lineWidth.
	DrawPolygon(points []Point, lineWidth float64, stroke, fill color.Color)

	// DrawText draws text with its baseline starting at pos.
	DrawText(text string, pos Point, size float64, c color.Color, family FontFamily)

	// TextWidth measures the advance width of text at the given size.
	TextWidth(text string, size float64, family FontFamily) float64
}

// Frame is the window/event-loop host a Game is bound to.
// Handlers are called from a single goroutine, never concurrently.
type Frame interface {
	SetDrawHandler(fn func(Canvas))
	SetClickHandler(fn func(Point))
	AddButton(label string, fn func())
	// Start runs the event loop and blocks until the window closes.
	Start() error
}
