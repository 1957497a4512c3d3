// internal/viewmodel/displaylist.go
//
// Headless canvas that records draw calls as a display list.

package viewmodel

import (
	"fmt"
	"image/color"

	"github.com/robalobadob/memory/internal/game"
)

// Op kinds.
const (
	OpPolygon = "polygon"
	OpText    = "text"
)

// DrawOp is one recorded drawing call. Colors are #rrggbbaa.
type DrawOp struct {
	Op        string       `json:"op"`
	Points    []game.Point `json:"points,omitempty"`
	LineWidth float64      `json:"lineWidth,omitempty"`
	Stroke    string       `json:"stroke,omitempty"`
	Fill      string       `json:"fill,omitempty"`
	Text      string       `json:"text,omitempty"`
	Pos       *game.Point  `json:"pos,omitempty"`
	Size      float64      `json:"size,omitempty"`
	Color     string       `json:"color,omitempty"`
	Family    string       `json:"family,omitempty"`
}

// Measurer measures text; typeface.Cache satisfies it.
type Measurer interface {
	Width(text string, size float64, family game.FontFamily) float64
}

// DisplayList is a game.Canvas that records what a frame would draw, for
// clients that render on their own surface.
type DisplayList struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Ops    []DrawOp `json:"ops"`

	measure Measurer
}

// NewDisplayList returns an empty list for a width x height canvas.
func NewDisplayList(width, height float64, m Measurer) *DisplayList {
	return &DisplayList{Width: width, Height: height, Ops: []DrawOp{}, measure: m}
}

// Render draws g into a fresh display list.
func Render(g *game.Game, m Measurer) *DisplayList {
	cfg := g.Config()
	dl := NewDisplayList(cfg.FrameWidth, cfg.FrameHeight, m)
	g.Draw(dl)
	return dl
}

// DrawPolygon records a polygon op; points are copied.
func (d *DisplayList) DrawPolygon(points []game.Point, lineWidth float64, stroke, fill color.Color) {
	pts := make([]game.Point, len(points))
	copy(pts, points)
	d.Ops = append(d.Ops, DrawOp{
		Op:        OpPolygon,
		Points:    pts,
		LineWidth: lineWidth,
		Stroke:    Hex(stroke),
		Fill:      Hex(fill),
	})
}

// DrawText records a text op.
func (d *DisplayList) DrawText(text string, pos game.Point, size float64, c color.Color, family game.FontFamily) {
	p := pos
	d.Ops = append(d.Ops, DrawOp{
		Op:     OpText,
		Text:   text,
		Pos:    &p,
		Size:   size,
		Color:  Hex(c),
		Family: string(family),
	})
}

// TextWidth measures through the list's Measurer, or returns 0 without one.
func (d *DisplayList) TextWidth(text string, size float64, family game.FontFamily) float64 {
	if d.measure == nil {
		return 0
	}
	return d.measure.Width(text, size, family)
}

// Hex formats c as #rrggbbaa (non-premultiplied).
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
