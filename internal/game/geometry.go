// internal/game/geometry.go
//
// Canvas geometry for the card grid.
// Defines:
//   - Point: a position in canvas coordinates (origin top-left, y grows down).
//   - Rect:  an axis-aligned rectangle with inclusive edges.

package game

// Point is a 2D position in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Corners returns the four corners clockwise from top-left.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left, Y: r.Bottom()},
	}
}

// Contains reports whether p lies inside r. Both edges are inclusive, so a
// point on a shared border belongs to both neighbours.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}
