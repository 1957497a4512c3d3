package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}

	for _, p := range r.Corners() {
		assert.True(t, r.Contains(p), "corner %v", p)
	}
	assert.True(t, r.Contains(r.Center()))

	outside := []Point{
		{X: 9, Y: 40},   // left
		{X: 111, Y: 40}, // right
		{X: 50, Y: 19},  // above
		{X: 50, Y: 71},  // below
	}
	for _, p := range outside {
		assert.False(t, r.Contains(p), "point %v", p)
	}
}

func TestCardHitTest(t *testing.T) {
	c := &Card{Bounds: Rect{Left: 5, Top: 55, Width: 193.75, Height: 181.25}}

	for _, p := range c.Bounds.Corners() {
		assert.True(t, c.HitTest(p))
	}
	assert.False(t, c.HitTest(Point{X: 4, Y: 100}))
	assert.False(t, c.HitTest(Point{X: 199.75, Y: 100}))
	assert.False(t, c.HitTest(Point{X: 100, Y: 54}))
	assert.False(t, c.HitTest(Point{X: 100, Y: 237.25}))
}

func TestCardDrawBack(t *testing.T) {
	c := &Card{Pair: 4, Bounds: Rect{Left: 0, Top: 0, Width: 100, Height: 80}}
	cv := &recordingCanvas{}

	c.Draw(cv)

	require.Len(t, cv.polygons, 1)
	assert.Equal(t, ColorCardBack, cv.polygons[0].fill)
	assert.Equal(t, ColorCardBack, cv.polygons[0].stroke)
	assert.Equal(t, c.Bounds.Corners(), cv.polygons[0].points)
	assert.Empty(t, cv.texts)
}

func TestCardDrawFace(t *testing.T) {
	c := &Card{Pair: 7, Bounds: Rect{Left: 10, Top: 50, Width: 100, Height: 80}, Exposed: true}
	cv := &recordingCanvas{}

	c.Draw(cv)

	require.Len(t, cv.polygons, 1)
	assert.Equal(t, ColorCardFace, cv.polygons[0].fill)
	require.Len(t, cv.texts, 1)

	txt := cv.texts[0]
	assert.Equal(t, "7", txt.text)
	assert.Equal(t, 40.0, txt.size)
	assert.Equal(t, ColorCardLabel, txt.color)
	assert.Equal(t, FontSerif, txt.family)
	// width("7") = 20 -> 10 + (100-20)/2; 50 + (80+40)/2
	assert.Equal(t, Point{X: 50, Y: 110}, txt.pos)
}

func TestCardDrawMatched(t *testing.T) {
	c := &Card{Pair: 1, Bounds: Rect{Width: 10, Height: 10}, Exposed: true, Matched: true}
	cv := &recordingCanvas{}

	c.Draw(cv)

	require.Len(t, cv.polygons, 1)
	assert.Equal(t, ColorCardMatched, cv.polygons[0].fill)
	assert.Len(t, cv.texts, 1)
}
