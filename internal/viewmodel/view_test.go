package viewmodel

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/memory/internal/game"
)

type fixedMeasurer float64

func (f fixedMeasurer) Width(text string, _ float64, _ game.FontFamily) float64 {
	return float64(f) * float64(len(text))
}

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.DefaultConfig(), game.WithSeed(3))
	require.NoError(t, err)
	return g
}

func TestGameViewHidesFaceDownPairs(t *testing.T) {
	g := newGame(t)
	g.Click(g.Cards()[2].Bounds.Center())

	v := NewGameView(g)
	require.Len(t, v.Cards, 16)
	assert.Equal(t, []int{2}, v.Exposed)
	assert.Equal(t, 8, v.Pairs)
	assert.Equal(t, 4, v.CardsPerRow)

	for i, c := range v.Cards {
		if i == 2 {
			assert.Equal(t, StateExposed, c.State)
			require.NotNil(t, c.Pair)
			assert.Equal(t, g.Cards()[2].Pair, *c.Pair)
			continue
		}
		assert.Equal(t, StateHidden, c.State)
		assert.Nil(t, c.Pair)
	}

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"pair":null`)
}

func TestGameViewMatched(t *testing.T) {
	g := newGame(t)
	var pair []int
	for i, c := range g.Cards() {
		if c.Pair == 0 {
			pair = append(pair, i)
		}
	}
	g.Click(g.Cards()[pair[0]].Bounds.Center())
	g.Click(g.Cards()[pair[1]].Bounds.Center())

	v := NewGameView(g)
	assert.Equal(t, StateMatched, v.Cards[pair[0]].State)
	assert.Equal(t, StateMatched, v.Cards[pair[1]].State)
	assert.Empty(t, v.Exposed)
	assert.Equal(t, 1, v.Score)
	assert.Equal(t, 1, v.Tries)
	assert.False(t, v.Won)
}

func TestGameViewNil(t *testing.T) {
	v := NewGameView(nil)
	assert.NotNil(t, v.Cards)
	assert.NotNil(t, v.Exposed)
}

func TestRenderRecordsFrame(t *testing.T) {
	g := newGame(t)
	g.Click(g.Cards()[0].Bounds.Center())

	dl := Render(g, fixedMeasurer(10))
	assert.Equal(t, 800.0, dl.Width)

	var polys, texts []DrawOp
	for _, op := range dl.Ops {
		switch op.Op {
		case OpPolygon:
			polys = append(polys, op)
		case OpText:
			texts = append(texts, op)
		}
	}
	require.Len(t, polys, 16)
	assert.Equal(t, "#ffffffff", polys[0].Fill)
	assert.Equal(t, "#008000ff", polys[1].Fill)
	assert.Len(t, polys[0].Points, 4)

	require.Len(t, texts, 2)
	assert.Equal(t, "0 / 0", texts[1].Text)
	// 5 chars * 10 px -> (800-50)/2
	assert.Equal(t, game.Point{X: 375, Y: 30}, *texts[1].Pos)
	assert.Equal(t, "serif", texts[1].Family)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000ff", Hex(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, "#00000000", Hex(color.Transparent))
	assert.Equal(t, "", Hex(nil))
}
