package typeface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/memory/internal/game"
)

func TestWidthScalesWithTextAndSize(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	one := c.Width("0", 30, game.FontSerif)
	two := c.Width("00", 30, game.FontSerif)
	big := c.Width("0", 60, game.FontSerif)

	assert.Greater(t, one, 0.0)
	assert.InDelta(t, 2*one, two, 1)
	assert.Greater(t, big, one)
	assert.Zero(t, c.Width("", 30, game.FontSerif))
}

func TestFaceIsCached(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	a, err := c.Face(game.FontMonospace, 12)
	require.NoError(t, err)
	b, err := c.Face(game.FontMonospace, 12)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestUnknownFamilyFallsBackToSerif(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Equal(t,
		c.Width("You won!", 80, game.FontSerif),
		c.Width("You won!", 80, game.FontFamily("fantasy")))
}

func TestFaceRejectsBadSize(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, err = c.Face(game.FontSerif, 0)
	assert.Error(t, err)
	assert.Zero(t, c.Width("x", -1, game.FontSerif))
}
