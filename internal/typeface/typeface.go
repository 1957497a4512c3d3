// internal/typeface/typeface.go

// Package typeface loads the bundled Go fonts and measures text with them.
//
// Faces are cached per (family, size) since opentype faces are costly to
// build and a frame asks for the same few sizes every tick.
package typeface

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/robalobadob/memory/internal/game"
)

// Go fonts stand in for the generic families.
var sources = map[game.FontFamily][]byte{
	game.FontSerif:     goregular.TTF,
	game.FontSansSerif: gomedium.TTF,
	game.FontMonospace: gomono.TTF,
}

type key struct {
	family game.FontFamily
	size   float64
}

// Cache hands out font faces and measures text. The zero value is not
// usable; call New.
type Cache struct {
	mu    sync.Mutex
	fonts map[game.FontFamily]*opentype.Font
	faces map[key]font.Face
}

// New parses the bundled fonts.
func New() (*Cache, error) {
	c := &Cache{
		fonts: make(map[game.FontFamily]*opentype.Font, len(sources)),
		faces: make(map[key]font.Face),
	}
	for fam, ttf := range sources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", fam, err)
		}
		c.fonts[fam] = f
	}
	return c, nil
}

// Face returns a face for family at size points (72 DPI, so points equal
// pixels). Unknown families fall back to serif.
func (c *Cache) Face(family game.FontFamily, size float64) (font.Face, error) {
	if size <= 0 || math.IsNaN(size) {
		return nil, fmt.Errorf("font size %g", size)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.fonts[family]
	if !ok {
		family = game.FontSerif
		f = c.fonts[family]
	}
	k := key{family: family, size: size}
	if face, ok := c.faces[k]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[k] = face
	return face, nil
}

// Width is the advance width of text in pixels; 0 when no face can be built.
func (c *Cache) Width(text string, size float64, family game.FontFamily) float64 {
	face, err := c.Face(family, size)
	if err != nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	adv := font.MeasureString(face, text)
	return float64(adv) / 64
}
