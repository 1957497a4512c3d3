// internal/frame/ebiten.go
//
// Desktop window for the game, backed by ebiten.
//
// Layout:
//   - The top width x height pixels are the game canvas. Clicks there go to
//     the click handler in canvas coordinates.
//   - Below the canvas sits a bar of buttons added with AddButton, laid out
//     left to right.
//
// ebiten calls Update and Draw from one goroutine, so handlers never run
// concurrently.

package frame

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/typeface"
)

const (
	barHeight      = 40
	buttonWidth    = 100
	buttonPadding  = 6
	buttonFontSize = 16
)

var (
	colorBackground = color.Black
	colorBar        = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	colorButton     = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	colorButtonText = color.White
)

type button struct {
	label  string
	fn     func()
	bounds game.Rect
}

// Ebiten is a game.Frame drawn in a native window.
type Ebiten struct {
	title         string
	width, height int
	faces         *typeface.Cache

	draw    func(game.Canvas)
	click   func(game.Point)
	buttons []button

	white *ebiten.Image // 1x1 source for solid triangles
}

var _ game.Frame = (*Ebiten)(nil)

// New returns a frame whose canvas is width x height pixels.
func New(title string, width, height float64, faces *typeface.Cache) *Ebiten {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Ebiten{
		title:  title,
		width:  int(width),
		height: int(height),
		faces:  faces,
		white:  img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetDrawHandler sets the function that paints the canvas every frame.
func (e *Ebiten) SetDrawHandler(fn func(game.Canvas)) { e.draw = fn }

// SetClickHandler sets the function told about left clicks on the canvas.
func (e *Ebiten) SetClickHandler(fn func(game.Point)) { e.click = fn }

// AddButton appends a button to the bar under the canvas.
func (e *Ebiten) AddButton(label string, fn func()) {
	n := len(e.buttons)
	e.buttons = append(e.buttons, button{
		label: label,
		fn:    fn,
		bounds: game.Rect{
			Left:   float64(buttonPadding + n*(buttonWidth+buttonPadding)),
			Top:    float64(e.height + buttonPadding),
			Width:  buttonWidth,
			Height: barHeight - 2*buttonPadding,
		},
	})
}

// Start opens the window and blocks until it is closed.
func (e *Ebiten) Start() error {
	ebiten.SetWindowSize(e.width, e.height+barHeight)
	ebiten.SetWindowTitle(e.title)
	return ebiten.RunGame(e)
}

// Update routes left clicks to the canvas or the button bar.
func (e *Ebiten) Update() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	p := game.Point{X: float64(mx), Y: float64(my)}

	if my < e.height {
		if e.click != nil {
			e.click(p)
		}
		return nil
	}
	for _, b := range e.buttons {
		if b.bounds.Contains(p) {
			log.Debug().Str("button", b.label).Msg("button pressed")
			b.fn()
			return nil
		}
	}
	return nil
}

// Draw paints the canvas through the draw handler, then the button bar.
func (e *Ebiten) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	canvas := screen.SubImage(image.Rect(0, 0, e.width, e.height)).(*ebiten.Image)
	if e.draw != nil {
		e.draw(&surface{dst: canvas, white: e.white, faces: e.faces})
	}

	vector.DrawFilledRect(screen, 0, float32(e.height), float32(e.width), barHeight, colorBar, false)
	s := &surface{dst: screen, white: e.white, faces: e.faces}
	for _, b := range e.buttons {
		r := b.bounds
		vector.DrawFilledRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), colorButton, false)
		tw := s.TextWidth(b.label, buttonFontSize, game.FontSansSerif)
		s.DrawText(b.label, game.Point{
			X: r.Left + (r.Width-tw)/2,
			Y: r.Top + (r.Height+buttonFontSize)/2 - 2,
		}, buttonFontSize, colorButtonText, game.FontSansSerif)
	}
}

// Layout keeps the screen at canvas size plus the button bar.
func (e *Ebiten) Layout(_, _ int) (int, int) {
	return e.width, e.height + barHeight
}

// surface adapts an ebiten image to game.Canvas.
type surface struct {
	dst   *ebiten.Image
	white *ebiten.Image
	faces *typeface.Cache
}

func (s *surface) DrawPolygon(points []game.Point, lineWidth float64, stroke, fill color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.fillTriangles(vs, is, fill)

	if lineWidth > 0 {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(lineWidth),
			LineJoin: vector.LineJoinMiter,
		})
		s.fillTriangles(vs, is, stroke)
	}
}

func (s *surface) fillTriangles(vs []ebiten.Vertex, is []uint16, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(vs, is, s.white, op)
}

func (s *surface) DrawText(str string, pos game.Point, size float64, c color.Color, family game.FontFamily) {
	face, err := s.faces.Face(family, size)
	if err != nil {
		log.Warn().Err(err).Str("text", str).Msg("no face")
		return
	}
	text.Draw(s.dst, str, face, int(pos.X), int(pos.Y), c)
}

func (s *surface) TextWidth(str string, size float64, family game.FontFamily) float64 {
	return s.faces.Width(str, size, family)
}
