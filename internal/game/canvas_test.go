package game

import "image/color"

// recordingCanvas captures draw calls. Text is measured as half the font
// size per byte, which keeps centring arithmetic easy to check.
type recordingCanvas struct {
	polygons []polygonCall
	texts    []textCall
}

type polygonCall struct {
	points       []Point
	lineWidth    float64
	stroke, fill color.Color
}

type textCall struct {
	text   string
	pos    Point
	size   float64
	color  color.Color
	family FontFamily
}

func (r *recordingCanvas) DrawPolygon(points []Point, lineWidth float64, stroke, fill color.Color) {
	r.polygons = append(r.polygons, polygonCall{points: points, lineWidth: lineWidth, stroke: stroke, fill: fill})
}

func (r *recordingCanvas) DrawText(text string, pos Point, size float64, c color.Color, family FontFamily) {
	r.texts = append(r.texts, textCall{text: text, pos: pos, size: size, color: c, family: family})
}

func (r *recordingCanvas) TextWidth(text string, size float64, _ FontFamily) float64 {
	return float64(len(text)) * size / 2
}

// fakeFrame stores handlers so tests can drive them.
type fakeFrame struct {
	draw    func(Canvas)
	click   func(Point)
	buttons map[string]func()
	started bool
}

func (f *fakeFrame) SetDrawHandler(fn func(Canvas)) { f.draw = fn }
func (f *fakeFrame) SetClickHandler(fn func(Point)) { f.click = fn }
func (f *fakeFrame) AddButton(label string, fn func()) {
	if f.buttons == nil {
		f.buttons = map[string]func(){}
	}
	f.buttons[label] = fn
}
func (f *fakeFrame) Start() error {
	f.started = true
	return nil
}
