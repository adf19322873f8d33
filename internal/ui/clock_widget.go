package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
	"github.com/tartampluch/go-clock/internal/engine"
)

// minFaceSize keeps the face legible when the window is shrunk.
const minFaceSize = 64

// ClockWidget hosts an engine.Renderer inside a Fyne canvas.
// Each frame is drawn with Line, Circle and Text objects.
type ClockWidget struct {
	widget.BaseWidget

	Renderer *engine.Renderer
}

// NewClockWidget creates a widget whose refresh loop runs on clk.
// The renderer's timer fires off the UI thread, so invalidation hops back with fyne.Do.
func NewClockWidget(clk clockwork.Clock, style engine.Style, showAnalog bool) *ClockWidget {
	w := &ClockWidget{}

	// Configure before the invalidator is attached: nothing is on screen yet.
	r := engine.NewRenderer(clk, nil)
	r.SetStyle(style)
	r.SetShowAnalog(showAnalog)
	r.Invalidator = engine.InvalidatorFunc(func() {
		fyne.Do(w.Refresh)
	})

	w.Renderer = r
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *ClockWidget) CreateRenderer() fyne.WidgetRenderer {
	return &clockRenderer{face: w}
}

// ShowAnalog reports whether the dial is displayed.
func (w *ClockWidget) ShowAnalog() bool {
	return w.Renderer.ShowAnalog()
}

// SetShowAnalog switches between the dial and the digital readout.
func (w *ClockWidget) SetShowAnalog(show bool) {
	w.Renderer.SetShowAnalog(show)
}

// Close stops the refresh loop permanently.
func (w *ClockWidget) Close() {
	w.Renderer.Close()
}

// clockRenderer repaints the face on every layout pass and refresh.
type clockRenderer struct {
	face *ClockWidget
	size fyne.Size
	fc   fyneCanvas
}

func (r *clockRenderer) Layout(size fyne.Size) {
	r.size = size
	r.paint()
}

func (r *clockRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minFaceSize, minFaceSize)
}

func (r *clockRenderer) Refresh() {
	r.paint()
	for _, o := range r.fc.objects {
		o.Refresh()
	}
	canvas.Refresh(r.face)
}

func (r *clockRenderer) Objects() []fyne.CanvasObject {
	return r.fc.objects
}

// Destroy cancels the pending refresh; Fyne may create a new renderer later,
// whose first paint restarts the loop.
func (r *clockRenderer) Destroy() {
	r.face.Renderer.Stop()
}

func (r *clockRenderer) paint() {
	r.fc.begin()
	r.face.Renderer.Render(&r.fc, float64(r.size.Width), float64(r.size.Height))
	r.fc.end()
}

// fyneCanvas turns engine draw calls into Fyne canvas objects. Objects from the
// previous frame are updated in place while the draw order keeps their types.
type fyneCanvas struct {
	objects []fyne.CanvasObject
	n       int
}

var _ engine.Canvas = (*fyneCanvas)(nil)

func (c *fyneCanvas) begin() {
	c.n = 0
}

// end drops the objects the frame did not draw.
func (c *fyneCanvas) end() {
	clear(c.objects[c.n:])
	c.objects = c.objects[:c.n]
}

// slot returns the previous frame's object at the draw position, or nil.
func (c *fyneCanvas) slot() fyne.CanvasObject {
	if c.n < len(c.objects) {
		return c.objects[c.n]
	}
	return nil
}

func (c *fyneCanvas) put(o fyne.CanvasObject) {
	if c.n < len(c.objects) {
		c.objects[c.n] = o
	} else {
		c.objects = append(c.objects, o)
	}
	c.n++
}

func (c *fyneCanvas) DrawLine(from, to engine.Point, paint engine.Paint) {
	l, ok := c.slot().(*canvas.Line)
	if !ok {
		l = &canvas.Line{}
	}
	l.StrokeColor = paint.Color
	l.StrokeWidth = float32(paint.StrokeWidth)
	l.Position1 = position(from)
	l.Position2 = position(to)
	c.put(l)
}

func (c *fyneCanvas) DrawCircle(center engine.Point, radius float64, paint engine.Paint) {
	circle, ok := c.slot().(*canvas.Circle)
	if !ok {
		circle = &canvas.Circle{}
	}
	if paint.Style == engine.PaintStroke {
		circle.FillColor = color.Transparent
		circle.StrokeColor = paint.Color
		circle.StrokeWidth = float32(paint.StrokeWidth)
	} else {
		circle.FillColor = paint.Color
		circle.StrokeColor = color.Transparent
		circle.StrokeWidth = 0
	}
	circle.Position1 = position(engine.Point{X: center.X - radius, Y: center.Y - radius})
	circle.Position2 = position(engine.Point{X: center.X + radius, Y: center.Y + radius})
	c.put(circle)
}

// DrawText converts the baseline origin to the top-left corner Fyne positions text by.
func (c *fyneCanvas) DrawText(text string, origin engine.Point, size float64, col color.NRGBA) {
	t, ok := c.slot().(*canvas.Text)
	if !ok {
		t = &canvas.Text{}
	}
	t.Text = text
	t.Color = col
	t.TextSize = float32(size)
	ascent := c.FontMetrics(size).Ascent
	t.Move(position(engine.Point{X: origin.X, Y: origin.Y - ascent}))
	t.Resize(t.MinSize())
	c.put(t)
}

func (c *fyneCanvas) MeasureText(text string, size float64) float64 {
	return float64(fyne.MeasureText(text, float32(size), fyne.TextStyle{}).Width)
}

func (c *fyneCanvas) FontMetrics(size float64) engine.FontMetrics {
	a := fyne.CurrentApp()
	if a == nil || a.Driver() == nil {
		// Without a driver only the line height is known; split it like a typical sans face.
		h := float64(fyne.MeasureText("0", float32(size), fyne.TextStyle{}).Height)
		return engine.FontMetrics{Ascent: h * 0.8, Descent: h * 0.2}
	}
	box, baseline := a.Driver().RenderedTextSize("0", float32(size), fyne.TextStyle{}, nil)
	return engine.FontMetrics{
		Ascent:  float64(baseline),
		Descent: float64(box.Height - baseline),
	}
}

func position(p engine.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}
