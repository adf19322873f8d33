package engine_test

import (
	"image/color"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tartampluch/go-clock/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockInvalidator records redraw requests using `testify/mock`.
type MockInvalidator struct {
	mock.Mock
}

// Invalidate implements the engine.Invalidator interface.
func (m *MockInvalidator) Invalidate() {
	m.Called()
}

// drawCall is one primitive received by recordingCanvas.
type drawCall struct {
	Op    string
	From  engine.Point
	To    engine.Point
	Paint engine.Paint
	Text  string
	Size  float64
	Color color.NRGBA
}

// recordingCanvas captures draw calls. Text is measured at 0.5em per rune,
// with an ascent of 0.8em and a descent of 0.2em.
type recordingCanvas struct {
	mu    sync.Mutex
	calls []drawCall
}

func (c *recordingCanvas) DrawLine(from, to engine.Point, paint engine.Paint) {
	c.record(drawCall{Op: "line", From: from, To: to, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center engine.Point, radius float64, paint engine.Paint) {
	c.record(drawCall{Op: "circle", From: center, Size: radius, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, origin engine.Point, size float64, col color.NRGBA) {
	c.record(drawCall{Op: "text", From: origin, Text: text, Size: size, Color: col})
}

func (c *recordingCanvas) MeasureText(text string, size float64) float64 {
	return float64(len([]rune(text))) * size / 2
}

func (c *recordingCanvas) FontMetrics(size float64) engine.FontMetrics {
	return engine.FontMetrics{Ascent: size * 0.8, Descent: size * 0.2}
}

func (c *recordingCanvas) record(call drawCall) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *recordingCanvas) Calls() []drawCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]drawCall(nil), c.calls...)
}

func (c *recordingCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, call := range c.Calls() {
		if call.Op == op {
			out = append(out, call)
		}
	}
	return out
}
