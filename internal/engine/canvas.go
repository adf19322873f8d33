package engine

import (
	"fmt"
	"image/color"
)

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintFill fills the shape interior.
	PaintFill PaintStyle = iota

	// PaintStroke draws only the outline.
	PaintStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintFill:
		return "fill"
	case PaintStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt  StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                  // Semicircle at endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// Paint carries color and stroke settings for a single primitive.
type Paint struct {
	Color       color.NRGBA
	Style       PaintStyle
	StrokeWidth float64
	Cap         StrokeCap
}

// WithAlpha returns a copy of p whose color uses alpha a.
func (p Paint) WithAlpha(a uint8) Paint {
	p.Color.A = a
	return p
}

// FontMetrics are the vertical font extents at a given size.
// Both values are positive distances from the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
}

// Canvas is the drawing surface the renderer paints on.
// Text origins are baseline-left.
type Canvas interface {
	DrawLine(from, to Point, paint Paint)
	DrawCircle(center Point, radius float64, paint Paint)
	DrawText(text string, origin Point, size float64, c color.NRGBA)
	MeasureText(text string, size float64) float64
	FontMetrics(size float64) FontMetrics
}

// Invalidator asks the host to draw again as soon as possible.
// Hosts that render on a dedicated thread hop back to it here.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a plain function to Invalidator.
type InvalidatorFunc func()

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() {
	f()
}
