package engine

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-clock/internal/config"
)

// Point is a position on the canvas in pixels, origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Viewport is the square the face is inscribed in.
// It is derived on every draw and never cached.
type Viewport struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
	Radius  float64
}

// NewViewport derives the square viewport from the smaller surface dimension.
// Negative, NaN or infinite sizes collapse to an empty viewport.
func NewViewport(width, height float64) Viewport {
	size := math.Min(sanitize(width), sanitize(height))
	half := size / 2
	return Viewport{
		Width:   size,
		Height:  size,
		CenterX: half,
		CenterY: half,
		Radius:  half,
	}
}

// Size returns the edge length of the square.
func (v Viewport) Size() float64 {
	return v.Width
}

// Empty reports whether nothing can be drawn.
func (v Viewport) Empty() bool {
	return !(v.Radius > 0)
}

// Center returns the rotation center of the hands.
func (v Viewport) Center() Point {
	return Point{X: v.CenterX, Y: v.CenterY}
}

// PolarPoint returns the point at distance r from the center, at angle deg
// measured clockwise from 12 o'clock.
func (v Viewport) PolarPoint(deg, r float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: v.CenterX + r*math.Sin(rad),
		Y: v.CenterY - r*math.Cos(rad),
	}
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// MeasureSquare returns the largest square that fits the available box,
// with the padding added back on each axis.
func MeasureSquare(availWidth, availHeight, padX, padY float64) (float64, float64) {
	size := math.Min(availWidth-padX, availHeight-padY)
	if !(size > 0) {
		size = 0
	}
	return size + padX, size + padY
}

// -----------------------------------------------------------------------------
// Hands
// -----------------------------------------------------------------------------

// HandAngles holds the hand rotations in degrees, clockwise from 12 o'clock.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AnglesFor computes the hand rotations. The hour hand creeps with the minutes
// and the minute hand with the seconds; the second hand jumps once per second.
func AnglesFor(ts TimeSample) HandAngles {
	h := wrap(ts.Hour12, config.HoursOnDial)
	m := wrap(ts.Minute, 60)
	s := wrap(ts.Second, 60)
	return HandAngles{
		Hour:   float64(h*config.DegreesPerHour) + float64(m)/2,
		Minute: float64(m*config.DegreesPerMinute) + float64(s)/10,
		Second: float64(s * config.DegreesPerSecond),
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// HandKind identifies one of the three hands.
type HandKind int

const (
	HandHour HandKind = iota
	HandMinute
	HandSecond
)

// String returns a human-readable name of the hand.
func (k HandKind) String() string {
	switch k {
	case HandHour:
		return "hour"
	case HandMinute:
		return "minute"
	case HandSecond:
		return "second"
	default:
		return fmt.Sprintf("HandKind(%d)", int(k))
	}
}

// Hand is a segment from the center to Tip.
type Hand struct {
	Kind   HandKind
	Angle  float64
	Tip    Point
	Stroke float64
}

// Hands lays out the hour, minute and second hands in drawing order.
func Hands(v Viewport, a HandAngles) []Hand {
	size := v.Size()
	hand := func(kind HandKind, angle, inset, stroke float64) Hand {
		length := math.Max(v.Radius-inset*size, 0)
		return Hand{
			Kind:   kind,
			Angle:  angle,
			Tip:    v.PolarPoint(angle, length),
			Stroke: stroke * size,
		}
	}
	return []Hand{
		hand(HandHour, a.Hour, config.HourHandInset, config.HourHandStroke),
		hand(HandMinute, a.Minute, config.MinuteHandInset, config.MinuteHandStroke),
		hand(HandSecond, a.Second, config.SecondHandInset, config.SecondHandStroke),
	}
}

// -----------------------------------------------------------------------------
// Tick ring
// -----------------------------------------------------------------------------

// Tick is one graduation on the rim.
type Tick struct {
	Degree int
	Outer  Point
	Inner  Point
	Alpha  uint8
}

// TickFullOpacity applies the quadrant/hour-mark rule. With 6° steps it holds
// for the twelve multiples of 30°.
func TickFullOpacity(deg int) bool {
	return deg%config.RightAngle == 0 || deg%config.HourMarkAngle == 0
}

// TickRing returns the 60 rim ticks starting at 12 o'clock.
func TickRing(v Viewport) []Tick {
	size := v.Size()
	outer := v.Radius - size*config.TickOuterInset
	inner := v.Radius - size*config.TickInnerInset

	ticks := make([]Tick, 0, config.FullAngle/config.TickStep)
	for deg := 0; deg < config.FullAngle; deg += config.TickStep {
		alpha := config.AlphaCustom
		if TickFullOpacity(deg) {
			alpha = config.AlphaFull
		}
		ticks = append(ticks, Tick{
			Degree: deg,
			Outer:  v.PolarPoint(float64(deg), outer),
			Inner:  v.PolarPoint(float64(deg), inner),
			Alpha:  alpha,
		})
	}
	return ticks
}

// -----------------------------------------------------------------------------
// Hour numerals
// -----------------------------------------------------------------------------

// Numeral is an hour label centered on At.
type Numeral struct {
	Hour  int
	Label string
	At    Point
}

// NumeralLabel returns "12" for the top position and a zero-padded hour otherwise.
func NumeralLabel(i int) string {
	if i == 0 {
		return config.LabelTwelve
	}
	return fmt.Sprintf(config.FormatTwoDigits, i)
}

// HourNumerals places the twelve labels at 30° steps inside the tick ring.
func HourNumerals(v Viewport) []Numeral {
	r := v.Radius - v.Size()*config.NumeralInset
	out := make([]Numeral, 0, config.HoursOnDial)
	for i := 0; i < config.HoursOnDial; i++ {
		out = append(out, Numeral{
			Hour:  i,
			Label: NumeralLabel(i),
			At:    v.PolarPoint(float64(i*config.DegreesPerHour), r),
		})
	}
	return out
}

// CenteredBaseline returns the baseline that centers a glyph box vertically on y.
func CenteredBaseline(y float64, m FontMetrics) float64 {
	return y + (m.Ascent-m.Descent)/2
}
