package engine

import (
	"github.com/tartampluch/go-clock/internal/config"
)

// DrawFrame paints one complete face, back to front:
// ticks, numerals (or the digital readout), hands, hub.
// An empty viewport draws nothing.
func DrawFrame(c Canvas, v Viewport, style Style, mode DisplayMode, ts TimeSample) {
	if v.Empty() {
		return
	}

	if mode == ModeDigital {
		drawDigital(c, v, style, ts)
		return
	}

	drawDegrees(c, v, style)
	drawHoursValues(c, v, style)
	drawNeedles(c, v, style, AnglesFor(ts))
	drawCenter(c, v, style)
}

func drawDegrees(c Canvas, v Viewport, style Style) {
	paint := Paint{
		Color:       style.Degrees,
		Style:       PaintStroke,
		StrokeWidth: v.Size() * config.TickStrokeRate,
		Cap:         CapRound,
	}
	for _, t := range TickRing(v) {
		c.DrawLine(t.Outer, t.Inner, paint.WithAlpha(t.Alpha))
	}
}

func drawHoursValues(c Canvas, v Viewport, style Style) {
	size := v.Size() * config.NumeralFontRate
	metrics := c.FontMetrics(size)
	for _, n := range HourNumerals(v) {
		w := c.MeasureText(n.Label, size)
		origin := Point{X: n.At.X - w/2, Y: CenteredBaseline(n.At.Y, metrics)}
		c.DrawText(n.Label, origin, size, style.HoursValues)
	}
}

func drawNeedles(c Canvas, v Viewport, style Style, a HandAngles) {
	colors := map[HandKind]Paint{
		HandHour:   {Color: style.HoursNeedle, Style: PaintStroke},
		HandMinute: {Color: style.MinutesNeedle, Style: PaintStroke},
		HandSecond: {Color: style.SecondsNeedle, Style: PaintStroke},
	}
	center := v.Center()
	for _, h := range Hands(v, a) {
		p := colors[h.Kind]
		p.StrokeWidth = h.Stroke
		c.DrawLine(center, h.Tip, p)
	}
}

func drawCenter(c Canvas, v Viewport, style Style) {
	r := v.Size() * config.HubRadius
	c.DrawCircle(v.Center(), r, Paint{
		Color:       style.CenterOuter,
		Style:       PaintStroke,
		StrokeWidth: v.Size() * config.HubStroke,
	})
	c.DrawCircle(v.Center(), r, Paint{
		Color: style.CenterInner,
		Style: PaintFill,
	})
}

func drawDigital(c Canvas, v Viewport, style Style, ts TimeSample) {
	for _, run := range DigitalLayout(c, v, ts) {
		c.DrawText(run.Text, run.Origin, run.Size, style.Numbers)
	}
}
