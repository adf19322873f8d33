package raster

import (
	"image/color"

	"github.com/tartampluch/go-clock/internal/engine"
)

// Snapshot renders a single size x size frame for ts without starting a refresh loop.
// The caller closes the returned canvas.
func Snapshot(size int, background color.Color, style engine.Style, mode engine.DisplayMode, ts engine.TimeSample) (*Canvas, error) {
	c, err := NewCanvas(size, size, background)
	if err != nil {
		return nil, err
	}
	engine.DrawFrame(c, engine.NewViewport(c.Bounds()), style, mode, ts)
	if err := c.Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}
