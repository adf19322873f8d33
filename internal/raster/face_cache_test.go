package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/engine"
)

func TestCanvas_CloseReleasesFaces(t *testing.T) {
	c, err := NewCanvas(120, 60, color.Black)
	require.NoError(t, err)

	white := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	c.DrawText("12", engine.Point{X: 4, Y: 40}, 32, white)
	c.DrawText("AM", engine.Point{X: 60, Y: 40}, 16, white)
	c.DrawText("3", engine.Point{X: 90, Y: 40}, 32, white)
	require.NoError(t, c.Err())
	assert.Len(t, c.faces, 2, "One face per text size")

	require.NoError(t, c.Close())
	assert.Empty(t, c.faces)
	assert.NoError(t, c.Close(), "Closing twice is harmless")

	// Drawing after Close builds a fresh face.
	c.DrawText("9", engine.Point{X: 4, Y: 40}, 20, white)
	require.NoError(t, c.Err())
	assert.Len(t, c.faces, 1)
	require.NoError(t, c.Close())
}

func TestSnapshot_CallerCloses(t *testing.T) {
	ts := engine.TimeSample{Hour12: 10, Minute: 10, Second: 30}
	c, err := Snapshot(96, color.Black, engine.DefaultStyle(), engine.ModeDigital, ts)
	require.NoError(t, err)
	assert.NotEmpty(t, c.faces, "Digital readout draws text")

	require.NoError(t, c.Close())
	assert.Empty(t, c.faces)
}
