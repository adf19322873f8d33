package raster_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/raster"
	"golang.org/x/image/colornames"
)

var (
	black = color.NRGBA{A: 0xFF}
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestNewCanvas(t *testing.T) {
	c, err := raster.NewCanvas(64, 32, colornames.Navy)
	require.NoError(t, err)

	w, h := c.Bounds()
	assert.Equal(t, 64.0, w)
	assert.Equal(t, 32.0, h)
	assert.Equal(t, colornames.Navy, c.Image().RGBAAt(10, 10))

	_, err = raster.NewCanvas(0, 10, black)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSizeInvalid)
}

func TestCanvas_DrawLine(t *testing.T) {
	c, err := raster.NewCanvas(100, 100, black)
	require.NoError(t, err)

	c.DrawLine(engine.Point{X: 10, Y: 50}, engine.Point{X: 90, Y: 50}, engine.Paint{
		Color:       white,
		Style:       engine.PaintStroke,
		StrokeWidth: 6,
		Cap:         engine.CapRound,
	})

	assert.Equal(t, rgba(white), c.Image().RGBAAt(50, 50), "On the segment")
	assert.Equal(t, rgba(white), c.Image().RGBAAt(8, 50), "Inside the round cap")
	assert.Equal(t, rgba(black), c.Image().RGBAAt(50, 40), "Away from the stroke")
}

func TestCanvas_DrawCircle(t *testing.T) {
	t.Run("Fill", func(t *testing.T) {
		c, err := raster.NewCanvas(100, 100, black)
		require.NoError(t, err)

		c.DrawCircle(engine.Point{X: 50, Y: 50}, 20, engine.Paint{Color: white, Style: engine.PaintFill})
		assert.Equal(t, rgba(white), c.Image().RGBAAt(50, 50))
		assert.Equal(t, rgba(black), c.Image().RGBAAt(50, 80))
	})

	t.Run("StrokeLeavesHole", func(t *testing.T) {
		c, err := raster.NewCanvas(100, 100, black)
		require.NoError(t, err)

		c.DrawCircle(engine.Point{X: 50, Y: 50}, 30, engine.Paint{Color: white, Style: engine.PaintStroke, StrokeWidth: 6})
		assert.Equal(t, rgba(black), c.Image().RGBAAt(50, 50), "Center stays clear")
		assert.Equal(t, rgba(white), c.Image().RGBAAt(80, 50), "Ring pixel")
	})
}

func TestCanvas_Text(t *testing.T) {
	c, err := raster.NewCanvas(200, 100, black)
	require.NoError(t, err)

	m := c.FontMetrics(40)
	assert.Greater(t, m.Ascent, 0.0)
	assert.Greater(t, m.Descent, 0.0)
	assert.Greater(t, m.Ascent, m.Descent)

	narrow := c.MeasureText("1", 40)
	wide := c.MeasureText("11:11", 40)
	assert.Greater(t, narrow, 0.0)
	assert.Greater(t, wide, narrow)

	c.DrawText("88", engine.Point{X: 10, Y: 70}, 40, white)
	require.NoError(t, c.Err())

	lit := 0
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.Image().RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0, "Glyphs were rasterized")
}

func TestSnapshot_PNG(t *testing.T) {
	ts := engine.TimeSample{Hour12: 10, Minute: 10, Second: 30}

	for _, mode := range []engine.DisplayMode{engine.ModeAnalog, engine.ModeDigital} {
		t.Run(mode.String(), func(t *testing.T) {
			c, err := raster.Snapshot(128, black, engine.DefaultStyle(), mode, ts)
			require.NoError(t, err)

			data, err := c.PNG()
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 128, img.Bounds().Dx())
			assert.Equal(t, 128, img.Bounds().Dy())

			var buf bytes.Buffer
			require.NoError(t, c.EncodePNG(&buf))
			assert.Equal(t, data, buf.Bytes())
		})
	}

	t.Run("HubPainted", func(t *testing.T) {
		c, err := raster.Snapshot(200, black, engine.DefaultStyle(), engine.ModeAnalog, ts)
		require.NoError(t, err)
		assert.NotEqual(t, rgba(black), c.Image().RGBAAt(100, 100))
	})

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := raster.Snapshot(-1, black, engine.DefaultStyle(), engine.ModeAnalog, ts)
		assert.Error(t, err)
	})
}
