// Package raster implements engine.Canvas on an in-memory RGBA image,
// so a clock face can be rendered without a display.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// arcSegments is the number of straight segments used per half turn.
const arcSegments = 24

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// regularFont parses the bundled Go Regular face once per process.
func regularFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
		if regularErr != nil {
			regularErr = fmt.Errorf("%s: %w", config.ErrFontParse, regularErr)
		}
	})
	return regular, regularErr
}

// Canvas draws onto an *image.RGBA. It is not safe for concurrent use.
type Canvas struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
	err   error
}

var _ engine.Canvas = (*Canvas)(nil)

// NewCanvas allocates a width x height image filled with background.
func NewCanvas(width, height int, background color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%s: %dx%d", config.ErrSizeInvalid, width, height)
	}
	f, err := regularFont()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	return &Canvas{
		img:   img,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Err returns the first font error met while drawing text, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Close releases the font faces cached while drawing text. It may be called
// more than once; text drawn afterwards builds new faces.
func (c *Canvas) Close() error {
	var errs error
	for size, f := range c.faces {
		errs = errors.Join(errs, f.Close())
		delete(c.faces, size)
	}
	return errs
}

// Bounds returns the image size as floats, the form the renderer expects.
func (c *Canvas) Bounds() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// DrawLine strokes a segment; round caps are part of the same outline so
// translucent lines are composited once.
func (c *Canvas) DrawLine(from, to engine.Point, paint engine.Paint) {
	hw := paint.StrokeWidth / 2
	if hw <= 0 {
		hw = 0.5
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)

	// Direction of travel; a zero-length segment still gets a round dot.
	angle := 0.0
	if length > 0 {
		angle = math.Atan2(dy, dx)
	}
	nx, ny := -math.Sin(angle)*hw, math.Cos(angle)*hw

	z := c.rasterizer()
	z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	if paint.Cap == engine.CapRound {
		arc(z, from, hw, angle+math.Pi/2, angle+3*math.Pi/2)
	} else {
		z.LineTo(float32(from.X-nx), float32(from.Y-ny))
	}
	z.LineTo(float32(to.X-nx), float32(to.Y-ny))
	if paint.Cap == engine.CapRound {
		arc(z, to, hw, angle-math.Pi/2, angle+math.Pi/2)
	} else {
		z.LineTo(float32(to.X+nx), float32(to.Y+ny))
	}
	z.ClosePath()
	c.fill(z, paint.Color)
}

// DrawCircle fills the disc or strokes a ring centered on the circle's outline.
func (c *Canvas) DrawCircle(center engine.Point, radius float64, paint engine.Paint) {
	if radius <= 0 {
		return
	}
	z := c.rasterizer()
	switch paint.Style {
	case engine.PaintStroke:
		hw := paint.StrokeWidth / 2
		circle(z, center, radius+hw, false)
		if inner := radius - hw; inner > 0 {
			circle(z, center, inner, true)
		}
	default:
		circle(z, center, radius, false)
	}
	c.fill(z, paint.Color)
}

// DrawText draws text with its baseline-left corner at origin.
func (c *Canvas) DrawText(text string, origin engine.Point, size float64, col color.NRGBA) {
	face, ok := c.face(size)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(origin.X), Y: toFixed(origin.Y)},
	}
	d.DrawString(text)
}

// MeasureText returns the advance width of text.
func (c *Canvas) MeasureText(text string, size float64) float64 {
	face, ok := c.face(size)
	if !ok {
		return 0
	}
	return fromFixed(font.MeasureString(face, text))
}

// FontMetrics returns ascent and descent at size.
func (c *Canvas) FontMetrics(size float64) engine.FontMetrics {
	face, ok := c.face(size)
	if !ok {
		return engine.FontMetrics{}
	}
	m := face.Metrics()
	return engine.FontMetrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
	}
}

// EncodePNG writes the image as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("%s: %w", config.ErrPNGEncode, err)
	}
	return nil
}

// PNG returns the encoded image.
func (c *Canvas) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Canvas) face(size float64) (font.Face, bool) {
	if size <= 0 {
		size = config.DefaultFontSize
	}
	if f, ok := c.faces[size]; ok {
		return f, true
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		if c.err == nil {
			c.err = fmt.Errorf("%s: %w", config.ErrFontFace, err)
		}
		return nil, false
	}
	c.faces[size] = f
	return f, true
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (c *Canvas) fill(z *vector.Rasterizer, col color.NRGBA) {
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// arc continues the current path along a circle from angle a0 to a1.
func arc(z *vector.Rasterizer, center engine.Point, r, a0, a1 float64) {
	for i := 0; i <= arcSegments; i++ {
		a := a0 + (a1-a0)*float64(i)/arcSegments
		z.LineTo(float32(center.X+r*math.Cos(a)), float32(center.Y+r*math.Sin(a)))
	}
}

// circle adds a closed circular subpath. reverse flips the winding so that a
// smaller reversed circle punches a hole in a larger one.
func circle(z *vector.Rasterizer, center engine.Point, r float64, reverse bool) {
	n := 2 * arcSegments
	point := func(i int) (float32, float32) {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		return float32(center.X + r*math.Cos(a)), float32(center.Y + r*math.Sin(a))
	}
	z.MoveTo(point(0))
	for i := 1; i < n; i++ {
		z.LineTo(point(i))
	}
	z.ClosePath()
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func fromFixed(i fixed.Int26_6) float64 {
	return float64(i) / 64
}
