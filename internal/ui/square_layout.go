package ui

import (
	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-clock/internal/engine"
)

// squareLayout centers every object in the largest padded square that fits.
type squareLayout struct {
	padding float32
}

// NewSquareLayout returns a layout keeping its children square.
func NewSquareLayout(padding float32) fyne.Layout {
	return squareLayout{padding: padding}
}

func (l squareLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pad := float64(2 * l.padding)
	w, _ := engine.MeasureSquare(float64(size.Width), float64(size.Height), pad, pad)
	side := float32(w - pad)

	pos := fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)
	for _, o := range objects {
		o.Resize(fyne.NewSize(side, side))
		o.Move(pos)
	}
}

func (l squareLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var side float32
	for _, o := range objects {
		ms := o.MinSize()
		side = max(side, ms.Width, ms.Height)
	}
	return fyne.NewSize(side+2*l.padding, side+2*l.padding)
}
