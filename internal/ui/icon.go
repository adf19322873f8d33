package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/jonboulle/clockwork"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/raster"
)

// iconSize is the edge of the generated application icon.
const iconSize = 256

// renderIcon draws the dial at the current time as the window icon.
func renderIcon(style engine.Style, clk clockwork.Clock) (fyne.Resource, error) {
	ts := engine.NewTimeSampler(clk).Sample()
	c, err := raster.Snapshot(iconSize, color.Transparent, style, engine.ModeAnalog, ts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrIconRender, err)
	}
	defer func() { _ = c.Close() }()

	data, err := c.PNG()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrIconRender, err)
	}
	return fyne.NewStaticResource(config.IconFile, data), nil
}
