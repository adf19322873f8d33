package engine

import (
	"fmt"
	"image/color"

	"github.com/tartampluch/go-clock/internal/config"
)

// DisplayMode selects the dial or the digital readout.
type DisplayMode int

const (
	ModeAnalog DisplayMode = iota
	ModeDigital
)

// String returns a human-readable representation of the mode.
func (m DisplayMode) String() string {
	switch m {
	case ModeAnalog:
		return "analog"
	case ModeDigital:
		return "digital"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ModeFor maps the showAnalog flag onto a DisplayMode.
func ModeFor(showAnalog bool) DisplayMode {
	if showAnalog {
		return ModeAnalog
	}
	return ModeDigital
}

// Style holds the colors of every face element.
type Style struct {
	CenterInner   color.NRGBA
	CenterOuter   color.NRGBA
	SecondsNeedle color.NRGBA
	MinutesNeedle color.NRGBA
	HoursNeedle   color.NRGBA
	Degrees       color.NRGBA
	HoursValues   color.NRGBA
	Numbers       color.NRGBA
}

var (
	white     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	lightGray = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
)

// DefaultStyle is white on the primary elements and light gray on the secondary ones.
func DefaultStyle() Style {
	return Style{
		CenterInner:   lightGray,
		CenterOuter:   white,
		SecondsNeedle: lightGray,
		MinutesNeedle: white,
		HoursNeedle:   white,
		Degrees:       white,
		HoursValues:   white,
		Numbers:       white,
	}
}

// StyleFromFile overlays the colors set in f on DefaultStyle.
func StyleFromFile(f config.File) (Style, error) {
	s := DefaultStyle()
	fields := []struct {
		raw string
		dst *color.NRGBA
	}{
		{f.CenterInnerColor, &s.CenterInner},
		{f.CenterOuterColor, &s.CenterOuter},
		{f.SecondsNeedleColor, &s.SecondsNeedle},
		{f.MinutesNeedleColor, &s.MinutesNeedle},
		{f.HoursNeedleColor, &s.HoursNeedle},
		{f.DegreesColor, &s.Degrees},
		{f.HoursValuesColor, &s.HoursValues},
		{f.NumbersColor, &s.Numbers},
	}
	for _, fld := range fields {
		if fld.raw == "" {
			continue
		}
		c, err := config.ParseColor(fld.raw)
		if err != nil {
			return DefaultStyle(), err
		}
		*fld.dst = c
	}
	return s, nil
}
