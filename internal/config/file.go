package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// File mirrors the optional YAML style file.
// Empty color strings keep the built-in default for that element.
type File struct {
	CenterInnerColor   string `yaml:"centerInnerColor"`
	CenterOuterColor   string `yaml:"centerOuterColor"`
	SecondsNeedleColor string `yaml:"secondsNeedleColor"`
	HoursNeedleColor   string `yaml:"hoursNeedleColor"`
	MinutesNeedleColor string `yaml:"minutesNeedleColor"`
	DegreesColor       string `yaml:"degreesColor"`
	HoursValuesColor   string `yaml:"hoursValuesColor"`
	NumbersColor       string `yaml:"numbersColor"`
	BackgroundColor    string `yaml:"backgroundColor"`

	// ShowAnalog is a pointer so that an explicit "false" can be told apart from "unset".
	ShowAnalog *bool `yaml:"showAnalog"`

	Language     string `yaml:"language"`
	WindowSize   int    `yaml:"windowSize"`
	SnapshotSize int    `yaml:"snapshotSize"`
	ServerPort   string `yaml:"serverPort"`
}

// DefaultFile returns the settings used when no style file is present.
func DefaultFile() File {
	show := DefaultShowAnalog
	return File{
		BackgroundColor: ColorBlack,
		ShowAnalog:      &show,
		Language:        DefaultLanguage,
		WindowSize:      DefaultWindowSize,
		SnapshotSize:    DefaultSnapshotSize,
		ServerPort:      DefaultPort,
	}
}

// LoadFile reads the style file at path on top of DefaultFile.
// An empty path or a missing file yields the defaults.
func LoadFile(path string) (File, error) {
	f := DefaultFile()
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug(MsgConfigMissing,
			LogKeyComponent, CompConfig,
			LogKeyPath, path)
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("%s: %w", ErrConfigRead, err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return DefaultFile(), fmt.Errorf("%s: %w", ErrConfigParse, err)
	}
	if err := f.Validate(); err != nil {
		return DefaultFile(), err
	}

	slog.Debug(MsgConfigLoaded,
		LogKeyComponent, CompConfig,
		LogKeyPath, path)
	return f, nil
}

// Validate checks sizes, port and every color field.
func (f File) Validate() error {
	if f.WindowSize <= 0 || f.SnapshotSize <= 0 {
		return errors.New(ErrSizeInvalid)
	}
	if err := ValidatePort(f.ServerPort); err != nil {
		return err
	}
	for _, c := range []string{
		f.CenterInnerColor, f.CenterOuterColor,
		f.SecondsNeedleColor, f.HoursNeedleColor, f.MinutesNeedleColor,
		f.DegreesColor, f.HoursValuesColor, f.NumbersColor, f.BackgroundColor,
	} {
		if c == "" {
			continue
		}
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Analog reports the configured display mode, defaulting to the dial.
func (f File) Analog() bool {
	if f.ShowAnalog == nil {
		return DefaultShowAnalog
	}
	return *f.ShowAnalog
}

// ValidatePort enforces a numeric port within 1-65535.
func ValidatePort(s string) error {
	if s == "" {
		return errors.New(ErrPortRequired)
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if port < MinPort || port > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or an SVG color name (case-insensitive).
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	if !strings.HasPrefix(v, "#") {
		return color.NRGBA{}, fmt.Errorf("%s: %q", ErrColorParse, s)
	}
	raw, err := hex.DecodeString(v[1:])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%s: %q", ErrColorParse, s)
	}

	switch len(raw) {
	case 3:
		return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: AlphaFull}, nil
	case 4:
		return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%s: %q", ErrColorParse, s)
	}
}
