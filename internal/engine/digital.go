package engine

import (
	"fmt"

	"github.com/tartampluch/go-clock/internal/config"
)

// FormatDigital renders HH:MM:SS followed by the AM/PM suffix, e.g. "01:05:09AM".
// The hour comes from the 12-hour dial, so noon reads "00:00:00PM".
func FormatDigital(ts TimeSample) string {
	return digitalMain(ts) + ts.Suffix()
}

func digitalMain(ts TimeSample) string {
	return fmt.Sprintf(config.FormatDigital,
		wrap(ts.Hour12, config.HoursOnDial),
		wrap(ts.Minute, 60),
		wrap(ts.Second, 60))
}

// TextRun is a piece of text drawn from a baseline-left origin.
type TextRun struct {
	Text   string
	Size   float64
	Origin Point
}

// DigitalLayout positions the readout: the numeric run followed by a smaller suffix
// sharing its baseline, centered as a whole in the square.
func DigitalLayout(c Canvas, v Viewport, ts TimeSample) []TextRun {
	mainText := digitalMain(ts)
	suffix := ts.Suffix()

	mainSize := v.Size() * config.DigitalFontRate
	suffixSize := mainSize * config.DigitalSuffixRel

	mainWidth := c.MeasureText(mainText, mainSize)
	suffixWidth := c.MeasureText(suffix, suffixSize)

	left := v.CenterX - (mainWidth+suffixWidth)/2
	baseline := CenteredBaseline(v.CenterY, c.FontMetrics(mainSize))

	return []TextRun{
		{Text: mainText, Size: mainSize, Origin: Point{X: left, Y: baseline}},
		{Text: suffix, Size: suffixSize, Origin: Point{X: left + mainWidth, Y: baseline}},
	}
}
