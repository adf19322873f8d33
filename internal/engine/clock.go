package engine

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tartampluch/go-clock/internal/config"
)

// TimeSample is an immutable snapshot of the wall clock taken at the start of a draw.
type TimeSample struct {
	Hour12 int // 0-11, as on a 12-hour dial
	Minute int
	Second int
	PM     bool
}

// TimeSampler reads the wall clock through an injected clockwork.Clock.
// The same clock drives the refresh loop, so tests can freeze and advance both.
type TimeSampler struct {
	Clock clockwork.Clock
}

// NewTimeSampler wraps c. A nil clock falls back to the real wall clock.
func NewTimeSampler(c clockwork.Clock) TimeSampler {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return TimeSampler{Clock: c}
}

// Sample returns the current local time decomposed for the dial.
// There is no sensible fallback time, so a missing clock is fatal.
func (s TimeSampler) Sample() TimeSample {
	if s.Clock == nil {
		panic(config.ErrClockMissing)
	}
	return SampleAt(s.Clock.Now())
}

// SampleAt decomposes t without reading any clock.
func SampleAt(t time.Time) TimeSample {
	hour, minute, second := t.Clock()
	return TimeSample{
		Hour12: hour % config.HoursOnDial,
		Minute: minute,
		Second: second,
		PM:     hour >= config.HoursOnDial,
	}
}

// Suffix returns the AM/PM marker.
func (ts TimeSample) Suffix() string {
	if ts.PM {
		return config.SuffixPM
	}
	return config.SuffixAM
}
