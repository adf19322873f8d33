package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

const epsilon = 1e-9

func TestSampleAt(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want engine.TimeSample
	}{
		{"Midnight", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), engine.TimeSample{Hour12: 0, PM: false}},
		{"Morning", time.Date(2025, 1, 1, 1, 5, 9, 0, time.UTC), engine.TimeSample{Hour12: 1, Minute: 5, Second: 9}},
		{"Noon", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), engine.TimeSample{Hour12: 0, PM: true}},
		{"Evening", time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC), engine.TimeSample{Hour12: 11, Minute: 59, Second: 59, PM: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.SampleAt(tt.at))
		})
	}
}

func TestTimeSampler_NilClockPanics(t *testing.T) {
	s := engine.TimeSampler{}
	assert.PanicsWithValue(t, config.ErrClockMissing, func() { s.Sample() })

	// The constructor substitutes the wall clock.
	assert.NotPanics(t, func() { engine.NewTimeSampler(nil).Sample() })
}

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantSize      float64
		wantEmpty     bool
	}{
		{"Square", 400, 400, 400, false},
		{"Landscape", 800, 300, 300, false},
		{"Portrait", 300, 800, 300, false},
		{"Zero", 0, 500, 0, true},
		{"Negative", -10, 500, 0, true},
		{"NaN", math.NaN(), 500, 0, true},
		{"Inf", math.Inf(1), 200, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := engine.NewViewport(tt.width, tt.height)
			assert.Equal(t, tt.wantSize, v.Size())
			assert.Equal(t, tt.wantSize, v.Height)
			assert.Equal(t, tt.wantSize/2, v.Radius)
			assert.Equal(t, engine.Point{X: tt.wantSize / 2, Y: tt.wantSize / 2}, v.Center())
			assert.Equal(t, tt.wantEmpty, v.Empty())
		})
	}
}

func TestViewport_PolarPoint(t *testing.T) {
	v := engine.NewViewport(200, 200)

	tests := []struct {
		deg  float64
		want engine.Point
	}{
		{0, engine.Point{X: 100, Y: 0}},
		{90, engine.Point{X: 200, Y: 100}},
		{180, engine.Point{X: 100, Y: 200}},
		{270, engine.Point{X: 0, Y: 100}},
	}

	for _, tt := range tests {
		got := v.PolarPoint(tt.deg, 100)
		assert.InDelta(t, tt.want.X, got.X, epsilon, "x at %v°", tt.deg)
		assert.InDelta(t, tt.want.Y, got.Y, epsilon, "y at %v°", tt.deg)
	}
}

func TestMeasureSquare(t *testing.T) {
	t.Run("UsesSmallerAxis", func(t *testing.T) {
		w, h := engine.MeasureSquare(500, 300, 10, 10)
		assert.Equal(t, 300.0, w)
		assert.Equal(t, 300.0, h)
	})

	t.Run("AsymmetricPadding", func(t *testing.T) {
		w, h := engine.MeasureSquare(400, 400, 20, 0)
		assert.Equal(t, 400.0, w)
		assert.Equal(t, 380.0, h)
	})

	t.Run("Idempotent", func(t *testing.T) {
		w1, h1 := engine.MeasureSquare(731, 419, 8, 12)
		w2, h2 := engine.MeasureSquare(w1, h1, 8, 12)
		assert.Equal(t, w1, w2)
		assert.Equal(t, h1, h2)
	})

	t.Run("PaddingLargerThanBox", func(t *testing.T) {
		w, h := engine.MeasureSquare(5, 5, 10, 10)
		assert.Equal(t, 10.0, w)
		assert.Equal(t, 10.0, h)
	})
}

func TestAnglesFor(t *testing.T) {
	tests := []struct {
		name string
		ts   engine.TimeSample
		want engine.HandAngles
	}{
		{"Twelve", engine.TimeSample{}, engine.HandAngles{}},
		{"Three", engine.TimeSample{Hour12: 3}, engine.HandAngles{Hour: 90}},
		{"HalfPastSix", engine.TimeSample{Hour12: 6, Minute: 30}, engine.HandAngles{Hour: 195, Minute: 180}},
		{"SecondsCreep", engine.TimeSample{Minute: 15, Second: 30}, engine.HandAngles{Hour: 7.5, Minute: 93, Second: 180}},
		{"OutOfRangeWraps", engine.TimeSample{Hour12: 13, Minute: 60, Second: -1}, engine.HandAngles{Hour: 30, Minute: 5.9, Second: 354}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.AnglesFor(tt.ts)
			assert.InDelta(t, tt.want.Hour, got.Hour, epsilon)
			assert.InDelta(t, tt.want.Minute, got.Minute, epsilon)
			assert.InDelta(t, tt.want.Second, got.Second, epsilon)
		})
	}
}

// TestAnglesFor_FullTurn walks twelve hours second by second: every angle stays
// in [0, 360) and the hour and minute hands never move backwards within a turn.
func TestAnglesFor_FullTurn(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := engine.AnglesFor(engine.SampleAt(start))

	for i := 1; i < 12*3600; i++ {
		a := engine.AnglesFor(engine.SampleAt(start.Add(time.Duration(i) * time.Second)))

		for _, deg := range []float64{a.Hour, a.Minute, a.Second} {
			require.GreaterOrEqual(t, deg, 0.0)
			require.Less(t, deg, 360.0)
		}
		require.GreaterOrEqual(t, a.Hour, prev.Hour, "hour hand at step %d", i)
		if i%3600 != 0 {
			require.GreaterOrEqual(t, a.Minute, prev.Minute, "minute hand at step %d", i)
		}
		prev = a
	}
}

func TestHands(t *testing.T) {
	v := engine.NewViewport(400, 400)
	hands := engine.Hands(v, engine.HandAngles{Hour: 90, Minute: 0, Second: 180})
	require.Len(t, hands, 3)

	assert.Equal(t, engine.HandHour, hands[0].Kind)
	assert.Equal(t, engine.HandMinute, hands[1].Kind)
	assert.Equal(t, engine.HandSecond, hands[2].Kind)

	length := func(h engine.Hand) float64 {
		return math.Hypot(h.Tip.X-v.CenterX, h.Tip.Y-v.CenterY)
	}
	assert.Less(t, length(hands[0]), length(hands[1]), "hour hand is shorter than the minute hand")
	assert.Less(t, length(hands[1]), length(hands[2]), "minute hand is shorter than the second hand")
	assert.InDelta(t, 200-0.28*400, length(hands[0]), epsilon)

	// Hour hand points at 3 o'clock.
	assert.InDelta(t, v.CenterY, hands[0].Tip.Y, epsilon)
	assert.Greater(t, hands[0].Tip.X, v.CenterX)

	assert.Greater(t, hands[0].Stroke, hands[2].Stroke)
	assert.Equal(t, "second", hands[2].Kind.String())
}

func TestTickFullOpacity_All60(t *testing.T) {
	fullSet := map[int]bool{}
	for deg := 0; deg < 360; deg += 30 {
		fullSet[deg] = true
	}

	v := engine.NewViewport(300, 300)
	ticks := engine.TickRing(v)
	require.Len(t, ticks, 60)

	full := 0
	for i, tick := range ticks {
		assert.Equal(t, i*6, tick.Degree)
		want := config.AlphaCustom
		if fullSet[tick.Degree] {
			want = config.AlphaFull
			full++
		}
		assert.Equal(t, want, tick.Alpha, "tick at %d°", tick.Degree)

		outer := math.Hypot(tick.Outer.X-v.CenterX, tick.Outer.Y-v.CenterY)
		inner := math.Hypot(tick.Inner.X-v.CenterX, tick.Inner.Y-v.CenterY)
		assert.Greater(t, outer, inner)
	}
	assert.Equal(t, 12, full)
}

func TestHourNumerals(t *testing.T) {
	assert.Equal(t, "12", engine.NumeralLabel(0))
	assert.Equal(t, "05", engine.NumeralLabel(5))
	assert.Equal(t, "11", engine.NumeralLabel(11))

	v := engine.NewViewport(200, 200)
	numerals := engine.HourNumerals(v)
	require.Len(t, numerals, 12)

	// 12 sits straight above the center, 06 straight below.
	assert.InDelta(t, v.CenterX, numerals[0].At.X, epsilon)
	assert.Less(t, numerals[0].At.Y, v.CenterY)
	assert.Equal(t, "06", numerals[6].Label)
	assert.InDelta(t, v.CenterX, numerals[6].At.X, epsilon)
	assert.Greater(t, numerals[6].At.Y, v.CenterY)
}

func TestCenteredBaseline(t *testing.T) {
	m := engine.FontMetrics{Ascent: 8, Descent: 2}
	assert.Equal(t, 53.0, engine.CenteredBaseline(50, m))
}
