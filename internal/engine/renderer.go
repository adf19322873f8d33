package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tartampluch/go-clock/internal/config"
)

// Renderer paints clock faces and keeps them current.
//
// Every Render call schedules exactly one follow-up invalidation after Interval,
// measured from the end of the draw. The renderer owns that single pending timer:
// a new draw replaces it, and Close cancels it for good.
type Renderer struct {
	Sampler     TimeSampler
	Invalidator Invalidator
	Interval    time.Duration

	mu      sync.Mutex
	style   Style
	mode    DisplayMode
	pending clockwork.Timer
	closed  bool
}

// NewRenderer builds a renderer with the default style in analog mode.
// clk drives both time sampling and the refresh loop.
func NewRenderer(clk clockwork.Clock, inv Invalidator) *Renderer {
	return &Renderer{
		Sampler:     NewTimeSampler(clk),
		Invalidator: inv,
		Interval:    config.RefreshInterval,
		style:       DefaultStyle(),
		mode:        ModeAnalog,
	}
}

// Render paints one frame onto c for a surface of width x height pixels,
// then schedules the next one. A degenerate surface draws nothing but the
// loop keeps running, since zero sizes are normal during layout.
func (r *Renderer) Render(c Canvas, width, height float64) {
	r.mu.Lock()
	style, mode := r.style, r.mode
	r.mu.Unlock()

	v := NewViewport(width, height)
	if v.Empty() {
		slog.Debug(config.MsgFrameSkipped,
			config.LogKeyComponent, config.CompRenderer,
			config.LogKeyWidth, width,
			config.LogKeyHeight, height)
	} else {
		DrawFrame(c, v, style, mode, r.Sampler.Sample())
	}

	r.scheduleNext()
}

// scheduleNext replaces any pending refresh with a fresh one.
func (r *Renderer) scheduleNext() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.Invalidator == nil {
		return
	}
	r.stopLocked()

	var timer clockwork.Timer
	timer = r.Sampler.Clock.AfterFunc(r.Interval, func() {
		r.mu.Lock()
		current := r.pending == timer && !r.closed
		if current {
			r.pending = nil
		}
		r.mu.Unlock()

		if current {
			r.Invalidator.Invalidate()
		}
	})
	r.pending = timer
}

// Pending reports whether a refresh is scheduled.
func (r *Renderer) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending != nil
}

// Stop cancels the pending refresh. The next Render starts the loop again.
func (r *Renderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Renderer) stopLocked() {
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
}

// Close stops the refresh loop for good. Later Render calls still draw but
// never reschedule.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.stopLocked()
	slog.Debug(config.MsgRendererClose, config.LogKeyComponent, config.CompRenderer)
}

// Closed reports whether Close has been called.
func (r *Renderer) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Mode returns the active display mode.
func (r *Renderer) Mode() DisplayMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// SetMode switches the display mode and asks for an immediate redraw.
func (r *Renderer) SetMode(m DisplayMode) {
	r.mu.Lock()
	old := r.mode
	r.mode = m
	closed := r.closed
	r.mu.Unlock()

	if old != m {
		slog.Debug(config.MsgModeChanged,
			config.LogKeyComponent, config.CompRenderer,
			config.LogKeyOld, old.String(),
			config.LogKeyNew, m.String())
	}
	if !closed && r.Invalidator != nil {
		r.Invalidator.Invalidate()
	}
}

// Toggle flips between analog and digital.
func (r *Renderer) Toggle() {
	if r.Mode() == ModeAnalog {
		r.SetMode(ModeDigital)
		return
	}
	r.SetMode(ModeAnalog)
}

// ShowAnalog reports whether the dial is displayed.
func (r *Renderer) ShowAnalog() bool {
	return r.Mode() == ModeAnalog
}

// SetShowAnalog is the boolean form of SetMode.
func (r *Renderer) SetShowAnalog(show bool) {
	r.SetMode(ModeFor(show))
}

// Style returns the colors used for the next frame.
func (r *Renderer) Style() Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.style
}

// SetStyle replaces the colors; the change shows on the next frame.
func (r *Renderer) SetStyle(s Style) {
	r.mu.Lock()
	r.style = s
	r.mu.Unlock()

	slog.Debug(config.MsgStyleChanged, config.LogKeyComponent, config.CompRenderer)
}
