package chart

import (
	"fmt"
	"time"

	"github.com/symo-dev/symo/internal/logger"
	"github.com/symo-dev/symo/internal/metrics"
)

// State is the visibility lifecycle of a View.
type State int

const (
	StateHidden State = iota
	StateShown
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShown:
		return "shown"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type pointer struct {
	x, y float64
}

// View is an interactive chart over a SeriesSet. It tracks visibility, the
// pointer hover and which series are hidden. The SeriesSet keeps filling
// whatever the view state; the view only reads it.
//
// A View is not safe for concurrent use. Scheduler callbacks must hand off
// to the goroutine that owns the view rather than call into it directly.
type View struct {
	set       *metrics.SeriesSet
	renderer  *Renderer
	scheduler Scheduler
	interval  time.Duration
	radius    float64
	onRedraw  func()

	state State
	stop  func()

	width   float64
	height  float64
	pointer *pointer
	hover   *HoverState
	hidden  map[metrics.Metric]bool
	skipped int
}

// Option configures a View.
type Option func(*View)

// WithRenderer sets the frame renderer.
func WithRenderer(r *Renderer) Option {
	return func(v *View) {
		v.renderer = r
	}
}

// WithScheduler sets the periodic redraw trigger.
func WithScheduler(s Scheduler) Option {
	return func(v *View) {
		v.scheduler = s
	}
}

// WithRedrawInterval sets the redraw period while shown.
func WithRedrawInterval(d time.Duration) Option {
	return func(v *View) {
		if d > 0 {
			v.interval = d
		}
	}
}

// WithHoverRadius sets the pointer hit radius.
func WithHoverRadius(r float64) Option {
	return func(v *View) {
		if r > 0 {
			v.radius = r
		}
	}
}

// WithRedrawFunc sets the callback that requests a repaint. It is invoked
// by the redraw trigger and after every pointer change.
func WithRedrawFunc(fn func()) Option {
	return func(v *View) {
		v.onRedraw = fn
	}
}

// NewView creates a hidden View over set.
func NewView(set *metrics.SeriesSet, opts ...Option) *View {
	v := &View{
		set:       set,
		scheduler: TickerScheduler{},
		interval:  DefaultRedrawInterval,
		radius:    DefaultHoverRadius,
		hidden:    make(map[metrics.Metric]bool),
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.renderer == nil {
		v.renderer = NewRenderer(DefaultLayout(), set.Capacity())
	}

	return v
}

// SetVisible moves between Hidden and Shown. Showing arms one periodic
// redraw trigger and hiding disarms it; repeating the current state does
// nothing, as does any call after Destroy.
func (v *View) SetVisible(visible bool) {
	switch {
	case v.state == StateDestroyed:
		return
	case visible && v.state == StateHidden:
		v.stop = v.scheduler.Every(v.interval, v.requestRedraw)
		v.state = StateShown
		logger.Debug("chart shown", "redraw_interval", v.interval)
	case !visible && v.state == StateShown:
		v.disarm()
		v.state = StateHidden
		logger.Debug("chart hidden")
	}
}

// Destroy disarms the redraw trigger and makes the view inert.
func (v *View) Destroy() {
	if v.state == StateDestroyed {
		return
	}
	v.disarm()
	v.state = StateDestroyed
	v.pointer = nil
	v.hover = nil
}

func (v *View) disarm() {
	if v.stop != nil {
		v.stop()
		v.stop = nil
	}
}

// Resize records the surface size used for pointer queries.
func (v *View) Resize(w, h float64) {
	v.width, v.height = w, h
}

// Size returns the last recorded surface size.
func (v *View) Size() (w, h float64) {
	return v.width, v.height
}

// OnPointerMove updates the hover for a pointer at (x, y) and requests a
// redraw.
func (v *View) OnPointerMove(x, y float64) {
	if v.state == StateDestroyed {
		return
	}
	v.pointer = &pointer{x: x, y: y}
	v.hover = v.locate()
	v.requestRedraw()
}

// OnPointerLeave clears the hover and requests a redraw.
func (v *View) OnPointerLeave() {
	if v.state == StateDestroyed {
		return
	}
	v.pointer = nil
	v.hover = nil
	v.requestRedraw()
}

// Render paints one frame on s. A panic raised while drawing is recovered
// and logged, and the frame is counted as skipped; Render reports whether
// the frame completed.
func (v *View) Render(s Surface) (ok bool) {
	if v.state == StateDestroyed {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			v.skipped++
			logger.Warn("chart frame skipped", "panic", fmt.Sprint(r), "skipped", v.skipped)
			ok = false
		}
	}()

	v.Resize(s.Size())
	if v.pointer != nil {
		v.hover = v.locate()
	}
	v.renderer.Render(s, v.set, v.Visible, v.hover)
	return true
}

func (v *View) locate() *HoverState {
	if v.pointer == nil {
		return nil
	}
	geom, ok := v.renderer.Geometry(v.width, v.height, v.set)
	if !ok {
		return nil
	}
	return Locate(v.pointer.x, v.pointer.y, SeriesOf(v.set, v.Visible), geom, v.radius)
}

func (v *View) requestRedraw() {
	if v.onRedraw != nil {
		v.onRedraw()
	}
}

// Hover returns the current hover, or nil.
func (v *View) Hover() *HoverState {
	return v.hover
}

// HoverText returns the readout of the current hover, or "".
func (v *View) HoverText() string {
	return v.renderer.InfoText(v.hover)
}

// State returns the visibility state.
func (v *View) State() State {
	return v.state
}

// SkippedFrames returns how many frames were dropped after a drawing panic.
func (v *View) SkippedFrames() int {
	return v.skipped
}

// ToggleSeries shows or hides the series of m. Hidden series still take
// part in scaling but are neither drawn nor hit-tested.
func (v *View) ToggleSeries(m metrics.Metric) {
	if !m.Valid() {
		return
	}
	v.hidden[m] = !v.hidden[m]
	if v.hover != nil && v.hover.Metric == m && v.hidden[m] {
		v.hover = nil
	}
	v.requestRedraw()
}

// Visible reports whether the series of m is drawn.
func (v *View) Visible(m metrics.Metric) bool {
	return !v.hidden[m]
}

// Renderer returns the frame renderer.
func (v *View) Renderer() *Renderer {
	return v.renderer
}
