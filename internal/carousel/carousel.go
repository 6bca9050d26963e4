// Package carousel implements the state machine behind a horizontally
// scrolling card strip: one logical index kept in sync with a continuous
// scroll offset, a row of indicator dots, and prev/next controls.
//
// The controller is UI-free. It owns the index arithmetic and the guards
// around it; the owning view reports geometry and raw input, and issues
// the scroll commands the controller hands back.
package carousel

import (
	"math"
	"time"

	"github.com/Dhruv5290/stay/internal/timing"
)

// Mode classifies the viewport width.
type Mode int

const (
	// Narrow shows one card at a time and maps offsets card-by-card.
	Narrow Mode = iota
	// Wide shows several cards and maps offsets proportionally across
	// the full scroll range.
	Wide
)

func (m Mode) String() string {
	if m == Narrow {
		return "narrow"
	}
	return "wide"
}

const (
	// NarrowBreakpoint is the viewport width, in layout units, at or
	// below which a strip switches to Narrow mode.
	NarrowBreakpoint = 768

	// SwipeThreshold is the minimum horizontal travel, in layout units,
	// for a completed drag to count as a swipe.
	SwipeThreshold = 50

	// ScrollThrottle caps how often native scroll events are handled.
	ScrollThrottle = 100 * time.Millisecond

	// SettleDelay approximates how long a smooth scroll takes to finish.
	// There is no completion signal for the scroll primitive, so the
	// animating guard is cleared on a fixed timer instead.
	SettleDelay = 500 * time.Millisecond
)

// ModeForWidth returns the mode for a viewport width in layout units.
func ModeForWidth(width int) Mode {
	if width <= NarrowBreakpoint {
		return Narrow
	}
	return Wide
}

// Metrics is the geometry the layout reports for a strip, all in layout
// units.
type Metrics struct {
	ItemWidth   int // width of one card
	Gap         int // space between adjacent cards
	ClientWidth int // visible width of the strip
	ScrollWidth int // full content width of the strip
}

func (m Metrics) step() int {
	return m.ItemWidth + m.Gap
}

func (m Metrics) maxScroll() int {
	return m.ScrollWidth - m.ClientWidth
}

// Command asks the owner to smooth-scroll the strip to Offset. Seq
// identifies the settle timer for this transition; pass it back through
// Settle once the timer fires. A later command supersedes earlier ones.
type Command struct {
	Offset int
	Seq    int
}

// Controller owns the state of one carousel strip. Every operation is a
// no-op on a strip with zero items; nothing here panics or reports errors.
type Controller struct {
	items       int
	visibleWide int
	mode        Mode
	index       int
	animating   bool
	inView      bool
	metrics     Metrics
	throttle    *timing.Throttle
	settle      timing.Debounce
}

// New builds a controller for a strip with itemCount cards, of which
// visibleWide are visible at once in Wide mode. viewportWidth picks the
// initial mode.
func New(itemCount, visibleWide int, m Metrics, viewportWidth int) *Controller {
	if visibleWide < 1 {
		visibleWide = 1
	}
	return &Controller{
		items:       itemCount,
		visibleWide: visibleWide,
		mode:        ModeForWidth(viewportWidth),
		metrics:     m,
		throttle:    timing.NewThrottle(ScrollThrottle),
	}
}

// Empty reports whether the strip has no cards.
func (c *Controller) Empty() bool { return c.items == 0 }

// Items returns the card count.
func (c *Controller) Items() int { return c.items }

// Mode returns the current viewport mode.
func (c *Controller) Mode() Mode { return c.mode }

// Index returns the current logical position.
func (c *Controller) Index() int { return c.index }

// Animating reports whether a programmatic scroll is still settling.
func (c *Controller) Animating() bool { return c.animating }

// SetMetrics updates the strip geometry after a layout pass.
func (c *Controller) SetMetrics(m Metrics) { c.metrics = m }

// Metrics returns the current strip geometry.
func (c *Controller) Metrics() Metrics { return c.metrics }

// SetInView records whether the strip currently intersects the page
// viewport. Arrow keys are only honored while it does.
func (c *Controller) SetInView(v bool) { c.inView = v }

// InView reports whether the strip intersects the page viewport.
func (c *Controller) InView() bool { return c.inView }

// Indicators returns the number of indicator dots for the current mode.
// Wide mode keeps the one-less-than-item-count convention of the page
// this strip was built for, rather than a strict windowing count.
func (c *Controller) Indicators() int {
	if c.items == 0 {
		return 0
	}
	if c.mode == Narrow {
		return c.items
	}
	if c.items-1 < 1 {
		return 1
	}
	return c.items - 1
}

// MaxIndex returns the last valid index for the current mode.
func (c *Controller) MaxIndex() int {
	n := c.Indicators()
	if n <= 1 {
		return 0
	}
	return n - 1
}

// AtStart reports whether the prev control should be disabled.
func (c *Controller) AtStart() bool { return c.index == 0 }

// AtEnd reports whether the next control should be disabled.
func (c *Controller) AtEnd() bool { return c.index >= c.MaxIndex() }

// Next advances one position. At the upper boundary it is a no-op.
func (c *Controller) Next() (Command, bool) {
	if c.Empty() || c.AtEnd() {
		return Command{}, false
	}
	return c.GoTo(c.index + 1)
}

// Prev steps back one position. At the lower boundary it is a no-op.
func (c *Controller) Prev() (Command, bool) {
	if c.Empty() || c.AtStart() {
		return Command{}, false
	}
	return c.GoTo(c.index - 1)
}

// GoTo jumps to index i, silently clamped into range, and returns the
// scroll command for the new position. Used by indicator clicks.
func (c *Controller) GoTo(i int) (Command, bool) {
	if c.Empty() {
		return Command{}, false
	}
	c.index = clamp(i, 0, c.MaxIndex())
	c.animating = true
	return Command{
		Offset: c.metrics.step() * c.index,
		Seq:    c.settle.Arm(),
	}, true
}

// Settle clears the animating guard if seq belongs to the most recent
// scroll command. Stale timers from superseded commands are ignored.
func (c *Controller) Settle(seq int) {
	if c.settle.Live(seq) {
		c.animating = false
	}
}

// HandleScroll recomputes the index from a native scroll offset. Bursts
// are throttled, and offsets observed while a programmatic scroll is
// still settling are ignored so the two never fight. It returns true if
// the index changed and the indicators need a re-render.
func (c *Controller) HandleScroll(offset int, now time.Time) bool {
	if c.Empty() || c.animating {
		return false
	}
	if !c.throttle.Allow(now) {
		return false
	}
	idx := c.indexForOffset(offset)
	if idx == c.index {
		return false
	}
	c.index = idx
	return true
}

// indexForOffset maps a scroll offset back to a logical index.
func (c *Controller) indexForOffset(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if c.mode == Narrow {
		step := c.metrics.step()
		if step <= 0 {
			return 0
		}
		idx := int(math.Round(float64(offset) / float64(step)))
		return clamp(idx, 0, c.items-1)
	}
	maxScroll := c.metrics.maxScroll()
	if maxScroll <= 0 {
		return 0
	}
	idx := int(math.Round(float64(offset) / float64(maxScroll) * float64(c.MaxIndex())))
	return clamp(idx, 0, c.MaxIndex())
}

// Resize recomputes the mode for a new viewport width. A mode flip
// resets the position to the start and invalidates pending settle
// timers; the caller rebuilds the indicator row. Returns true if the
// mode flipped.
func (c *Controller) Resize(viewportWidth int) bool {
	if c.Empty() {
		return false
	}
	mode := ModeForWidth(viewportWidth)
	if mode == c.mode {
		c.index = clamp(c.index, 0, c.MaxIndex())
		return false
	}
	c.mode = mode
	c.index = 0
	c.animating = false
	c.settle.Cancel()
	return true
}

// HandleSwipe maps a completed drag to a position change. Positive
// deltaX means the pointer travelled left, which advances the strip.
// Travel at or below the swipe threshold is ignored.
func (c *Controller) HandleSwipe(deltaX int) (Command, bool) {
	if abs(deltaX) <= SwipeThreshold {
		return Command{}, false
	}
	if deltaX > 0 {
		return c.Next()
	}
	return c.Prev()
}

// HandleKey maps an arrow key to a position change, honored only while
// the strip is in view.
func (c *Controller) HandleKey(next bool) (Command, bool) {
	if !c.inView {
		return Command{}, false
	}
	if next {
		return c.Next()
	}
	return c.Prev()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
