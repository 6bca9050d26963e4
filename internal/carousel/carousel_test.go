package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wideMetrics keeps the offset<->index mapping self-consistent for a
// 5-card strip with 3 visible: maxScroll == step * maxIndex.
func wideMetrics() Metrics {
	return Metrics{
		ItemWidth:   240,
		Gap:         30,
		ClientWidth: 750,
		ScrollWidth: 1560,
	}
}

func narrowMetrics() Metrics {
	return Metrics{
		ItemWidth:   300,
		Gap:         20,
		ClientWidth: 320,
		ScrollWidth: 1280,
	}
}

func TestModeForWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  Mode
	}{
		{"narrow phone width", 375, Narrow},
		{"exactly at breakpoint", 768, Narrow},
		{"just above breakpoint", 769, Wide},
		{"desktop width", 1440, Wide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeForWidth(tt.width))
		})
	}
}

func TestWideIndicatorConvention(t *testing.T) {
	// 5 cards, 3 visible: the page keeps one-less-than-item-count dots,
	// so indices run 0..3.
	c := New(5, 3, wideMetrics(), 1200)

	require.Equal(t, Wide, c.Mode())
	assert.Equal(t, 4, c.Indicators())
	assert.Equal(t, 3, c.MaxIndex())
}

func TestNextStopsAtUpperBoundary(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)

	for i := 1; i <= 4; i++ {
		cmd, ok := c.Next()
		require.True(t, ok, "advance %d should move", i)
		assert.Equal(t, i, c.Index())
		assert.Equal(t, 270*i, cmd.Offset)
		c.Settle(cmd.Seq)
	}

	_, ok := c.Next()
	assert.False(t, ok, "fifth advance is a no-op at the boundary")
	assert.Equal(t, 3, c.Index())
}

func TestPrevStopsAtLowerBoundary(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)

	_, ok := c.Prev()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Index())
}

func TestGoToClampsOutOfRange(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)

	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"negative", -3, 0},
		{"in range", 2, 2},
		{"beyond max", 42, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := c.GoTo(tt.target)
			require.True(t, ok)
			assert.Equal(t, tt.want, c.Index())
			assert.Equal(t, 270*tt.want, cmd.Offset)
			c.Settle(cmd.Seq)
		})
	}
}

func TestOffsetIndexRoundTrip(t *testing.T) {
	t.Run("wide", func(t *testing.T) {
		c := New(5, 3, wideMetrics(), 1200)
		now := time.Now()
		for k := 0; k <= c.MaxIndex(); k++ {
			cmd, ok := c.GoTo(k)
			require.True(t, ok)
			c.Settle(cmd.Seq)
			now = now.Add(ScrollThrottle)
			c.HandleScroll(cmd.Offset, now)
			assert.Equal(t, k, c.Index(), "index %d should survive the round trip", k)
		}
	})

	t.Run("narrow", func(t *testing.T) {
		c := New(4, 3, narrowMetrics(), 375)
		now := time.Now()
		for k := 0; k <= c.MaxIndex(); k++ {
			cmd, ok := c.GoTo(k)
			require.True(t, ok)
			c.Settle(cmd.Seq)
			now = now.Add(ScrollThrottle)
			c.HandleScroll(cmd.Offset, now)
			assert.Equal(t, k, c.Index())
		}
	})
}

func TestHandleScrollNarrowSnapsToNearestCard(t *testing.T) {
	c := New(4, 3, narrowMetrics(), 375)
	require.Equal(t, Narrow, c.Mode())
	require.Equal(t, 3, c.MaxIndex())

	// step = 320; 500 rounds up to card 2.
	changed := c.HandleScroll(500, time.Now())
	assert.True(t, changed)
	assert.Equal(t, 2, c.Index())
}

func TestHandleScrollWideMapsProportionally(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)
	now := time.Now()

	// maxScroll = 810; the full range maps onto indices 0..3.
	changed := c.HandleScroll(810, now)
	assert.True(t, changed)
	assert.Equal(t, 3, c.Index())

	changed = c.HandleScroll(0, now.Add(ScrollThrottle))
	assert.True(t, changed)
	assert.Equal(t, 0, c.Index())
}

func TestHandleScrollZeroMaxScrollPinsToStart(t *testing.T) {
	m := wideMetrics()
	m.ScrollWidth = m.ClientWidth
	c := New(5, 3, m, 1200)

	c.HandleScroll(400, time.Now())
	assert.Equal(t, 0, c.Index())
}

func TestHandleScrollIgnoredWhileAnimating(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)

	cmd, ok := c.GoTo(2)
	require.True(t, ok)
	require.True(t, c.Animating())

	changed := c.HandleScroll(0, time.Now())
	assert.False(t, changed, "scroll feedback must not fight the programmatic scroll")
	assert.Equal(t, 2, c.Index())

	c.Settle(cmd.Seq)
	assert.False(t, c.Animating())
}

func TestStaleSettleDoesNotClearNewerCommand(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)

	first, ok := c.GoTo(1)
	require.True(t, ok)
	second, ok := c.GoTo(2)
	require.True(t, ok)

	c.Settle(first.Seq)
	assert.True(t, c.Animating(), "superseded settle timer must be ignored")

	c.Settle(second.Seq)
	assert.False(t, c.Animating())
}

func TestHandleScrollThrottlesBursts(t *testing.T) {
	c := New(4, 3, narrowMetrics(), 375)
	start := time.Now()

	assert.True(t, c.HandleScroll(320, start))
	// Inside the window: dropped even though the offset maps elsewhere.
	assert.False(t, c.HandleScroll(960, start.Add(40*time.Millisecond)))
	assert.Equal(t, 1, c.Index())

	assert.True(t, c.HandleScroll(960, start.Add(ScrollThrottle)))
	assert.Equal(t, 3, c.Index())
}

func TestHandleScrollNoChangeNoRender(t *testing.T) {
	c := New(4, 3, narrowMetrics(), 375)

	changed := c.HandleScroll(10, time.Now())
	assert.False(t, changed, "offset within the current card should not report a change")
	assert.Equal(t, 0, c.Index())
}

func TestResizeFlipResetsPosition(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)
	cmd, _ := c.GoTo(3)
	c.Settle(cmd.Seq)

	flipped := c.Resize(375)
	require.True(t, flipped)
	assert.Equal(t, Narrow, c.Mode())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 5, c.Indicators(), "narrow mode gets one dot per card")

	flipped = c.Resize(400)
	assert.False(t, flipped, "same mode resize is not a rebuild")
}

func TestResizeFlipInvalidatesPendingSettle(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)
	cmd, _ := c.GoTo(2)

	require.True(t, c.Resize(375))
	assert.False(t, c.Animating())

	// The old settle timer fires after the flip; it must stay ignored.
	c.Settle(cmd.Seq)
	assert.False(t, c.Animating())
}

func TestSwipeThreshold(t *testing.T) {
	c := New(4, 3, narrowMetrics(), 375)

	_, ok := c.HandleSwipe(40)
	assert.False(t, ok, "40 units is below the swipe threshold")
	assert.Equal(t, 0, c.Index())

	cmd, ok := c.HandleSwipe(60)
	require.True(t, ok)
	assert.Equal(t, 1, c.Index())
	c.Settle(cmd.Seq)

	_, ok = c.HandleSwipe(-60)
	require.True(t, ok)
	assert.Equal(t, 0, c.Index())
}

func TestKeysOnlyHonoredInView(t *testing.T) {
	c := New(5, 3, wideMetrics(), 1200)

	_, ok := c.HandleKey(true)
	assert.False(t, ok, "arrow keys ignored while the strip is off screen")

	c.SetInView(true)
	_, ok = c.HandleKey(true)
	require.True(t, ok)
	assert.Equal(t, 1, c.Index())

	_, ok = c.HandleKey(false)
	require.True(t, ok)
	assert.Equal(t, 0, c.Index())
}

func TestEmptyStripIsInert(t *testing.T) {
	c := New(0, 3, Metrics{}, 1200)

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Indicators())

	_, ok := c.Next()
	assert.False(t, ok)
	_, ok = c.GoTo(2)
	assert.False(t, ok)
	assert.False(t, c.HandleScroll(100, time.Now()))
	assert.False(t, c.Resize(375))
	assert.Equal(t, 0, c.Index())
}

func TestSingleItemStrip(t *testing.T) {
	c := New(1, 3, narrowMetrics(), 1200)

	assert.Equal(t, 1, c.Indicators())
	assert.Equal(t, 0, c.MaxIndex())
	assert.True(t, c.AtStart())
	assert.True(t, c.AtEnd())

	_, ok := c.Next()
	assert.False(t, ok)
}

func TestIndexAlwaysInRange(t *testing.T) {
	c := New(6, 3, wideMetrics(), 1200)
	now := time.Now()

	ops := []func(){
		func() { c.GoTo(-5) },
		func() { c.GoTo(99) },
		func() { c.Next() },
		func() {
			now = now.Add(ScrollThrottle)
			c.HandleScroll(5000, now)
		},
		func() { c.Resize(375) },
		func() { c.HandleSwipe(80) },
		func() { c.Resize(1200) },
		func() { c.Prev() },
	}

	for _, op := range ops {
		op()
		// Pending settles would block scroll handling, not the invariant.
		assert.GreaterOrEqual(t, c.Index(), 0)
		assert.LessOrEqual(t, c.Index(), c.MaxIndex())
	}
}

func TestNarrowScenarioFromWidePage(t *testing.T) {
	// Narrow mode, 4 cards: indices 0..3, one dot per card.
	c := New(4, 3, narrowMetrics(), 375)

	require.Equal(t, Narrow, c.Mode())
	assert.Equal(t, 3, c.MaxIndex())
	assert.Equal(t, 4, c.Indicators())
}
