package carousel

// Drag gestures on a strip have to be told apart from vertical page
// scrolling. A sequence is classified once its cumulative movement gets
// past a small noise threshold: mostly-horizontal travel becomes a swipe
// candidate, anything else abandons the sequence so the page keeps the
// scroll.

type dragAxis int

const (
	axisNone dragAxis = iota
	axisHorizontal
	axisVertical
)

const (
	// dragNoise is the cumulative travel, in layout units, below which a
	// sequence stays unclassified.
	dragNoise = 10

	// dragAxisRatio is how dominant horizontal travel must be over
	// vertical travel for a sequence to classify as horizontal.
	dragAxisRatio = 1.5
)

// Tracker classifies one pointer drag sequence. Zero value is ready;
// call Begin on press, Move on every motion event, End on release.
type Tracker struct {
	active bool
	axis   dragAxis
	startX int
	lastX  int
	lastY  int
	sumDX  int
	sumDY  int
}

// Begin starts a new sequence at the press position.
func (t *Tracker) Begin(x, y int) {
	t.active = true
	t.axis = axisNone
	t.startX = x
	t.lastX = x
	t.lastY = y
	t.sumDX = 0
	t.sumDY = 0
}

// Active reports whether a sequence is in progress.
func (t *Tracker) Active() bool { return t.active }

// Move accumulates motion and classifies the sequence once it leaves the
// noise threshold. A sequence classified vertical is abandoned for good.
func (t *Tracker) Move(x, y int) {
	if !t.active || t.axis == axisVertical {
		return
	}
	t.sumDX += abs(x - t.lastX)
	t.sumDY += abs(y - t.lastY)
	t.lastX = x
	t.lastY = y

	if t.axis != axisNone {
		return
	}
	if t.sumDX <= dragNoise && t.sumDY <= dragNoise {
		return
	}
	if float64(t.sumDX) > dragAxisRatio*float64(t.sumDY) {
		t.axis = axisHorizontal
	} else {
		t.axis = axisVertical
	}
}

// End finishes the sequence. For a horizontal sequence it returns the
// signed travel with the touch convention: positive when the pointer
// moved left. ok is false for unclassified or vertical sequences; the
// caller still applies the swipe threshold to the returned delta.
func (t *Tracker) End() (deltaX int, ok bool) {
	if !t.active {
		return 0, false
	}
	active := t.axis == axisHorizontal
	delta := t.startX - t.lastX
	t.active = false
	t.axis = axisNone
	if !active {
		return 0, false
	}
	return delta, true
}
