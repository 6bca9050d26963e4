package app

import "github.com/Dhruv5290/stay/internal/carousel"

// Page chrome: one nav row on top, one footer row below the viewport.
const (
	navRows    = 1
	footerRows = 1

	// stripMargin is the columns reserved on each side of a strip for
	// the prev/next controls.
	stripMargin = 4
)

// stripZone records where a strip landed in page content coordinates,
// for mouse hit-testing. Lines are content lines, not screen rows.
type stripZone struct {
	top      int // first line of the cards region
	height   int // lines in the cards region
	dotsLine int // line of the indicator row
	width    int // strip width in cells
	dotStart int // first column of the indicator row
	dotCount int
}

// navZone is one clickable label on the nav bar.
type navZone struct {
	sec        section
	start, end int // inclusive column range
}

func pageHeight(total int) int {
	h := total - navRows - footerRows
	if h < 1 {
		return 1
	}
	return h
}

// contentWidth is the usable width inside the page padding.
func contentWidth(total int) int {
	w := total - 2
	if w < 10 {
		return 10
	}
	return w
}

// layoutStrips measures the current layout and reports it to the
// controllers. All geometry flows one way: the layout measures, the
// controller computes.
func (m *Model) layoutStrips() {
	for _, s := range m.strips() {
		if s == nil {
			continue
		}
		m.layoutStrip(s)
	}
}

func (m *Model) layoutStrip(s *strip) {
	items := s.ctrl.Items()
	stripCells := contentWidth(m.width) - 2*stripMargin
	if stripCells < 8 {
		stripCells = 8
	}

	visible := 1
	if s.ctrl.Mode() == carousel.Wide {
		visible = visibleWide
	}
	if visible > items && items > 0 {
		visible = items
	}

	gapCells := s.gap / unitsPerCell
	cardCells := (stripCells - (visible-1)*gapCells) / visible
	if cardCells < 8 {
		cardCells = 8
	}

	itemWidth := cardCells * unitsPerCell
	scrollWidth := 0
	if items > 0 {
		scrollWidth = items*itemWidth + (items-1)*s.gap
	}

	s.ctrl.SetMetrics(carousel.Metrics{
		ItemWidth:   itemWidth,
		Gap:         s.gap,
		ClientWidth: stripCells * unitsPerCell,
		ScrollWidth: scrollWidth,
	})
}

// cardCells returns the card width in terminal columns.
func (s *strip) cardCells() int {
	return s.ctrl.Metrics().ItemWidth / unitsPerCell
}

// visibleCards returns how many cards the strip shows at once.
func (s *strip) visibleCards() int {
	if s.ctrl.Mode() == carousel.Narrow {
		return 1
	}
	v := visibleWide
	if items := s.ctrl.Items(); items > 0 && items < v {
		v = items
	}
	return v
}

// firstVisible maps the animated offset to the first rendered card.
func (s *strip) firstVisible() int {
	step := s.ctrl.Metrics().ItemWidth + s.gap
	if step <= 0 {
		return 0
	}
	first := (int(s.offset) + step/2) / step
	maxFirst := s.ctrl.Items() - s.visibleCards()
	if maxFirst < 0 {
		maxFirst = 0
	}
	if first > maxFirst {
		first = maxFirst
	}
	if first < 0 {
		first = 0
	}
	return first
}

// syncViewportDerived updates everything that depends on the page scroll
// position: the nav highlight and which strips count as in view.
func (m *Model) syncViewportDerived() {
	top := m.pageView.YOffset
	bottom := top + m.pageView.Height

	act := sectionHome
	for sec := sectionHome; sec < sectionCount; sec++ {
		if top >= m.sectionLines[sec]-2 {
			act = sec
		}
	}
	// The last section may sit inside the final screenful and never reach
	// the top; scrolled to the bottom counts as being there.
	if top > 0 && m.pageView.AtBottom() {
		act = sectionCount - 1
	}
	m.activeSection = act

	for _, s := range m.strips() {
		if s == nil {
			continue
		}
		inView := s.zone.top < bottom && s.zone.top+s.zone.height > top
		s.ctrl.SetInView(inView)
	}
}

// jumpToSection scrolls the page so the section starts at the top.
func (m *Model) jumpToSection(sec section) {
	m.pageView.SetYOffset(m.sectionLines[sec])
	m.syncViewportDerived()
}

// stripAt returns the strip whose cards region contains the given
// content line, if any.
func (m *Model) stripAt(line int) *strip {
	for _, s := range m.strips() {
		if s == nil || s.ctrl.Empty() {
			continue
		}
		if line >= s.zone.top && line < s.zone.top+s.zone.height {
			return s
		}
	}
	return nil
}

// stripAtDots returns the strip whose indicator row is on the given
// content line, if any.
func (m *Model) stripAtDots(line int) *strip {
	for _, s := range m.strips() {
		if s == nil || s.ctrl.Empty() {
			continue
		}
		if line == s.zone.dotsLine {
			return s
		}
	}
	return nil
}

// inViewStrip returns the strip arrow keys should drive: the rooms strip
// wins when both are on screen.
func (m *Model) inViewStrip() *strip {
	for _, s := range m.strips() {
		if s != nil && s.ctrl.InView() {
			return s
		}
	}
	return nil
}
