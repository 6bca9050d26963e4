package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dhruv5290/stay/internal/log"
	"github.com/Dhruv5290/stay/internal/utils"
)

// wheelStep is how far one horizontal wheel notch moves a strip, in
// layout units.
const wheelStep = 60

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.lightbox.open {
		return m.handleLightboxKey(msg)
	}

	if m.form.Active() {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		m.jumpToSection(section(int(msg.String()[0] - '1')))
		return m, nil

	case "tab":
		m.jumpToSection((m.activeSection + 1) % sectionCount)
		return m, nil

	case "shift+tab":
		m.jumpToSection((m.activeSection + sectionCount - 1) % sectionCount)
		return m, nil

	case "j", "down":
		m.pageView.ScrollDown(2)
		m.syncViewportDerived()
		return m, nil

	case "k", "up":
		m.pageView.ScrollUp(2)
		m.syncViewportDerived()
		return m, nil

	case "pgdown", " ", "ctrl+d":
		m.pageView.HalfPageDown()
		m.syncViewportDerived()
		return m, nil

	case "pgup", "ctrl+u":
		m.pageView.HalfPageUp()
		m.syncViewportDerived()
		return m, nil

	case "g", "home":
		m.pageView.GotoTop()
		m.syncViewportDerived()
		return m, nil

	case "G", "end":
		m.pageView.GotoBottom()
		m.syncViewportDerived()
		return m, nil

	case "right", "l":
		return m, m.driveInViewStrip(true)

	case "left", "h":
		return m, m.driveInViewStrip(false)

	case "enter":
		return m.handleEnter()
	}

	return m, nil
}

// driveInViewStrip feeds an arrow key to whichever strip is on screen.
func (m *Model) driveInViewStrip(next bool) tea.Cmd {
	s := m.inViewStrip()
	if s == nil {
		return nil
	}
	cmd, ok := s.ctrl.HandleKey(next)
	if !ok {
		return nil
	}
	return m.applyCommand(s, cmd)
}

// handleEnter opens the lightbox over the gallery or focuses the inquiry
// form on the contact section.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.activeSection {
	case sectionGallery:
		if m.gallery != nil && !m.gallery.ctrl.Empty() {
			m.lightbox.Open(m.gallery.ctrl.Index(), len(m.listing.Gallery))
		}
		return m, nil
	case sectionContact:
		return m, m.form.Activate()
	}
	return m, nil
}

func (m *Model) handleLightboxKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.lightbox.Close()
	case "right", "l":
		m.lightbox.Next(len(m.listing.Gallery))
	case "left", "h":
		m.lightbox.Prev()
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.Deactivate()
		m.rebuildPage()
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		cmd := m.form.Next()
		m.rebuildPage()
		return m, cmd

	case "shift+tab":
		cmd := m.form.Prev()
		m.rebuildPage()
		return m, cmd

	case "enter":
		// Enter advances through the single-line fields; in the
		// message box it inserts a newline like anywhere else.
		if !m.form.InMessage() {
			cmd := m.form.Next()
			m.rebuildPage()
			return m, cmd
		}

	case "ctrl+s":
		return m, m.submitInquiry()
	}

	cmd := m.form.Update(msg)
	m.rebuildPage()
	return m, cmd
}

// submitInquiry validates the form and flashes the outcome. Nothing is
// sent anywhere; the reference code gives a follow-up call something to
// cite.
func (m *Model) submitInquiry() tea.Cmd {
	inq := m.form.Inquiry()
	if !inq.Valid() {
		return m.showFlash("Please give at least a name and an email", true)
	}

	ref := utils.InquiryReference()
	log.Printf("inquiry %s from %s <%s> (%s)", ref, inq.Name, inq.Email, inq.Dates)
	m.form.Reset()
	m.form.Deactivate()
	m.rebuildPage()
	return m.showFlash("Thanks "+inq.Name+" — inquiry noted, reference "+ref, false)
}

// handleMouse processes wheel, click, and drag input.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if m.lightbox.open {
		if msg.Action == tea.MouseActionPress {
			m.lightbox.Close()
		}
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.pageView.ScrollUp(3)
		m.syncViewportDerived()
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.pageView.ScrollDown(3)
		m.syncViewportDerived()
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelRight:
		return m, m.nudgeStrip(msg, wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelLeft:
		return m, m.nudgeStrip(msg, -wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m, m.handleClick(msg)

	case msg.Action == tea.MouseActionMotion:
		m.handleDragMotion(msg)
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		return m, m.handleDragEnd()
	}

	return m, nil
}

// contentLine maps a screen row to a page content line.
func (m *Model) contentLine(y int) int {
	return y - navRows + m.pageView.YOffset
}

// nudgeStrip applies a horizontal wheel notch as a native scroll: the
// offset moves directly and the controller derives the index from it.
func (m *Model) nudgeStrip(msg tea.MouseMsg, delta int) tea.Cmd {
	s := m.stripAt(m.contentLine(msg.Y))
	if s == nil || s.ctrl.Animating() {
		return nil
	}

	next := s.offset + float64(delta)
	if next < 0 {
		next = 0
	}
	if max := s.maxScrollOffset(); next > max {
		next = max
	}
	s.offset = next
	s.target = next

	s.ctrl.HandleScroll(int(next), time.Now())
	// Rebuild either way: the card window may shift without the index
	// changing.
	m.rebuildPage()
	return nil
}

// handleClick resolves nav labels, strip controls, and indicator dots.
func (m *Model) handleClick(msg tea.MouseMsg) tea.Cmd {
	if msg.Y < navRows {
		for _, z := range m.navZones {
			if msg.X >= z.start && msg.X <= z.end {
				m.jumpToSection(z.sec)
				return nil
			}
		}
		return nil
	}

	line := m.contentLine(msg.Y)

	if s := m.stripAtDots(line); s != nil {
		if idx, ok := dotIndexAt(s.zone, msg.X); ok {
			if cmd, moved := s.ctrl.GoTo(idx); moved {
				return m.applyCommand(s, cmd)
			}
		}
		return nil
	}

	if s := m.stripAt(line); s != nil {
		switch {
		case msg.X < stripMargin:
			if cmd, ok := s.ctrl.Prev(); ok {
				return m.applyCommand(s, cmd)
			}
		case msg.X >= s.zone.width-stripMargin:
			if cmd, ok := s.ctrl.Next(); ok {
				return m.applyCommand(s, cmd)
			}
		default:
			s.tracker.Begin(msg.X*unitsPerCell, msg.Y*unitsPerCell)
		}
	}

	return nil
}

// handleDragMotion feeds motion into whichever strip owns an active drag.
func (m *Model) handleDragMotion(msg tea.MouseMsg) {
	for _, s := range m.strips() {
		if s != nil && s.tracker.Active() {
			s.tracker.Move(msg.X*unitsPerCell, msg.Y*unitsPerCell)
			return
		}
	}
}

// handleDragEnd completes an active drag and applies the swipe if the
// gesture qualifies.
func (m *Model) handleDragEnd() tea.Cmd {
	for _, s := range m.strips() {
		if s == nil || !s.tracker.Active() {
			continue
		}
		delta, ok := s.tracker.End()
		if !ok {
			return nil
		}
		if cmd, moved := s.ctrl.HandleSwipe(delta); moved {
			return m.applyCommand(s, cmd)
		}
		return nil
	}
	return nil
}

// dotIndexAt maps a click column to an indicator index.
func dotIndexAt(zone stripZone, x int) (int, bool) {
	if zone.dotCount == 0 {
		return 0, false
	}
	rel := x - zone.dotStart
	if rel < 0 || rel > 2*zone.dotCount-2 {
		return 0, false
	}
	idx := (rel + 1) / 2
	if idx >= zone.dotCount {
		idx = zone.dotCount - 1
	}
	return idx, true
}
