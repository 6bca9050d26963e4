package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the whole screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return m.renderSplash()
	}
	if m.lightbox.open {
		return m.renderLightbox()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderNav(),
		m.pageView.View(),
		m.renderFooter(),
	)
}

// renderSplash is the loading screen shown until the listing is ready.
func (m *Model) renderSplash() string {
	msg := fmt.Sprintf("%s Preparing your stay…", m.spin.View())
	box := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Render(msg)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderNav renders the navigation bar and records the clickable label
// ranges for mouse hit-testing.
func (m *Model) renderNav() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	idleStyle := lipgloss.NewStyle().
		Foreground(m.theme.MutedFg).
		Padding(0, 1)

	m.navZones = m.navZones[:0]
	var parts []string
	col := 0
	for sec := sectionHome; sec < sectionCount; sec++ {
		label := sec.title()
		style := idleStyle
		if sec == m.activeSection {
			style = activeStyle
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		m.navZones = append(m.navZones, navZone{sec: sec, start: col, end: col + w - 1})
		col += w
		parts = append(parts, rendered)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().Width(m.width).Background(m.theme.AccentDim).Render(bar)
}

// renderFooter renders context hints and the flash message, if any.
func (m *Model) renderFooter() string {
	style := lipgloss.NewStyle().
		Foreground(m.theme.MutedFg).
		Width(m.width).
		Padding(0, 1)

	if m.flash != "" {
		color := m.theme.SuccessFg
		if m.flashIsErr {
			color = m.theme.ErrorFg
		}
		return style.Foreground(color).Render(m.flash)
	}

	hints := "j/k scroll · 1-5 sections · ←/→ browse cards"
	switch {
	case m.form.Active():
		hints = "tab next field · ctrl+s send inquiry · esc leave form"
	case m.activeSection == sectionGallery:
		hints = "←/→ browse · enter open photo · j/k scroll"
	case m.activeSection == sectionContact:
		hints = "enter fill in the inquiry form · j/k scroll"
	}
	return style.Render(hints + " · q quit")
}

// pageBuilder accumulates page content while tracking line offsets.
type pageBuilder struct {
	b    strings.Builder
	line int
}

// add appends a block and returns the content line it starts on.
func (p *pageBuilder) add(block string) int {
	start := p.line
	p.b.WriteString(block)
	p.b.WriteString("\n")
	p.line += strings.Count(block, "\n") + 1
	return start
}

func (p *pageBuilder) blank() {
	p.add("")
}

// rebuildPage re-renders the page content into the viewport and refreshes
// the hit zones and scroll-derived state.
func (m *Model) rebuildPage() {
	if m.listing == nil || m.width == 0 {
		return
	}

	var p pageBuilder

	m.sectionLines[sectionHome] = p.add(m.renderHero())
	p.blank()

	m.sectionLines[sectionRooms] = p.add(m.sectionTitle("Rooms"))
	m.addStrip(&p, m.rooms, m.roomCards())
	p.blank()

	m.sectionLines[sectionGallery] = p.add(m.sectionTitle("Gallery"))
	m.addStrip(&p, m.gallery, m.galleryCards())
	p.blank()

	m.sectionLines[sectionGuests] = p.add(m.sectionTitle("Guests"))
	p.add(m.renderTestimonials())
	p.blank()

	m.sectionLines[sectionContact] = p.add(m.sectionTitle("Contact"))
	p.add(m.renderContact())
	p.blank()

	m.pageView.SetContent(p.b.String())
	m.syncViewportDerived()
}

// addStrip renders one carousel strip and records its hit zones in page
// coordinates.
func (m *Model) addStrip(p *pageBuilder, s *strip, cards []string) {
	if s == nil || s.ctrl.Empty() {
		p.add(lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(" Nothing to show yet."))
		return
	}

	block, zone := m.renderStrip(s, cards)
	start := p.add(block)
	zone.top += start
	zone.dotsLine += start
	s.zone = zone
}

// renderStrip draws the visible card window with prev/next controls and
// the indicator dots. The returned zone is relative to the block.
func (m *Model) renderStrip(s *strip, cards []string) (string, stripZone) {
	fullWidth := contentWidth(m.width)
	visible := s.visibleCards()
	first := s.firstVisible()
	if first+visible > len(cards) {
		first = len(cards) - visible
		if first < 0 {
			first = 0
		}
	}

	gapCells := s.gap / unitsPerCell
	gap := strings.Repeat(" ", gapCells)
	var row []string
	for i := first; i < first+visible && i < len(cards); i++ {
		if len(row) > 0 {
			row = append(row, gap)
		}
		row = append(row, cards[i])
	}
	cardsRow := lipgloss.JoinHorizontal(lipgloss.Top, row...)
	cardsHeight := lipgloss.Height(cardsRow)

	prev := m.controlGlyph("‹", s.ctrl.AtStart(), cardsHeight)
	next := m.controlGlyph("›", s.ctrl.AtEnd(), cardsHeight)
	stripRow := lipgloss.JoinHorizontal(lipgloss.Center, prev, cardsRow, next)

	dots, dotStart, dotCount := m.renderDots(s, fullWidth)

	zone := stripZone{
		top:      0,
		height:   cardsHeight,
		dotsLine: cardsHeight,
		width:    fullWidth,
		dotStart: dotStart,
		dotCount: dotCount,
	}
	return lipgloss.JoinVertical(lipgloss.Left, stripRow, dots), zone
}

// controlGlyph renders a prev/next control column, muted when disabled.
func (m *Model) controlGlyph(glyph string, disabled bool, height int) string {
	color := m.theme.Accent
	if disabled {
		color = m.theme.BorderDim
	}
	col := lipgloss.NewStyle().
		Foreground(color).
		Bold(!disabled).
		Width(stripMargin).
		Align(lipgloss.Center).
		Render(glyph)
	return lipgloss.PlaceVertical(height, lipgloss.Center, col)
}

// renderDots renders the indicator row: exactly one active dot, at the
// current index.
func (m *Model) renderDots(s *strip, fullWidth int) (string, int, int) {
	count := s.ctrl.Indicators()
	active := s.ctrl.Index()

	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == active {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}

	rowWidth := 2*count - 1
	dotStart := (fullWidth - rowWidth) / 2
	if dotStart < 0 {
		dotStart = 0
	}

	style := lipgloss.NewStyle().Foreground(m.theme.Accent).Width(fullWidth).Align(lipgloss.Center)
	return style.Render(b.String()), dotStart, count
}

func (m *Model) sectionTitle(title string) string {
	return lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Padding(0, 1).
		Render("── " + title + " ──")
}

func (m *Model) renderHero() string {
	name := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent).
		Padding(0, 3).
		Render(m.listing.Name)
	tagline := lipgloss.NewStyle().
		Foreground(m.theme.MutedFg).
		Italic(true).
		Render(m.listing.Tagline)
	about := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Render(wordwrap.String(m.listing.About, min(contentWidth(m.width), 72)))

	centered := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		centered.Render(name),
		centered.Render(tagline),
		"",
		centered.Render(about),
	)
}

// roomCards renders one card per room at the current card width.
func (m *Model) roomCards() []string {
	w := m.rooms.cardCells()
	inner := w - 4
	if inner < 4 {
		inner = 4
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(w - 2).
		Height(8)
	nameStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg).Bold(true)
	priceStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	amenityStyle := lipgloss.NewStyle().Foreground(m.theme.SuccessFg)

	var cards []string
	for _, room := range m.listing.Rooms {
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			nameStyle.Render(truncate(room.Name, inner)),
			priceStyle.Render(truncate(room.Price, inner)),
			descStyle.Render(wordwrap.String(room.Description, inner)),
			amenityStyle.Render(truncate(strings.Join(room.Amenities, " · "), inner)),
			descStyle.Render(fmt.Sprintf("sleeps %d", room.Capacity)),
		)
		cards = append(cards, cardStyle.Render(body))
	}
	return cards
}

// galleryCards renders one card per photo.
func (m *Model) galleryCards() []string {
	w := m.gallery.cardCells()
	inner := w - 4
	if inner < 4 {
		inner = 4
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(w - 2).
		Height(8)
	artStyle := lipgloss.NewStyle().Foreground(m.theme.Highlight)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg).Bold(true)

	var cards []string
	for _, photo := range m.listing.Gallery {
		var lines []string
		for _, l := range photo.Art {
			lines = append(lines, truncate(l, inner))
		}
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			artStyle.Render(strings.Join(lines, "\n")),
			titleStyle.Render(truncate(photo.Title, inner)),
		)
		cards = append(cards, cardStyle.Render(body))
	}
	return cards
}

func (m *Model) renderTestimonials() string {
	quoteStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg).Italic(true)
	authorStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	starStyle := lipgloss.NewStyle().Foreground(m.theme.WarnFg)

	width := min(contentWidth(m.width), 72)
	var blocks []string
	for _, t := range m.listing.Testimonials {
		stars := strings.Repeat("★", t.Rating) + strings.Repeat("☆", 5-t.Rating)
		blocks = append(blocks, lipgloss.JoinVertical(
			lipgloss.Left,
			quoteStyle.Render(wordwrap.String("“"+t.Quote+"”", width)),
			authorStyle.Render(fmt.Sprintf("— %s, %s  %s", t.Author, t.Location, starStyle.Render(stars))),
			"",
		))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func (m *Model) renderContact() string {
	c := m.listing.Contact
	infoStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	info := infoStyle.Render(fmt.Sprintf("%s · %s · %s", c.Phone, c.Email, c.Address))

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		info,
		"",
		m.form.View(),
	))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
