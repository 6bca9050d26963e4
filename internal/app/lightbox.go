package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lightbox is the fullscreen photo overlay opened from the gallery.
// It keeps its own index so browsing inside it never disturbs the
// gallery carousel.
type lightbox struct {
	open  bool
	index int
}

// Open shows photo i of n.
func (l *lightbox) Open(i, n int) {
	if n == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	l.open = true
	l.index = i
}

// Close hides the overlay.
func (l *lightbox) Close() { l.open = false }

// Next advances to the following photo, stopping at the last.
func (l *lightbox) Next(n int) {
	if l.index < n-1 {
		l.index++
	}
}

// Prev steps back, stopping at the first photo.
func (l *lightbox) Prev() {
	if l.index > 0 {
		l.index--
	}
}

// renderLightbox draws the enlarged photo centered on a dimmed screen.
func (m *Model) renderLightbox() string {
	photos := m.listing.Gallery
	if len(photos) == 0 {
		m.lightbox.Close()
		return ""
	}
	if m.lightbox.index >= len(photos) {
		m.lightbox.index = len(photos) - 1
	}
	photo := photos[m.lightbox.index]

	artStyle := lipgloss.NewStyle().Foreground(m.theme.Highlight)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg).Bold(true)
	captionStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Italic(true)
	counterStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)

	// Double up the art horizontally for an enlarged feel.
	var art []string
	for _, line := range photo.Art {
		var b strings.Builder
		for _, r := range line {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		art = append(art, b.String())
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		artStyle.Render(strings.Join(art, "\n")),
		"",
		titleStyle.Render(photo.Title),
		captionStyle.Render(photo.Caption),
		"",
		counterStyle.Render(fmt.Sprintf("%d / %d · ←/→ browse · esc close", m.lightbox.index+1, len(photos))),
	)

	frame := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.theme.Accent).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}
