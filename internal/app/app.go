// Package app implements the stay TUI: a single scrollable listing page
// with a navigation bar, two carousel strips, a gallery lightbox, and a
// booking-inquiry form.
package app

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dhruv5290/stay/internal/carousel"
	"github.com/Dhruv5290/stay/internal/config"
	"github.com/Dhruv5290/stay/internal/content"
	"github.com/Dhruv5290/stay/internal/log"
	"github.com/Dhruv5290/stay/internal/theme"
	"github.com/Dhruv5290/stay/internal/timing"
)

const (
	// unitsPerCell maps terminal columns to the layout units the
	// carousel package works in, so the 768-unit breakpoint lands at a
	// 76-column terminal.
	unitsPerCell = 10

	// visibleWide is how many cards a strip shows side by side in Wide
	// mode.
	visibleWide = 3

	// resizeDebounceDelay collapses resize bursts into one mode
	// recompute.
	resizeDebounceDelay = 250 * time.Millisecond

	// flashDuration is how long a form flash stays up before it
	// auto-dismisses.
	flashDuration = 4 * time.Second

	// animInterval drives the scroll offset interpolation.
	animInterval = 40 * time.Millisecond

	// roomsGap and galleryGap are the inter-card gaps in layout units.
	roomsGap   = 30
	galleryGap = 20
)

// strip bundles one carousel controller with its scroll animation state
// and the hit zones recorded during the last render.
type strip struct {
	id      stripID
	gap     int
	ctrl    *carousel.Controller
	tracker carousel.Tracker
	offset  float64 // current scroll position, layout units
	target  float64
	zone    stripZone
}

// maxScrollOffset is the largest offset the strip can animate to.
func (s *strip) maxScrollOffset() float64 {
	ms := s.ctrl.Metrics().ScrollWidth - s.ctrl.Metrics().ClientWidth
	if ms < 0 {
		ms = 0
	}
	return float64(ms)
}

// Model is the main application model.
type Model struct {
	config *config.AppConfig
	theme  *theme.Theme

	listing *content.Listing
	watcher *content.Watcher

	pageView viewport.Model
	spin     spinner.Model
	form     *inquiryForm
	lightbox lightbox

	rooms   *strip
	gallery *strip

	width  int
	height int

	loading      bool
	splashDone   bool
	contentReady bool
	loadErr      error

	activeSection section
	sectionLines  [sectionCount]int
	navZones      []navZone

	resizeDebounce timing.Debounce
	pendingWidth   int
	pendingHeight  int

	flash      string
	flashIsErr bool
	flashSeq   timing.Debounce

	animating bool
	quitting  bool
}

// NewModel creates the application model.
func NewModel(cfg *config.AppConfig) *Model {
	th := theme.GetTheme(cfg.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(th.Accent)

	m := &Model{
		config:   cfg,
		theme:    th,
		spin:     sp,
		form:     newInquiryForm(th),
		pageView: viewport.New(80, 24),
		loading:  true,
	}

	if cfg.ContentFile != "" && cfg.WatchContent {
		m.watcher = content.NewWatcher(cfg.ContentFile, log.Printf)
	}

	return m
}

// Init starts the splash timer and the content load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.loadContent(),
		m.splashMin(),
	)
}

// Close releases background resources.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool { return m.quitting }

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg.Width, msg.Height)

	case resizeSettledMsg:
		if !m.resizeDebounce.Live(msg.seq) {
			return m, nil
		}
		m.applyBreakpoint()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case contentLoadedMsg:
		return m, m.handleContentLoaded(msg)

	case splashMinMsg:
		m.splashDone = true
		m.maybeFinishSplash()
		return m, nil

	case watchEventMsg:
		return m, m.handleWatchEvent()

	case contentReloadedMsg:
		return m, m.handleContentReloaded(msg)

	case settleMsg:
		m.stripByID(msg.strip).ctrl.Settle(msg.seq)
		return m, nil

	case animTickMsg:
		return m, m.advanceAnimation()

	case flashClearMsg:
		if m.flashSeq.Live(msg.seq) {
			m.flash = ""
			m.rebuildPage()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleResize applies the new terminal size immediately to the page
// chrome, but debounces the carousel breakpoint recompute: a burst of
// resize events collapses to one mode change 250ms after the last one.
func (m *Model) handleResize(width, height int) tea.Cmd {
	first := m.width == 0
	m.width = width
	m.height = height
	m.pageView.Width = width
	m.pageView.Height = pageHeight(height)
	m.form.setWidth(contentWidth(width))

	if first {
		m.applyBreakpoint()
		return nil
	}

	m.pendingWidth = width
	m.pendingHeight = height
	seq := m.resizeDebounce.Arm()
	return tea.Tick(resizeDebounceDelay, func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq, width: width, height: height}
	})
}

// applyBreakpoint recomputes strip geometry and viewport mode after a
// settled resize. A mode flip resets the strip to its first card.
func (m *Model) applyBreakpoint() {
	widthUnits := m.width * unitsPerCell
	for _, s := range m.strips() {
		if s == nil {
			continue
		}
		if s.ctrl.Resize(widthUnits) {
			log.Printf("strip %d: mode is now %s", s.id, s.ctrl.Mode())
			s.offset = 0
			s.target = 0
		}
	}
	m.layoutStrips()
	m.snapStripOffsets()
	m.rebuildPage()
}

func (m *Model) handleContentLoaded(msg contentLoadedMsg) tea.Cmd {
	m.contentReady = true
	if msg.err != nil {
		// The built-in listing keeps the page usable.
		m.loadErr = msg.err
		m.listing = content.Default()
		log.Printf("content load failed, using defaults: %v", msg.err)
	} else {
		m.listing = msg.listing
	}
	m.buildStrips()
	m.maybeFinishSplash()

	var cmds []tea.Cmd
	if m.watcher != nil {
		if started, err := m.watcher.Start(); err != nil {
			log.Printf("content watcher: %v", err)
		} else if started {
			cmds = append(cmds, m.waitForWatch())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWatchEvent() tea.Cmd {
	m.watcher.ResetWaiting()
	cmds := []tea.Cmd{m.waitForWatch()}
	if m.watcher.ShouldReload(time.Now()) {
		cmds = append(cmds, m.reloadContent())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleContentReloaded(msg contentReloadedMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("content reload failed: %v", msg.err)
		return m.showFlash("Listing file has errors; keeping the current page", true)
	}
	m.listing = msg.listing
	m.buildStrips()
	m.rebuildPage()
	return m.showFlash("Listing updated", false)
}

// buildStrips creates fresh controllers for the current listing. Called
// on load and reload; positions reset to the first card.
func (m *Model) buildStrips() {
	widthUnits := m.width * unitsPerCell
	m.rooms = &strip{
		id:   stripRooms,
		gap:  roomsGap,
		ctrl: carousel.New(len(m.listing.Rooms), visibleWide, carousel.Metrics{}, widthUnits),
	}
	m.gallery = &strip{
		id:   stripGallery,
		gap:  galleryGap,
		ctrl: carousel.New(len(m.listing.Gallery), visibleWide, carousel.Metrics{}, widthUnits),
	}
	m.layoutStrips()
	m.rebuildPage()
}

func (m *Model) strips() []*strip {
	return []*strip{m.rooms, m.gallery}
}

func (m *Model) stripByID(id stripID) *strip {
	if id == stripRooms {
		return m.rooms
	}
	return m.gallery
}

func (m *Model) maybeFinishSplash() {
	if m.contentReady && m.splashDone {
		m.loading = false
		m.rebuildPage()
	}
}

// applyCommand takes a scroll command from a controller: render first so
// the indicators never lag the index, then start the offset animation
// and the settle timer.
func (m *Model) applyCommand(s *strip, cmd carousel.Command) tea.Cmd {
	m.rebuildPage()

	s.target = float64(cmd.Offset)
	cmds := []tea.Cmd{settleCmd(s.id, cmd.Seq)}
	if m.config.ReducedMotion {
		s.offset = s.target
		m.rebuildPage()
	} else if !m.animating {
		m.animating = true
		cmds = append(cmds, animTick())
	}
	return tea.Batch(cmds...)
}

// advanceAnimation moves every strip offset toward its target and keeps
// ticking while any strip is still in flight.
func (m *Model) advanceAnimation() tea.Cmd {
	if !m.animating {
		return nil
	}
	moving := false
	for _, s := range m.strips() {
		if s == nil {
			continue
		}
		diff := s.target - s.offset
		if math.Abs(diff) < 1 {
			s.offset = s.target
			continue
		}
		s.offset += diff * 0.35
		moving = true
	}
	m.rebuildPage()
	if !moving {
		m.animating = false
		return nil
	}
	return animTick()
}

// snapStripOffsets puts every strip offset exactly on its current index.
func (m *Model) snapStripOffsets() {
	for _, s := range m.strips() {
		if s == nil {
			continue
		}
		step := s.ctrl.Metrics().ItemWidth + s.gap
		s.offset = float64(step * s.ctrl.Index())
		s.target = s.offset
	}
}

// showFlash displays a transient message that dismisses itself.
func (m *Model) showFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashIsErr = isErr
	m.rebuildPage()
	seq := m.flashSeq.Arm()
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}

// Commands

func (m *Model) loadContent() tea.Cmd {
	path := m.config.ContentFile
	return func() tea.Msg {
		if path == "" {
			return contentLoadedMsg{listing: content.Default()}
		}
		listing, err := content.Load(path)
		return contentLoadedMsg{listing: listing, err: err}
	}
}

func (m *Model) reloadContent() tea.Cmd {
	path := m.config.ContentFile
	return func() tea.Msg {
		listing, err := content.Load(path)
		return contentReloadedMsg{listing: listing, err: err}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	ch := m.watcher.NextEvent()
	if ch == nil {
		return nil
	}
	done := m.watcher.Done
	return func() tea.Msg {
		select {
		case <-done:
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return watchEventMsg{}
		}
	}
}

func (m *Model) splashMin() tea.Cmd {
	delay := time.Duration(m.config.SplashMs) * time.Millisecond
	if delay <= 0 {
		m.splashDone = true
		return nil
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return splashMinMsg{}
	})
}

func settleCmd(id stripID, seq int) tea.Cmd {
	return tea.Tick(carousel.SettleDelay, func(time.Time) tea.Msg {
		return settleMsg{strip: id, seq: seq}
	})
}

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}
