package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dhruv5290/stay/internal/models"
	"github.com/Dhruv5290/stay/internal/theme"
)

// Field order in the inquiry form.
const (
	fieldName = iota
	fieldEmail
	fieldDates
	fieldMessage
	fieldCount
)

// inquiryForm is the booking-inquiry form on the contact section.
type inquiryForm struct {
	theme   *theme.Theme
	name    textinput.Model
	email   textinput.Model
	dates   textinput.Model
	message textarea.Model
	focus   int // -1 while the form is inactive
}

func newInquiryForm(th *theme.Theme) *inquiryForm {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		in.PromptStyle = lipgloss.NewStyle().Foreground(th.Accent)
		return in
	}

	msg := textarea.New()
	msg.Placeholder = "Anything we should know? Arrival time, allergies, the dog…"
	msg.CharLimit = 600
	msg.SetWidth(48)
	msg.SetHeight(4)

	return &inquiryForm{
		theme:   th,
		name:    newInput("Your name", 80),
		email:   newInput("you@example.com", 120),
		dates:   newInput("e.g. 12–16 May", 60),
		message: msg,
		focus:   -1,
	}
}

// Active reports whether the form currently owns keyboard input.
func (f *inquiryForm) Active() bool { return f.focus >= 0 }

// InMessage reports whether focus is on the multi-line message box.
func (f *inquiryForm) InMessage() bool { return f.focus == fieldMessage }

// Activate focuses the first field.
func (f *inquiryForm) Activate() tea.Cmd {
	f.focus = fieldName
	return f.applyFocus()
}

// Deactivate blurs every field and returns input to the page.
func (f *inquiryForm) Deactivate() {
	f.focus = -1
	f.name.Blur()
	f.email.Blur()
	f.dates.Blur()
	f.message.Blur()
}

// Next moves focus to the following field, wrapping around.
func (f *inquiryForm) Next() tea.Cmd {
	f.focus = (f.focus + 1) % fieldCount
	return f.applyFocus()
}

// Prev moves focus to the previous field, wrapping around.
func (f *inquiryForm) Prev() tea.Cmd {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
	return f.applyFocus()
}

func (f *inquiryForm) applyFocus() tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.dates.Blur()
	f.message.Blur()

	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldDates:
		return f.dates.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

// Update routes a message to the focused field.
func (f *inquiryForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldDates:
		f.dates, cmd = f.dates.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

// Inquiry snapshots the current field values.
func (f *inquiryForm) Inquiry() models.Inquiry {
	return models.Inquiry{
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Dates:   strings.TrimSpace(f.dates.Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

// Reset clears every field.
func (f *inquiryForm) Reset() {
	f.name.SetValue("")
	f.email.SetValue("")
	f.dates.SetValue("")
	f.message.SetValue("")
}

// setWidth resizes the fields for a new page width.
func (f *inquiryForm) setWidth(width int) {
	w := width - 12
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	f.name.Width = w
	f.email.Width = w
	f.dates.Width = w
	f.message.SetWidth(w + 8)
}

// View renders the form with labels; the focused label is highlighted.
func (f *inquiryForm) View() string {
	label := lipgloss.NewStyle().Foreground(f.theme.MutedFg).Width(9)
	focusedLabel := lipgloss.NewStyle().Foreground(f.theme.Accent).Bold(true).Width(9)

	row := func(field int, name, view string) string {
		st := label
		if f.focus == field {
			st = focusedLabel
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, st.Render(name), view)
	}

	hint := ""
	if !f.Active() {
		hint = lipgloss.NewStyle().Foreground(f.theme.MutedFg).Italic(true).
			Render("press enter to start filling in the form")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		row(fieldName, "Name", f.name.View()),
		row(fieldEmail, "Email", f.email.View()),
		row(fieldDates, "Dates", f.dates.View()),
		row(fieldMessage, "Message", f.message.View()),
		hint,
	)
}
