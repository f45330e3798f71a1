package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long the toast is visible
const ToastDuration = 3 * time.Second

// Toast is a temporary notification shown above the footer
type Toast struct {
	message string
	visible bool
	seq     int
}

// ToastHideMsg hides the toast shown with the matching sequence number
type ToastHideMsg struct {
	Seq int
}

// NewToast creates a new toast component
func NewToast() *Toast {
	return &Toast{}
}

// Show displays message and returns the command that hides it again.
// Hiding is keyed to this call so an older tick cannot hide a newer toast.
func (t *Toast) Show(message string) tea.Cmd {
	t.seq++
	t.message = message
	t.visible = true

	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastHideMsg{Seq: seq}
	})
}

// HandleHide hides the toast if msg belongs to the latest Show
func (t *Toast) HandleHide(msg ToastHideMsg) {
	if msg.Seq == t.seq {
		t.Hide()
	}
}

// Hide hides the toast
func (t *Toast) Hide() {
	t.visible = false
	t.message = ""
}

// Visible returns whether the toast is visible
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the text being shown
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast centered in width
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(ColorSuccess).
		Padding(0, 2).
		Bold(true)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(t.message))
}
