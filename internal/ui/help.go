package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key  string
	Desc string
}

// helpSections titles the groups returned by KeyMap.FullHelp
var helpSections = []string{"Breads", "Size", "Order", "General"}

// HelpDialog renders a help overlay
type HelpDialog struct {
	items    []HelpItem
	width    int
	height   int
	viewport viewport.Model
	ready    bool
}

// NewHelpDialog creates a help dialog listing the bindings in keys
func NewHelpDialog(keys KeyMap) *HelpDialog {
	var items []HelpItem
	for i, group := range keys.FullHelp() {
		title := ""
		if i < len(helpSections) {
			title = helpSections[i]
		}
		items = append(items, HelpItem{Desc: title})
		for _, b := range group {
			items = append(items, helpItem(b))
		}
		if i == 0 {
			items = append(items, HelpItem{Key: "drag", Desc: "swipe between breads"})
		}
		if i == 1 && len(keys.Toppings) > 0 {
			first := keys.Toppings[0].Help().Key
			last := keys.Toppings[len(keys.Toppings)-1].Help().Key
			items = append(items, HelpItem{Key: first + "-" + last, Desc: "toggle topping"})
		}
	}
	return &HelpDialog{items: items}
}

func helpItem(b key.Binding) HelpItem {
	h := b.Help()
	return HelpItem{Key: h.Key, Desc: h.Desc}
}

// SetSize sets the dialog dimensions for centering
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height

	content := h.buildContent()
	contentLines := strings.Count(content, "\n") + 1

	// Border, padding, title and a screen margin
	dialogChrome := 10
	maxVpHeight := height - dialogChrome
	if maxVpHeight < 3 {
		maxVpHeight = 3
	}
	vpHeight := min(contentLines, maxVpHeight)

	if !h.ready {
		h.viewport = viewport.New(36, vpHeight)
		h.ready = true
	} else {
		h.viewport.Width = 36
		h.viewport.Height = vpHeight
	}
	h.viewport.SetContent(content)
}

func (h *HelpDialog) buildContent() string {
	var lines []string
	for _, item := range h.items {
		if item.Key == "" {
			lines = append(lines, "", LabelStyle.Render(item.Desc))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s  %s",
			ValueStyle.Render(fmt.Sprintf("%8s", item.Key)),
			DimStyle.Render(item.Desc)))
	}

	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

// Update handles key events for scrolling
func (h *HelpDialog) Update(msg tea.KeyMsg) {
	if !h.ready {
		return
	}
	h.viewport, _ = h.viewport.Update(msg)
}

// GotoTop scrolls to the top of the help content
func (h *HelpDialog) GotoTop() {
	if h.ready {
		h.viewport.SetYOffset(0)
	}
}

// View renders the help dialog centered on screen
func (h *HelpDialog) View() string {
	title := DialogTitleStyle.Render("Keyboard Shortcuts")

	var content string
	if h.ready {
		scrollable := h.viewport.TotalLineCount() > h.viewport.Height
		parts := make([]string, 0, 3)
		if scrollable {
			parts = append(parts, scrollIndicator("▲", h.viewport.YOffset > 0))
		}
		parts = append(parts, h.viewport.View())
		if scrollable {
			parts = append(parts, scrollIndicator("▼", !h.viewport.AtBottom()))
		}
		content = strings.Join(parts, "\n")
	} else {
		content = h.buildContent()
	}

	dialog := DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg),
	)
}

// scrollIndicator keeps its width when hidden so the dialog does not jump
func scrollIndicator(arrow string, show bool) string {
	if !show {
		return "       "
	}
	return ScrollIndicatorStyle.Render("      " + arrow)
}
