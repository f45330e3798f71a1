package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/pizza/internal/ui"
)

const tooSmallMessage = "Terminal too small, enlarge it to see your pizza"

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ui.Focus.Current() == ui.FocusHelp {
		return m.ui.Zones.Scan(m.ui.Help.View())
	}

	snap := m.session.Snapshot()

	m.ui.Header.SetSnapshot(snap)
	header := m.ui.Header.View()

	footer := m.renderFooter()

	// Calculate available height for main content
	mainHeight := m.ui.Height - lipgloss.Height(header) - lipgloss.Height(footer)
	if mainHeight < 1 {
		mainHeight = 1
	}

	m.ui.Plate.SetSnapshot(snap)
	sizeRow := lipgloss.JoinHorizontal(lipgloss.Center,
		m.ui.Sizes.View(snap.Customization.Size),
		ui.PriceStyle.Render(ui.FormatPrice(snap.Price)),
	)
	mainContent := lipgloss.JoinVertical(lipgloss.Center,
		m.ui.Plate.View(),
		"",
		sizeRow,
		m.ui.Toppings.View(snap.Toppings, snap.Customization.Toppings),
		m.ui.Cart.View(snap.Price),
	)
	var mainArea string
	if lipgloss.Width(mainContent) > m.ui.Width || lipgloss.Height(mainContent) > mainHeight {
		mainArea = ui.RenderCenteredMessage(tooSmallMessage, m.ui.Width, mainHeight)
	} else {
		mainArea = lipgloss.Place(m.ui.Width, mainHeight, lipgloss.Center, lipgloss.Center, mainContent)
	}

	return m.ui.Zones.Scan(lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer))
}

// renderFooter renders the toast, if any, above the keybind hints
func (m Model) renderFooter() string {
	hints := m.ui.Footer.View(ui.Keys)
	if toast := m.ui.Toast.View(m.ui.Width); toast != "" {
		return lipgloss.JoinVertical(lipgloss.Left, toast, hints)
	}
	return hints
}
