package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/pizza/internal/ui"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.ui.Width = msg.Width
	m.ui.Height = msg.Height
	m.ui.Header.SetWidth(msg.Width)
	m.ui.Help.SetSize(msg.Width, msg.Height)
	m.ui.Footer.Width = msg.Width
	return m, nil
}

func (m Model) handleToastHide(msg ui.ToastHideMsg) (tea.Model, tea.Cmd) { //nolint:unparam // Bubble Tea handler signature
	m.ui.Toast.HandleHide(msg)
	return m, nil
}

// addToCart hands the pizza to the session and confirms with a toast
func (m Model) addToCart() tea.Cmd {
	m.session.AddToCart(m.ctx)
	snap := m.session.Snapshot()

	toppings := make([]string, 0, snap.Customization.Toppings.Len())
	for _, c := range snap.Customization.Toppings.Ordered() {
		toppings = append(toppings, strings.ToLower(c.String()))
	}
	desc := "plain"
	if len(toppings) > 0 {
		desc = strings.Join(toppings, ", ")
	}
	return m.ui.Toast.Show(fmt.Sprintf("Added %s %s (%s) %s",
		snap.Customization.Size, snap.Variant.BreadImage, desc, ui.FormatPrice(snap.Price)))
}
