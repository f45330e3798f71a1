package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/pizza/internal/pizza"
	"github.com/rfhold/pizza/internal/ui"
)

// handleKeyPress routes keys to the focused layer
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.ui.Focus.Current() {
	case ui.FocusHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleMainKeys(msg)
	}
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.Help), key.Matches(msg, ui.Keys.Escape):
		m.hideHelp()
	case key.Matches(msg, ui.Keys.Quit):
		return m.quit()
	default:
		m.ui.Help.Update(msg)
	}
	return m, nil
}

func (m Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return m.quit()
	case key.Matches(msg, ui.Keys.Help):
		m.showHelp()
	case key.Matches(msg, ui.Keys.Previous):
		m.session.Previous()
	case key.Matches(msg, ui.Keys.Next):
		m.session.Next()
	case key.Matches(msg, ui.Keys.SizeSmall):
		m.session.SelectSize(pizza.SizeSmall)
	case key.Matches(msg, ui.Keys.SizeMedium):
		m.session.SelectSize(pizza.SizeMedium)
	case key.Matches(msg, ui.Keys.SizeLarge):
		m.session.SelectSize(pizza.SizeLarge)
	case key.Matches(msg, ui.Keys.Reset):
		m.session.ResetActive()
	case key.Matches(msg, ui.Keys.AddToCart):
		return m, m.addToCart()
	default:
		if i := ui.Keys.ToppingIndex(msg); i >= 0 {
			m.toggleToppingAt(i)
		}
	}
	return m, nil
}

// toggleToppingAt toggles the i-th topping the catalog offers
func (m Model) toggleToppingAt(i int) {
	offered := m.session.Catalog().Toppings()
	if i < len(offered) {
		m.session.ToggleTopping(offered[i])
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
