package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/pizza/internal/pizza"
	"github.com/rfhold/pizza/internal/ui"
)

// handleMouseEvent turns left-button drags into pointer events for the
// session and matches press and release against clickable zones
func (m Model) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ui.Focus.Current() == ui.FocusHelp {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.hideHelp()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.session.OnPointerDown(m.pointerAt(msg))
		m.pointer = PointerState{Pressed: true, Zone: m.zoneAt(msg)}

	case tea.MouseActionMotion:
		if !m.pointer.Pressed {
			return m, nil
		}
		if cmd := m.session.OnPointerMove(m.pointerAt(msg)); cmd != pizza.NavNone {
			m.pointer.Navigated = true
		}

	case tea.MouseActionRelease:
		if !m.pointer.Pressed {
			return m, nil
		}
		m.session.OnPointerUp()
		if id, ok := m.pointer.Release(m.zoneAt(msg)); ok {
			return m, m.handleClick(id)
		}
	}
	return m, nil
}

// pointerAt converts a terminal cell into layout units
func (m Model) pointerAt(msg tea.MouseMsg) pizza.Point {
	return pizza.Point{
		X: float64(msg.X) * m.unitsPerCell,
		Y: float64(msg.Y) * m.unitsPerCell * ui.CellAspect,
	}
}

// zoneIDs lists every clickable zone on the main screen
func (m Model) zoneIDs() []string {
	ids := []string{ui.CartZoneID}
	for _, size := range pizza.Sizes {
		ids = append(ids, ui.SizeZoneID(size))
	}
	for _, category := range m.session.Catalog().Toppings() {
		ids = append(ids, ui.ToppingZoneID(category))
	}
	return ids
}

// zoneAt returns the zone under the pointer, or ""
func (m Model) zoneAt(msg tea.MouseMsg) string {
	for _, id := range m.zoneIDs() {
		if z := m.ui.Zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}

// handleClick applies a click on the zone id
func (m Model) handleClick(id string) tea.Cmd {
	if id == ui.CartZoneID {
		return m.addToCart()
	}
	for _, size := range pizza.Sizes {
		if id == ui.SizeZoneID(size) {
			m.session.SelectSize(size)
			return nil
		}
	}
	for _, category := range m.session.Catalog().Toppings() {
		if id == ui.ToppingZoneID(category) {
			m.session.ToggleTopping(category)
			return nil
		}
	}
	return nil
}
