package main

import (
	"github.com/charmbracelet/bubbles/help"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rfhold/pizza/internal/ui"
)

// UIState holds all UI component state, separate from the session
type UIState struct {
	// Layout dimensions
	Width  int
	Height int

	// Focus management
	Focus ui.FocusStack

	// Clickable regions, rescanned on every render
	Zones *zone.Manager

	// UI Components
	Header   ui.Header
	Plate    *ui.Plate
	Sizes    ui.SizeSelector
	Toppings ui.ToppingBar
	Cart     ui.CartButton
	Help     *ui.HelpDialog
	Footer   help.Model
	Toast    *ui.Toast
}

// NewUIState creates the UI components. unitsPerCell scales the plate.
func NewUIState(unitsPerCell float64) UIState {
	zones := zone.New()
	footer := help.New()
	footer.Styles.ShortKey = ui.ValueStyle
	footer.Styles.ShortDesc = ui.DimStyle
	footer.Styles.ShortSeparator = ui.DimStyle

	return UIState{
		Focus:    ui.NewFocusStack(),
		Zones:    zones,
		Header:   ui.NewHeader(),
		Plate:    ui.NewPlate(unitsPerCell),
		Sizes:    ui.NewSizeSelector(zones),
		Toppings: ui.NewToppingBar(zones),
		Cart:     ui.NewCartButton(zones),
		Help:     ui.NewHelpDialog(ui.Keys),
		Footer:   footer,
		Toast:    ui.NewToast(),
	}
}
