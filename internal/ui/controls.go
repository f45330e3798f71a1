package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/pizza/internal/pizza"
)

// Zones marks rendered regions so mouse events can be matched against them.
// *zone.Manager from bubblezone satisfies it.
type Zones interface {
	Mark(id, v string) string
}

func mark(zones Zones, id, v string) string {
	if zones == nil {
		return v
	}
	return zones.Mark(id, v)
}

// CartZoneID identifies the add-to-cart button
const CartZoneID = "cart"

// SizeZoneID identifies the button for size
func SizeZoneID(size pizza.Size) string {
	return "size-" + size.String()
}

// ToppingZoneID identifies the button for a topping
func ToppingZoneID(category pizza.ToppingCategory) string {
	return "topping-" + strings.ToLower(category.String())
}

// SizeSelector renders one button per size with the current one highlighted
type SizeSelector struct {
	zones Zones
}

// NewSizeSelector creates a size selector marking its buttons in zones
func NewSizeSelector(zones Zones) SizeSelector {
	return SizeSelector{zones: zones}
}

// View renders the size buttons
func (s SizeSelector) View(current pizza.Size) string {
	buttons := make([]string, 0, len(pizza.Sizes))
	for _, size := range pizza.Sizes {
		style := ButtonStyle
		if size == current {
			style = SelectedButtonStyle
		}
		buttons = append(buttons, mark(s.zones, SizeZoneID(size), style.Render(size.String())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// ToppingBar renders one toggle button per offered topping
type ToppingBar struct {
	zones Zones
}

// NewToppingBar creates a topping bar marking its buttons in zones
func NewToppingBar(zones Zones) ToppingBar {
	return ToppingBar{zones: zones}
}

// View renders the topping buttons in catalog order. Buttons are numbered
// for the keyboard.
func (t ToppingBar) View(offered []pizza.ToppingCategory, selected pizza.ToppingSet) string {
	buttons := make([]string, 0, len(offered))
	for i, category := range offered {
		style := ButtonStyle
		if selected.Has(category) {
			style = SelectedButtonStyle
		}
		label := fmt.Sprintf("%d %s %s", i+1,
			ToppingStyle(category).Render(ToppingGlyph(category)), category.String())
		buttons = append(buttons, mark(t.zones, ToppingZoneID(category), style.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// CartButton renders the add-to-cart button with the price
type CartButton struct {
	zones Zones
}

// NewCartButton creates a cart button marking itself in zones
func NewCartButton(zones Zones) CartButton {
	return CartButton{zones: zones}
}

// View renders the button
func (c CartButton) View(price int) string {
	label := fmt.Sprintf("%s Add to cart  %s", IconCart, FormatPrice(price))
	return mark(c.zones, CartZoneID, CartButtonStyle.Render(label))
}

// FormatPrice renders a price in whole dollars
func FormatPrice(price int) string {
	return fmt.Sprintf("$%d", price)
}
