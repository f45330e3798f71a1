package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rfhold/pizza/internal/pizza"
)

// KeyMap defines all application keybindings
type KeyMap struct {
	// Navigation between breads
	Previous key.Binding
	Next     key.Binding

	// Sizes (uppercase)
	SizeSmall  key.Binding
	SizeMedium key.Binding
	SizeLarge  key.Binding

	// Toppings, indexed by catalog position
	Toppings []key.Binding

	// Actions
	AddToCart key.Binding
	Reset     key.Binding

	// General
	Escape key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Keys is the default keybinding configuration
var Keys = KeyMap{
	Previous: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous bread"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next bread"),
	),

	SizeSmall: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "small"),
	),
	SizeMedium: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "medium"),
	),
	SizeLarge: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "large"),
	),

	Toppings: toppingBindings(len(pizza.Categories)),

	AddToCart: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add to cart"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset bread"),
	),

	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// toppingBindings binds the digit keys 1..n to topping slots
func toppingBindings(n int) []key.Binding {
	bindings := make([]key.Binding, 0, n)
	for i := 1; i <= n && i <= 9; i++ {
		k := fmt.Sprintf("%d", i)
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, "toggle topping"),
		))
	}
	return bindings
}

// ToppingIndex returns the catalog position bound to msg, or -1
func (k *KeyMap) ToppingIndex(msg fmt.Stringer) int {
	for i, b := range k.Toppings {
		for _, k := range b.Keys() {
			if k == msg.String() {
				return i
			}
		}
	}
	return -1
}

// ShortHelp returns keybindings for the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.AddToCart, k.Help, k.Quit}
}

// FullHelp returns keybindings grouped for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.SizeSmall, k.SizeMedium, k.SizeLarge},
		{k.AddToCart, k.Reset},
		{k.Help, k.Quit},
	}
}
