package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/pizza/internal/pizza"
)

// Color palette (Tokyo Night)
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#bb9af7")
	ColorText      = lipgloss.Color("#c0caf5")
	ColorDim       = lipgloss.Color("#565f89")
	ColorError     = lipgloss.Color("#f7768e")
	ColorBg        = lipgloss.Color("#1a1b26")
	ColorSelection = lipgloss.Color("#283457") // selected button background
	ColorSuccess   = lipgloss.Color("#9ece6a")

	// Plate and bread colors
	ColorPlate = lipgloss.Color("#a9b1d6")

	// Topping colors
	ColorBasil    = lipgloss.Color("#9ece6a") // green
	ColorOnion    = lipgloss.Color("#bb9af7") // purple
	ColorBroccoli = lipgloss.Color("#73daca") // teal
	ColorMushroom = lipgloss.Color("#c0caf5") // pale
	ColorSausage  = lipgloss.Color("#f7768e") // red
)

// breadColors are cycled by variant ID
var breadColors = []lipgloss.Color{
	lipgloss.Color("#e0af68"), // golden
	lipgloss.Color("#ff9e64"), // toasted
	lipgloss.Color("#d7a65f"), // wholewheat
	lipgloss.Color("#b4845a"), // rye
	lipgloss.Color("#f5c28b"), // semolina
}

// Styles
var (
	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	PriceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Padding(0, 1)

	// Button styles
	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Foreground(ColorDim).
			Padding(0, 1)

	SelectedButtonStyle = ButtonStyle.
				BorderForeground(ColorPrimary).
				Background(ColorSelection).
				Foreground(ColorText).
				Bold(true)

	CartButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Foreground(ColorSuccess).
			Bold(true).
			Padding(0, 2)

	PlateStyle = lipgloss.NewStyle().
			Foreground(ColorPlate)

	// Variant indicator styles
	ActiveDotStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7dcfff"))
)

// Icons
const (
	IconBack      = "←"
	IconFavorite  = "♥"
	IconCart      = "⊕"
	IconDot       = "○"
	IconActiveDot = "●"
	IconPlate     = "·"
	IconBread     = "▒"
)

// ToppingGlyph returns the single-cell glyph drawn for a topping
func ToppingGlyph(c pizza.ToppingCategory) string {
	switch c {
	case pizza.Basil:
		return "♣"
	case pizza.Onion:
		return "o"
	case pizza.Broccoli:
		return "♠"
	case pizza.Mushroom:
		return "♦"
	case pizza.Sausage:
		return "●"
	default:
		return "*"
	}
}

// ToppingStyle returns the style for a topping's glyph
func ToppingStyle(c pizza.ToppingCategory) lipgloss.Style {
	var color lipgloss.Color
	switch c {
	case pizza.Basil:
		color = ColorBasil
	case pizza.Onion:
		color = ColorOnion
	case pizza.Broccoli:
		color = ColorBroccoli
	case pizza.Mushroom:
		color = ColorMushroom
	case pizza.Sausage:
		color = ColorSausage
	default:
		color = ColorText
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

// BreadStyle returns the style for a bread, by variant ID
func BreadStyle(variantID int) lipgloss.Style {
	if variantID < 0 {
		variantID = 0
	}
	return lipgloss.NewStyle().Foreground(breadColors[variantID%len(breadColors)])
}

// Layout constants for UI components
const (
	// DefaultUnitsPerCell is how many layout units one terminal column covers
	DefaultUnitsPerCell = 8.0
	// CellAspect is how many columns make up the height of one row
	CellAspect = 2.0
)
