package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/pizza/internal/pizza"
)

// HeaderTitle is shown in the middle of the header bar
const HeaderTitle = "Pizza"

// Header renders the top bar: back icon, title, favourite icon, and one dot
// per bread with the active one filled
type Header struct {
	width  int
	active int
	count  int
	bread  string
}

// NewHeader creates a new header component
func NewHeader() Header {
	return Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSnapshot updates the header from the session
func (h *Header) SetSnapshot(snap pizza.Snapshot) {
	h.active = snap.Variant.ID
	h.count = snap.VariantCount
	h.bread = snap.Variant.BreadImage
}

// View renders the header
func (h *Header) View() string {
	inner := h.width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	left := DimStyle.Render(IconBack)
	title := TitleStyle.Render(HeaderTitle)
	right := ErrorStyle.Render(IconFavorite)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(title) - lipgloss.Width(right)
	leftGap := gap / 2
	rightGap := gap - leftGap
	if leftGap < 1 {
		leftGap, rightGap = 1, 1
	}
	top := left + strings.Repeat(" ", leftGap) + title + strings.Repeat(" ", rightGap) + right

	dots := h.renderDots()
	bread := truncateMiddle(h.bread, inner-lipgloss.Width(dots)-2)
	bottom := lipgloss.PlaceHorizontal(inner, lipgloss.Center, dots+"  "+DimStyle.Render(bread))

	return BoxStyle.Width(h.width - 2).Render(top + "\n" + bottom)
}

func (h *Header) renderDots() string {
	dots := make([]string, h.count)
	for i := range dots {
		if i == h.active {
			dots[i] = ActiveDotStyle.Render(IconActiveDot)
		} else {
			dots[i] = DimStyle.Render(IconDot)
		}
	}
	return strings.Join(dots, " ")
}
