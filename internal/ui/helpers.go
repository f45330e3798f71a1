package ui

import "github.com/charmbracelet/lipgloss"

// truncateMiddle shortens s to maxLen by replacing its middle with an ellipsis
func truncateMiddle(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen || maxLen < 5 {
		return s
	}
	half := (maxLen - 1) / 2
	return string(runes[:half]) + "…" + string(runes[len(runes)-(maxLen-1-half):])
}

// RenderCenteredMessage renders a dim message in the middle of the area
func RenderCenteredMessage(msg string, width, height int) string {
	content := DimStyle.Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
