package main

import "github.com/rfhold/pizza/internal/ui"

// showHelp shows the help dialog and pushes focus to it
func (m *Model) showHelp() {
	m.ui.Help.GotoTop()
	m.ui.Focus.Push(ui.FocusHelp)
}

// hideHelp hides the help dialog and pops focus
func (m *Model) hideHelp() {
	m.ui.Focus.Remove(ui.FocusHelp)
}
