package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/pizza/internal/pizza"
	"github.com/rfhold/pizza/internal/ui"
)

// Model is the main application model
type Model struct {
	ctx     context.Context
	deps    *Dependencies
	session *pizza.Session

	// unitsPerCell converts terminal columns into layout units
	unitsPerCell float64

	pointer  PointerState
	ui       UIState
	quitting bool
}

func initialModel(ctx context.Context, appCtx AppContext, deps *Dependencies) Model {
	session := deps.NewSession()
	if appCtx.StartBread > 0 {
		session.State().SetActiveIndex(appCtx.StartBread - 1)
	}

	units := deps.Config.UnitsPerCell()
	return Model{
		ctx:          ctx,
		deps:         deps,
		session:      session,
		unitsPerCell: units,
		ui:           NewUIState(units),
	}
}

// Init sets the terminal title
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(ui.HeaderTitle)
}

// handleMessage handles messages that are not input
func (m Model) handleMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ToastHideMsg:
		return m.handleToastHide(msg)
	}
	return m, nil
}
