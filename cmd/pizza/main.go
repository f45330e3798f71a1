package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// Package-level variables for CLI arguments
var workDir string
var configPath string
var debug bool

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	default:
		return m.handleMessage(msg)
	}
}

func main() {
	flag.StringVar(&workDir, "C", "", "Run as if pizza was started in `path`")
	flag.StringVar(&workDir, "cwd", "", "Run as if pizza was started in `path`")
	flag.StringVar(&configPath, "config", "", "Read settings from `file` instead of ./pizza.toml")
	flag.BoolVar(&debug, "debug", false, "Write debug logs to pizza.log in the working directory")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pizza [flags] [bread]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  bread     Start on this bread, counting from 1\n")
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	appCtx := AppContext{StartBread: 1}
	if args := flag.Args(); len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Error: bread must be a positive number, got %q\n", args[0])
			os.Exit(2)
		}
		appCtx.StartBread = n
	}

	// Default to current directory if not specified
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	appCtx.WorkDir = workDir
	appCtx.ConfigPath = configPath

	if err := run(context.Background(), appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, appCtx AppContext) error {
	deps, err := NewProductionDependencies(ctx, appCtx, debug)
	if err != nil {
		return err
	}
	defer deps.Close(ctx)

	if appCtx.StartBread > deps.Catalog.Len() {
		return fmt.Errorf("bread %d does not exist, the menu has %d", appCtx.StartBread, deps.Catalog.Len())
	}

	m := initialModel(ctx, appCtx, deps)
	defer m.ui.Zones.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
