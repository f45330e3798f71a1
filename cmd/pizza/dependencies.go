package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rfhold/pizza/internal/config"
	"github.com/rfhold/pizza/internal/pizza"
	"github.com/rfhold/pizza/internal/telemetry"
)

// debugLogFile receives debug logs while the UI owns the terminal
const debugLogFile = "pizza.log"

// AppContext holds the command line inputs for a run
type AppContext struct {
	WorkDir    string
	ConfigPath string
	StartBread int // 1-based
}

// Dependencies holds all external dependencies for the application.
// These can be replaced with test doubles for unit testing.
type Dependencies struct {
	Config    *config.Config
	Catalog   *pizza.Catalog
	Telemetry *telemetry.Telemetry
	// CartHook receives each pizza added to the cart
	CartHook pizza.CartHook

	closers []io.Closer
}

// NewProductionDependencies loads configuration and the catalog and sets up
// telemetry. debug forces debug logging on regardless of config.
func NewProductionDependencies(ctx context.Context, appCtx AppContext, debug bool) (*Dependencies, error) {
	cfg, _, err := config.Load(appCtx.WorkDir, appCtx.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if debug {
		cfg.Debug = true
	}

	deps := &Dependencies{Config: cfg}

	opts := telemetry.Options{Debug: cfg.Debug}
	if cfg.Debug {
		f, err := os.OpenFile(filepath.Join(appCtx.WorkDir, debugLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		opts.DebugOutput = f
		deps.closers = append(deps.closers, f)
	}

	tel, err := telemetry.Setup(ctx, opts)
	if err != nil {
		deps.Close(ctx)
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}
	deps.Telemetry = tel

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		deps.Close(ctx)
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	deps.Catalog = catalog

	tel.Logger.Debug("starting", "workdir", appCtx.WorkDir, "variants", catalog.Len())
	return deps, nil
}

// NewSession creates the customization session from the dependencies
func (d *Dependencies) NewSession() *pizza.Session {
	opts := d.Config.SessionOptions()
	opts.Logger = d.Telemetry.Logger
	opts.Tracer = d.Telemetry.Tracer()
	opts.CartHook = d.CartHook
	return pizza.NewSession(d.Catalog, opts)
}

// Close flushes telemetry and closes the debug log
func (d *Dependencies) Close(ctx context.Context) {
	if d.Telemetry != nil {
		if err := d.Telemetry.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: telemetry shutdown: %v\n", err)
		}
	}
	for _, c := range d.closers {
		_ = c.Close()
	}
	d.closers = nil
}
