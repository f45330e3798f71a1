// Package config loads pizza.toml and the optional .env file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/rfhold/pizza/internal/pizza"
)

// FileName is the config file looked up in the working directory
const FileName = "pizza.toml"

// DefaultUnitsPerCell is how many layout units one terminal column spans
const DefaultUnitsPerCell = 8.0

// GestureConfig tunes swipe handling
type GestureConfig struct {
	// Threshold is the drag distance, in layout units, needed to change bread
	Threshold float64 `toml:"threshold"`
	// UnitsPerCell converts terminal columns into layout units
	UnitsPerCell float64 `toml:"units_per_cell"`
}

// LayoutConfig tunes topping placement
type LayoutConfig struct {
	// SlotOrder is "selection" (default) or "catalog"
	SlotOrder string `toml:"slot_order"`
}

// CatalogConfig points at a catalog file replacing the built-in one
type CatalogConfig struct {
	// Path to a YAML catalog, relative to the config file
	Path string `toml:"path"`
}

// Config is the application configuration
type Config struct {
	Debug       bool          `toml:"debug"`
	DefaultSize string        `toml:"default_size"`
	Gesture     GestureConfig `toml:"gesture"`
	Layout      LayoutConfig  `toml:"layout"`
	Catalog     CatalogConfig `toml:"catalog"`

	// dir is the directory relative paths resolve against
	dir string
}

// Default returns the configuration used when no pizza.toml exists
func Default() *Config {
	return &Config{
		Gesture: GestureConfig{
			Threshold:    pizza.DefaultSwipeThreshold,
			UnitsPerCell: DefaultUnitsPerCell,
		},
	}
}

// Load reads configuration for workDir.
//
// A .env file in workDir is loaded into the environment first; variables
// already set win. The config file is path if given, else workDir/pizza.toml
// if present, else defaults. PIZZA_DEBUG overrides the debug setting.
// Returns the config and the path it was read from ("" for defaults).
func Load(workDir, path string) (*Config, string, error) {
	if err := godotenv.Load(filepath.Join(workDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	cfg.dir = workDir

	if path == "" {
		candidate := filepath.Join(workDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", path, err)
		}
		cfg.dir = filepath.Dir(path)
	}

	if v := os.Getenv("PIZZA_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, "", fmt.Errorf("invalid PIZZA_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Validate checks values that cannot be expressed in the toml types
func (c *Config) Validate() error {
	if c.DefaultSize != "" {
		if _, err := pizza.ParseSize(c.DefaultSize); err != nil {
			return fmt.Errorf("default_size: %w", err)
		}
	}
	if _, err := pizza.ParseSlotOrder(c.Layout.SlotOrder); err != nil {
		return fmt.Errorf("layout.slot_order: %w", err)
	}
	if c.Gesture.Threshold < 0 {
		return fmt.Errorf("gesture.threshold must not be negative, got %v", c.Gesture.Threshold)
	}
	if c.Gesture.UnitsPerCell < 0 {
		return fmt.Errorf("gesture.units_per_cell must not be negative, got %v", c.Gesture.UnitsPerCell)
	}
	return nil
}

// Size returns the starting size for every bread
func (c *Config) Size() pizza.Size {
	if c.DefaultSize == "" {
		return pizza.DefaultSize
	}
	size, err := pizza.ParseSize(c.DefaultSize)
	if err != nil {
		return pizza.DefaultSize
	}
	return size
}

// SlotOrder returns the topping slot order
func (c *Config) SlotOrder() pizza.SlotOrder {
	order, _ := pizza.ParseSlotOrder(c.Layout.SlotOrder)
	return order
}

// UnitsPerCell returns the column to layout unit scale, never zero
func (c *Config) UnitsPerCell() float64 {
	if c.Gesture.UnitsPerCell <= 0 {
		return DefaultUnitsPerCell
	}
	return c.Gesture.UnitsPerCell
}

// SessionOptions builds session options from the config
func (c *Config) SessionOptions() pizza.SessionOptions {
	return pizza.SessionOptions{
		SwipeThreshold: c.Gesture.Threshold,
		SlotOrder:      c.SlotOrder(),
		InitialSize:    c.Size(),
	}
}

// LoadCatalog returns the configured catalog, or the built-in one when no
// catalog path is set
func (c *Config) LoadCatalog() (*pizza.Catalog, error) {
	if c.Catalog.Path == "" {
		return pizza.DefaultCatalog(), nil
	}
	path := c.Catalog.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.dir, path)
	}
	return pizza.LoadCatalog(path)
}
