package pizza

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToppingCategory identifies a kind of topping
type ToppingCategory int

const (
	Basil ToppingCategory = iota
	Onion
	Broccoli
	Mushroom
	Sausage
)

// Categories lists every topping category in catalog order
var Categories = []ToppingCategory{Basil, Onion, Broccoli, Mushroom, Sausage}

// String returns the display name of the category
func (c ToppingCategory) String() string {
	switch c {
	case Basil:
		return "Basil"
	case Onion:
		return "Onion"
	case Broccoli:
		return "Broccoli"
	case Mushroom:
		return "Mushroom"
	case Sausage:
		return "Sausage"
	default:
		return "Unknown"
	}
}

// ParseCategory parses a category name, ignoring case
func ParseCategory(name string) (ToppingCategory, error) {
	for _, c := range Categories {
		if strings.EqualFold(c.String(), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Catalog errors
var (
	ErrEmptyCatalog      = errors.New("catalog has no variants")
	ErrUnknownCategory   = errors.New("unknown topping category")
	ErrDuplicateCategory = errors.New("duplicate topping category")
)

// Variant is one selectable bread in the catalog
type Variant struct {
	ID         int
	BreadImage string
}

// Topping holds the images drawn for one topping category, in draw order
type Topping struct {
	Category ToppingCategory
	Images   []string
}

// Catalog is the fixed set of breads and toppings for a session.
// It is never modified after it is built.
type Catalog struct {
	variants []Variant
	toppings []Topping
}

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// catalogFile is the on-disk shape of a catalog
type catalogFile struct {
	Variants []struct {
		Bread string `yaml:"bread"`
	} `yaml:"variants"`
	Toppings []struct {
		Category string   `yaml:"category"`
		Images   []string `yaml:"images"`
	} `yaml:"toppings"`
}

// DefaultCatalog returns the built-in catalog of five breads and five toppings
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog builds a catalog from YAML. Variant IDs are assigned from
// their position in the file.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(raw.Variants) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		variants: make([]Variant, 0, len(raw.Variants)),
		toppings: make([]Topping, 0, len(raw.Toppings)),
	}
	for i, v := range raw.Variants {
		c.variants = append(c.variants, Variant{ID: i, BreadImage: v.Bread})
	}

	seen := make(map[ToppingCategory]bool)
	for _, t := range raw.Toppings {
		category, err := ParseCategory(t.Category)
		if err != nil {
			return nil, err
		}
		if seen[category] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, category)
		}
		seen[category] = true
		c.toppings = append(c.toppings, Topping{
			Category: category,
			Images:   append([]string(nil), t.Images...),
		})
	}
	return c, nil
}

// Len returns the number of variants
func (c *Catalog) Len() int {
	return len(c.variants)
}

// Variant returns the variant with the given ID
func (c *Catalog) Variant(id int) (Variant, bool) {
	if id < 0 || id >= len(c.variants) {
		return Variant{}, false
	}
	return c.variants[id], true
}

// Variants returns a copy of all variants in ID order
func (c *Catalog) Variants() []Variant {
	return append([]Variant(nil), c.variants...)
}

// Toppings returns the topping categories offered, in catalog order
func (c *Catalog) Toppings() []ToppingCategory {
	out := make([]ToppingCategory, len(c.toppings))
	for i, t := range c.toppings {
		out[i] = t.Category
	}
	return out
}

// Images returns the images for a category. Categories missing from the
// catalog have no images.
func (c *Catalog) Images(category ToppingCategory) []string {
	for _, t := range c.toppings {
		if t.Category == category {
			return append([]string(nil), t.Images...)
		}
	}
	return nil
}
