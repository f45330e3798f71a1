package pizza

import (
	"fmt"
	"strings"
)

// Size is the size of a pizza
type Size int

const (
	sizeUnset Size = iota // zero value, resolves to DefaultSize
	SizeSmall
	SizeMedium
	SizeLarge
)

// DefaultSize is the size every variant starts with
const DefaultSize = SizeMedium

// PlateWidth is the width of the plate drawn behind the bread, in layout units
const PlateWidth = 250

// Sizes lists every size in selector order
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// String returns the one-letter label shown on the size selector
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "S"
	case SizeMedium:
		return "M"
	case SizeLarge:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the three sizes
func (s Size) Valid() bool {
	return s >= SizeSmall && s <= SizeLarge
}

// Price returns the price for a pizza of the given size.
// Prices are whole currency units.
func Price(s Size) int {
	switch s {
	case SizeSmall:
		return 12
	case SizeLarge:
		return 17
	default:
		return 15
	}
}

// BreadWidth returns the rendered width of the bread for a size, in layout units
func BreadWidth(s Size) int {
	switch s {
	case SizeSmall:
		return 180
	case SizeLarge:
		return 220
	default:
		return 200
	}
}

// ParseSize parses a size name such as "m", "Medium" or "L"
func ParseSize(name string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "s", "small":
		return SizeSmall, nil
	case "m", "medium":
		return SizeMedium, nil
	case "l", "large":
		return SizeLarge, nil
	default:
		return DefaultSize, fmt.Errorf("unknown size %q", name)
	}
}

// UnmarshalText lets sizes be decoded from toml and yaml strings
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText encodes a size as its one-letter label
func (s Size) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid size %d", int(s))
	}
	return []byte(s.String()), nil
}
