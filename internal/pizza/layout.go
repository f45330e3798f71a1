package pizza

import (
	"fmt"
	"strings"
)

// MaxPlacements is the number of topping slots on a pizza
const MaxPlacements = 8

// Offset is a position relative to the center of the plate, in layout units.
// Positive X is right, positive Y is down.
type Offset struct {
	X int
	Y int
}

// Placement is one topping image drawn at a slot
type Placement struct {
	Category ToppingCategory
	Image    string
	Offset   Offset
}

// SlotOrder decides which selected category fills slots first
type SlotOrder int

const (
	// SlotOrderSelection fills slots in the order toppings were selected
	SlotOrderSelection SlotOrder = iota
	// SlotOrderCatalog fills slots in catalog order regardless of when
	// toppings were selected
	SlotOrderCatalog
)

func (o SlotOrder) String() string {
	if o == SlotOrderCatalog {
		return "catalog"
	}
	return "selection"
}

// ParseSlotOrder parses "selection" or "catalog". An empty name means
// SlotOrderSelection.
func ParseSlotOrder(name string) (SlotOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "selection":
		return SlotOrderSelection, nil
	case "catalog":
		return SlotOrderCatalog, nil
	default:
		return SlotOrderSelection, fmt.Errorf("unknown slot order %q", name)
	}
}

// Slot tables, one per size. Slots ring the center of the bread and spread
// further out as the bread gets larger.
var slots = map[Size][MaxPlacements]Offset{
	SizeSmall: {
		{-40, -40}, {0, -55}, {40, -40}, {-55, 0},
		{55, 0}, {-40, 40}, {0, 55}, {40, 40},
	},
	SizeMedium: {
		{-45, -45}, {0, -62}, {45, -45}, {-62, 0},
		{62, 0}, {-45, 45}, {0, 62}, {45, 45},
	},
	SizeLarge: {
		{-50, -50}, {0, -70}, {50, -50}, {-70, 0},
		{70, 0}, {-50, 50}, {0, 70}, {50, 50},
	},
}

// Slots returns the slot offsets used for a size
func Slots(size Size) [MaxPlacements]Offset {
	if table, ok := slots[size]; ok {
		return table
	}
	return slots[DefaultSize]
}

// Layout places topping images on the slots for size.
//
// Categories are visited in the order given and each category's images in
// catalog order. Every image takes the next free slot until all
// MaxPlacements slots are used; the rest are dropped.
func Layout(size Size, selected []ToppingCategory, catalog *Catalog) []Placement {
	table := Slots(size)
	placements := make([]Placement, 0, MaxPlacements)
	for _, category := range selected {
		for _, image := range catalog.Images(category) {
			if len(placements) == MaxPlacements {
				return placements
			}
			placements = append(placements, Placement{
				Category: category,
				Image:    image,
				Offset:   table[len(placements)],
			})
		}
	}
	return placements
}

// OrderToppings returns the selected categories in the order Layout should
// visit them
func OrderToppings(set ToppingSet, order SlotOrder, catalog *Catalog) []ToppingCategory {
	if order != SlotOrderCatalog {
		return set.Ordered()
	}
	var out []ToppingCategory
	for _, c := range catalog.Toppings() {
		if set.Has(c) {
			out = append(out, c)
		}
	}
	// Selected categories the catalog does not offer keep their selection
	// order after the catalog ones.
	for _, c := range set.Ordered() {
		if !containsCategory(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsCategory(list []ToppingCategory, c ToppingCategory) bool {
	for _, existing := range list {
		if existing == c {
			return true
		}
	}
	return false
}
