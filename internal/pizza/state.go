package pizza

// ToppingSet is a set of topping categories that remembers the order in
// which categories were added. Slot assignment in Layout follows this order.
type ToppingSet struct {
	order []ToppingCategory
}

// Has returns true if the category is in the set
func (t ToppingSet) Has(c ToppingCategory) bool {
	for _, existing := range t.order {
		if existing == c {
			return true
		}
	}
	return false
}

// Len returns the number of categories in the set
func (t ToppingSet) Len() int {
	return len(t.order)
}

// Ordered returns the categories in insertion order
func (t ToppingSet) Ordered() []ToppingCategory {
	return append([]ToppingCategory(nil), t.order...)
}

// toggle adds c if absent and removes it if present
func (t *ToppingSet) toggle(c ToppingCategory) {
	for i, existing := range t.order {
		if existing == c {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			return
		}
	}
	t.order = append(t.order, c)
}

func (t ToppingSet) clone() ToppingSet {
	return ToppingSet{order: t.Ordered()}
}

// VariantCustomization is the size and toppings chosen for one variant
type VariantCustomization struct {
	VariantID int
	Size      Size
	Toppings  ToppingSet
}

// State holds the customization of every variant and which variant is
// active. It has exactly one VariantCustomization per catalog variant for
// its whole lifetime.
//
// State is not safe for concurrent use; it is owned by the single event loop
// that drives the screen.
type State struct {
	catalog        *Catalog
	initialSize    Size
	active         int
	customizations []VariantCustomization // indexed by variant ID
}

// NewState creates a state with every variant at the default size, no
// toppings, and the first variant active
func NewState(catalog *Catalog) *State {
	return NewStateWithSize(catalog, DefaultSize)
}

// NewStateWithSize is like NewState but starts every variant at size
func NewStateWithSize(catalog *Catalog, size Size) *State {
	if !size.Valid() {
		size = DefaultSize
	}
	s := &State{
		catalog:        catalog,
		initialSize:    size,
		customizations: make([]VariantCustomization, catalog.Len()),
	}
	for i := range s.customizations {
		s.customizations[i] = VariantCustomization{VariantID: i, Size: size}
	}
	return s
}

// Len returns the number of variants
func (s *State) Len() int {
	return len(s.customizations)
}

// ActiveIndex returns the index of the active variant
func (s *State) ActiveIndex() int {
	return s.active
}

// Active returns the active variant and a copy of its customization
func (s *State) Active() (Variant, VariantCustomization) {
	v, _ := s.catalog.Variant(s.active)
	return v, s.Customization(s.active)
}

// Customization returns a copy of the customization for a variant.
// Unknown IDs return the zero value.
func (s *State) Customization(variantID int) VariantCustomization {
	if !s.valid(variantID) {
		return VariantCustomization{}
	}
	c := s.customizations[variantID]
	c.Toppings = c.Toppings.clone()
	return c
}

// SetActiveIndex makes the variant at index active. Out of range indexes are
// ignored.
func (s *State) SetActiveIndex(index int) {
	if !s.valid(index) {
		return
	}
	s.active = index
}

// Navigate moves the active index one step in the direction of cmd
func (s *State) Navigate(cmd NavCommand) {
	switch cmd {
	case NavigatePrevious:
		s.SetActiveIndex(s.active - 1)
	case NavigateNext:
		s.SetActiveIndex(s.active + 1)
	}
}

// SetSize sets the size of a variant
func (s *State) SetSize(variantID int, size Size) {
	if !s.valid(variantID) || !size.Valid() {
		return
	}
	s.customizations[variantID].Size = size
}

// ToggleTopping adds the category to the variant's toppings, or removes it
// if it is already there
func (s *State) ToggleTopping(variantID int, category ToppingCategory) {
	if !s.valid(variantID) {
		return
	}
	s.customizations[variantID].Toppings.toggle(category)
}

// Reset restores a variant to its starting size with no toppings
func (s *State) Reset(variantID int) {
	if !s.valid(variantID) {
		return
	}
	s.customizations[variantID] = VariantCustomization{VariantID: variantID, Size: s.initialSize}
}

func (s *State) valid(index int) bool {
	return index >= 0 && index < len(s.customizations)
}
