package ui

// FocusLayer represents what component currently owns keyboard input
type FocusLayer int

const (
	FocusMain FocusLayer = iota // Customization screen
	FocusHelp                   // Help dialog open
)

// String returns a human-readable name for the focus layer
func (f FocusLayer) String() string {
	switch f {
	case FocusMain:
		return "Main"
	case FocusHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// FocusStack manages the stack of focus layers.
// The stack always has at least one element (FocusMain at the bottom).
type FocusStack struct {
	stack []FocusLayer
}

// NewFocusStack creates a new focus stack with FocusMain as the base layer
func NewFocusStack() FocusStack {
	return FocusStack{
		stack: []FocusLayer{FocusMain},
	}
}

// Push adds a layer on top. Pushing the current top is a no-op.
func (f *FocusStack) Push(layer FocusLayer) {
	if f.Current() == layer {
		return
	}
	f.stack = append(f.stack, layer)
}

// Pop removes and returns the top layer, never popping FocusMain
func (f *FocusStack) Pop() FocusLayer {
	if len(f.stack) <= 1 {
		return FocusMain
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return top
}

// Current returns the top of the stack
func (f *FocusStack) Current() FocusLayer {
	if len(f.stack) == 0 {
		return FocusMain
	}
	return f.stack[len(f.stack)-1]
}

// Has returns true if the given layer is anywhere in the stack
func (f *FocusStack) Has(layer FocusLayer) bool {
	for _, l := range f.stack {
		if l == layer {
			return true
		}
	}
	return false
}

// Remove drops layer from anywhere in the stack
func (f *FocusStack) Remove(layer FocusLayer) {
	if layer == FocusMain {
		return
	}
	kept := f.stack[:0]
	for _, l := range f.stack {
		if l != layer {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, FocusMain)
	}
	f.stack = kept
}

// Depth returns the number of layers in the stack (including FocusMain)
func (f *FocusStack) Depth() int {
	return len(f.stack)
}
