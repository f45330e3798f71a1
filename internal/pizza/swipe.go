package pizza

// DefaultSwipeThreshold is the horizontal distance a drag must exceed before
// it changes the active variant
const DefaultSwipeThreshold = 50.0

// NavCommand is the outcome of interpreting a pointer event
type NavCommand int

const (
	NavNone          NavCommand = iota // Stay on the active variant
	NavigatePrevious                   // Move one variant toward the start
	NavigateNext                       // Move one variant toward the end
)

func (c NavCommand) String() string {
	switch c {
	case NavigatePrevious:
		return "previous"
	case NavigateNext:
		return "next"
	default:
		return "none"
	}
}

// GestureState is the state of the in-flight gesture
type GestureState int

const (
	GestureIdle     GestureState = iota // No pointer down
	GesturePressed                      // Pointer down, not moved yet
	GestureDragging                     // Pointer moved since the press
)

func (g GestureState) String() string {
	switch g {
	case GestureIdle:
		return "Idle"
	case GesturePressed:
		return "Pressed"
	case GestureDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// SwipeInterpreter turns a stream of horizontal pointer events into at most
// one navigation command per press/release cycle.
//
// A press records the start position. Each move compares the distance from
// the start against the threshold: dragging right past it asks for the
// previous variant, dragging left past it asks for the next one. Once the
// threshold has been crossed the gesture is handled and further moves are
// ignored until the pointer is released.
type SwipeInterpreter struct {
	threshold float64
	state     GestureState
	startX    float64
	handled   bool
}

// NewSwipeInterpreter creates an interpreter with the given threshold.
// Non-positive thresholds fall back to DefaultSwipeThreshold.
func NewSwipeInterpreter(threshold float64) *SwipeInterpreter {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeInterpreter{threshold: threshold}
}

// State returns the current gesture state
func (s *SwipeInterpreter) State() GestureState {
	return s.state
}

// Threshold returns the drag distance needed to navigate
func (s *SwipeInterpreter) Threshold() float64 {
	return s.threshold
}

// PointerDown starts a new gesture at x
func (s *SwipeInterpreter) PointerDown(x float64) {
	s.state = GesturePressed
	s.startX = x
	s.handled = false
}

// PointerMove feeds the current pointer position. active is the active
// variant index and count the number of variants; they are used to clamp
// the command at either end of the list.
func (s *SwipeInterpreter) PointerMove(x float64, active, count int) NavCommand {
	if s.state == GestureIdle {
		return NavNone
	}
	s.state = GestureDragging
	if s.handled {
		return NavNone
	}

	dx := x - s.startX
	switch {
	case dx > s.threshold:
		s.handled = true
		if active > 0 {
			return NavigatePrevious
		}
	case dx < -s.threshold:
		s.handled = true
		if active < count-1 {
			return NavigateNext
		}
	}
	return NavNone
}

// PointerUp ends the gesture
func (s *SwipeInterpreter) PointerUp() {
	s.reset()
}

// Cancel abandons the gesture without emitting anything
func (s *SwipeInterpreter) Cancel() {
	s.reset()
}

func (s *SwipeInterpreter) reset() {
	s.state = GestureIdle
	s.startX = 0
	s.handled = false
}
