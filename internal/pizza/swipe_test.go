package pizza

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// drag runs a full press/move/release gesture against a state and returns
// the resulting active index
func drag(s *State, sw *SwipeInterpreter, dx float64) int {
	const startX = 200.0
	sw.PointerDown(startX)
	s.Navigate(sw.PointerMove(startX+dx, s.ActiveIndex(), s.Len()))
	sw.PointerUp()
	return s.ActiveIndex()
}

func TestSwipeFromMiddle(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want int
	}{
		{"left past threshold", -60, 3},
		{"right past threshold", 60, 1},
		{"left under threshold", -40, 2},
		{"right under threshold", 40, 2},
		{"exactly threshold right", 50, 2},
		{"exactly threshold left", -50, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultCatalog())
			s.SetActiveIndex(2)

			assert.Equal(t, tt.want, drag(s, NewSwipeInterpreter(DefaultSwipeThreshold), tt.dx))
		})
	}
}

func TestSwipeClampsAtEnds(t *testing.T) {
	s := NewState(DefaultCatalog())
	sw := NewSwipeInterpreter(0)

	assert.Equal(t, 0, drag(s, sw, 60))

	s.SetActiveIndex(4)
	assert.Equal(t, 4, drag(s, sw, -60))
}

func TestSwipeClampedCommandIsNone(t *testing.T) {
	sw := NewSwipeInterpreter(50)

	sw.PointerDown(0)
	assert.Equal(t, NavNone, sw.PointerMove(70, 0, 5))
	sw.PointerUp()

	sw.PointerDown(0)
	assert.Equal(t, NavNone, sw.PointerMove(-70, 4, 5))
}

func TestSwipeEmitsOnePerGesture(t *testing.T) {
	sw := NewSwipeInterpreter(50)
	sw.PointerDown(100)

	assert.Equal(t, NavNone, sw.PointerMove(80, 2, 5))
	assert.Equal(t, NavigateNext, sw.PointerMove(40, 2, 5))
	assert.Equal(t, NavNone, sw.PointerMove(-200, 3, 5))
	assert.Equal(t, NavNone, sw.PointerMove(400, 3, 5))
	assert.Equal(t, GestureDragging, sw.State())

	sw.PointerUp()
	sw.PointerDown(100)
	assert.Equal(t, NavigatePrevious, sw.PointerMove(151, 3, 5))
}

func TestSwipeStateTransitions(t *testing.T) {
	sw := NewSwipeInterpreter(50)
	assert.Equal(t, GestureIdle, sw.State())

	sw.PointerDown(10)
	assert.Equal(t, GesturePressed, sw.State())

	sw.PointerMove(20, 0, 5)
	assert.Equal(t, GestureDragging, sw.State())

	sw.PointerUp()
	assert.Equal(t, GestureIdle, sw.State())

	sw.PointerDown(10)
	sw.Cancel()
	assert.Equal(t, GestureIdle, sw.State())
}

func TestSwipeIgnoresMovesWhileIdle(t *testing.T) {
	sw := NewSwipeInterpreter(50)

	assert.Equal(t, NavNone, sw.PointerMove(-500, 2, 5))
	assert.Equal(t, GestureIdle, sw.State())
}

func TestSwipeCancelDropsPendingGesture(t *testing.T) {
	sw := NewSwipeInterpreter(50)
	sw.PointerDown(100)
	sw.PointerMove(70, 2, 5)
	sw.Cancel()

	// A move after cancel belongs to no gesture
	assert.Equal(t, NavNone, sw.PointerMove(0, 2, 5))
}

func TestNewSwipeInterpreterThreshold(t *testing.T) {
	assert.Equal(t, DefaultSwipeThreshold, NewSwipeInterpreter(-1).Threshold())
	assert.Equal(t, 12.5, NewSwipeInterpreter(12.5).Threshold())
}
