package main

// PointerState tracks the mouse gesture in flight. The session interprets
// the drag as a swipe; this tracks what is needed to tell a click apart
// from a swipe.
type PointerState struct {
	// Pressed is true between a left press and its release
	Pressed bool
	// Zone is the clickable zone under the press, if any
	Zone string
	// Navigated is true once the gesture has changed bread
	Navigated bool
}

// Release ends the gesture and reports the zone clicked, if any. A press
// and release on the same zone is a click unless the gesture swiped.
func (p *PointerState) Release(zoneID string) (clicked string, ok bool) {
	if p.Pressed && !p.Navigated && p.Zone != "" && p.Zone == zoneID {
		clicked, ok = p.Zone, true
	}
	*p = PointerState{}
	return clicked, ok
}
