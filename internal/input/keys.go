package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long a direction stays held after its last key event.
// Terminal auto-repeat usually fires every 30-50ms once started.
const DefaultHold = 150 * time.Millisecond

// Direction is one thrust axis sign.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// KeyDirection maps a tcell key event to a thrust direction.
// Arrow keys, WASD and hjkl are accepted.
func KeyDirection(ev *tcell.EventKey) Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyLeft:
		return DirLeft
	case tcell.KeyRight:
		return DirRight
	case tcell.KeyRune:
	default:
		return DirNone
	}
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return DirUp
	case 's', 'S', 'j', 'J':
		return DirDown
	case 'a', 'A', 'h', 'H':
		return DirLeft
	case 'd', 'D', 'l', 'L':
		return DirRight
	}
	return DirNone
}

// Tracker turns terminal key events, which carry presses and repeats but no
// releases, into a held-direction State. A direction counts as held until
// Hold has passed since its most recent event.
type Tracker struct {
	Hold time.Duration
	last [5]time.Time
}

// NewTracker returns a Tracker with the given hold window; hold <= 0 selects
// DefaultHold.
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Tracker{Hold: hold}
}

// Press records a direction event at now.
func (t *Tracker) Press(d Direction, now time.Time) {
	if d == DirNone {
		return
	}
	t.last[d] = now
}

// HandleKey records ev if it maps to a direction and reports whether it did.
func (t *Tracker) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	d := KeyDirection(ev)
	if d == DirNone {
		return false
	}
	t.Press(d, now)
	return true
}

// Release drops every held direction.
func (t *Tracker) Release() {
	t.last = [5]time.Time{}
}

// State returns the directions held at now.
func (t *Tracker) State(now time.Time) State {
	return State{
		Up:    t.held(DirUp, now),
		Down:  t.held(DirDown, now),
		Left:  t.held(DirLeft, now),
		Right: t.held(DirRight, now),
	}
}

func (t *Tracker) held(d Direction, now time.Time) bool {
	last := t.last[d]
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < t.Hold
}
