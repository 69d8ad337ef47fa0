// Package input holds the decoded directional input consumed by the
// simulation, and the terminal decoder that produces it.
package input

// State is the set of thrust directions held during a tick. Every
// combination is valid; opposite directions are both honored.
type State struct {
	Up, Down, Left, Right bool
}

// Pressed returns how many directions are held.
func (s State) Pressed() int {
	n := 0
	for _, b := range [...]bool{s.Up, s.Down, s.Left, s.Right} {
		if b {
			n++
		}
	}
	return n
}

// Any reports whether at least one direction is held.
func (s State) Any() bool { return s.Pressed() > 0 }
