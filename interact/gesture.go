package interact

import (
	. "github.com/redexp/pedigree/types"
)

const (
	DoubleClickTime = 0.35
	DoubleClickSlop = 4.0
)

// Gestures turns raw button releases into clicks and double clicks for backends
// that only report button state.
type Gestures struct {
	last    Pos
	lastAt  float64
	pending bool
}

// Release reports whether this release completes a double click. now is in seconds.
func (g *Gestures) Release(at Pos, now float64) (double bool) {
	if g.pending && now-g.lastAt <= DoubleClickTime && at.Within(g.last, DoubleClickSlop, DoubleClickSlop) {
		g.pending = false
		return true
	}

	g.pending = true
	g.last = at
	g.lastAt = now

	return false
}
