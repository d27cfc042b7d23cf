package state

import (
	. "github.com/redexp/pedigree/types"
)

// HitTest returns the topmost member within the pick radius. Later members are drawn on top.
func (store *Store) HitTest(p Pos) *Member {
	for i := len(store.Members) - 1; i >= 0; i-- {
		m := store.Members[i]

		if m.HasPos() && m.Pos().Within(p, PickRadius, PickRadius) {
			return m
		}
	}

	return nil
}

func (list Annotations) HitTest(p Pos) *Annotation {
	for i := len(list) - 1; i >= 0; i-- {
		a := list[i]

		if a.Pos().Within(p, NoteWindowX, NoteWindowY) {
			return a
		}
	}

	return nil
}
