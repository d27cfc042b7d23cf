package layout

import (
	"math"

	. "github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pedigree.layout")

type walker struct {
	store   *Store
	visited map[string]bool
	placed  int
}

// Place gives coordinates to members that have none. Existing coordinates are never touched.
func Place(store *Store) int {
	proband := store.Proband()

	if proband == nil {
		return 0
	}

	w := &walker{
		store:   store,
		visited: make(map[string]bool),
	}

	start := Anchor

	if proband.HasPos() {
		start = proband.Pos()
	}

	w.walk(proband, start)

	for _, m := range store.Members {
		if m.HasPos() || w.visited[m.Id] {
			continue
		}

		box, _ := Bounds(store)
		w.walk(m, Pos{X: box.Right() + ss.DetachedGap, Y: start.Y})
	}

	log.Debugf("placed %d of %d members", w.placed, store.Len())

	return w.placed
}

// Relayout forgets derived coordinates and places everyone again.
// Locked members and the proband keep their position.
func Relayout(store *Store) int {
	for _, m := range store.Members {
		if m.PositionLocked || m.IsProband() {
			continue
		}

		m.ClearPos()
	}

	return Place(store)
}

func (w *walker) walk(member *Member, at Pos) {
	if member == nil || w.visited[member.Id] {
		return
	}

	w.visited[member.Id] = true

	if !member.HasPos() {
		member.SetPos(at)
		w.placed++
	}

	pos := member.Pos()
	spouse := w.store.SpouseOf(member.Id)

	if spouse != nil {
		w.walk(spouse, pos.Move(ss.SpouseGap, 0))
	}

	children := w.store.ChildrenOf(member.Id)
	center := pos.X

	if spouse != nil && spouse.HasPos() {
		center = Mid(pos, spouse.Pos()).X
	}

	for i, child := range children {
		w.walk(child, Pos{
			X: FanX(center, i, len(children)),
			Y: pos.Y + ss.GenerationGap,
		})
	}

	w.walk(w.store.ParentOf(member.Id), pos.Move(0, -ss.GenerationGap))
}

// FanX spreads count items around center with a fixed step.
func FanX(center float64, index int, count int) float64 {
	return center + (float64(index)-float64(count-1)/2)*ss.ChildStep
}

// Bounds of all placed members. False when nobody has coordinates.
func Bounds(store *Store) (box Rect, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, m := range store.Members {
		if !m.HasPos() {
			continue
		}

		ok = true
		p := m.Pos()
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	if !ok {
		return
	}

	box = Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}

	return
}
