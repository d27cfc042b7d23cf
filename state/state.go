package state

import (
	"sync"

	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
)

type Root struct {
	Store         *Store
	Annotations   Annotations
	View          View
	Undo          UndoStack
	Highlighted   string
	ShowFootnotes bool
	Listeners     Listeners

	UpdateLock sync.Mutex

	newId utils.IdGenerator
}

func CreateRoot(newId utils.IdGenerator) *Root {
	if newId == nil {
		newId = utils.NewId
	}

	root := &Root{
		Listeners:     make(Listeners),
		ShowFootnotes: true,
		newId:         newId,
	}

	root.reset()

	return root
}

func (root *Root) NewId() string {
	return root.newId()
}

// Reset starts a new pedigree: lone proband, no annotations, default view.
func (root *Root) Reset() {
	root.reset()
	root.Trigger(RootOnUpdate)
}

func (root *Root) reset() {
	root.Store = NewPedigree(root.newId)
	root.Annotations = make(Annotations, 0)
	root.View = NewView()
	root.Undo.Clear()
	root.Highlighted = root.Store.Proband().Id
}

// Replace swaps the whole member store, as after an import.
func (root *Root) Replace(store *Store) {
	root.Store = store
	root.Undo.Clear()
	root.Changed()
}

// Changed is called after every store mutation.
func (root *Root) Changed() {
	root.Highlighted = ""
	root.Trigger(RootOnUpdate)
}

func (root *Root) Highlight(id string) bool {
	if !root.Store.Has(id) {
		return false
	}

	root.Highlighted = id
	root.Trigger(RootOnUpdate)

	return true
}

func (root *Root) HighlightedMember() *Member {
	return root.Store.Get(root.Highlighted)
}

func (root *Root) Snapshot() *Store {
	return root.Store.Clone()
}

// PopUndo restores the last snapshot. Empty stack is a no-op.
func (root *Root) PopUndo() bool {
	prev := root.Undo.Pop()

	if prev == nil {
		return false
	}

	root.Store = prev
	root.Trigger(RootOnUpdate)

	return true
}

func (root *Root) AddAnnotation(p Pos, text string) *Annotation {
	a := root.Annotations.Add(root.newId(), p, text)

	if a != nil {
		root.Trigger(RootOnUpdate)
	}

	return a
}

func (root *Root) EditAnnotation(id string, text string) error {
	err := root.Annotations.Edit(id, text)

	if err == nil {
		root.Trigger(RootOnUpdate)
	}

	return err
}

func (root *Root) DeleteAnnotation(id string) error {
	err := root.Annotations.Delete(id)

	if err == nil {
		root.Trigger(RootOnUpdate)
	}

	return err
}

func (root *Root) Trigger(event string) {
	list, exist := root.Listeners[event]

	if !exist {
		return
	}

	for _, cb := range list {
		cb()
	}
}

const RootOnUpdate = "update"

func (root *Root) OnUpdate(cb func()) {
	list, exist := root.Listeners[RootOnUpdate]

	if !exist {
		list = make([]func(), 0)
	}

	root.Listeners[RootOnUpdate] = append(list, cb)
}
