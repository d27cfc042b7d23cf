package interact

import (
	"github.com/redexp/pedigree/layout"
	. "github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
)

func (ctrl *Controller) AddRelative(originId string, kind Kind) (*Member, error) {
	m, err := ctrl.Root.Store.AddRelative(originId, kind)

	if err != nil {
		log.Warningf("add %s to %s: %s", kind, originId, err)
		return nil, err
	}

	ctrl.Root.Changed()

	return m, nil
}

func (ctrl *Controller) UpdateMember(patch *Patch) (*Member, error) {
	m, err := ctrl.Root.Store.UpdateMember(patch)

	if err != nil {
		log.Warningf("update %s: %s", patch.Id, err)
		return nil, err
	}

	ctrl.Root.Changed()

	return m, nil
}

func (ctrl *Controller) DeleteMember(id string) ([]string, error) {
	removed, err := ctrl.Root.Store.DeleteMember(id)

	if err != nil {
		log.Warningf("delete %s: %s", id, err)
		return nil, err
	}

	for _, issue := range Integrity(ctrl.Root.Store) {
		log.Warningf("integrity: %s", issue)
	}

	ctrl.Root.Changed()

	return removed, nil
}

func (ctrl *Controller) Relayout() int {
	n := layout.Relayout(ctrl.Root.Store)
	ctrl.Root.Changed()

	return n
}

// Replace installs an imported store. Members without coordinates are placed first.
func (ctrl *Controller) Replace(store *Store) {
	n := layout.Place(store)

	log.Infof("replace store with %d members, %d placed", store.Len(), n)

	ctrl.reset()
	ctrl.Root.Replace(store)
}

func (ctrl *Controller) New() {
	ctrl.reset()
	ctrl.Root.Reset()
}

func (ctrl *Controller) Highlight(id string) bool {
	return ctrl.Root.Highlight(id)
}

func (ctrl *Controller) AddAnnotation(at Pos, text string) *Annotation {
	return ctrl.Root.AddAnnotation(at, text)
}

func (ctrl *Controller) EditAnnotation(id string, text string) error {
	return ctrl.Root.EditAnnotation(id, text)
}

func (ctrl *Controller) DeleteAnnotation(id string) error {
	return ctrl.Root.DeleteAnnotation(id)
}

func (ctrl *Controller) ToggleFootnotes(show bool) {
	ctrl.Root.ShowFootnotes = show
	ctrl.Root.Trigger(RootOnUpdate)
}

func (ctrl *Controller) reset() {
	ctrl.mode = ModeIdle
	ctrl.target = ""
	ctrl.snapshot = nil
	ctrl.moved = false
	ctrl.justPanned = false
}
