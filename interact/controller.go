package interact

import (
	"strings"

	. "github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pedigree.interact")

type Mode string

const (
	ModeIdle     Mode = "idle"
	ModeDragging Mode = "dragging-member"
	ModePanning  Mode = "panning"
)

type EffectType string

const (
	EffectFocusMember      EffectType = "focusMember"
	EffectAnnotationMenu   EffectType = "annotationMenu"
	EffectPromptAnnotation EffectType = "promptAnnotation"
)

// Effect is what the surrounding UI has to do after a click.
type Effect struct {
	Type         EffectType `json:"type"`
	MemberId     string     `json:"memberId,omitempty"`
	AnnotationId string     `json:"annotationId,omitempty"`
	At           Pos        `json:"at"`
}

type Key struct {
	Name string `json:"key"`
	Ctrl bool   `json:"ctrl"`
	Meta bool   `json:"meta"`
}

type Controller struct {
	Root *Root

	mode       Mode
	target     string
	last       Pos
	snapshot   *Store
	moved      bool
	justPanned bool
}

func NewController(root *Root) *Controller {
	return &Controller{
		Root: root,
		mode: ModeIdle,
	}
}

func (ctrl *Controller) Mode() Mode {
	return ctrl.mode
}

func (ctrl *Controller) Target() string {
	return ctrl.target
}

func (ctrl *Controller) PointerDown(screen Pos) {
	root := ctrl.Root
	at := root.View.ToModel(screen)
	ctrl.moved = false
	ctrl.justPanned = false

	if m := root.Store.HitTest(at); m != nil {
		ctrl.mode = ModeDragging
		ctrl.target = m.Id
		ctrl.snapshot = root.Snapshot()
		log.Debugf("drag %s", m.Id)
		return
	}

	ctrl.mode = ModePanning
	ctrl.last = screen
}

// PointerMove returns true when something visible changed.
func (ctrl *Controller) PointerMove(screen Pos) bool {
	root := ctrl.Root

	switch ctrl.mode {
	case ModeDragging:
		m := root.Store.Get(ctrl.target)

		if m == nil {
			return false
		}

		m.SetPos(root.View.ToModel(screen))
		ctrl.moved = true
		root.Trigger(RootOnUpdate)

		return true

	case ModePanning:
		d := ctrl.last.Distance(screen)
		ctrl.last = screen

		if d.X == 0 && d.Y == 0 {
			return false
		}

		root.View.Pan(d.X, d.Y)
		ctrl.moved = true
		root.Trigger(RootOnUpdate)

		return true
	}

	return false
}

// PointerUp ends a drag or a pan. Leaving the canvas counts as up.
func (ctrl *Controller) PointerUp() {
	root := ctrl.Root

	switch ctrl.mode {
	case ModePanning:
		ctrl.justPanned = ctrl.moved

	case ModeDragging:
		m := root.Store.Get(ctrl.target)

		if ctrl.moved && m != nil && ctrl.snapshot != nil {
			root.Undo.Push(ctrl.snapshot)
			m.PositionLocked = true
			root.Changed()
			log.Debugf("dropped %s at %v", m.Id, m.Pos())
		}
	}

	ctrl.mode = ModeIdle
	ctrl.target = ""
	ctrl.snapshot = nil
	ctrl.moved = false
}

// Click highlights a member, opens an annotation menu or asks for a new annotation.
// A click that only ends a pan does nothing.
func (ctrl *Controller) Click(screen Pos) *Effect {
	if ctrl.justPanned {
		ctrl.justPanned = false
		return nil
	}

	root := ctrl.Root
	at := root.View.ToModel(screen)

	if effect := ctrl.focus(at); effect != nil {
		return effect
	}

	if a := root.Annotations.HitTest(at); a != nil {
		return &Effect{
			Type:         EffectAnnotationMenu,
			AnnotationId: a.Id,
			At:           at,
		}
	}

	if ctrl.mode == ModePanning {
		return nil
	}

	return &Effect{
		Type: EffectPromptAnnotation,
		At:   at,
	}
}

func (ctrl *Controller) DoubleClick(screen Pos) *Effect {
	return ctrl.focus(ctrl.Root.View.ToModel(screen))
}

func (ctrl *Controller) focus(at Pos) *Effect {
	m := ctrl.Root.Store.HitTest(at)

	if m == nil {
		return nil
	}

	ctrl.Root.Highlight(m.Id)

	return &Effect{
		Type:     EffectFocusMember,
		MemberId: m.Id,
		At:       at,
	}
}

// Key handles arrow pan and undo. Returns false for keys it does not know.
func (ctrl *Controller) Key(key Key) bool {
	if (key.Ctrl || key.Meta) && strings.EqualFold(key.Name, "z") {
		ctrl.Undo()
		return true
	}

	dir, ok := arrows[key.Name]

	if !ok {
		return false
	}

	return ctrl.Pan(dir)
}

var arrows = map[string]Direction{
	"ArrowUp":    DirUp,
	"ArrowDown":  DirDown,
	"ArrowLeft":  DirLeft,
	"ArrowRight": DirRight,
}

func (ctrl *Controller) Undo() bool {
	if ctrl.mode == ModeDragging {
		return false
	}

	ok := ctrl.Root.PopUndo()

	if ok {
		log.Debugf("undo, %d left", ctrl.Root.Undo.Len())
	}

	return ok
}

func (ctrl *Controller) Pan(dir Direction) bool {
	ok := ctrl.Root.View.PanTo(dir)

	if ok {
		ctrl.Root.Trigger(RootOnUpdate)
	}

	return ok
}

func (ctrl *Controller) Zoom(in bool) float64 {
	ctrl.Root.View.Zoom(in)
	ctrl.Root.Trigger(RootOnUpdate)

	return ctrl.Root.View.Scale
}
