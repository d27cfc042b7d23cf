package interact

import (
	"errors"
	"testing"

	. "github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
)

func createController() (*Controller, *Member) {
	root := CreateRoot(utils.SequenceIds("m"))
	ctrl := NewController(root)

	return ctrl, root.Store.Proband()
}

func TestDragUndo(t *testing.T) {
	ctrl, jane := createController()
	root := ctrl.Root
	before := jane.Pos()

	if ctrl.Undo() {
		t.Error("undo on empty stack")
	}

	ctrl.PointerDown(before.Move(3, 3))

	if ctrl.Mode() != ModeDragging || ctrl.Target() != jane.Id {
		t.Fatalf("mode: %s %s", ctrl.Mode(), ctrl.Target())
	}

	ctrl.PointerMove(Pos{X: 100, Y: 120})
	ctrl.PointerUp()

	moved := root.Store.Proband()

	if moved.Pos() != (Pos{X: 100, Y: 120}) || !moved.PositionLocked {
		t.Fatalf("drag: %+v", moved)
	}

	if root.Undo.Len() != 1 {
		t.Fatalf("undo stack: %d", root.Undo.Len())
	}

	if !ctrl.Key(Key{Name: "z", Ctrl: true}) {
		t.Fatal("undo key")
	}

	restored := root.Store.Proband()

	if restored.Pos() != before || restored.PositionLocked {
		t.Errorf("restored: %+v", restored)
	}

	if ctrl.Undo() {
		t.Error("second undo")
	}
}

func TestDragKeepsOthers(t *testing.T) {
	ctrl, jane := createController()
	root := ctrl.Root

	_, err := ctrl.AddRelative(jane.Id, KindParent)

	if err != nil {
		t.Fatal(err)
	}

	spouse, err := ctrl.AddRelative(jane.Id, KindSpouse)

	if err != nil {
		t.Fatal(err)
	}

	for range 2 {
		if _, err = ctrl.AddRelative(jane.Id, KindChild); err != nil {
			t.Fatal(err)
		}
	}

	before := map[string]Pos{}

	for _, m := range root.Store.MembersIter() {
		before[m.Id] = m.Pos()
	}

	screen := root.View.ToScreen(spouse.Pos())
	ctrl.PointerDown(screen)
	ctrl.PointerMove(screen.Move(1, 1))
	ctrl.PointerUp()

	if !spouse.PositionLocked {
		t.Error("dragged member is not locked")
	}

	for _, m := range root.Store.MembersIter() {
		expect := before[m.Id]

		if m.Id == spouse.Id {
			expect = root.View.ToModel(screen.Move(1, 1))
		}

		if m.Pos() != expect {
			t.Errorf("%s - got: %v; expect: %v", m.Id, m.Pos(), expect)
		}
	}
}

func TestDragWithZoom(t *testing.T) {
	ctrl, jane := createController()
	root := ctrl.Root
	root.View = View{Scale: 2, Offset: Pos{X: -300, Y: -300}}

	screen := root.View.ToScreen(jane.Pos())
	ctrl.PointerDown(screen)
	ctrl.PointerMove(screen.Move(20, 0))
	ctrl.PointerUp()

	if jane.Pos() != Anchor.Move(10, 0) {
		t.Errorf("got: %v", jane.Pos())
	}
}

func TestClickWithoutMoveIsNotPan(t *testing.T) {
	ctrl, _ := createController()

	ctrl.PointerDown(Pos{X: 10, Y: 10})
	ctrl.PointerUp()

	effect := ctrl.Click(Pos{X: 10, Y: 10})

	if effect == nil || effect.Type != EffectPromptAnnotation || effect.At != (Pos{X: 10, Y: 10}) {
		t.Errorf("effect: %+v", effect)
	}

	if ctrl.Root.Undo.Len() != 0 {
		t.Error("click pushed undo")
	}
}

func TestPanSuppressesClick(t *testing.T) {
	ctrl, _ := createController()
	root := ctrl.Root

	ctrl.PointerDown(Pos{X: 10, Y: 10})
	ctrl.PointerMove(Pos{X: 30, Y: 5})
	ctrl.PointerUp()

	if root.View.Offset != (Pos{X: 20, Y: -5}) {
		t.Errorf("offset: %v", root.View.Offset)
	}

	if ctrl.Click(Pos{X: 30, Y: 5}) != nil {
		t.Error("click after pan")
	}

	if ctrl.Click(Pos{X: 30, Y: 5}) == nil {
		t.Error("flag is one shot")
	}

	if root.Undo.Len() != 0 {
		t.Error("pan pushed undo")
	}
}

func TestClick(t *testing.T) {
	ctrl, jane := createController()
	root := ctrl.Root
	root.Highlighted = ""

	a := ctrl.AddAnnotation(Pos{X: 100, Y: 100}, "note")

	list := []struct {
		At     Pos
		Type   EffectType
		Target string
	}{
		{jane.Pos().Move(10, -10), EffectFocusMember, jane.Id},
		{Pos{X: 140, Y: 95}, EffectAnnotationMenu, a.Id},
		{Pos{X: 200, Y: 200}, EffectPromptAnnotation, ""},
	}

	for i, item := range list {
		effect := ctrl.Click(item.At)

		if effect == nil || effect.Type != item.Type {
			t.Errorf("%d - effect: %+v", i, effect)
			continue
		}

		target := effect.MemberId + effect.AnnotationId

		if target != item.Target {
			t.Errorf("%d - got: %s; expect: %s", i, target, item.Target)
		}
	}

	if root.Highlighted != jane.Id {
		t.Errorf("highlight: %s", root.Highlighted)
	}
}

func TestDoubleClick(t *testing.T) {
	ctrl, jane := createController()
	ctrl.AddAnnotation(Pos{X: 100, Y: 100}, "note")

	if ctrl.DoubleClick(Pos{X: 100, Y: 100}) != nil {
		t.Error("double click on annotation")
	}

	effect := ctrl.DoubleClick(jane.Pos())

	if effect == nil || effect.MemberId != jane.Id {
		t.Errorf("effect: %+v", effect)
	}
}

func TestKeys(t *testing.T) {
	ctrl, _ := createController()

	list := []struct {
		Key    Key
		Ok     bool
		Offset Pos
	}{
		{Key{Name: "ArrowUp"}, true, Pos{X: 0, Y: 10}},
		{Key{Name: "ArrowLeft"}, true, Pos{X: 10, Y: 10}},
		{Key{Name: "ArrowRight"}, true, Pos{X: 0, Y: 10}},
		{Key{Name: "ArrowDown"}, true, Pos{X: 0, Y: 0}},
		{Key{Name: "Enter"}, false, Pos{X: 0, Y: 0}},
		{Key{Name: "Z", Meta: true}, true, Pos{X: 0, Y: 0}},
	}

	for i, item := range list {
		ok := ctrl.Key(item.Key)

		if ok != item.Ok || ctrl.Root.View.Offset != item.Offset {
			t.Errorf("%d - got: %v %v; expect: %v %v", i, ok, ctrl.Root.View.Offset, item.Ok, item.Offset)
		}
	}
}

func TestZoom(t *testing.T) {
	ctrl, _ := createController()

	if s := ctrl.Zoom(true); s != 1.1 {
		t.Errorf("in: %v", s)
	}

	for range 20 {
		ctrl.Zoom(false)
	}

	if ctrl.Root.View.Scale != MinScale {
		t.Errorf("min: %v", ctrl.Root.View.Scale)
	}
}

func TestOps(t *testing.T) {
	ctrl, jane := createController()
	root := ctrl.Root

	_, err := ctrl.AddRelative(jane.Id, KindChild)

	if !errors.Is(err, ErrChildNeedsSpouse) || root.Store.Len() != 1 {
		t.Fatalf("child without spouse: %v", err)
	}

	spouse, err := ctrl.AddRelative(jane.Id, KindSpouse)

	if err != nil {
		t.Fatal(err)
	}

	if root.Highlighted != "" {
		t.Error("mutation keeps highlight")
	}

	_, err = ctrl.DeleteMember(jane.Id)

	if !errors.Is(err, ErrDeleteProband) {
		t.Errorf("delete proband: %v", err)
	}

	removed, err := ctrl.DeleteMember(spouse.Id)

	if err != nil || len(removed) != 1 {
		t.Errorf("delete: %v %v", removed, err)
	}

	ctrl.ToggleFootnotes(false)
	ctrl.New()

	if root.Store.Len() != 1 || root.Highlighted != root.Store.Proband().Id {
		t.Errorf("new: %d %s", root.Store.Len(), root.Highlighted)
	}
}
