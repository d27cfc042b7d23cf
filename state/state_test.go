package state

import (
	"testing"

	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
)

func TestViewZoom(t *testing.T) {
	v := NewView()

	for range 100 {
		v.Zoom(true)
	}

	if v.Scale != MaxScale {
		t.Errorf("max: %v", v.Scale)
	}

	for range 100 {
		v.Zoom(false)
	}

	if v.Scale != MinScale {
		t.Errorf("min: %v", v.Scale)
	}

	v.SetScale(1.23)

	if v.Scale != 1.2 {
		t.Errorf("round: %v", v.Scale)
	}
}

func TestViewTransform(t *testing.T) {
	v := View{Scale: 2, Offset: Pos{X: 10, Y: -20}}

	list := []Pos{
		{X: 0, Y: 0},
		{X: 325, Y: 325},
		{X: -15.5, Y: 40},
	}

	for i, p := range list {
		screen := v.ToScreen(p)
		back := v.ToModel(screen)

		if back != p {
			t.Errorf("%d - got: %v; expect: %v", i, back, p)
		}
	}

	if v.ToModel(Pos{X: 30, Y: 0}) != (Pos{X: 10, Y: 10}) {
		t.Errorf("ToModel: %v", v.ToModel(Pos{X: 30, Y: 0}))
	}
}

func TestViewPan(t *testing.T) {
	list := []struct {
		Dir    Direction
		Expect Pos
	}{
		{DirUp, Pos{X: 0, Y: 10}},
		{DirDown, Pos{X: 0, Y: -10}},
		{DirLeft, Pos{X: 10, Y: 0}},
		{DirRight, Pos{X: -10, Y: 0}},
	}

	for i, item := range list {
		v := NewView()

		if !v.PanTo(item.Dir) || v.Offset != item.Expect {
			t.Errorf("%d - got: %v; expect: %v", i, v.Offset, item.Expect)
		}
	}

	v := NewView()

	if v.PanTo("north") {
		t.Error("unknown direction accepted")
	}
}

func TestAnnotations(t *testing.T) {
	list := make(Annotations, 0)

	if list.Add("a0", Pos{}, "  ") != nil || len(list) != 0 {
		t.Fatal("blank annotation added")
	}

	a := list.Add("a1", Pos{X: 100, Y: 100}, "first")
	b := list.Add("a2", Pos{X: 120, Y: 105}, "second")

	if list.HitTest(Pos{X: 110, Y: 104}) != b {
		t.Error("last added must win")
	}

	if list.HitTest(Pos{X: 60, Y: 100}) != a {
		t.Error("window x")
	}

	if list.HitTest(Pos{X: 100, Y: 120}) != nil {
		t.Error("window y")
	}

	err := list.Edit("a1", "edited")

	if err != nil || a.Text != "edited" {
		t.Errorf("edit: %v %s", err, a.Text)
	}

	err = list.Delete("a2")

	if err != nil || len(list) != 1 {
		t.Errorf("delete: %v %d", err, len(list))
	}

	if list.Delete("a2") == nil {
		t.Error("double delete")
	}
}

func TestStoreHitTest(t *testing.T) {
	store := NewPedigree(utils.SequenceIds("m"))
	jane := store.Proband()
	spouse, _ := store.AddRelative(jane.Id, KindSpouse)
	spouse.SetPos(jane.Pos().Move(5, 0))

	if store.HitTest(jane.Pos()) != spouse {
		t.Error("last inserted must win")
	}

	if store.HitTest(jane.Pos().Move(-14, 14)) != jane {
		t.Error("within radius")
	}

	if store.HitTest(jane.Pos().Move(-15, 0)) != nil {
		t.Error("radius is exclusive")
	}
}

func TestRoot(t *testing.T) {
	root := CreateRoot(utils.SequenceIds("m"))
	calls := 0

	root.OnUpdate(func() {
		calls++
	})

	proband := root.Store.Proband()

	if proband == nil || proband.Sex != SexFemale || proband.Pos() != Anchor {
		t.Fatalf("proband: %+v", proband)
	}

	if root.Highlighted != proband.Id {
		t.Errorf("highlight: %s", root.Highlighted)
	}

	root.Store.AddRelative(proband.Id, KindSpouse)
	root.Changed()

	if root.Highlighted != "" {
		t.Error("mutation must clear highlight")
	}

	root.AddAnnotation(Pos{X: 1, Y: 1}, "note")
	root.View.Pan(5, 5)
	root.Undo.Push(root.Snapshot())
	root.Reset()

	if root.Store.Len() != 1 || len(root.Annotations) != 0 || root.View != NewView() || root.Undo.Len() != 0 {
		t.Errorf("reset: %d %d %v", root.Store.Len(), len(root.Annotations), root.View)
	}

	if calls != 3 {
		t.Errorf("calls: %d", calls)
	}

	if root.PopUndo() {
		t.Error("empty undo")
	}
}

func TestIntegrity(t *testing.T) {
	store := NewPedigree(utils.SequenceIds("m"))
	jane := store.Proband()
	parent, _ := store.AddRelative(jane.Id, KindParent)
	spouse, _ := store.AddRelative(jane.Id, KindSpouse)

	if len(Integrity(store)) != 0 {
		t.Fatalf("clean store: %v", Integrity(store))
	}

	store.DeleteMember(parent.Id)
	spouse.SpouseId = ""

	issues := Integrity(store)

	if len(issues) != 3 {
		t.Fatalf("issues: %v", issues)
	}

	expect := []IssueType{IssueDanglingParent, IssueOneSidedSpouse, IssueMissingSpouse}

	for i, issue := range issues {
		if issue.Type != expect[i] {
			t.Errorf("%d - got: %s; expect: %s", i, issue.Type, expect[i])
		}
	}
}

func TestDescribe(t *testing.T) {
	store := NewPedigree(utils.SequenceIds("m"))
	jane := store.Proband()
	jane.Name = "Jane"
	spouse, _ := store.AddRelative(jane.Id, KindSpouse)
	spouse.Name = "John"
	child, _ := store.AddRelative(jane.Id, KindChild)
	parent, _ := store.AddRelative(jane.Id, KindParent)

	list := []struct {
		Member *Member
		Expect string
	}{
		{jane, "Proband"},
		{spouse, "Spouse of Jane"},
		{child, "Child of Jane and John"},
		{parent, "Parent of Jane"},
	}

	for i, item := range list {
		got := Describe(store, item.Member)

		if got != item.Expect {
			t.Errorf("%d - got: %s; expect: %s", i, got, item.Expect)
		}
	}
}
