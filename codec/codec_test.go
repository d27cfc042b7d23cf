package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/redexp/pedigree/state"
	"github.com/redexp/pedigree/utils"
)

func createStore() *Store {
	store := NewPedigree(utils.SequenceIds("m"))
	jane := store.Proband()
	jane.Name = "Jane"
	jane.AgeAtDiagnosis = "45"
	jane.Cancers = "Breast, Ovarian"
	jane.Genetics = "BRCA1"

	john, _ := store.AddRelative(jane.Id, KindSpouse)
	john.Name = "John"
	john.IsDead = true
	john.MarriageType = MarriageConsanguineous

	child, _ := store.AddRelative(jane.Id, KindChild)
	child.Name = "Ann"
	child.ClearPos()

	mother, _ := store.AddRelative(jane.Id, KindParent)
	mother.Name = "Mary"
	mother.SetPos(mother.Pos().Move(0.5, 0))

	return store
}

// shape describes topology by row index instead of ids.
func shape(store *Store) []string {
	index := make(map[string]int)

	for i, m := range store.Members {
		index[m.Id] = i
	}

	ref := func(id string) int {
		if i, ok := index[id]; ok {
			return i
		}

		return -1
	}

	list := make([]string, store.Len())

	for i, m := range store.Members {
		list[i] = strings.Join([]string{
			m.Name, string(m.Sex), m.AgeAtDiagnosis, m.Cancers, m.Genetics,
			string(m.Relationship), string(m.MarriageType),
		}, "|")

		list[i] += strings.Repeat("*", ref(m.ParentId)+1) + "/" + strings.Repeat("*", ref(m.SpouseId)+1)

		if m.IsDead {
			list[i] += "+dead"
		}
	}

	return list
}

func TestCSV_RoundTrip(t *testing.T) {
	store := createStore()

	var buf bytes.Buffer

	err := EncodeCSV(&buf, store)

	if err != nil {
		t.Fatal(err)
	}

	back, err := DecodeCSV(&buf, utils.SequenceIds("n"))

	if err != nil {
		t.Fatal(err)
	}

	expect := shape(store)
	got := shape(back)

	if len(got) != len(expect) {
		t.Fatalf("got: %d; expect: %d", len(got), len(expect))
	}

	for i := range expect {
		if got[i] != expect[i] {
			t.Errorf("%d - got: %s; expect: %s", i, got[i], expect[i])
		}
	}

	for i, m := range store.Members {
		b := back.Members[i]

		if m.HasPos() && (b.Pos() != m.Pos() || !b.PositionLocked) {
			t.Errorf("%d - got: %v; expect: %v", i, b.Pos(), m.Pos())
		}

		if !m.HasPos() && (!b.HasPos() || b.PositionLocked) {
			t.Errorf("%d - layout did not place %s", i, b.Name)
		}
	}
}

func TestCSV_Export(t *testing.T) {
	store := createStore()

	var buf bytes.Buffer
	EncodeCSV(&buf, store)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	expect := []string{
		"ID,Name,Sex,Age at Diagnosis,Cancers,Genetics,Is Deceased,Relationship,Parent ID,Spouse ID,Marriage Type,X Position,Y Position",
		`1,Jane,female,45,"Breast, Ovarian",BRCA1,false,proband,4,2,,325,325`,
		"2,John,male,,,,true,unrelated_spouse,,1,consanguineous,425,325",
		"3,Ann,female,,,,false,child,1,,,,",
		"4,Mary,male,,,,false,parent,,,,275.5,225",
	}

	if len(lines) != len(expect) {
		t.Fatalf("lines: %d", len(lines))
	}

	for i := range expect {
		if lines[i] != expect[i] {
			t.Errorf("%d - got: %s; expect: %s", i, lines[i], expect[i])
		}
	}
}

func TestCSV_Reconcile(t *testing.T) {
	src := strings.Join([]string{
		"id,NAME,Parent ID,spouse id,Relationship,Unknown Column",
		"2,Alice,1,3,proband,x",
		"3,Bob,,2,unrelated_spouse,y",
		"",
	}, "\n")

	store, err := DecodeCSV(strings.NewReader(src), utils.SequenceIds("n"))

	if err != nil {
		t.Fatal(err)
	}

	alice := store.Members[0]
	bob := store.Members[1]

	if alice.ParentId != "" {
		t.Errorf("unknown parent kept: %s", alice.ParentId)
	}

	if alice.SpouseId != bob.Id || bob.SpouseId != alice.Id {
		t.Errorf("spouses: %s %s", alice.SpouseId, bob.SpouseId)
	}

	for _, m := range store.Members {
		for _, ref := range []string{m.ParentId, m.SpouseId} {
			if ref != "" && !store.Has(ref) {
				t.Errorf("%s references missing %s", m.Name, ref)
			}
		}

		if !m.HasPos() || m.PositionLocked {
			t.Errorf("%s: %+v", m.Name, m)
		}
	}

	if alice.Pos() != Anchor || bob.Pos() != Anchor.Move(100, 0) {
		t.Errorf("layout: %v %v", alice.Pos(), bob.Pos())
	}
}

func TestCSV_ExtraProband(t *testing.T) {
	src := strings.Join([]string{
		"ID,Name,Relationship",
		"1,Jane,proband",
		"2,Ann,proband",
	}, "\n")

	store, err := DecodeCSV(strings.NewReader(src), utils.SequenceIds("n"))

	if err != nil {
		t.Fatal(err)
	}

	list := []Relationship{RelProband, RelChild}

	for i, expect := range list {
		got := store.Members[i].Relationship

		if got != expect {
			t.Errorf("%d - got: %v; expect: %v", i, got, expect)
		}
	}
}

func TestCSV_Fields(t *testing.T) {
	src := strings.Join([]string{
		"Name,Sex,Is Deceased,X Position,Y Position,Relationship,Spouse ID,ID",
		"A,MALE,TRUE,0,0,child,2,1",
		"B,female,yes,abc,10,,,2",
	}, "\n")

	store, err := DecodeCSV(strings.NewReader(src), utils.SequenceIds("n"))

	if err != nil {
		t.Fatal(err)
	}

	a := store.Members[0]
	b := store.Members[1]

	if a.Sex != SexMale || !a.IsDead || !a.HasPos() || a.Pos().X != 0 || !a.PositionLocked {
		t.Errorf("a: %+v", a)
	}

	if !a.IsProband() {
		t.Error("first row must become proband")
	}

	if b.IsDead || b.PositionLocked || b.Relationship != "" {
		t.Errorf("b: %+v", b)
	}

	if b.SpouseId != a.Id {
		t.Errorf("spouse back link: %s", b.SpouseId)
	}
}

func TestCSV_Errors(t *testing.T) {
	list := []struct {
		Src    string
		Expect error
	}{
		{"", ErrNoHeader},
		{"\n\n", ErrNoHeader},
		{"foo,bar\n1,2", ErrNoHeader},
		{"ID,Name\n", ErrNoRows},
		{"ID,Name\n,\n", ErrNoRows},
	}

	for i, item := range list {
		_, err := DecodeCSV(strings.NewReader(item.Src), nil)

		if !errors.Is(err, item.Expect) {
			t.Errorf("%d - got: %v; expect: %v", i, err, item.Expect)
		}
	}
}

func TestXLSX_RoundTrip(t *testing.T) {
	store := createStore()

	var buf bytes.Buffer

	err := EncodeXLSX(&buf, store)

	if err != nil {
		t.Fatal(err)
	}

	back, err := DecodeXLSX(bytes.NewReader(buf.Bytes()), utils.SequenceIds("n"))

	if err != nil {
		t.Fatal(err)
	}

	expect := shape(store)
	got := shape(back)

	for i := range expect {
		if got[i] != expect[i] {
			t.Errorf("%d - got: %s; expect: %s", i, got[i], expect[i])
		}
	}

	if back.Members[3].Pos() != store.Members[3].Pos() {
		t.Errorf("pos: %v", back.Members[3].Pos())
	}
}
