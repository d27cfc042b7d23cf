package state

import (
	"errors"

	. "github.com/redexp/pedigree/types"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) Opposite() Sex {
	if s == SexMale {
		return SexFemale
	}

	return SexMale
}

type Relationship string

const (
	RelProband         Relationship = "proband"
	RelParent          Relationship = "parent"
	RelChild           Relationship = "child"
	RelRelatedSpouse   Relationship = "related_spouse"
	RelUnrelatedSpouse Relationship = "unrelated_spouse"
)

func (r Relationship) IsSpouse() bool {
	return r == RelRelatedSpouse || r == RelUnrelatedSpouse
}

func (r Relationship) Valid() bool {
	switch r {
	case RelProband, RelParent, RelChild, RelRelatedSpouse, RelUnrelatedSpouse:
		return true
	}

	return false
}

type MarriageType string

const (
	MarriageConsanguineous    MarriageType = "consanguineous"
	MarriageNonConsanguineous MarriageType = "non-consanguineous"
)

func (t MarriageType) Valid() bool {
	return t == MarriageConsanguineous || t == MarriageNonConsanguineous
}

type Kind string

const (
	KindParent Kind = "parent"
	KindChild  Kind = "child"
	KindSpouse Kind = "spouse"
)

const (
	SpouseDX = 100.0
	ChildDY  = 100.0
	ChildDX  = 50.0
	ParentDY = -100.0
	ParentDX = -50.0
)

var Anchor = Pos{X: 325, Y: 325}

var (
	ErrUnknownMember       = errors.New("unknown member")
	ErrChildNeedsSpouse    = errors.New("child requires a resolved spouse")
	ErrSpouseExists        = errors.New("member already has a spouse")
	ErrParentExists        = errors.New("member already has a parent")
	ErrDeleteProband       = errors.New("proband can not be deleted")
	ErrUnknownAnnotation   = errors.New("unknown annotation")
	ErrUnknownKind         = errors.New("unknown relative kind")
	ErrProbandRelationship = errors.New("proband relationship can not be moved")
	ErrSpouseNeedsLink     = errors.New("spouse relationship requires a linked spouse")
)

type Listeners map[string][]func()

const (
	PickRadius  = 15.0
	NoteWindowX = 50.0
	NoteWindowY = 10.0
)
