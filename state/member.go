package state

import (
	"iter"

	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
)

type Member struct {
	Id             string       `json:"id"`
	Name           string       `json:"name"`
	Sex            Sex          `json:"sex"`
	AgeAtDiagnosis string       `json:"ageAtDiagnosis"`
	Cancers        string       `json:"cancers"`
	Genetics       string       `json:"genetics"`
	IsDead         bool         `json:"isDead"`
	Relationship   Relationship `json:"relationship"`
	ParentId       string       `json:"parentId,omitempty"`
	SpouseId       string       `json:"spouseId,omitempty"`
	MarriageType   MarriageType `json:"marriageType,omitempty"`

	X *float64 `json:"x"`
	Y *float64 `json:"y"`

	// Set by a drag or by an import row carrying coordinates. Layout never moves a locked member.
	PositionLocked bool `json:"positionLocked"`
}

func (member *Member) HasPos() bool {
	return member.X != nil && member.Y != nil
}

func (member *Member) Pos() Pos {
	if !member.HasPos() {
		return Pos{}
	}

	return Pos{X: *member.X, Y: *member.Y}
}

func (member *Member) SetPos(p Pos) {
	member.X = utils.P(p.X)
	member.Y = utils.P(p.Y)
}

func (member *Member) ClearPos() {
	member.X = nil
	member.Y = nil
}

func (member *Member) IsProband() bool {
	return member.Relationship == RelProband
}

func (member *Member) CancerList() []string {
	return utils.SplitLabels(member.Cancers)
}

func (member *Member) CancersIter() iter.Seq[string] {
	return utils.LabelsIter(member.Cancers)
}

func (member *Member) Clone() *Member {
	c := *member

	if member.X != nil {
		c.X = utils.P(*member.X)
	}

	if member.Y != nil {
		c.Y = utils.P(*member.Y)
	}

	return &c
}

func newMember(id string, rel Relationship, sex Sex) *Member {
	return &Member{
		Id:           id,
		Sex:          sex,
		Relationship: rel,
	}
}
