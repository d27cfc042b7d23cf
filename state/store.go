package state

import (
	"fmt"
	"iter"
	"slices"

	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
)

type Store struct {
	Members []*Member `json:"members"`

	newId utils.IdGenerator
}

func NewStore(newId utils.IdGenerator) *Store {
	if newId == nil {
		newId = utils.NewId
	}

	return &Store{
		Members: make([]*Member, 0),
		newId:   newId,
	}
}

// NewPedigree returns a store holding only a blank female proband at the anchor.
func NewPedigree(newId utils.IdGenerator) *Store {
	store := NewStore(newId)

	proband := newMember(store.newId(), RelProband, SexFemale)
	proband.SetPos(Anchor)

	store.Members = append(store.Members, proband)

	return store
}

func (store *Store) NewId() string {
	return store.newId()
}

func (store *Store) Get(id string) *Member {
	if id == "" {
		return nil
	}

	for _, m := range store.Members {
		if m.Id == id {
			return m
		}
	}

	return nil
}

func (store *Store) Has(id string) bool {
	return store.Get(id) != nil
}

// Proband is the first member flagged as proband, or the first member.
func (store *Store) Proband() *Member {
	for _, m := range store.Members {
		if m.IsProband() {
			return m
		}
	}

	if len(store.Members) > 0 {
		return store.Members[0]
	}

	return nil
}

func (store *Store) Len() int {
	return len(store.Members)
}

func (store *Store) MembersIter() iter.Seq2[int, *Member] {
	return slices.All(store.Members)
}

func (store *Store) Append(m *Member) {
	store.Members = append(store.Members, m)
}

func (store *Store) Clone() *Store {
	c := &Store{
		Members: make([]*Member, len(store.Members)),
		newId:   store.newId,
	}

	for i, m := range store.Members {
		c.Members[i] = m.Clone()
	}

	return c
}

func (store *Store) AddRelative(originId string, kind Kind) (*Member, error) {
	origin := store.Get(originId)

	if origin == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMember, originId)
	}

	var member *Member

	switch kind {
	case KindChild:
		spouse := store.Get(origin.SpouseId)

		if spouse == nil {
			return nil, ErrChildNeedsSpouse
		}

		member = newMember(store.newId(), RelChild, SexFemale)
		member.ParentId = origin.Id

		if origin.HasPos() {
			pos := origin.Pos().Move(0, ChildDY)
			children := store.ChildrenOf(origin.Id)

			if len(children) > 0 {
				last := children[len(children)-1]

				if last.HasPos() {
					pos.X = last.Pos().X + ChildDX
				}
			} else if spouse.HasPos() {
				pos.X = (origin.Pos().X + spouse.Pos().X) / 2
			}

			member.SetPos(pos)
		}

	case KindSpouse:
		if store.SpouseOf(origin.Id) != nil {
			return nil, ErrSpouseExists
		}

		member = newMember(store.newId(), RelUnrelatedSpouse, origin.Sex.Opposite())
		member.MarriageType = MarriageNonConsanguineous
		member.SpouseId = origin.Id
		origin.SpouseId = member.Id

		if origin.HasPos() {
			member.SetPos(origin.Pos().Move(SpouseDX, 0))
		}

	case KindParent:
		if store.ParentOf(origin.Id) != nil {
			return nil, ErrParentExists
		}

		member = newMember(store.newId(), RelParent, SexMale)
		origin.ParentId = member.Id

		if origin.HasPos() {
			member.SetPos(origin.Pos().Move(ParentDX, ParentDY))
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	store.Append(member)

	return member, nil
}

// DeleteMember removes the member and its direct children. The proband always stays.
func (store *Store) DeleteMember(id string) (removed []string, err error) {
	member := store.Get(id)

	if member == nil {
		err = fmt.Errorf("%w: %s", ErrUnknownMember, id)
		return
	}

	if member.IsProband() {
		err = ErrDeleteProband
		return
	}

	store.Members = slices.DeleteFunc(store.Members, func(m *Member) bool {
		if m.Id == id || (m.ParentId == id && !m.IsProband()) {
			removed = append(removed, m.Id)
			return true
		}

		return false
	})

	return
}

func (store *Store) UpdateMember(patch *Patch) (*Member, error) {
	member := store.Get(patch.Id)

	if member == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMember, patch.Id)
	}

	err := store.checkPatch(member, patch)

	if err != nil {
		return nil, err
	}

	prevRel := member.Relationship

	patch.apply(member)

	if patch.SpouseId != nil {
		store.linkSpouse(member, *patch.SpouseId)
	}

	if patch.ParentId != nil {
		member.ParentId = *patch.ParentId
	}

	if patch.X != nil && patch.Y != nil {
		member.SetPos(Pos{X: *patch.X, Y: *patch.Y})
		member.PositionLocked = true
	} else if member.Relationship != prevRel {
		store.reposition(member)
	}

	return member, nil
}

func (store *Store) checkPatch(member *Member, patch *Patch) error {
	err := patch.Validate()

	if err != nil {
		return err
	}

	if patch.Relationship != nil && (*patch.Relationship == RelProband) != member.IsProband() {
		return ErrProbandRelationship
	}

	for _, ref := range []*string{patch.SpouseId, patch.ParentId} {
		if ref == nil || *ref == "" {
			continue
		}

		if *ref == member.Id || !store.Has(*ref) {
			return fmt.Errorf("%w: %s", ErrUnknownMember, *ref)
		}
	}

	return store.checkSpouses(member, patch)
}

// checkSpouses rejects a patch that would leave a spouse-role member without a partner,
// including partners released by relinking.
func (store *Store) checkSpouses(member *Member, patch *Patch) error {
	rel := member.Relationship
	spouseId := member.SpouseId

	if patch.Relationship != nil {
		rel = *patch.Relationship
	}

	if patch.SpouseId != nil {
		spouseId = *patch.SpouseId
	}

	if rel.IsSpouse() && spouseId == "" {
		return fmt.Errorf("%w: %s", ErrSpouseNeedsLink, member.Id)
	}

	if patch.SpouseId == nil || spouseId == member.SpouseId {
		return nil
	}

	if old := store.Get(member.SpouseId); old != nil && old.SpouseId == member.Id && old.Relationship.IsSpouse() {
		return fmt.Errorf("%w: %s", ErrSpouseNeedsLink, old.Id)
	}

	spouse := store.Get(spouseId)

	if spouse == nil {
		return nil
	}

	if prev := store.Get(spouse.SpouseId); prev != nil && prev.Id != member.Id && prev.SpouseId == spouse.Id && prev.Relationship.IsSpouse() {
		return fmt.Errorf("%w: %s", ErrSpouseNeedsLink, prev.Id)
	}

	return nil
}

// linkSpouse keeps spouse references mutual, releasing whoever pointed at either side before.
func (store *Store) linkSpouse(member *Member, spouseId string) {
	if old := store.Get(member.SpouseId); old != nil && old.Id != spouseId && old.SpouseId == member.Id {
		old.SpouseId = ""
	}

	member.SpouseId = spouseId

	spouse := store.Get(spouseId)

	if spouse == nil {
		return
	}

	if prev := store.Get(spouse.SpouseId); prev != nil && prev.Id != member.Id && prev.SpouseId == spouse.Id {
		prev.SpouseId = ""
	}

	spouse.SpouseId = member.Id
}

func (store *Store) reposition(member *Member) {
	parent := store.ParentOf(member.Id)

	if parent == nil || !parent.HasPos() {
		return
	}

	pos := parent.Pos()

	switch member.Relationship {
	case RelParent:
		member.SetPos(pos.Move(0, ParentDY))
	case RelChild:
		member.SetPos(pos.Move(0, ChildDY))
	case RelRelatedSpouse, RelUnrelatedSpouse:
		member.SetPos(pos.Move(SpouseDX, 0))
	}
}
