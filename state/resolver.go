package state

import (
	"fmt"
	"slices"
	"strings"
)

// SpouseOf follows spouseId, falling back to whoever points at id.
func (store *Store) SpouseOf(id string) *Member {
	member := store.Get(id)

	if member == nil {
		return nil
	}

	if spouse := store.Get(member.SpouseId); spouse != nil && spouse.Id != id {
		return spouse
	}

	for _, m := range store.Members {
		if m.Id != id && m.SpouseId == id {
			return m
		}
	}

	return nil
}

func (store *Store) ParentOf(id string) *Member {
	member := store.Get(id)

	if member == nil || member.ParentId == id {
		return nil
	}

	return store.Get(member.ParentId)
}

// ChildrenOf is the union of children of id and children of its spouse, in store order.
func (store *Store) ChildrenOf(id string) []*Member {
	list := make([]*Member, 0)

	if !store.Has(id) {
		return list
	}

	spouseId := ""

	if spouse := store.SpouseOf(id); spouse != nil {
		spouseId = spouse.Id
	}

	for _, m := range store.Members {
		if m.Id == id || m.ParentId == "" {
			continue
		}

		if m.ParentId == id || m.ParentId == spouseId {
			list = append(list, m)
		}
	}

	return list
}

func (store *Store) SiblingsOf(id string) []*Member {
	parent := store.ParentOf(id)

	if parent == nil {
		return make([]*Member, 0)
	}

	return slices.DeleteFunc(store.ChildrenOf(parent.Id), func(m *Member) bool {
		return m.Id == id
	})
}

// DirectChildrenOf lists members whose parentId is exactly id.
func (store *Store) DirectChildrenOf(id string) []*Member {
	list := make([]*Member, 0)

	for _, m := range store.Members {
		if m.Id != id && m.ParentId == id {
			list = append(list, m)
		}
	}

	return list
}

type IssueType string

const (
	IssueDanglingParent IssueType = "dangling_parent"
	IssueDanglingSpouse IssueType = "dangling_spouse"
	IssueOneSidedSpouse IssueType = "one_sided_spouse"
	IssueMissingSpouse  IssueType = "missing_spouse"
)

type Issue struct {
	Type     IssueType `json:"type"`
	MemberId string    `json:"memberId"`
	Ref      string    `json:"ref,omitempty"`
}

func (issue Issue) String() string {
	return fmt.Sprintf("%s %s -> %s", issue.Type, issue.MemberId, issue.Ref)
}

// Integrity lists referential problems. Read paths tolerate all of them.
func Integrity(store *Store) []Issue {
	issues := make([]Issue, 0)

	for _, m := range store.Members {
		if m.ParentId != "" && !store.Has(m.ParentId) {
			issues = append(issues, Issue{Type: IssueDanglingParent, MemberId: m.Id, Ref: m.ParentId})
		}

		if m.SpouseId != "" {
			spouse := store.Get(m.SpouseId)

			if spouse == nil {
				issues = append(issues, Issue{Type: IssueDanglingSpouse, MemberId: m.Id, Ref: m.SpouseId})
			} else if spouse.SpouseId != m.Id {
				issues = append(issues, Issue{Type: IssueOneSidedSpouse, MemberId: m.Id, Ref: m.SpouseId})
			}
		} else if m.Relationship.IsSpouse() {
			issues = append(issues, Issue{Type: IssueMissingSpouse, MemberId: m.Id})
		}
	}

	return issues
}

func DisplayName(m *Member) string {
	if m == nil {
		return "Unknown"
	}

	if name := strings.TrimSpace(m.Name); name != "" {
		return name
	}

	return "Unnamed"
}

// Describe gives a short relationship title like "Child of A and B".
func Describe(store *Store, m *Member) string {
	switch m.Relationship {
	case RelProband:
		return "Proband"

	case RelParent:
		children := store.DirectChildrenOf(m.Id)

		if len(children) == 0 {
			return "Parent"
		}

		return "Parent of " + DisplayName(children[0])

	case RelChild:
		parent := store.ParentOf(m.Id)

		if parent == nil {
			return "Child"
		}

		if spouse := store.SpouseOf(parent.Id); spouse != nil {
			return fmt.Sprintf("Child of %s and %s", DisplayName(parent), DisplayName(spouse))
		}

		return "Child of " + DisplayName(parent)

	case RelRelatedSpouse, RelUnrelatedSpouse:
		spouse := store.SpouseOf(m.Id)

		if spouse == nil {
			return "Spouse"
		}

		return "Spouse of " + DisplayName(spouse)
	}

	return string(m.Relationship)
}
