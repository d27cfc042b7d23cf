package state

import (
	"fmt"
	"slices"
	"strings"

	. "github.com/redexp/pedigree/types"
)

type Annotation struct {
	Id   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

func (a *Annotation) Pos() Pos {
	return Pos{X: a.X, Y: a.Y}
}

type Annotations []*Annotation

func (list Annotations) Get(id string) *Annotation {
	for _, a := range list {
		if a.Id == id {
			return a
		}
	}

	return nil
}

func (list Annotations) Clone() Annotations {
	c := make(Annotations, len(list))

	for i, a := range list {
		item := *a
		c[i] = &item
	}

	return c
}

// Add ignores blank text and returns nil in that case.
func (list *Annotations) Add(id string, p Pos, text string) *Annotation {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	a := &Annotation{
		Id:   id,
		X:    p.X,
		Y:    p.Y,
		Text: text,
	}

	*list = append(*list, a)

	return a
}

func (list Annotations) Edit(id string, text string) error {
	a := list.Get(id)

	if a == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAnnotation, id)
	}

	if strings.TrimSpace(text) == "" {
		return nil
	}

	a.Text = text

	return nil
}

func (list *Annotations) Delete(id string) error {
	if list.Get(id) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAnnotation, id)
	}

	*list = slices.DeleteFunc(*list, func(a *Annotation) bool {
		return a.Id == id
	})

	return nil
}
