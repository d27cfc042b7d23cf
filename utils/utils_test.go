package utils

import (
	"slices"
	"testing"
)

func TestSplitLabels(t *testing.T) {
	list := []struct {
		Src  string
		Test []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"Breast", []string{"Breast"}},
		{"Breast, Ovarian", []string{"Breast", "Ovarian"}},
		{" Breast ,, Colon ,", []string{"Breast", "Colon"}},
	}

	for i, item := range list {
		res := SplitLabels(item.Src)

		if !slices.Equal(res, item.Test) {
			t.Errorf("%d - got: %v; expect: %v", i+1, res, item.Test)
		}
	}
}

func TestSequenceIds(t *testing.T) {
	next := SequenceIds("m")

	if id := next(); id != "m1" {
		t.Errorf("first id %s", id)
	}

	if id := next(); id != "m2" {
		t.Errorf("second id %s", id)
	}
}

func TestNewId(t *testing.T) {
	a := NewId()
	b := NewId()

	if a == "" || a == b {
		t.Errorf("ids not unique: %s %s", a, b)
	}
}
