package render

import (
	"math"
	"testing"

	. "github.com/redexp/pedigree/types"
)

func TestTransformStack(t *testing.T) {
	s := NewTransformStack()
	s.Translate(10, 20)
	s.Save()
	s.Scale(2)
	s.Translate(5, 5)

	tests := []struct {
		at     Pos
		expect Pos
	}{
		{at: Pos{X: 0, Y: 0}, expect: Pos{X: 20, Y: 30}},
		{at: Pos{X: 1, Y: 2}, expect: Pos{X: 22, Y: 34}},
	}

	for i, test := range tests {
		res := s.Current.Apply(test.at)

		if res != test.expect {
			t.Errorf("%d - got: %v; expect: %v", i, res, test.expect)
		}
	}

	s.Restore()
	s.Restore()

	if res := s.Current.Apply(Pos{}); res != (Pos{X: 10, Y: 20}) {
		t.Errorf("restore: %v", res)
	}
}

func TestArc(t *testing.T) {
	points := Arc(Pos{X: 0, Y: 0}, 10, 0, math.Pi/2, 64)

	first := points[0]
	last := points[len(points)-1]

	if math.Abs(first.X-10) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("first: %v", first)
	}

	if math.Abs(last.X) > 1e-9 || math.Abs(last.Y-10) > 1e-9 {
		t.Errorf("last: %v", last)
	}

	if len(points) != 17 {
		t.Errorf("len: %d", len(points))
	}
}
