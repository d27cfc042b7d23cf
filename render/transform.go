package render

import (
	"math"

	. "github.com/redexp/pedigree/types"
)

// Transform maps canvas coordinates to device pixels.
type Transform struct {
	Scale float64
	DX    float64
	DY    float64
}

func Identity() Transform {
	return Transform{Scale: 1}
}

func (t Transform) Apply(p Pos) Pos {
	return Pos{
		X: p.X*t.Scale + t.DX,
		Y: p.Y*t.Scale + t.DY,
	}
}

func (t Transform) ApplyAll(points []Pos) []Pos {
	list := make([]Pos, len(points))

	for i, p := range points {
		list[i] = t.Apply(p)
	}

	return list
}

// TransformStack gives Canvas implementations the Save/Restore/Translate/Scale semantics.
type TransformStack struct {
	Current Transform
	saved   []Transform
}

func NewTransformStack() TransformStack {
	return TransformStack{Current: Identity()}
}

func (s *TransformStack) Reset() {
	s.Current = Identity()
	s.saved = nil
}

func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.Current)
}

// Restore without a matching Save is ignored.
func (s *TransformStack) Restore() {
	n := len(s.saved)

	if n == 0 {
		return
	}

	s.Current = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *TransformStack) Translate(x, y float64) {
	s.Current.DX += x * s.Current.Scale
	s.Current.DY += y * s.Current.Scale
}

func (s *TransformStack) Scale(k float64) {
	s.Current.Scale *= k
}

// Arc approximates a circular arc with roughly steps points per full turn.
func Arc(center Pos, radius float64, start float64, end float64, steps int) []Pos {
	n := int(math.Ceil(float64(steps) * (end - start) / (2 * math.Pi)))

	if n < 2 {
		n = 2
	}

	points := make([]Pos, n+1)

	for i := range points {
		angle := start + (end-start)*float64(i)/float64(n)
		points[i] = Pos{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}

	return points
}

// Segment is the quad covering a line from a to b with square caps.
func Segment(a Pos, b Pos, half float64) []Pos {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)

	if length == 0 {
		return Square(a, half).Corners()
	}

	nx := -dy / length * half
	ny := dx / length * half
	ex := dx / length * half / 2
	ey := dy / length * half / 2

	return []Pos{
		{X: a.X + nx - ex, Y: a.Y + ny - ey},
		{X: b.X + nx + ex, Y: b.Y + ny + ey},
		{X: b.X - nx + ex, Y: b.Y - ny + ey},
		{X: a.X - nx - ex, Y: a.Y - ny - ey},
	}
}
