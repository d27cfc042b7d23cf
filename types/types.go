package types

import (
	"math"

	"github.com/tliron/glsp"
)

type Ctx = glsp.Context

type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Pos) Move(x, y float64) Pos {
	p.X += x
	p.Y += y
	return p
}

func (p Pos) Distance(target Pos) Pos {
	return Pos{
		X: target.X - p.X,
		Y: target.Y - p.Y,
	}
}

func (p Pos) Within(target Pos, dx, dy float64) bool {
	d := p.Distance(target)

	return math.Abs(d.X) < dx && math.Abs(d.Y) < dy
}

func Mid(a, b Pos) Pos {
	return Pos{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) ToPos(t string) Pos {
	pos := Pos{
		X: r.X,
		Y: r.Y,
	}

	switch t {
	case "tl":
		return pos
	case "tm":
		pos.X += r.Width / 2
	case "tr":
		pos.X += r.Width
	case "mm":
		pos.X += r.Width / 2
		pos.Y += r.Height / 2
	case "bl":
		pos.Y += r.Height
	case "br":
		pos.X += r.Width
		pos.Y += r.Height
	default:
		panic("invalid ToPos type: " + t)
	}

	return pos
}

func (r Rect) Move(x, y float64) Rect {
	r.X += x
	r.Y += y
	return r
}

func (r Rect) Corners() []Pos {
	return []Pos{
		r.ToPos("tl"),
		r.ToPos("tr"),
		r.ToPos("br"),
		r.ToPos("bl"),
	}
}

// Square centered on c with half side h.
func Square(c Pos, h float64) Rect {
	return Rect{
		X:      c.X - h,
		Y:      c.Y - h,
		Width:  h * 2,
		Height: h * 2,
	}
}
