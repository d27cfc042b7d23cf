package state

import (
	"math"

	. "github.com/redexp/pedigree/types"
)

const (
	MinScale = 0.1
	MaxScale = 5.0
	ZoomStep = 0.1
	PanStep  = 10.0
)

type View struct {
	Scale  float64 `json:"scale"`
	Offset Pos     `json:"offset"`
}

func NewView() View {
	return View{Scale: 1}
}

// ToModel inverts translate(offset) followed by scale(scale).
func (v View) ToModel(screen Pos) Pos {
	return Pos{
		X: (screen.X - v.Offset.X) / v.Scale,
		Y: (screen.Y - v.Offset.Y) / v.Scale,
	}
}

func (v View) ToScreen(model Pos) Pos {
	return Pos{
		X: model.X*v.Scale + v.Offset.X,
		Y: model.Y*v.Scale + v.Offset.Y,
	}
}

func (v *View) Zoom(in bool) {
	step := ZoomStep

	if !in {
		step = -step
	}

	v.SetScale(v.Scale + step)
}

func (v *View) SetScale(scale float64) {
	scale = math.Round(scale*10) / 10
	v.Scale = math.Max(MinScale, math.Min(MaxScale, scale))
}

func (v *View) Pan(dx, dy float64) {
	v.Offset = v.Offset.Move(dx, dy)
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// PanTo moves the view one step. Up reveals what is above, so the offset grows.
func (v *View) PanTo(dir Direction) bool {
	switch dir {
	case DirUp:
		v.Pan(0, PanStep)
	case DirDown:
		v.Pan(0, -PanStep)
	case DirLeft:
		v.Pan(PanStep, 0)
	case DirRight:
		v.Pan(-PanStep, 0)
	default:
		return false
	}

	return true
}
