package render

import (
	. "github.com/redexp/pedigree/types"
)

type Stroke struct {
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

type Style struct {
	Fill   *Color  `json:"fill,omitempty"`
	Stroke *Stroke `json:"stroke,omitempty"`
}

type Font struct {
	Size float64 `json:"size"`
	Bold bool    `json:"bold,omitempty"`
}

// Canvas is an immediate mode 2D surface. Text is positioned by its baseline.
// Angles are radians, clockwise from the positive x axis because y grows downward.
type Canvas interface {
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Scale(s float64)
	Line(points []Pos, stroke Stroke)
	Rect(r Rect, style Style)
	Circle(c Pos, radius float64, style Style)
	Sector(c Pos, radius float64, start float64, end float64, fill Color)
	Polygon(points []Pos, style Style)
	Text(p Pos, text string, font Font, fill Color)
}

type Op string

const (
	OpClear     Op = "clear"
	OpSave      Op = "save"
	OpRestore   Op = "restore"
	OpTranslate Op = "translate"
	OpScale     Op = "scale"
	OpLine      Op = "line"
	OpRect      Op = "rect"
	OpCircle    Op = "circle"
	OpSector    Op = "sector"
	OpPolygon   Op = "polygon"
	OpText      Op = "text"
)

type Command struct {
	Op     Op      `json:"op"`
	Points []Pos   `json:"points,omitempty"`
	Rect   *Rect   `json:"rect,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Start  float64 `json:"start,omitempty"`
	End    float64 `json:"end,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Text   string  `json:"text,omitempty"`
	Font   *Font   `json:"font,omitempty"`
	Style
}

// Recorder keeps every call as a Command so a frame can be sent over the wire or replayed.
type Recorder struct {
	Commands []Command
}

func (rec *Recorder) add(cmd Command) {
	rec.Commands = append(rec.Commands, cmd)
}

func (rec *Recorder) Clear() {
	rec.Commands = rec.Commands[:0]
	rec.add(Command{Op: OpClear})
}

func (rec *Recorder) Save() {
	rec.add(Command{Op: OpSave})
}

func (rec *Recorder) Restore() {
	rec.add(Command{Op: OpRestore})
}

func (rec *Recorder) Translate(x, y float64) {
	rec.add(Command{Op: OpTranslate, Points: []Pos{{X: x, Y: y}}})
}

func (rec *Recorder) Scale(s float64) {
	rec.add(Command{Op: OpScale, Value: s})
}

func (rec *Recorder) Line(points []Pos, stroke Stroke) {
	rec.add(Command{Op: OpLine, Points: points, Style: Style{Stroke: &stroke}})
}

func (rec *Recorder) Rect(r Rect, style Style) {
	rec.add(Command{Op: OpRect, Rect: &r, Style: style})
}

func (rec *Recorder) Circle(c Pos, radius float64, style Style) {
	rec.add(Command{Op: OpCircle, Points: []Pos{c}, Radius: radius, Style: style})
}

func (rec *Recorder) Sector(c Pos, radius float64, start float64, end float64, fill Color) {
	rec.add(Command{Op: OpSector, Points: []Pos{c}, Radius: radius, Start: start, End: end, Style: Style{Fill: &fill}})
}

func (rec *Recorder) Polygon(points []Pos, style Style) {
	rec.add(Command{Op: OpPolygon, Points: points, Style: style})
}

func (rec *Recorder) Text(p Pos, text string, font Font, fill Color) {
	rec.add(Command{Op: OpText, Points: []Pos{p}, Text: text, Font: &font, Style: Style{Fill: &fill}})
}

func (rec *Recorder) Filter(op Op) []Command {
	list := make([]Command, 0)

	for _, cmd := range rec.Commands {
		if cmd.Op == op {
			list = append(list, cmd)
		}
	}

	return list
}

// Replay draws recorded commands onto another canvas.
func Replay(commands []Command, c Canvas) {
	for _, cmd := range commands {
		switch cmd.Op {
		case OpClear:
			c.Clear()
		case OpSave:
			c.Save()
		case OpRestore:
			c.Restore()
		case OpTranslate:
			c.Translate(cmd.Points[0].X, cmd.Points[0].Y)
		case OpScale:
			c.Scale(cmd.Value)
		case OpLine:
			c.Line(cmd.Points, *cmd.Stroke)
		case OpRect:
			c.Rect(*cmd.Rect, cmd.Style)
		case OpCircle:
			c.Circle(cmd.Points[0], cmd.Radius, cmd.Style)
		case OpSector:
			c.Sector(cmd.Points[0], cmd.Radius, cmd.Start, cmd.End, *cmd.Fill)
		case OpPolygon:
			c.Polygon(cmd.Points, cmd.Style)
		case OpText:
			c.Text(cmd.Points[0], cmd.Text, *cmd.Font, *cmd.Fill)
		}
	}
}
