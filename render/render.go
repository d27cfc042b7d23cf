package render

import (
	"cmp"
	"math"
	"slices"

	. "github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
)

const (
	NodeRadius   = 15.0
	HaloRadius   = 18.0
	SlashReach   = 20.0
	ChildrenGap  = 50.0
	CoupleOffset = 2.0

	FootnoteSize = 10.0
	FootnoteStep = 12.0
	NoteSize     = 12.0

	LegendX     = 10.0
	LegendY     = 10.0
	LegendStep  = 20.0
	LegendBox   = 15.0
	LegendTitle = "Cancer Types:"
)

var (
	thin   = Stroke{Color: Black, Width: 1}
	double = Stroke{Color: Red, Width: 2}
	halo   = Stroke{Color: Halo, Width: 2}
)

type Frame struct {
	Store         *Store
	Annotations   Annotations
	View          View
	Highlighted   string
	ShowFootnotes bool
	LegendTitle   string
}

func FrameOf(root *Root) Frame {
	return Frame{
		Store:         root.Store,
		Annotations:   root.Annotations,
		View:          root.View,
		Highlighted:   root.Highlighted,
		ShowFootnotes: root.ShowFootnotes,
	}
}

type Renderer struct {
	Palette *Palette
}

func NewRenderer(palette *Palette) *Renderer {
	if palette == nil {
		palette = NewPalette()
	}

	return &Renderer{Palette: palette}
}

// Record draws a frame into a fresh Recorder.
func (r *Renderer) Record(f Frame) (*Recorder, []string) {
	rec := &Recorder{}
	legend := r.Draw(rec, f)

	return rec, legend
}

// Draw paints one whole frame and returns the legend labels in first seen order.
func (r *Renderer) Draw(c Canvas, f Frame) (legend []string) {
	store := f.Store

	c.Clear()
	c.Save()
	c.Translate(f.View.Offset.X, f.View.Offset.Y)
	c.Scale(f.View.Scale)

	couples := make(map[[2]string]bool)
	groups := make(map[[2]string]bool)

	for _, m := range store.Members {
		if !m.HasPos() {
			continue
		}

		if spouse := store.SpouseOf(m.Id); spouse != nil && spouse.HasPos() {
			key := pairKey(m.Id, spouse.Id)

			if !couples[key] {
				couples[key] = true
				drawCouple(c, m, spouse)
			}
		}

		parent := store.ParentOf(m.Id)

		if parent == nil || !parent.HasPos() {
			continue
		}

		spouse := store.SpouseOf(parent.Id)

		if spouse == nil || !spouse.HasPos() {
			drawElbow(c, parent.Pos(), m.Pos())
			continue
		}

		key := pairKey(parent.Id, spouse.Id)

		if !groups[key] {
			groups[key] = true
			drawSiblings(c, parent, spouse, placed(store.ChildrenOf(parent.Id)))
		}
	}

	seen := make(map[string]bool)

	for _, m := range store.Members {
		if !m.HasPos() {
			continue
		}

		labels := m.CancerList()

		for _, label := range labels {
			if !seen[label] {
				seen[label] = true
				legend = append(legend, label)
			}
		}

		r.drawNode(c, m, labels)

		if f.ShowFootnotes {
			drawFootnotes(c, m)
		}

		if m.Id == f.Highlighted {
			c.Circle(m.Pos(), HaloRadius, Style{Stroke: &halo})
		}

		if m.IsProband() {
			drawProbandMarker(c, m.Pos())
		}
	}

	for _, a := range f.Annotations {
		c.Text(a.Pos(), a.Text, Font{Size: NoteSize}, Black)
	}

	c.Restore()

	if len(legend) > 0 {
		r.drawLegend(c, f.LegendTitle, legend)
	}

	return
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}

func placed(list []*Member) []*Member {
	return slices.DeleteFunc(list, func(m *Member) bool {
		return !m.HasPos()
	})
}

func drawCouple(c Canvas, m *Member, spouse *Member) {
	a := m.Pos()
	b := spouse.Pos()
	startX := math.Min(a.X, b.X)
	endX := math.Max(a.X, b.X)
	y := a.Y

	if IsConsanguineous(m, spouse) {
		for _, dy := range []float64{-CoupleOffset, CoupleOffset} {
			c.Line([]Pos{{X: startX, Y: y + dy}, {X: endX, Y: y + dy}}, double)
		}

		return
	}

	c.Line([]Pos{{X: startX, Y: y}, {X: endX, Y: y}}, thin)
}

func IsConsanguineous(a *Member, b *Member) bool {
	for _, m := range []*Member{a, b} {
		if m.Relationship == RelRelatedSpouse || m.MarriageType == MarriageConsanguineous {
			return true
		}
	}

	return false
}

func drawElbow(c Canvas, parent Pos, child Pos) {
	midY := (parent.Y + child.Y) / 2

	c.Line([]Pos{
		parent,
		{X: parent.X, Y: midY},
		{X: child.X, Y: midY},
		child,
	}, thin)
}

func drawSiblings(c Canvas, parent *Member, spouse *Member, children []*Member) {
	if len(children) == 0 {
		return
	}

	midX := (parent.Pos().X + spouse.Pos().X) / 2
	rowY := math.Inf(1)

	for _, child := range children {
		rowY = math.Min(rowY, child.Pos().Y)
	}

	rowY -= ChildrenGap

	if len(children) == 1 {
		child := children[0].Pos()

		c.Line([]Pos{
			{X: midX, Y: parent.Pos().Y},
			{X: midX, Y: rowY},
			{X: child.X, Y: rowY},
			child,
		}, thin)

		return
	}

	c.Line([]Pos{{X: midX, Y: parent.Pos().Y}, {X: midX, Y: rowY}}, thin)

	xs := make([]float64, len(children))

	for i, child := range children {
		xs[i] = child.Pos().X
	}

	slices.SortFunc(xs, cmp.Compare[float64])

	c.Line([]Pos{{X: xs[0], Y: rowY}, {X: xs[len(xs)-1], Y: rowY}}, thin)

	for _, child := range children {
		p := child.Pos()
		c.Line([]Pos{{X: p.X, Y: rowY}, p}, thin)
	}
}

func (r *Renderer) drawNode(c Canvas, m *Member, labels []string) {
	p := m.Pos()
	male := m.Sex == SexMale
	square := Square(p, NodeRadius)

	fill := White

	if len(labels) == 1 {
		fill = r.Palette.Color(labels[0])
	}

	if len(labels) > 1 {
		for i, label := range labels {
			start, end := SegmentAngles(i, len(labels))
			color := r.Palette.Color(label)

			if male {
				c.Polygon(SquareSector(p, NodeRadius, start, end), Style{Fill: &color})
			} else {
				c.Sector(p, NodeRadius, start, end, color)
			}
		}

		if male {
			c.Rect(square, Style{Stroke: &thin})
		} else {
			c.Circle(p, NodeRadius, Style{Stroke: &thin})
		}
	} else if male {
		c.Rect(square, Style{Fill: &fill, Stroke: &thin})
	} else {
		c.Circle(p, NodeRadius, Style{Fill: &fill, Stroke: &thin})
	}

	if m.IsDead {
		c.Line([]Pos{p.Move(-SlashReach, -SlashReach), p.Move(SlashReach, SlashReach)}, thin)
	}
}

// SegmentAngles splits a full turn into count equal parts starting at the top.
func SegmentAngles(index int, count int) (start float64, end float64) {
	step := 2 * math.Pi / float64(count)
	start = -math.Pi/2 + float64(index)*step
	end = start + step

	return
}

// SquareSector is the part of the square with half side h cut by the wedge [start, end].
func SquareSector(c Pos, h float64, start float64, end float64) []Pos {
	corners := make([]float64, 0, 4)

	for k := range 4 {
		angle := -3*math.Pi/4 + float64(k)*math.Pi/2

		for angle <= start {
			angle += 2 * math.Pi
		}

		for angle > start+2*math.Pi {
			angle -= 2 * math.Pi
		}

		if angle < end {
			corners = append(corners, angle)
		}
	}

	slices.Sort(corners)

	points := []Pos{c, squarePoint(c, h, start)}

	for _, angle := range corners {
		points = append(points, squarePoint(c, h, angle))
	}

	return append(points, squarePoint(c, h, end))
}

func squarePoint(c Pos, h float64, angle float64) Pos {
	cos, sin := math.Cos(angle), math.Sin(angle)
	k := h / math.Max(math.Abs(cos), math.Abs(sin))

	return Pos{X: c.X + k*cos, Y: c.Y + k*sin}
}

func drawFootnotes(c Canvas, m *Member) {
	p := m.Pos().Move(20, 20)
	font := Font{Size: FootnoteSize}

	c.Text(p, m.Name, font, Black)

	for _, text := range []string{m.AgeAtDiagnosis, m.Cancers, m.Genetics} {
		if text == "" {
			continue
		}

		p.Y += FootnoteStep
		c.Text(p, text, font, Black)
	}
}

func drawProbandMarker(c Canvas, p Pos) {
	fill := Black

	c.Polygon([]Pos{
		p.Move(-20, 15),
		p.Move(-10, 15),
		p.Move(-15, 25),
	}, Style{Fill: &fill})
}

func (r *Renderer) drawLegend(c Canvas, title string, labels []string) {
	if title == "" {
		title = LegendTitle
	}

	c.Text(Pos{X: LegendX, Y: LegendY}, title, Font{Size: 12, Bold: true}, Black)

	y := LegendY + LegendStep

	for _, label := range labels {
		color := r.Palette.Color(label)

		c.Rect(Rect{X: LegendX, Y: y, Width: LegendBox, Height: LegendBox}, Style{Fill: &color})
		c.Text(Pos{X: LegendX + LegendBox + 5, Y: y + LegendBox}, label, Font{Size: 12}, Black)

		y += LegendStep
	}
}
