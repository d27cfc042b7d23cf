package viewer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/redexp/pedigree/render"
	. "github.com/redexp/pedigree/types"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	arcSteps   = 48
	fontBase   = 32
	textAscent = 0.8
)

// Canvas draws straight to the current raylib frame. Call it between BeginDrawing and EndDrawing.
type Canvas struct {
	m       render.TransformStack
	regular rl.Font
	bold    rl.Font
}

// NewCanvas needs an open window.
func NewCanvas() *Canvas {
	return &Canvas{
		m:       render.NewTransformStack(),
		regular: rl.LoadFontFromMemory(".ttf", goregular.TTF, fontBase, nil),
		bold:    rl.LoadFontFromMemory(".ttf", gobold.TTF, fontBase, nil),
	}
}

func (c *Canvas) Unload() {
	rl.UnloadFont(c.regular)
	rl.UnloadFont(c.bold)
}

func (c *Canvas) Clear() {
	rl.ClearBackground(rl.White)
	c.m.Reset()
}

func (c *Canvas) Save() {
	c.m.Save()
}

func (c *Canvas) Restore() {
	c.m.Restore()
}

func (c *Canvas) Translate(x, y float64) {
	c.m.Translate(x, y)
}

func (c *Canvas) Scale(s float64) {
	c.m.Scale(s)
}

func (c *Canvas) Line(points []Pos, stroke render.Stroke) {
	thick := float32(math.Max(stroke.Width*c.m.Current.Scale, 1))
	col := toColor(stroke.Color)

	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(vec(c.m.Current.Apply(points[i-1])), vec(c.m.Current.Apply(points[i])), thick, col)
	}
}

func (c *Canvas) Rect(r Rect, style render.Style) {
	c.shape(r.Corners(), style)
}

func (c *Canvas) Circle(center Pos, radius float64, style render.Style) {
	c.shape(render.Arc(center, radius, 0, 2*math.Pi, arcSteps), style)
}

func (c *Canvas) Sector(center Pos, radius float64, start float64, end float64, fill render.Color) {
	points := append([]Pos{center}, render.Arc(center, radius, start, end, arcSteps)...)
	fan(c.m.Current.ApplyAll(points), toColor(fill))
}

func (c *Canvas) Polygon(points []Pos, style render.Style) {
	c.shape(points, style)
}

func (c *Canvas) Text(p Pos, text string, f render.Font, fill render.Color) {
	if text == "" {
		return
	}

	size := f.Size * c.m.Current.Scale
	at := c.m.Current.Apply(p)
	at.Y -= size * textAscent

	fnt := c.regular

	if f.Bold {
		fnt = c.bold
	}

	rl.DrawTextEx(fnt, text, vec(at), float32(size), 0, toColor(fill))
}

// TextWidth is used by overlays laid out in screen space.
func (c *Canvas) TextWidth(text string, size float64) float64 {
	return float64(rl.MeasureTextEx(c.regular, text, float32(size), 0).X)
}

func (c *Canvas) shape(points []Pos, style render.Style) {
	if style.Fill != nil {
		fan(c.m.Current.ApplyAll(points), toColor(*style.Fill))
	}

	if style.Stroke != nil {
		closed := append(append([]Pos{}, points...), points[0])
		c.Line(closed, *style.Stroke)
	}
}

// fan fills a convex polygon given in screen space.
func fan(points []Pos, col rl.Color) {
	if len(points) < 3 {
		return
	}

	a := points[0]

	for i := 2; i < len(points); i++ {
		b, d := points[i-1], points[i]

		// raylib culls triangles that are not counter clockwise on screen
		if cross(a, b, d) > 0 {
			b, d = d, b
		}

		rl.DrawTriangle(vec(a), vec(b), vec(d), col)
	}
}

func cross(a Pos, b Pos, c Pos) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func vec(p Pos) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func toColor(c render.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
