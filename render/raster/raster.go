package raster

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/redexp/pedigree/render"
	. "github.com/redexp/pedigree/types"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const arcSteps = 64

type faceKey struct {
	size float64
	bold bool
}

// Canvas rasterizes drawing calls into an RGBA image.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	m     render.TransformStack
	faces map[faceKey]font.Face
}

func NewCanvas(width int, height int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
		m:     render.NewTransformStack(),
		faces: make(map[faceKey]font.Face),
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(render.White), image.Point{}, draw.Src)
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
	half := math.Max(stroke.Width*c.m.Current.Scale, 1) / 2

	for i := 1; i < len(points); i++ {
		a := c.m.Current.Apply(points[i-1])
		b := c.m.Current.Apply(points[i])
		c.fill(render.Segment(a, b, half), stroke.Color)
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
	c.fill(c.m.Current.ApplyAll(points), fill)
}

func (c *Canvas) Polygon(points []Pos, style render.Style) {
	c.shape(points, style)
}

func (c *Canvas) Text(p Pos, text string, f render.Font, fill render.Color) {
	if text == "" {
		return
	}

	face := c.face(f.Size*c.m.Current.Scale, f.Bold)

	if face == nil {
		return
	}

	at := c.m.Current.Apply(p)

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(at.X * 64),
			Y: fixed.Int26_6(at.Y * 64),
		},
	}

	d.DrawString(text)
}

func (c *Canvas) shape(points []Pos, style render.Style) {
	if style.Fill != nil {
		c.fill(c.m.Current.ApplyAll(points), *style.Fill)
	}

	if style.Stroke != nil {
		closed := append(append([]Pos{}, points...), points[0])
		c.Line(closed, *style.Stroke)
	}
}

// fill paints a closed path given in device space.
func (c *Canvas) fill(points []Pos, color render.Color) {
	if len(points) < 3 {
		return
	}

	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(points[0].X), float32(points[0].Y))

	for _, p := range points[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}

	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(color), image.Point{})
}

func (c *Canvas) face(size float64, bold bool) font.Face {
	key := faceKey{size: math.Round(size*4) / 4, bold: bold}

	if face, ok := c.faces[key]; ok {
		return face
	}

	src := goregular.TTF

	if bold {
		src = gobold.TTF
	}

	fnt, err := opentype.Parse(src)

	if err != nil {
		return nil
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    math.Max(key.size, 1),
		DPI:     72,
		Hinting: font.HintingNone,
	})

	if err != nil {
		return nil
	}

	c.faces[key] = face

	return face
}

// PNG renders one frame to an encoded image.
func PNG(r *render.Renderer, f render.Frame, width int, height int) ([]byte, error) {
	c := NewCanvas(width, height)
	r.Draw(c, f)

	var buf bytes.Buffer

	err := c.EncodePNG(&buf)

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
