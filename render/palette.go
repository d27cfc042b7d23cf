package render

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

var seedColors = map[string]string{
	"Breast":   "#FF69B4",
	"Lung":     "#4169E1",
	"Ovary":    "#2E8B57",
	"Colon":    "#8B4513",
	"Stomach":  "#FFA500",
	"Brain":    "#FFD700",
	"Leukemia": "#FF0000",
}

const goldenAngle = 360 * 0.618033988749895

// Palette remembers the color given to every condition label for the whole session.
type Palette struct {
	colors map[string]Color
	used   map[Color]bool
	hue    float64
	lock   sync.Mutex
}

func NewPalette() *Palette {
	p := &Palette{
		colors: make(map[string]Color),
		used:   make(map[Color]bool),
	}

	for label, hex := range seedColors {
		c := MustHex(hex)
		p.colors[label] = c
		p.used[c] = true
	}

	return p
}

func (p *Palette) Color(label string) Color {
	p.lock.Lock()
	defer p.lock.Unlock()

	c, exist := p.colors[label]

	if exist {
		return c
	}

	c = p.next()
	p.colors[label] = c
	p.used[c] = true

	return c
}

func (p *Palette) Has(label string) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	_, exist := p.colors[label]

	return exist
}

func (p *Palette) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.colors)
}

// next walks the hue circle by the golden angle and skips colors already handed out.
func (p *Palette) next() Color {
	for round := 0; ; round++ {
		p.hue = math.Mod(p.hue+goldenAngle, 360)

		s := 0.55 + 0.1*float64(round%4)
		v := 0.95 - 0.1*float64((round/4)%4)

		c := fromColorful(colorful.Hsv(p.hue, s, v))

		if !p.used[c] && c != White && c != Black {
			return c
		}
	}
}
