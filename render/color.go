package render

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type Color color.NRGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Hex is #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *Color) UnmarshalJSON(data []byte) (err error) {
	var hex string

	err = json.Unmarshal(data, &hex)

	if err != nil {
		return
	}

	*c, err = ParseHex(hex)

	return
}

func ParseHex(hex string) (c Color, err error) {
	alpha := uint8(0xff)

	if len(hex) == 9 {
		var a uint64
		_, err = fmt.Sscanf(hex[7:], "%02x", &a)

		if err != nil {
			return
		}

		alpha = uint8(a)
		hex = hex[:7]
	}

	cf, err := colorful.Hex(hex)

	if err != nil {
		return
	}

	c = fromColorful(cf)
	c.A = alpha

	return
}

func MustHex(hex string) Color {
	c, err := ParseHex(hex)

	if err != nil {
		panic(err)
	}

	return c
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()

	return Color{R: r, G: g, B: b, A: 0xff}
}

var (
	Black = Color{A: 0xff}
	White = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red   = Color{R: 0xff, A: 0xff}
	Halo  = Color{R: 135, G: 206, B: 235, A: 153}
)
