package drawbuffer

import (
	"fmt"
	"image/color"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Pixel is a non-alpha-premultiplied 8-bit RGBA color. It is laid out in the
// pixel store exactly as its fields are ordered.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is returned for every read outside the buffer.
var Transparent = Pixel{}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Opaque reports whether a blit copies the pixel. Any nonzero alpha counts.
func (p Pixel) Opaque() bool {
	return p.A > 0
}

// RGBA returns the Pixel for the given components, or ErrInvalidColor if any
// of them lies outside [0, 255].
func RGBA(r, g, b, a int) (Pixel, error) {
	for _, c := range [...]struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}} {
		if c.value < 0 || c.value > 255 {
			return Pixel{}, fmt.Errorf("%w: %s=%d", ErrInvalidColor, c.name, c.value)
		}
	}
	return Pixel{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// PixelFromColor converts any color.Color to a Pixel.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B, n.A}
}

// ParseHex parses a "#rrggbb" color into an opaque Pixel.
func ParseHex(s string) (Pixel, error) {
	c, err := clr.Hex(s)
	if err != nil {
		return Pixel{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b, _ := c.Clamped().RGBA()
	return Pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}, nil
}

// Named returns the opaque Pixel for an SVG 1.1 color keyword such as
// "cornflowerblue".
func Named(name string) (Pixel, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Pixel{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, name)
	}
	return PixelFromColor(c), nil
}
