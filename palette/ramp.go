package palette

import (
	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/drawbuffer"
)

func isGrey(c clr.Color) bool {
	return c.R == c.G && c.G == c.B
}

// mix interpolates between two colors. Greys are mixed in RGB so the result
// stays neutral; everything else is mixed in CIE-L*a*b*.
func mix(c1, c2 clr.Color, t float64) clr.Color {
	if isGrey(c1) || isGrey(c2) {
		return c1.BlendRgb(c2, t).Clamped()
	}
	return c1.BlendLab(c2, t).Clamped()
}

// Ramp returns steps colors evenly spaced from "from" to "to", both ends
// included. Alpha is interpolated linearly. Fewer than two steps return just
// the start color, or nothing when steps <= 0.
func Ramp(from, to drawbuffer.Pixel, steps int) []drawbuffer.Pixel {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []drawbuffer.Pixel{from}
	}

	c1, _ := clr.MakeColor(opaque(from))
	c2, _ := clr.MakeColor(opaque(to))

	ramp := make([]drawbuffer.Pixel, steps)
	for i := range ramp {
		t := float64(i) / float64(steps-1)
		r, g, b, _ := mix(c1, c2, t).RGBA()
		ramp[i] = drawbuffer.Pixel{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(float64(from.A)*(1-t) + float64(to.A)*t + 0.5),
		}
	}

	// pin the ends to the exact input colors
	ramp[0], ramp[steps-1] = from, to
	drawbuffer.Logger().Debug("palette: ramp", "steps", steps)
	return ramp
}

// opaque drops alpha so go-colorful sees the straight color channels.
func opaque(p drawbuffer.Pixel) drawbuffer.Pixel {
	p.A = 0xff
	return p
}
