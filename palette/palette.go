// Package palette provides fixed color tables and color ramps for picking
// drawbuffer colors.
package palette

import "github.com/32bitkid/drawbuffer"

func rgb24(c uint32) drawbuffer.Pixel {
	return drawbuffer.Pixel{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c >> 0),
		A: 0xff,
	}
}

// EGA is the standard 16-color EGA palette.
var EGA = []drawbuffer.Pixel{
	rgb24(0x000000),
	rgb24(0x0000AA),
	rgb24(0x00AA00),
	rgb24(0x00AAAA),
	rgb24(0xAA0000),
	rgb24(0xAA00AA),
	rgb24(0xAA5500),
	rgb24(0xAAAAAA),

	rgb24(0x555555),
	rgb24(0x5555FF),
	rgb24(0x55FF55),
	rgb24(0x55FFFF),
	rgb24(0xFF5555),
	rgb24(0xFF55FF),
	rgb24(0xFFFF55),
	rgb24(0xFFFFFF),
}

// DB32EGA maps the EGA slots onto the closest DawnBringer-32 colors.
var DB32EGA = []drawbuffer.Pixel{
	rgb24(0x000000),
	rgb24(0x3f3f74),
	rgb24(0x4b692f),
	rgb24(0x306082),
	rgb24(0xac3232),
	rgb24(0x45283c),
	rgb24(0x8f563b),
	rgb24(0x847e87),

	rgb24(0x323c39),
	rgb24(0x639bff),
	rgb24(0x6abe30),
	rgb24(0x5fcde4),
	rgb24(0xd95763),
	rgb24(0xd77bba),
	rgb24(0xfbf236),
	rgb24(0xffffff),
}

// Lookup returns entry i of pal, wrapping around its length. An empty
// palette yields drawbuffer.Transparent.
func Lookup(pal []drawbuffer.Pixel, i int) drawbuffer.Pixel {
	if len(pal) == 0 {
		return drawbuffer.Transparent
	}
	i %= len(pal)
	if i < 0 {
		i += len(pal)
	}
	return pal[i]
}
