package drawbuffer

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBA(t *testing.T) {
	cases := []struct {
		r, g, b, a int
		ok         bool
	}{
		{0, 0, 0, 0, true},
		{255, 255, 255, 255, true},
		{-1, 0, 0, 0, false},
		{0, 256, 0, 0, false},
		{0, 0, 1000, 0, false},
		{0, 0, 0, -255, false},
	}
	for _, c := range cases {
		p, err := RGBA(c.r, c.g, c.b, c.a)
		if c.ok {
			if err != nil {
				t.Errorf("RGBA(%d, %d, %d, %d): %v", c.r, c.g, c.b, c.a, err)
			} else if p != (Pixel{uint8(c.r), uint8(c.g), uint8(c.b), uint8(c.a)}) {
				t.Errorf("RGBA(%d, %d, %d, %d) = %v", c.r, c.g, c.b, c.a, p)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("RGBA(%d, %d, %d, %d): got %v, want ErrInvalidColor", c.r, c.g, c.b, c.a, err)
		}
	}
}

func TestPixelColor(t *testing.T) {
	p := Pixel{200, 100, 50, 255}
	r, g, b, a := p.RGBA()
	if r != 200*257 || g != 100*257 || b != 50*257 || a != 255*257 {
		t.Fatalf("RGBA() = %d, %d, %d, %d", r, g, b, a)
	}
	if back := PixelFromColor(p); back != p {
		t.Fatalf("PixelFromColor(%v) = %v", p, back)
	}
	if got := PixelFromColor(color.RGBA{R: 50, A: 100}); got.A != 100 || got.R != 127 {
		t.Fatalf("premultiplied conversion = %v", got)
	}
}

func TestParseHex(t *testing.T) {
	p, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if p != (Pixel{255, 128, 0, 255}) {
		t.Fatalf("ParseHex = %v", p)
	}
	if _, err := ParseHex("not a color"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("got %v, want ErrInvalidColor", err)
	}
}

func TestNamed(t *testing.T) {
	cases := map[string]Pixel{
		"red":            {255, 0, 0, 255},
		"CornflowerBlue": {100, 149, 237, 255},
		"black":          {0, 0, 0, 255},
	}
	for name, want := range cases {
		p, err := Named(name)
		if err != nil {
			t.Errorf("Named(%q): %v", name, err)
			continue
		}
		if p != want {
			t.Errorf("Named(%q) = %v, want %v", name, p, want)
		}
	}
	if _, err := Named("no-such-color"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("got %v, want ErrInvalidColor", err)
	}
}
