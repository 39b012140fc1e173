// Command dbdemo draws a test scene with every drawbuffer operation and saves
// it as an image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/bmp"

	"github.com/32bitkid/drawbuffer"
	"github.com/32bitkid/drawbuffer/palette"
)

func main() {
	var (
		width   = flag.Uint("width", 320, "image width")
		height  = flag.Uint("height", 200, "image height")
		scale   = flag.Int("scale", 4, "sprite magnification")
		output  = flag.String("output", "demo.png", "output file")
		format  = flag.String("format", "png", "output format: png or bmp")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		drawbuffer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	encode, err := encoder(*format)
	if err != nil {
		log.Fatal(err)
	}

	if *width > 0xffff || *height > 0xffff {
		log.Fatalf("size %dx%d exceeds 65535x65535", *width, *height)
	}

	db, err := drawbuffer.New(uint16(*width), uint16(*height))
	if err != nil {
		log.Fatalf("Failed to create drawbuffer: %v", err)
	}
	defer db.Close()

	if err := drawScene(db, *scale); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := encode(f, db); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%s)\n", *output, db)
}

func encoder(format string) (func(io.Writer, image.Image) error, error) {
	switch format {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func drawScene(db *drawbuffer.Drawbuffer, scale int) error {
	if err := db.Clear(0, 0, 0, 255); err != nil {
		return err
	}

	// background bands
	bands := palette.Ramp(palette.DB32EGA[1], palette.DB32EGA[11], 16)
	bandHeight := db.Height()/len(bands) + 1
	for i, c := range bands {
		if err := fill(db, 0, i*bandHeight, db.Width(), bandHeight, c); err != nil {
			return err
		}
	}

	// palette swatches with outlines
	for i, c := range palette.EGA {
		x := 4 + i*12
		if err := fill(db, x, 4, 10, 10, c); err != nil {
			return err
		}
		if err := db.SetBox(x-1, 3, 12, 12, 255, 255, 255, 255); err != nil {
			return err
		}
	}

	// a fan of lines from the bottom-left corner
	for i := 0; i <= 16; i++ {
		c := palette.Lookup(palette.EGA, i)
		x1 := db.Width() * i / 16
		if err := db.SetLine(0, db.Height()-1, x1, 20, int(c.R), int(c.G), int(c.B), 255); err != nil {
			return err
		}
	}

	// sprite, magnified with a transparent border
	sprite, err := newSprite()
	if err != nil {
		return err
	}
	defer sprite.Close()
	if err := sprite.DrawTo(db, db.Width()/2, db.Height()/2, 0, 0, sprite.Width(), sprite.Height(), scale); err != nil {
		return err
	}

	// darken the right half
	half := db.Width() / 2
	if err := db.PixelFunction(func(x, y int, p drawbuffer.Pixel) (drawbuffer.Pixel, error) {
		if x >= half {
			p.R, p.G, p.B = p.R/2, p.G/2, p.B/2
		}
		return p, nil
	}); err != nil {
		return err
	}

	// round trip through the raw format
	return db.Load(db.Dump())
}

func newSprite() (*drawbuffer.Drawbuffer, error) {
	sprite, err := drawbuffer.New(8, 8)
	if err != nil {
		return nil, err
	}
	body, err := drawbuffer.Named("gold")
	if err != nil {
		return nil, err
	}
	eye, err := drawbuffer.ParseHex("#1a1c2c")
	if err != nil {
		return nil, err
	}
	if err := fill(sprite, 1, 1, 6, 6, body); err != nil {
		return nil, err
	}
	if err := sprite.SetPixelColor(2, 3, eye); err != nil {
		return nil, err
	}
	if err := sprite.SetPixelColor(5, 3, eye); err != nil {
		return nil, err
	}
	return sprite, nil
}

func fill(db *drawbuffer.Drawbuffer, x, y, w, h int, c drawbuffer.Pixel) error {
	return db.SetRectangle(x, y, w, h, int(c.R), int(c.G), int(c.B), int(c.A))
}
