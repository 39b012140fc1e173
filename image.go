package drawbuffer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// ColorModel implements the image.Image interface.
func (db *Drawbuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (db *Drawbuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(db.width), int(db.height))
}

// At implements the image.Image interface.
func (db *Drawbuffer) At(x, y int) color.Color {
	return db.at(x, y)
}

// Set implements the draw.Image interface. Out-of-range coordinates and
// writes to a closed buffer are dropped.
func (db *Drawbuffer) Set(x, y int, c color.Color) {
	db.plot(x, y, PixelFromColor(c))
}

// ToImage copies the buffer into a new image.NRGBA.
func (db *Drawbuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(db.Bounds())
	copy(img.Pix, db.pix)
	return img
}

// FromImage creates a Drawbuffer holding a copy of src. The image must fit
// the uint16 dimensions of a Drawbuffer.
func FromImage(src image.Image, opts ...Option) (*Drawbuffer, error) {
	b := src.Bounds()
	if b.Dx() > math.MaxUint16 || b.Dy() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: image %dx%d exceeds %dx%d",
			ErrAllocation, b.Dx(), b.Dy(), math.MaxUint16, math.MaxUint16)
	}

	db, err := New(uint16(b.Dx()), uint16(b.Dy()), opts...)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(db.Bounds())
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	copy(db.pix, dst.Pix)
	return db, nil
}
