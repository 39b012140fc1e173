package drawbuffer

import "fmt"

// Transformer computes the new color of a single pixel.
type Transformer interface {
	TransformPixel(x, y int, p Pixel) (Pixel, error)
}

// PixelFunc adapts an ordinary function to the Transformer interface.
type PixelFunc func(x, y int, p Pixel) (Pixel, error)

// TransformPixel calls f(x, y, p).
func (f PixelFunc) TransformPixel(x, y int, p Pixel) (Pixel, error) {
	return f(x, y, p)
}

// PixelFunction calls f once for every pixel and stores the returned color.
// See Transform.
func (db *Drawbuffer) PixelFunction(f PixelFunc) error {
	if f == nil {
		return fmt.Errorf("%w: nil function", ErrCallback)
	}
	return db.Transform(f)
}

// Transform visits every pixel in row-major order, y outer and x inner, and
// writes the transformer's result back before moving to the next pixel. A
// transformer may therefore observe pixels it has already rewritten.
//
// If the transformer fails, Transform stops and returns an error matching
// both ErrCallback and the transformer's error. Pixels already rewritten keep
// their new values.
func (db *Drawbuffer) Transform(t Transformer) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("%w: nil transformer", ErrCallback)
	}

	for y := 0; y < int(db.height); y++ {
		for x := 0; x < int(db.width); x++ {
			p, err := t.TransformPixel(x, y, db.at(x, y))
			if err != nil {
				db.log.Debug("drawbuffer: pixel function aborted", "x", x, "y", y, "err", err)
				return fmt.Errorf("%w at (%d, %d): %w", ErrCallback, x, y, err)
			}
			db.plot(x, y, p)
		}
	}
	return nil
}
