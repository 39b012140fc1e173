package drawbuffer

// GetPixel returns the pixel at (x, y). Coordinates outside the buffer, and
// any read from a closed buffer, return Transparent.
func (db *Drawbuffer) GetPixel(x, y int) Pixel {
	return db.at(x, y)
}

// SetPixel sets the pixel at (x, y). Components outside [0, 255] return
// ErrInvalidColor and nothing is written; coordinates outside the buffer are
// dropped.
func (db *Drawbuffer) SetPixel(x, y, r, g, b, a int) error {
	p, err := db.color(r, g, b, a)
	if err != nil {
		return err
	}
	db.plot(x, y, p)
	return nil
}

// SetPixelColor sets the pixel at (x, y) to p, dropping out-of-range
// coordinates.
func (db *Drawbuffer) SetPixelColor(x, y int, p Pixel) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	db.plot(x, y, p)
	return nil
}

// color validates the components of a color-writing call and the buffer
// state, in that order.
func (db *Drawbuffer) color(r, g, b, a int) (Pixel, error) {
	p, err := RGBA(r, g, b, a)
	if err != nil {
		return Pixel{}, err
	}
	if err := db.checkOpen(); err != nil {
		return Pixel{}, err
	}
	return p, nil
}

func (db *Drawbuffer) at(x, y int) Pixel {
	i, ok := db.offset(x, y)
	if !ok {
		return Transparent
	}
	s := db.pix[i : i+bytesPerPixel : i+bytesPerPixel]
	return Pixel{s[0], s[1], s[2], s[3]}
}

func (db *Drawbuffer) plot(x, y int, p Pixel) {
	i, ok := db.offset(x, y)
	if !ok {
		return
	}
	s := db.pix[i : i+bytesPerPixel : i+bytesPerPixel]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}
