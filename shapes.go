package drawbuffer

import "math"

// Clear sets every pixel to the given color.
func (db *Drawbuffer) Clear(r, g, b, a int) error {
	p, err := db.color(r, g, b, a)
	if err != nil {
		return err
	}

	// all four channels equal: the store is one repeated byte
	if p.R == p.G && p.G == p.B && p.B == p.A {
		if p.R == 0 {
			clear(db.pix)
			return nil
		}
		for i, n := 0, len(db.pix); i < n; i++ {
			db.pix[i] = p.R
		}
		return nil
	}

	for i, n := 0, len(db.pix); i < n; i += bytesPerPixel {
		db.pix[i+0] = p.R
		db.pix[i+1] = p.G
		db.pix[i+2] = p.B
		db.pix[i+3] = p.A
	}
	return nil
}

// SetRectangle fills the box [x, x+w) × [y, y+h), clipped to the buffer.
func (db *Drawbuffer) SetRectangle(x, y, w, h, r, g, b, a int) error {
	p, err := db.color(r, g, b, a)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	x0, x1 := span(x, w, int(db.width))
	y0, y1 := span(y, h, int(db.height))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			db.plot(px, py, p)
		}
	}
	return nil
}

// SetBox draws the 1-pixel outline of the box [x, x+w) × [y, y+h), clipped
// to the buffer. The interior is left untouched.
func (db *Drawbuffer) SetBox(x, y, w, h, r, g, b, a int) error {
	p, err := db.color(r, g, b, a)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	left, right := x, last(x, w)
	top, bottom := y, last(y, h)

	// columns, without the bottom row
	y0, y1 := span(top, h-1, int(db.height))
	for cy := y0; cy < y1; cy++ {
		db.plot(left, cy, p)
		db.plot(right, cy, p)
	}

	// rows, corners included
	x0, x1 := span(left, w, int(db.width))
	for cx := x0; cx < x1; cx++ {
		db.plot(cx, top, p)
		db.plot(cx, bottom, p)
	}
	return nil
}

// SetLine draws a line from (x0, y0) to (x1, y1), both ends included, using
// Bresenham's algorithm. Each point is clipped on its own, so the part of the
// line inside the buffer is the same as if the buffer were unbounded.
func (db *Drawbuffer) SetLine(x0, y0, x1, y1, r, g, b, a int) error {
	p, err := db.color(r, g, b, a)
	if err != nil {
		return err
	}

	var (
		dx, stepX = absInt(x1 - x0), step(x0, x1)
		dy, stepY = absInt(y1 - y0), step(y0, y1)
		fraction  = -dy / 2
	)
	if dx > dy {
		fraction = dx / 2
	}

	for {
		db.plot(x0, y0, p)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e := fraction
		if e > -dx {
			fraction -= dy
			x0 += stepX
		}
		if e < dy {
			fraction += dx
			y0 += stepY
		}
	}
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

// span clips the run [start, start+n) to [0, limit) without computing
// start+n, so runs reaching past math.MaxInt clip instead of wrapping.
func span(start, n, limit int) (lo, hi int) {
	if n <= 0 || start >= limit {
		return 0, 0
	}
	if start < 0 {
		// opposite signs: cannot overflow
		n += start
		start = 0
		if n <= 0 {
			return 0, 0
		}
	}
	return start, start + min(n, limit-start)
}

// last returns the final coordinate of the run [start, start+n), or -1 when
// it lies past math.MaxInt and so outside any buffer.
func last(start, n int) int {
	if start > 0 && n-1 > math.MaxInt-start {
		return -1
	}
	return start + n - 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
