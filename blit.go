package drawbuffer

import "math"

// DrawTo copies the w×h region at (sourceX, sourceY) of db into target at
// (targetX, targetY). Pixels with zero alpha are skipped; every other pixel
// replaces the target pixel as-is, without blending.
//
// With scale > 1 each source pixel is drawn as a scale×scale block at
// (targetX + cx*scale, targetY + cy*scale). Reads outside db and writes
// outside target are clipped.
//
// db and target may be the same buffer, in which case pixels are read and
// written in row-major order as the copy proceeds.
func (db *Drawbuffer) DrawTo(target *Drawbuffer, targetX, targetY, sourceX, sourceY, w, h, scale int) error {
	if target == nil {
		return ErrNilTarget
	}
	if err := db.checkOpen(); err != nil {
		return err
	}
	if err := target.checkOpen(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	if scale < 1 {
		scale = 1
	}

	// Source pixels outside db read as Transparent and would be skipped, so
	// only the part of the region that overlaps db is visited.
	sx0, sx1 := span(sourceX, w, int(db.width))
	sy0, sy1 := span(sourceY, h, int(db.height))

	for sy := sy0; sy < sy1; sy++ {
		ty, ok := scaled(targetY, sy-sourceY, scale)
		if !ok || ty >= int(target.height) {
			break
		}
		for sx := sx0; sx < sx1; sx++ {
			tx, ok := scaled(targetX, sx-sourceX, scale)
			if !ok || tx >= int(target.width) {
				break
			}
			p := db.at(sx, sy)
			if !p.Opaque() {
				continue
			}
			if scale == 1 {
				target.plot(tx, ty, p)
				continue
			}
			target.block(tx, ty, scale, p)
		}
	}
	return nil
}

// scaled returns origin + i*scale, or false when the result would pass
// math.MaxInt and so lie beyond any buffer. i and scale are not negative.
func scaled(origin, i, scale int) (int, bool) {
	if i != 0 && scale > math.MaxInt/i {
		return 0, false
	}
	v := i * scale
	if origin > 0 && v > math.MaxInt-origin {
		return 0, false
	}
	return origin + v, true
}

// block fills the size×size square at (x, y) with p, clipped to the buffer.
func (db *Drawbuffer) block(x, y, size int, p Pixel) {
	x0, x1 := span(x, size, int(db.width))
	y0, y1 := span(y, size, int(db.height))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			db.plot(px, py, p)
		}
	}
}
