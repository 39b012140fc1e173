// Package drawbuffer implements a fixed-size RGBA pixel buffer and a small set
// of in-place drawing primitives.
//
// A Drawbuffer stores width*height pixels row-major, 4 bytes per pixel in
// r,g,b,a order. Every operation that takes coordinates clips them to the
// buffer: writes outside the buffer are dropped and reads outside the buffer
// return Transparent.
//
//	db, err := drawbuffer.New(320, 200)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	db.Clear(0, 0, 0, 255)
//	db.SetLine(0, 0, 319, 199, 255, 255, 255, 255)
//
// A Drawbuffer is not safe for concurrent use. Callers that share a buffer
// between goroutines must serialize access themselves.
package drawbuffer

import (
	"fmt"
	"log/slog"
	"math"
)

// Version identifies the revision of the drawbuffer operation set.
const Version = "2.0"

const bytesPerPixel = 4

// Drawbuffer is an owned, row-major RGBA pixel store. Its dimensions are
// fixed at creation.
type Drawbuffer struct {
	width  uint16
	height uint16
	length int
	pix    []uint8
	closed bool
	log    *slog.Logger
}

// New allocates a zeroed Drawbuffer of width*height pixels. Zero dimensions
// are legal and produce an empty buffer.
func New(width, height uint16, opts ...Option) (*Drawbuffer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := uint64(width) * uint64(height) * bytesPerPixel
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: %dx%d does not fit in memory", ErrAllocation, width, height)
	}
	length := int(size)
	if o.maxBytes > 0 && length > o.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes requested, limit is %d", ErrAllocation, length, o.maxBytes)
	}

	pix, err := allocate(length)
	if err != nil {
		return nil, err
	}

	db := &Drawbuffer{
		width:  width,
		height: height,
		length: length,
		pix:    pix,
		log:    o.logger(),
	}
	db.log.Debug("drawbuffer: allocated", "width", width, "height", height, "bytes", length)
	return db, nil
}

// allocate converts a failed runtime allocation into ErrAllocation.
func allocate(n int) (pix []uint8, err error) {
	defer func() {
		if r := recover(); r != nil {
			pix, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrAllocation, n, r)
		}
	}()
	return make([]uint8, n), nil
}

// Close releases the pixel store. Calling Close more than once is a no-op.
func (db *Drawbuffer) Close() error {
	if db.closed {
		return nil
	}
	db.closed = true
	db.pix = nil
	db.log.Debug("drawbuffer: closed", "width", db.width, "height", db.height)
	return nil
}

// Closed reports whether Close has been called.
func (db *Drawbuffer) Closed() bool {
	return db.closed
}

// Width returns the width in pixels.
func (db *Drawbuffer) Width() int {
	return int(db.width)
}

// Height returns the height in pixels.
func (db *Drawbuffer) Height() int {
	return int(db.height)
}

// ByteLen returns the length of the pixel store in bytes.
func (db *Drawbuffer) ByteLen() int {
	return db.length
}

func (db *Drawbuffer) String() string {
	return fmt.Sprintf("Drawbuffer: %dx%d", db.width, db.height)
}

// offset returns the byte offset of pixel (x, y), or false when the
// coordinate lies outside the buffer or the buffer is closed.
func (db *Drawbuffer) offset(x, y int) (int, bool) {
	if db.closed || x < 0 || y < 0 || x >= int(db.width) || y >= int(db.height) {
		return 0, false
	}
	return (y*int(db.width) + x) * bytesPerPixel, true
}

func (db *Drawbuffer) checkOpen() error {
	if db.closed {
		return ErrClosed
	}
	return nil
}
