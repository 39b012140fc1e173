package drawbuffer

import (
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

// Dump returns a copy of the pixel store: ByteLen bytes, r,g,b,a per pixel,
// left-to-right, top-to-bottom. A closed buffer dumps nil.
func (db *Drawbuffer) Dump() []byte {
	if db.closed {
		return nil
	}
	data := make([]byte, len(db.pix))
	copy(data, db.pix)
	return data
}

// Load replaces the pixel store with data, which must be exactly ByteLen
// bytes in the format produced by Dump. On error the buffer is unchanged.
func (db *Drawbuffer) Load(data []byte) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	if len(data) != db.length {
		db.log.Debug("drawbuffer: load rejected", "got", len(data), "want", db.length)
		return fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(data), db.length)
	}
	copy(db.pix, data)
	return nil
}

// WriteTo writes the raw pixel store to w.
func (db *Drawbuffer) WriteTo(w io.Writer) (int64, error) {
	if err := db.checkOpen(); err != nil {
		return 0, err
	}
	n, err := w.Write(db.pix)
	return int64(n), err
}

// LoadFrom reads exactly ByteLen bytes of raw pixel data, in the format
// produced by Dump, from r and returns how many bytes it decoded. Unlike
// io.ReaderFrom it does not read to EOF, and bytes after the image may be
// consumed from r by internal buffering.
//
// The buffer is only updated once the whole image has been read; a stream
// that ends early returns ErrLengthMismatch and leaves the buffer unchanged.
func (db *Drawbuffer) LoadFrom(r io.Reader) (int64, error) {
	if err := db.checkOpen(); err != nil {
		return 0, err
	}

	var (
		src     = &eofReader{r: r}
		br      = bitreader.NewReader(src)
		scratch = make([]uint8, db.length)
	)
	for i := range scratch {
		b, err := br.Read8(8)
		if err != nil {
			if src.eof || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				db.log.Debug("drawbuffer: short pixel stream", "got", i, "want", db.length)
				return int64(i), fmt.Errorf("%w: stream ended after %d of %d bytes", ErrLengthMismatch, i, db.length)
			}
			return int64(i), err
		}
		scratch[i] = b
	}

	copy(db.pix, scratch)
	return int64(len(scratch)), nil
}

// eofReader remembers whether the underlying reader has been exhausted.
type eofReader struct {
	r   io.Reader
	eof bool
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err == io.EOF {
		e.eof = true
	}
	return n, err
}
