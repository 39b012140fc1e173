package drawbuffer

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, w, h uint16) *Drawbuffer {
	t.Helper()
	db, err := New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestNewByteLen(t *testing.T) {
	sizes := []struct{ w, h uint16 }{
		{0, 0}, {0, 10}, {10, 0}, {1, 1}, {3, 7}, {320, 200},
	}
	for _, s := range sizes {
		db := mustNew(t, s.w, s.h)
		if want := int(s.w) * int(s.h) * 4; db.ByteLen() != want {
			t.Errorf("%dx%d: ByteLen() = %d, want %d", s.w, s.h, db.ByteLen(), want)
		}
		if db.Width() != int(s.w) || db.Height() != int(s.h) {
			t.Errorf("%dx%d: got %dx%d", s.w, s.h, db.Width(), db.Height())
		}
		if len(db.Dump()) != db.ByteLen() {
			t.Errorf("%dx%d: dump length %d", s.w, s.h, len(db.Dump()))
		}
	}
}

func TestNewIsZeroed(t *testing.T) {
	db := mustNew(t, 4, 4)
	for i, v := range db.Dump() {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
}

func TestNewMaxBytes(t *testing.T) {
	if _, err := New(16, 16, WithMaxBytes(16*16*4)); err != nil {
		t.Fatalf("at limit: %v", err)
	}
	_, err := New(16, 17, WithMaxBytes(16*16*4))
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("over limit: got %v, want ErrAllocation", err)
	}
}

func TestEmptyBuffer(t *testing.T) {
	db := mustNew(t, 0, 0)
	if err := db.SetPixel(0, 0, 1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	if p := db.GetPixel(0, 0); p != Transparent {
		t.Fatalf("GetPixel on empty buffer = %v", p)
	}
	if err := db.Clear(9, 9, 9, 9); err != nil {
		t.Fatal(err)
	}
	if err := db.SetLine(-5, -5, 5, 5, 255, 0, 0, 255); err != nil {
		t.Fatal(err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	db := mustNew(t, 2, 2)
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if !db.Closed() {
		t.Fatal("expected Closed() after Close")
	}
	if db.Width() != 2 || db.Height() != 2 || db.ByteLen() != 16 {
		t.Fatal("accessors changed after close")
	}
}

func TestUseAfterClose(t *testing.T) {
	db := mustNew(t, 2, 2)
	other := mustNew(t, 2, 2)
	_ = db.Close()

	calls := []struct {
		name string
		fn   func() error
	}{
		{"SetPixel", func() error { return db.SetPixel(0, 0, 1, 1, 1, 1) }},
		{"SetPixelColor", func() error { return db.SetPixelColor(0, 0, Pixel{}) }},
		{"Clear", func() error { return db.Clear(1, 2, 3, 4) }},
		{"SetRectangle", func() error { return db.SetRectangle(0, 0, 1, 1, 1, 2, 3, 4) }},
		{"SetBox", func() error { return db.SetBox(0, 0, 1, 1, 1, 2, 3, 4) }},
		{"SetLine", func() error { return db.SetLine(0, 0, 1, 1, 1, 2, 3, 4) }},
		{"Load", func() error { return db.Load(make([]byte, 16)) }},
		{"DrawTo source", func() error { return db.DrawTo(other, 0, 0, 0, 0, 2, 2, 1) }},
		{"DrawTo target", func() error { return other.DrawTo(db, 0, 0, 0, 0, 2, 2, 1) }},
		{"PixelFunction", func() error {
			return db.PixelFunction(func(x, y int, p Pixel) (Pixel, error) { return p, nil })
		}},
	}
	for _, c := range calls {
		if err := c.fn(); !errors.Is(err, ErrClosed) {
			t.Errorf("%s: got %v, want ErrClosed", c.name, err)
		}
	}

	if p := db.GetPixel(0, 0); p != Transparent {
		t.Errorf("GetPixel after close = %v", p)
	}
	if d := db.Dump(); d != nil {
		t.Errorf("Dump after close = %v", d)
	}
}

func TestString(t *testing.T) {
	db := mustNew(t, 320, 200)
	if s := db.String(); s != "Drawbuffer: 320x200" {
		t.Fatalf("String() = %q", s)
	}
}
