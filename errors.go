package drawbuffer

import "errors"

var (
	// ErrAllocation is returned when the pixel store cannot be allocated.
	ErrAllocation = errors.New("drawbuffer: can't allocate memory")

	// ErrInvalidColor is returned when a color component is outside [0, 255].
	ErrInvalidColor = errors.New("drawbuffer: invalid r,g,b,a value")

	// ErrLengthMismatch is returned when loaded data does not match ByteLen.
	ErrLengthMismatch = errors.New("drawbuffer: invalid length")

	// ErrCallback is returned when a pixel function fails. The callback's
	// own error is wrapped alongside it.
	ErrCallback = errors.New("drawbuffer: pixel function failed")

	// ErrClosed is returned when a mutating operation is called after Close.
	ErrClosed = errors.New("drawbuffer: use of closed drawbuffer")

	// ErrNilTarget is returned by DrawTo when the target is nil.
	ErrNilTarget = errors.New("drawbuffer: nil target")
)
