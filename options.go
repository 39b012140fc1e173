package drawbuffer

import "log/slog"

// Option configures a Drawbuffer during creation.
//
// Example:
//
//	db, err := drawbuffer.New(640, 480,
//		drawbuffer.WithMaxBytes(1<<20),
//		drawbuffer.WithLogger(slog.Default()),
//	)
type Option func(*options)

type options struct {
	maxBytes int
	log      *slog.Logger
}

func defaultOptions() options {
	return options{
		maxBytes: 0, // no limit beyond what uint16 dimensions allow
		log:      nil,
	}
}

// logger returns the per-buffer logger, or the package logger when none was set.
func (o options) logger() *slog.Logger {
	if o.log != nil {
		return o.log
	}
	return Logger()
}

// WithMaxBytes caps the size of the pixel store. New returns ErrAllocation
// for any buffer whose ByteLen would exceed n. A value <= 0 disables the cap.
func WithMaxBytes(n int) Option {
	return func(o *options) {
		o.maxBytes = n
	}
}

// WithLogger sets a logger for a single buffer, overriding the package logger
// set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}
