package quantize

import (
	"io"
	"log/slog"
)

type options struct {
	workers int
	logger  *slog.Logger
}

// Option configures Quantize, Palette and Mosaic.
type Option func(*options)

// WithWorkers sets how many goroutines may work on disjoint sample ranges or
// block bands at the same time.
//
// The default is 1, which runs everything on the calling goroutine. Values
// below 1 are treated as 1. Results do not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLogger sets the logger used for debug output. A nil logger disables
// logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
