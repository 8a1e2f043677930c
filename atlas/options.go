package atlas

import (
	"image"
	"log/slog"
	"runtime"
)

// DefaultMaxSize caps the retry loop's doubling. It matches the maximum
// texture extent of common GPUs.
const DefaultMaxSize = 16384

// Loader resolves a source path to decoded NRGBA pixels. Build calls it once
// per distinct path, possibly from several goroutines at a time.
type Loader interface {
	Load(path string) (*image.NRGBA, error)
}

// Option configures a Build call.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	maxSize int
	workers int
	loader  Loader
}

func newOptions() options {
	return options{
		logger:  slog.New(slog.DiscardHandler),
		maxSize: DefaultMaxSize,
		workers: runtime.NumCPU(),
	}
}

// WithLogger routes build progress to l. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxSize caps the atlas side length in pixels. Non-positive values keep
// DefaultMaxSize.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithWorkers sets how many sources decode concurrently. Non-positive values
// keep the NumCPU default.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLoader substitutes the source decoder, e.g. to share one decode cache
// across builds or to feed in-memory images. The default is a fresh cache
// per Build call.
func WithLoader(l Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}
