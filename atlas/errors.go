package atlas

import "errors"

// Packing and build errors.
var (
	// ErrAtlasTooSmall is returned when a pack attempt runs out of space at
	// the current candidate size. Build recovers from it by doubling the
	// size; it only escapes to callers driving an Atlas directly.
	ErrAtlasTooSmall = errors.New("atlas: too small")

	// ErrDecode is returned when a source path cannot be read or decoded.
	ErrDecode = errors.New("atlas: decode source")

	// ErrInvalidDimensions is returned when a decoded image has zero width
	// or height.
	ErrInvalidDimensions = errors.New("atlas: image has zero dimension")

	// ErrSizeLimitExceeded is returned when packing would need an atlas
	// larger than the configured maximum size.
	ErrSizeLimitExceeded = errors.New("atlas: size limit exceeded")
)
