package quantize

import "errors"

var (
	// ErrInvalidPaletteSize is returned when the requested number of colors
	// is not a positive power of two.
	ErrInvalidPaletteSize = errors.New("palette size must be a positive power of two")

	// ErrEmptyImage is returned when the buffer has zero width or height.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrDegenerateBucket is returned when the requested palette would leave
	// at least one bucket without samples, i.e. when there are more colors
	// than pixels.
	ErrDegenerateBucket = errors.New("palette size exceeds pixel count")

	// ErrInvalidBlockSize is returned when the mosaic block edge is not
	// positive.
	ErrInvalidBlockSize = errors.New("block size must be positive")
)
