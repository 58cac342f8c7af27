package quantize

import (
	"fmt"
	"math/bits"
)

// MaxColors is the largest palette size accepted by Depth.
const MaxColors = 1 << 24

// Depth converts a palette size into a median-cut recursion depth.
//
// numberOfColors must be a power of two between 1 and MaxColors; anything
// else returns ErrInvalidPaletteSize. Depth(1) is 0, which averages the whole
// image into a single color.
func Depth(numberOfColors int) (int, error) {
	if numberOfColors <= 0 || numberOfColors > MaxColors || numberOfColors&(numberOfColors-1) != 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPaletteSize, numberOfColors)
	}
	return bits.TrailingZeros(uint(numberOfColors)), nil
}

// MaxPaletteSize returns the largest palette size Depth accepts for an image
// of the given pixel count: the biggest power of two no larger than pixels or
// MaxColors. It returns 0 when pixels is not positive.
func MaxPaletteSize(pixels int) int {
	if pixels <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(min(pixels, MaxColors))) - 1)
}

// validate checks every precondition of a quantization run before anything
// is read from or written to buf.
func validate(buf PixelBuffer, numberOfColors int) (int, error) {
	depth, err := Depth(numberOfColors)
	if err != nil {
		return 0, err
	}
	w, h := buf.Width(), buf.Height()
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	if numberOfColors > w*h {
		return 0, fmt.Errorf("%w: %d colors for %d pixels", ErrDegenerateBucket, numberOfColors, w*h)
	}
	return depth, nil
}

// Quantize reduces buf to at most numberOfColors colors using median cut and
// writes the result back in place.
//
// Parameters:
//   - buf: The pixel buffer to recolor. Its dimensions never change.
//   - numberOfColors: Target palette size; a power of two no larger than the
//     number of pixels.
//   - opts: WithWorkers and WithLogger.
//
// Returns:
//   - error: ErrInvalidPaletteSize, ErrEmptyImage or ErrDegenerateBucket
//     (wrapped). On error buf is left exactly as it was.
//
// # Algorithm
//
//  1. Extract one sample per pixel.
//  2. Partition the samples log2(numberOfColors) times, each time cutting
//     at the median of the channel with the widest range.
//  3. Replace every leaf's samples with the leaf's rounded mean color.
//  4. Write all samples back to their original coordinates.
//
// The output depends only on the multiset of input colors and their scan
// order for equal channel values; it never depends on the worker count.
func Quantize(buf PixelBuffer, numberOfColors int, opts ...Option) error {
	depth, err := validate(buf, numberOfColors)
	if err != nil {
		return err
	}
	o := applyOptions(opts)

	samples := Extract(buf)
	err = Partition(samples, Range{Length: len(samples)}, depth, func(_ int, r Range) error {
		AverageBucket(samples, r)
		return nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("failed to partition samples: %w", err)
	}

	Recolor(buf, samples)
	o.logger.Debug("quantized image",
		"width", buf.Width(), "height", buf.Height(), "colors", numberOfColors, "depth", depth)
	return nil
}

// Palette computes the colors Quantize would assign, without touching buf.
//
// The returned slice has numberOfColors entries in partition-tree order
// (leftmost leaf first). Entries can repeat when two buckets average to the
// same color.
func Palette(buf PixelBuffer, numberOfColors int, opts ...Option) ([]RGB, error) {
	depth, err := validate(buf, numberOfColors)
	if err != nil {
		return nil, err
	}

	samples := Extract(buf)
	palette := make([]RGB, numberOfColors)
	err = Partition(samples, Range{Length: len(samples)}, depth, func(i int, r Range) error {
		palette[i] = AverageBucket(samples, r)
		return nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to partition samples: %w", err)
	}
	return palette, nil
}
