// Package quantize reduces an image's colors with the median-cut algorithm
// and pixelates it with a block-mode mosaic pass.
//
// Both operations work in place on a PixelBuffer supplied by the caller.
// NRGBABuffer adapts *image.NRGBA directly; ImageBuffer adapts any
// draw.Image.
//
// # Median Cut
//
// Quantize extracts one Sample per pixel into a single slice and partitions
// it recursively. Recursive calls receive Range descriptors (offset, length)
// into that slice, so sibling partitions are always disjoint. At each level
// the range is stable-sorted on the channel with the widest range and cut at
// its midpoint; a palette of 2^d colors needs d levels. Each leaf is
// replaced by its rounded mean color and the samples are written back to
// their coordinates.
//
// # Mosaic
//
// Mosaic tiles the buffer with square blocks aligned at (0,0), clipping the
// last row and column, and fills each block with its most frequent exact
// color. Ties go to the color seen first in a row-major scan of the block.
//
// # Concurrency
//
// Everything runs on the calling goroutine unless WithWorkers is given.
// Parallel runs split only disjoint sample ranges or block rows and produce
// identical results.
//
// # Errors
//
// All preconditions are checked before the buffer is touched. Failures wrap
// ErrInvalidPaletteSize, ErrEmptyImage, ErrDegenerateBucket or
// ErrInvalidBlockSize and can be tested with errors.Is.
package quantize
