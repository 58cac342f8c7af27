package imaging

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/pixelator-mcp/internal/quantize"
)

// DefaultColors is the palette size used when callers don't choose one.
const DefaultColors = 16

// PixelateOptions controls a Pixelate run.
type PixelateOptions struct {
	// Colors is the median-cut palette size. It must be a power of two no
	// larger than the pixel count. Zero skips quantization.
	Colors int

	// BlockSize is the mosaic block edge in pixels. Zero skips the mosaic
	// pass; negative values are rejected.
	BlockSize int

	// Workers bounds the goroutines used by each pass. Values below 1 run
	// single-threaded.
	Workers int

	// Logger receives debug output from the quantize package. May be nil.
	Logger *slog.Logger
}

// PixelateResult holds the processed image and what was applied to it.
type PixelateResult struct {
	Image     *image.NRGBA `json:"-"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Colors    int          `json:"colors,omitempty"`
	BlockSize int          `json:"block_size,omitempty"`
	// DistinctColors is the number of exact colors in the output.
	DistinctColors int `json:"distinct_colors"`
}

// Pixelate quantizes a copy of img and then, if requested, applies the
// block mosaic pass to that copy.
//
// The source image is never modified, which keeps cached images reusable.
// The copy is an *image.NRGBA produced by imaging.Clone, so quantization runs
// directly on its pixel slice.
//
// Returns an error wrapping one of the quantize sentinel errors when the
// options don't fit the image.
func Pixelate(img image.Image, opts PixelateOptions) (*PixelateResult, error) {
	if opts.Colors == 0 && opts.BlockSize == 0 {
		return nil, fmt.Errorf("nothing to do: set colors, block size or both")
	}

	dst := imaging.Clone(img)
	buf := quantize.NewNRGBABuffer(dst)
	qopts := []quantize.Option{
		quantize.WithWorkers(opts.Workers),
		quantize.WithLogger(opts.Logger),
	}

	if opts.Colors != 0 {
		if err := quantize.Quantize(buf, opts.Colors, qopts...); err != nil {
			return nil, fmt.Errorf("failed to quantize: %w", err)
		}
	}
	if opts.BlockSize != 0 {
		if err := quantize.Mosaic(buf, opts.BlockSize, qopts...); err != nil {
			return nil, fmt.Errorf("failed to apply mosaic: %w", err)
		}
	}

	return &PixelateResult{
		Image:          dst,
		Width:          dst.Rect.Dx(),
		Height:         dst.Rect.Dy(),
		Colors:         opts.Colors,
		BlockSize:      opts.BlockSize,
		DistinctColors: countDistinct(buf),
	}, nil
}

func countDistinct(buf quantize.PixelBuffer) int {
	seen := make(map[quantize.RGB]struct{})
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			seen[buf.RGBAt(x, y)] = struct{}{}
		}
	}
	return len(seen)
}
