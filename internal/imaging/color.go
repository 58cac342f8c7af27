package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/pixelator-mcp/internal/quantize"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// newColorResult describes an 8-bit color in hex, RGB and HSL form.
func newColorResult(c quantize.RGB) ColorResult {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, l := cf.Hsl()
	return ColorResult{
		Hex: strings.ToUpper(cf.Hex()),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// rgbAt reads a pixel as non-premultiplied 8-bit color, the same values
// Pixelate and ExtractPalette see after cloning to NRGBA.
func rgbAt(img image.Image, x, y int) quantize.RGB {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return quantize.RGB{R: c.R, G: c.G, B: c.B}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
//
// Coordinates are relative to the image bounds, so (0,0) is always the
// top-left pixel.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	res := newColorResult(rgbAt(img, bounds.Min.X+x, bounds.Min.Y+y))
	return &res, nil
}

// PaletteEntry is one median-cut bucket: its mean color and how many pixels
// it covers.
type PaletteEntry struct {
	Color      ColorResult `json:"color"`
	Pixels     int         `json:"pixels"`
	Percentage float64     `json:"percentage"` // Share of all pixels (0-100)
}

// PaletteResult contains the palette median cut would produce for an image.
type PaletteResult struct {
	// Colors is the requested palette size.
	Colors int `json:"colors"`

	// Entries has exactly Colors items in partition order: the first entry
	// is the bucket holding the lowest values of the first split channel.
	Entries []PaletteEntry `json:"entries"`
}

// ExtractPalette computes the median-cut palette of img without producing a
// recolored image.
//
// Parameters:
//   - img: The source image. It is not modified.
//   - colors: Palette size; a power of two no larger than the pixel count.
//   - workers: Goroutine budget for the partitioner.
//
// Returns:
//   - *PaletteResult: One entry per bucket with the bucket's mean color and
//     pixel count.
//   - error: Wraps quantize.ErrInvalidPaletteSize, quantize.ErrEmptyImage or
//     quantize.ErrDegenerateBucket when colors doesn't fit the image.
func ExtractPalette(img image.Image, colors, workers int) (*PaletteResult, error) {
	buf := quantize.NewNRGBABuffer(imaging.Clone(img))
	depth, err := quantize.Depth(colors)
	if err != nil {
		return nil, err
	}
	total := buf.Width() * buf.Height()
	if total == 0 {
		return nil, fmt.Errorf("%w: %dx%d", quantize.ErrEmptyImage, buf.Width(), buf.Height())
	}
	if colors > total {
		return nil, fmt.Errorf("%w: %d colors for %d pixels", quantize.ErrDegenerateBucket, colors, total)
	}

	samples := quantize.Extract(buf)
	entries := make([]PaletteEntry, colors)
	err = quantize.Partition(samples, quantize.Range{Length: len(samples)}, depth,
		func(i int, r quantize.Range) error {
			entries[i] = PaletteEntry{
				Color:      newColorResult(quantize.AverageBucket(samples, r)),
				Pixels:     r.Length,
				Percentage: roundPercent(r.Length, total),
			}
			return nil
		}, quantize.WithWorkers(workers))
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette: %w", err)
	}

	return &PaletteResult{Colors: colors, Entries: entries}, nil
}

// ColorFrequency represents an exact color and its occurrence in an image.
type ColorFrequency struct {
	Color      ColorResult `json:"color"`
	Pixels     int         `json:"pixels"`
	Percentage float64     `json:"percentage"` // Share of all pixels (0-100)
}

// ColorCountResult lists the exact colors of an image.
type ColorCountResult struct {
	// Distinct is the total number of different colors in the image.
	Distinct int `json:"distinct"`

	// Colors holds up to the requested limit of colors, most frequent first.
	Colors []ColorFrequency `json:"colors"`
}

// CountColors tallies the exact RGB colors of img.
//
// Unlike ExtractPalette nothing is merged: two colors that differ by one
// unit are counted separately. This is mostly useful to verify a quantized or
// mosaicked result.
//
// Colors are ordered by pixel count, descending. Colors with equal counts
// keep the order in which a row-major scan first meets them, so the result
// is deterministic. limit <= 0 returns every color.
func CountColors(img image.Image, limit int) *ColorCountResult {
	bounds := img.Bounds()
	index := make(map[quantize.RGB]int)
	var colors []quantize.RGB
	var counts []int

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := rgbAt(img, x, y)
			if i, ok := index[c]; ok {
				counts[i]++
				continue
			}
			index[c] = len(colors)
			colors = append(colors, c)
			counts = append(counts, 1)
		}
	}

	order := make([]int, len(colors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	total := bounds.Dx() * bounds.Dy()
	result := &ColorCountResult{
		Distinct: len(colors),
		Colors:   make([]ColorFrequency, 0, len(order)),
	}
	for _, i := range order {
		result.Colors = append(result.Colors, ColorFrequency{
			Color:      newColorResult(colors[i]),
			Pixels:     counts[i],
			Percentage: roundPercent(counts[i], total),
		})
	}
	return result
}

// roundPercent returns part/total as a percentage rounded to two decimals.
func roundPercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part*10000/total) / 100
}
