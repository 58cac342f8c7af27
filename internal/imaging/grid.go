package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/ironsheep/pixelator-mcp/internal/quantize"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGridColor is used when the requested grid color can't be parsed.
var DefaultGridColor = color.NRGBA{R: 255, A: 255}

// GridOverlayResult contains the image with the block grid drawn on it.
type GridOverlayResult struct {
	EncodedImage

	BlockSize int `json:"block_size"`
	Columns   int `json:"columns"`
	Rows      int `json:"rows"`

	// Clipped reports whether the last row or column of blocks is narrower
	// than BlockSize.
	Clipped bool `json:"clipped"`
}

// BlockGridOverlay draws the mosaic block boundaries for blockSize over a
// copy of img.
//
// Lines are drawn on the first pixel row and column of every block except
// the first, matching how Mosaic aligns blocks at (0,0). With
// showCoordinates each block is labeled with its "column,row" index.
//
// An unparseable gridColorHex falls back to DefaultGridColor.
func BlockGridOverlay(img image.Image, blockSize int, gridColorHex string, showCoordinates bool) (*GridOverlayResult, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", quantize.ErrInvalidBlockSize, blockSize)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	blocks := quantize.Blocks(width, height, blockSize)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: %dx%d", quantize.ErrEmptyImage, width, height)
	}

	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = DefaultGridColor
	}

	result := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	for x := blockSize; x < width; x += blockSize {
		for y := 0; y < height; y++ {
			result.SetNRGBA(x, y, gridColor)
		}
	}
	for y := blockSize; y < height; y += blockSize {
		for x := 0; x < width; x++ {
			result.SetNRGBA(x, y, gridColor)
		}
	}

	cols := (width + blockSize - 1) / blockSize
	rows := (height + blockSize - 1) / blockSize

	if showCoordinates {
		labelColor := color.NRGBA{255, 255, 255, 255}
		bgColor := color.NRGBA{0, 0, 0, 180}
		for i, b := range blocks {
			label := fmt.Sprintf("%d,%d", i%cols, i/cols)
			drawLabel(result, b.X+2, b.Y+2, label, labelColor, bgColor)
		}
	}

	encoded, err := EncodeResult(result, 1)
	if err != nil {
		return nil, err
	}

	return &GridOverlayResult{
		EncodedImage: *encoded,
		BlockSize:    blockSize,
		Columns:      cols,
		Rows:         rows,
		Clipped:      width%blockSize != 0 || height%blockSize != 0,
	}, nil
}

// parseHexColor parses "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func parseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawLabel draws a text label using a 3x5 pixel font for digits and comma.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	inside := func(px, py int) bool {
		return px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y
	}

	const charWidth, labelHeight = 4, 7
	labelWidth := len(text) * charWidth

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if inside(x+dx, y+dy) {
				img.SetNRGBA(x+dx, y+dy, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' && inside(cx+col, y+row) {
					img.SetNRGBA(cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
