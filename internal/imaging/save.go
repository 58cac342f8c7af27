package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/ironsheep/pixelator-mcp/internal/quantize"
)

// DefaultJPEGQuality is used when Save is called with quality 0.
const DefaultJPEGQuality = 90

// EncoderFor returns the encoder for an output format name or file
// extension ("png", ".jpg", "jpeg", "bmp", "gif").
//
// GIF output is palettized with the median-cut quantizer, so an image that
// was already quantized to 256 colors or fewer keeps its exact colors.
// quality only applies to JPEG; 0 selects DefaultJPEGQuality.
func EncoderFor(format string, quality, workers int) (imgio.Encoder, error) {
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("jpeg quality %d out of range 1-100", quality)
	}

	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "png":
		return imgio.PNGEncoder(), nil
	case "jpg", "jpeg", "jfif":
		return imgio.JPEGEncoder(quality), nil
	case "bmp":
		return imgio.BMPEncoder(), nil
	case "gif":
		return gifEncoder(workers), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func gifEncoder(workers int) imgio.Encoder {
	return func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, &gif.Options{
			NumColors: 256,
			Quantizer: quantize.MedianCut{Workers: workers},
			Drawer:    draw.Src,
		})
	}
}

// SaveResult describes a written output file.
type SaveResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Save writes img to path, choosing the encoder from the file extension.
func Save(img image.Image, path string, quality, workers int) (*SaveResult, error) {
	ext := filepath.Ext(path)
	encoder, err := EncoderFor(ext, quality, workers)
	if err != nil {
		return nil, err
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	bounds := img.Bounds()
	return &SaveResult{
		Path:   path,
		Format: formatFromPath(path),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
