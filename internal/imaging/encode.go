package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// MaxScale caps preview upscaling.
const MaxScale = 16

// EncodedImage contains a PNG-encoded image ready to return to a client.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodeResult encodes img as a base64 PNG.
//
// scale enlarges the output by an integer factor with nearest-neighbor
// sampling, so every pixel becomes a crisp scale x scale square. A scale of
// 0 is treated as 1.
func EncodeResult(img image.Image, scale int) (*EncodedImage, error) {
	if scale == 0 {
		scale = 1
	}
	if err := CheckScale(scale); err != nil {
		return nil, err
	}

	out := Upscale(img, scale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Scale:       scale,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// CheckScale reports whether scale is a usable EncodeResult factor.
func CheckScale(scale int) error {
	if scale < 1 || scale > MaxScale {
		return fmt.Errorf("scale %d out of range 1-%d", scale, MaxScale)
	}
	return nil
}

// Upscale enlarges img by an integer factor with nearest-neighbor sampling.
// Factors below 2 return img unchanged.
func Upscale(img image.Image, scale int) image.Image {
	if scale < 2 {
		return img
	}
	bounds := img.Bounds()
	return imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.NearestNeighbor)
}
