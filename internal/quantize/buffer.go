package quantize

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB is an 8-bit color triple. Alpha is not part of quantization.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// PixelBuffer is the caller-owned grid of pixels that Quantize and Mosaic
// mutate in place.
//
// Coordinates are 0-based: 0 <= x < Width() and 0 <= y < Height(). The core
// never addresses a pixel outside that range and never resizes the buffer.
//
// When an operation runs with more than one worker, SetRGB is called
// concurrently for distinct coordinates. Implementations backed by a plain
// pixel slice (such as NRGBABuffer) satisfy this without locking.
type PixelBuffer interface {
	Width() int
	Height() int
	RGBAt(x, y int) RGB
	SetRGB(x, y int, c RGB)
}

// NRGBABuffer adapts an *image.NRGBA to PixelBuffer.
//
// Coordinates are relative to the image's Bounds().Min. SetRGB keeps each
// pixel's existing alpha value.
type NRGBABuffer struct {
	img *image.NRGBA
}

// NewNRGBABuffer wraps img without copying it.
func NewNRGBABuffer(img *image.NRGBA) *NRGBABuffer {
	return &NRGBABuffer{img: img}
}

// Image returns the wrapped image.
func (b *NRGBABuffer) Image() *image.NRGBA { return b.img }

func (b *NRGBABuffer) Width() int  { return b.img.Rect.Dx() }
func (b *NRGBABuffer) Height() int { return b.img.Rect.Dy() }

func (b *NRGBABuffer) RGBAt(x, y int) RGB {
	i := b.img.PixOffset(b.img.Rect.Min.X+x, b.img.Rect.Min.Y+y)
	p := b.img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}

func (b *NRGBABuffer) SetRGB(x, y int, c RGB) {
	i := b.img.PixOffset(b.img.Rect.Min.X+x, b.img.Rect.Min.Y+y)
	p := b.img.Pix[i : i+3 : i+3]
	p[0], p[1], p[2] = c.R, c.G, c.B
}

// ImageBuffer adapts any draw.Image to PixelBuffer.
//
// Colors are read through color.NRGBAModel and written as opaque color.NRGBA,
// so RGBAt always returns what SetRGB wrote, even on premultiplied images
// where a transparent pixel cannot hold a color. It is slower than
// NRGBABuffer and is only safe for parallel use if the underlying image's Set
// is.
type ImageBuffer struct {
	img    draw.Image
	bounds image.Rectangle
}

// NewImageBuffer wraps img without copying it.
func NewImageBuffer(img draw.Image) *ImageBuffer {
	return &ImageBuffer{img: img, bounds: img.Bounds()}
}

func (b *ImageBuffer) Width() int  { return b.bounds.Dx() }
func (b *ImageBuffer) Height() int { return b.bounds.Dy() }

func (b *ImageBuffer) RGBAt(x, y int) RGB {
	c := color.NRGBAModel.Convert(b.img.At(b.bounds.Min.X+x, b.bounds.Min.Y+y)).(color.NRGBA)
	return RGB{R: c.R, G: c.G, B: c.B}
}

func (b *ImageBuffer) SetRGB(x, y int, c RGB) {
	b.img.Set(b.bounds.Min.X+x, b.bounds.Min.Y+y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
}

// NewBuffer picks the fastest adapter for img.
func NewBuffer(img draw.Image) PixelBuffer {
	if n, ok := img.(*image.NRGBA); ok {
		return NewNRGBABuffer(n)
	}
	return NewImageBuffer(img)
}
