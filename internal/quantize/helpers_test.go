package quantize

import (
	"image"
	"image/color"
	"math/rand"
)

// newTestBuffer creates an opaque NRGBA buffer filled by fn.
func newTestBuffer(w, h int, fn func(x, y int) RGB) *NRGBABuffer {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fn(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return NewNRGBABuffer(img)
}

func solid(c RGB) func(x, y int) RGB {
	return func(int, int) RGB { return c }
}

// randomBuffer creates a reproducible noisy buffer. levels limits the number
// of distinct values per channel, which controls how many ties median cut
// sees.
func randomBuffer(w, h, levels int, seed int64) *NRGBABuffer {
	rng := rand.New(rand.NewSource(seed))
	step := 256 / levels
	return newTestBuffer(w, h, func(int, int) RGB {
		return RGB{
			R: uint8(rng.Intn(levels) * step),
			G: uint8(rng.Intn(levels) * step),
			B: uint8(rng.Intn(levels) * step),
		}
	})
}

// snapshot copies the raw pixel data of buf.
func snapshot(buf *NRGBABuffer) []byte {
	return append([]byte(nil), buf.Image().Pix...)
}

// distinct returns the set of colors present in buf.
func distinct(buf PixelBuffer) map[RGB]int {
	set := make(map[RGB]int)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			set[buf.RGBAt(x, y)]++
		}
	}
	return set
}
