package quantize

import (
	"image"
	"image/color"
	"image/draw"
)

// MedianCut implements draw.Quantizer, so it can supply the palette for
// image/gif encoding:
//
//	gif.Encode(w, img, &gif.Options{
//	    NumColors: 16,
//	    Quantizer: quantize.MedianCut{},
//	    Drawer:    draw.Src,
//	})
//
// If the image already has no more distinct colors than requested, those
// exact colors are returned in scan order. Otherwise the requested count is
// rounded down to a power of two no larger than the pixel count and the
// median-cut palette is used.
type MedianCut struct {
	// Workers is passed to WithWorkers.
	Workers int
}

var _ draw.Quantizer = MedianCut{}

// Quantize appends up to cap(p)-len(p) colors for m to p.
func (q MedianCut) Quantize(p color.Palette, m image.Image) color.Palette {
	want := cap(p) - len(p)
	bounds := m.Bounds()
	if want <= 0 || bounds.Empty() {
		return p
	}

	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), m, bounds.Min, draw.Src)
	buf := NewNRGBABuffer(img)

	if exact, ok := distinctColors(buf, want); ok {
		for _, c := range exact {
			p = append(p, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
		return p
	}

	n := MaxPaletteSize(min(want, bounds.Dx()*bounds.Dy()))
	palette, err := Palette(buf, n, WithWorkers(q.Workers))
	if err != nil {
		return p
	}
	for _, c := range palette {
		p = append(p, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	}
	return p
}

// distinctColors returns buf's colors in scan order, or false as soon as
// there are more than limit of them.
func distinctColors(buf PixelBuffer, limit int) ([]RGB, bool) {
	seen := make(map[RGB]struct{}, limit)
	var colors []RGB
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.RGBAt(x, y)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(colors) == limit {
				return nil, false
			}
			seen[c] = struct{}{}
			colors = append(colors, c)
		}
	}
	return colors, true
}
