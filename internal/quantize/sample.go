package quantize

// Sample is one pixel's color together with the coordinate it came from.
type Sample struct {
	R, G, B uint8
	X, Y    int
}

// RGB returns the sample's color.
func (s Sample) RGB() RGB { return RGB{R: s.R, G: s.G, B: s.B} }

func (s Sample) channel(c Channel) uint8 {
	switch c {
	case Red:
		return s.R
	case Green:
		return s.G
	default:
		return s.B
	}
}

// Range is a contiguous run of samples inside a sample slice, described by
// offset and length rather than by a sub-slice so that partitions of the same
// backing slice stay visibly disjoint.
type Range struct {
	Offset int
	Length int
}

// End returns the exclusive upper bound of r.
func (r Range) End() int { return r.Offset + r.Length }

// Halves splits r at the integer midpoint. The first half has Length/2
// samples and the second half the remaining ceil(Length/2).
func (r Range) Halves() (Range, Range) {
	mid := r.Length / 2
	return Range{Offset: r.Offset, Length: mid},
		Range{Offset: r.Offset + mid, Length: r.Length - mid}
}

// Extract reads every pixel of buf into a new sample slice, row by row.
// The buffer is not modified.
func Extract(buf PixelBuffer) []Sample {
	w, h := buf.Width(), buf.Height()
	samples := make([]Sample, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.RGBAt(x, y)
			samples = append(samples, Sample{R: c.R, G: c.G, B: c.B, X: x, Y: y})
		}
	}
	return samples
}

// Recolor writes each sample's color back to its coordinate in buf.
func Recolor(buf PixelBuffer, samples []Sample) {
	for _, s := range samples {
		buf.SetRGB(s.X, s.Y, s.RGB())
	}
}
