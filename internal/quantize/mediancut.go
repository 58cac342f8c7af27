package quantize

import (
	"fmt"
	"log/slog"
	"math/bits"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Channel identifies one of the three color channels.
type Channel int

// Color channels in tie-break priority order.
const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ChannelRanges returns max-min of each channel over samples, in R, G, B
// order. An empty slice has all ranges zero.
func ChannelRanges(samples []Sample) [3]int {
	if len(samples) == 0 {
		return [3]int{}
	}
	minR, minG, minB := samples[0].R, samples[0].G, samples[0].B
	maxR, maxG, maxB := minR, minG, minB
	for _, s := range samples[1:] {
		minR, maxR = min(minR, s.R), max(maxR, s.R)
		minG, maxG = min(minG, s.G), max(maxG, s.G)
		minB, maxB = min(minB, s.B), max(maxB, s.B)
	}
	return [3]int{
		int(maxR) - int(minR),
		int(maxG) - int(minG),
		int(maxB) - int(minB),
	}
}

// SplitChannel picks the channel with the widest range.
//
// Ties resolve in channel order: red wins over green and blue, green wins
// over blue.
func SplitChannel(samples []Sample) Channel {
	rg := ChannelRanges(samples)
	switch {
	case rg[Red] >= rg[Green] && rg[Red] >= rg[Blue]:
		return Red
	case rg[Green] >= rg[Red] && rg[Green] >= rg[Blue]:
		return Green
	default:
		return Blue
	}
}

// LeafFunc is called once for every leaf partition. index is the leaf's
// position in the partition tree (0 to 2^depth-1, left to right) and r is
// the leaf's range in the sample slice.
//
// With more than one worker, LeafFunc is called concurrently for disjoint
// ranges.
type LeafFunc func(index int, r Range) error

// Partition runs median cut over samples[r.Offset:r.End()] to the given
// depth and hands every resulting leaf to leaf.
//
// At each level the range is stable-sorted ascending on the channel chosen
// by SplitChannel and cut at Length/2. Samples are only reordered within
// their range, so every sample ends up in exactly one leaf. Reaching an empty
// range returns ErrDegenerateBucket.
func Partition(samples []Sample, r Range, depth int, leaf LeafFunc, opts ...Option) error {
	if depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrInvalidPaletteSize, depth)
	}
	if r.Offset < 0 || r.Length < 0 || r.End() > len(samples) {
		return fmt.Errorf("range [%d,%d) outside %d samples", r.Offset, r.End(), len(samples))
	}
	o := applyOptions(opts)
	p := &partitioner{
		samples: samples,
		leaf:    leaf,
		// Each fork doubles the goroutines in flight, so forking on the first
		// ceil(log2(workers)) levels keeps at most ~workers busy.
		forkLevels: bits.Len(uint(o.workers - 1)),
		logger:     o.logger,
	}
	return p.split(0, r, depth, 0)
}

type partitioner struct {
	samples    []Sample
	leaf       LeafFunc
	forkLevels int
	logger     *slog.Logger
}

func (p *partitioner) split(index int, r Range, depth, level int) error {
	if r.Length == 0 {
		return fmt.Errorf("%w: empty partition %d at level %d", ErrDegenerateBucket, index, level)
	}
	if depth == 0 {
		return p.leaf(index, r)
	}

	part := p.samples[r.Offset:r.End()]
	ch := SplitChannel(part)
	slices.SortStableFunc(part, func(a, b Sample) int {
		return int(a.channel(ch)) - int(b.channel(ch))
	})
	p.logger.Debug("median cut split",
		"level", level, "index", index, "samples", r.Length, "channel", ch.String())

	lo, hi := r.Halves()
	if level < p.forkLevels {
		var g errgroup.Group
		g.Go(func() error { return p.split(2*index, lo, depth-1, level+1) })
		g.Go(func() error { return p.split(2*index+1, hi, depth-1, level+1) })
		return g.Wait()
	}
	if err := p.split(2*index, lo, depth-1, level+1); err != nil {
		return err
	}
	return p.split(2*index+1, hi, depth-1, level+1)
}

// AverageBucket overwrites every sample in r with the range's mean color and
// returns that color.
//
// Each channel is summed in a uint64 and divided with round-half-up, so the
// result equals round(sum/count). An empty range is left alone and yields
// the zero RGB.
func AverageBucket(samples []Sample, r Range) RGB {
	if r.Length == 0 {
		return RGB{}
	}
	part := samples[r.Offset:r.End()]
	var sumR, sumG, sumB uint64
	for _, s := range part {
		sumR += uint64(s.R)
		sumG += uint64(s.G)
		sumB += uint64(s.B)
	}
	n := uint64(len(part))
	mean := RGB{
		R: uint8((sumR + n/2) / n),
		G: uint8((sumG + n/2) / n),
		B: uint8((sumB + n/2) / n),
	}
	for i := range part {
		part[i].R, part[i].G, part[i].B = mean.R, mean.G, mean.B
	}
	return mean
}
