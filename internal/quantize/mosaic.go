package quantize

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBlockSize is the mosaic block edge used when callers have no
// preference.
const DefaultBlockSize = 8

// Block is a rectangular region of a pixel buffer. X and Y are the top-left
// corner; Width and Height are already clipped to the buffer.
type Block struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Blocks tiles a width x height area with size x size blocks starting at
// (0,0), in row-major order.
//
// Blocks in the last column and row are clipped when the dimensions are not
// multiples of size, so a 10x10 area with size 8 yields blocks of 8x8, 2x8,
// 8x2 and 2x2. A size larger than the area yields one block covering it.
// Non-positive arguments yield no blocks.
func Blocks(width, height, size int) []Block {
	if width <= 0 || height <= 0 || size <= 0 {
		return nil
	}
	cols := (width + size - 1) / size
	rows := (height + size - 1) / size
	blocks := make([]Block, 0, cols*rows)
	for y := 0; y < height; y += size {
		for x := 0; x < width; x += size {
			blocks = append(blocks, Block{
				X:      x,
				Y:      y,
				Width:  min(size, width-x),
				Height: min(size, height-y),
			})
		}
	}
	return blocks
}

// DominantColor returns the most frequent exact color inside b.
//
// The counts compared are the block's final counts, taken after every pixel
// of b has been tallied, not a running maximum kept during the scan. Pixels
// are scanned row by row, left to right. When several colors share the
// highest final count, the one encountered first in that scan wins, so a
// block scanned as A, B, B, A yields A.
func DominantColor(buf PixelBuffer, b Block) RGB {
	type tally struct {
		color RGB
		count int
	}
	index := make(map[RGB]int)
	var seen []tally
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			c := buf.RGBAt(x, y)
			if i, ok := index[c]; ok {
				seen[i].count++
				continue
			}
			index[c] = len(seen)
			seen = append(seen, tally{color: c, count: 1})
		}
	}

	var best tally
	for _, t := range seen {
		if t.count > best.count {
			best = t
		}
	}
	return best.color
}

// fillBlock overwrites every pixel of b with c.
func fillBlock(buf PixelBuffer, b Block, c RGB) {
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			buf.SetRGB(x, y, c)
		}
	}
}

// Mosaic replaces every blockSize x blockSize block of buf with the block's
// dominant color (see DominantColor). Edge blocks are clipped as described
// in Blocks.
//
// Returns ErrInvalidBlockSize when blockSize is not positive and
// ErrEmptyImage when buf has no pixels; buf is untouched in both cases.
//
// With WithWorkers(n > 1), rows of blocks are processed concurrently. Blocks
// never overlap, so the result is the same as a sequential run.
func Mosaic(buf PixelBuffer, blockSize int, opts ...Option) error {
	if blockSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBlockSize, blockSize)
	}
	w, h := buf.Width(), buf.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	o := applyOptions(opts)

	blocks := Blocks(w, h, blockSize)
	cols := (w + blockSize - 1) / blockSize
	band := func(row int) {
		for _, b := range blocks[row*cols : (row+1)*cols] {
			fillBlock(buf, b, DominantColor(buf, b))
		}
	}

	rows := len(blocks) / cols
	if o.workers == 1 {
		for row := 0; row < rows; row++ {
			band(row)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for row := 0; row < rows; row++ {
			g.Go(func() error {
				band(row)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	o.logger.Debug("mosaic applied",
		"width", w, "height", h, "block_size", blockSize, "blocks", len(blocks))
	return nil
}
