package main

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	pixelimg "github.com/ironsheep/pixelator-mcp/internal/imaging"
	"github.com/ironsheep/pixelator-mcp/internal/logging"
	"github.com/urfave/cli/v2"
)

func pixelate(c *cli.Context) error {
	workers := int(c.Uint("workers"))
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	logger := logging.Discard()
	if c.Bool("verbose") {
		logger = logging.New(c.App.ErrWriter, slog.LevelDebug)
	}

	outPath := c.String("out")
	format := c.String("format")
	if format == "" {
		if outPath == "-" {
			format = "png"
		} else {
			format = filepath.Ext(outPath)
		}
	}
	// Resolve the encoder before doing any work so a bad format fails fast.
	encoder, err := pixelimg.EncoderFor(format, c.Int("quality"), workers)
	if err != nil {
		return err
	}

	img, err := readImage(c)
	if err != nil {
		return err
	}

	result, err := pixelimg.Pixelate(img, pixelimg.PixelateOptions{
		Colors:    c.Int("colors"),
		BlockSize: c.Int("block"),
		Workers:   workers,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("error processing '%s': %w", c.String("in"), err)
	}

	out := pixelimg.Upscale(result.Image, int(c.Uint("upscale")))

	if outPath == "-" {
		if err := encoder(c.App.Writer, out); err != nil {
			return fmt.Errorf("error writing to stdout: %w", err)
		}
	} else if err := imgio.Save(outPath, out, encoder); err != nil {
		return fmt.Errorf("error writing '%s': %w", outPath, err)
	}

	logger.Info("pixelated",
		"in", c.String("in"),
		"out", outPath,
		"colors", result.Colors,
		"block_size", result.BlockSize,
		"distinct_colors", result.DistinctColors,
		"width", out.Bounds().Dx(),
		"height", out.Bounds().Dy(),
	)
	return nil
}

// readImage decodes the input image from a file or, for "-", from stdin.
func readImage(c *cli.Context) (image.Image, error) {
	autoOrientation := imaging.AutoOrientation(!c.Bool("no-exif-rotation"))
	inPath := c.String("in")

	if inPath == "-" {
		img, err := imaging.Decode(c.App.Reader, autoOrientation)
		if err != nil {
			return nil, fmt.Errorf("error loading image from stdin: %w", err)
		}
		return img, nil
	}

	img, err := imaging.Open(inPath, autoOrientation)
	if err != nil {
		return nil, fmt.Errorf("error loading '%s': %w", inPath, err)
	}
	return img, nil
}
