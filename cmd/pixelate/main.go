package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Set by ldflags during build
var (
	version = "dev"
	commit  = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Name:                   "pixelate",
		Usage:                  "reduce images to a median-cut palette and a block mosaic",
		Version:                fmt.Sprintf("%s (commit %s)", version, commit),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Aliases:  []string{"i"},
				Usage:    "input image path, or - for stdin",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "output image path, or - for stdout",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: png, jpg, bmp or gif (default: from the output extension, png for stdout)",
			},
			&cli.IntFlag{
				Name:    "colors",
				Aliases: []string{"c"},
				Usage:   "palette size, a power of two; 0 skips quantization",
				Value:   16,
				EnvVars: []string{"PIXELATOR_COLORS"},
			},
			&cli.IntFlag{
				Name:    "block",
				Aliases: []string{"b"},
				Usage:   "mosaic block size in pixels; 0 skips the mosaic",
				EnvVars: []string{"PIXELATOR_BLOCK"},
			},
			&cli.UintFlag{
				Name:    "upscale",
				Aliases: []string{"u"},
				Usage:   "nearest-neighbor upscale factor for the output",
				Value:   1,
			},
			&cli.UintFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "goroutines per pass (default: CPU count)",
				EnvVars: []string{"PIXELATOR_WORKERS"},
			},
			&cli.IntFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Usage:   "JPEG quality, 1-100",
				Value:   90,
			},
			&cli.BoolFlag{
				Name:  "no-exif-rotation",
				Usage: "don't rotate JPEG input according to its EXIF orientation",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output to stderr",
			},
		},
		Action: pixelate,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
