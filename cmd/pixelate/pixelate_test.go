package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient returns a 32x32 image with 1024 distinct colors.
func gradient() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: uint8((x + y) * 4), A: 255})
		}
	}
	return img
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, imaging.Save(gradient(), path))
	return path
}

func distinct(img image.Image) int {
	seen := make(map[color.Color]struct{})
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			seen[color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(bl), A: 0xffff}] = struct{}{}
		}
	}
	return len(seen)
}

func run(t *testing.T, stdin []byte, args ...string) ([]byte, error) {
	t.Helper()
	app := newApp()
	var stdout, stderr bytes.Buffer
	app.Reader = bytes.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"pixelate"}, args...))
	return stdout.Bytes(), err
}

func TestPixelateFile(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.png")

	_, err := run(t, nil, "-i", in, "-o", out, "--colors", "4")
	require.NoError(t, err)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.LessOrEqual(t, distinct(img), 4)
}

func TestPixelateUpscale(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.bmp")

	_, err := run(t, nil, "-i", in, "-o", out, "-c", "8", "-b", "4", "-u", "3")
	require.NoError(t, err)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
	assert.LessOrEqual(t, distinct(img), 8)
}

func TestPixelateStdio(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, gradient()))

	stdout, err := run(t, src.Bytes(), "-i", "-", "-o", "-", "--colors", "2")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(stdout))
	require.NoError(t, err)
	assert.LessOrEqual(t, distinct(img), 2)
}

func TestPixelateGIF(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.gif")

	_, err := run(t, nil, "-i", in, "-o", out, "--colors", "16")
	require.NoError(t, err)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.LessOrEqual(t, distinct(img), 16)
}

func TestPixelateEnvColors(t *testing.T) {
	t.Setenv("PIXELATOR_COLORS", "2")
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.png")

	_, err := run(t, nil, "-i", in, "-o", out)
	require.NoError(t, err)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.LessOrEqual(t, distinct(img), 2)
}

func TestPixelateErrors(t *testing.T) {
	in := writeInput(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"-i", filepath.Join(dir, "nope.png"), "-o", filepath.Join(dir, "a.png")}},
		{"bad colors", []string{"-i", in, "-o", filepath.Join(dir, "b.png"), "--colors", "3"}},
		{"too many colors", []string{"-i", in, "-o", filepath.Join(dir, "c.png"), "--colors", "2048"}},
		{"nothing to do", []string{"-i", in, "-o", filepath.Join(dir, "d.png"), "--colors", "0"}},
		{"unknown format", []string{"-i", in, "-o", filepath.Join(dir, "e.tiff")}},
		{"bad quality", []string{"-i", in, "-o", filepath.Join(dir, "f.jpg"), "-q", "101"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, nil, tt.args...)
			assert.Error(t, err)
		})
	}

	// Nothing is written when the run fails.
	_, err := os.Stat(filepath.Join(dir, "b.png"))
	assert.True(t, os.IsNotExist(err))
}
