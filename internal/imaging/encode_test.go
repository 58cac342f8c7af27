package imaging

import (
	"image/color"
	"testing"
)

func TestEncodeResult(t *testing.T) {
	img := createPatternImage(10, 6)

	result, err := EncodeResult(img, 1)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}

	if result.Width != 10 || result.Height != 6 || result.Scale != 1 {
		t.Errorf("got %dx%d scale %d, want 10x6 scale 1", result.Width, result.Height, result.Scale)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded := decodeEncoded(t, *result)
	if r, g, b := rgb8(decoded.At(7, 1)); r != 0 || g != 255 || b != 0 {
		t.Errorf("pixel (7,1): got (%d,%d,%d), want green", r, g, b)
	}
}

func TestEncodeResult_Upscale(t *testing.T) {
	img := createPatternImage(4, 4)

	result, err := EncodeResult(img, 3)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}
	if result.Width != 12 || result.Height != 12 {
		t.Fatalf("dimensions: got %dx%d, want 12x12", result.Width, result.Height)
	}

	// Nearest-neighbor keeps every source pixel as a solid 3x3 square.
	decoded := decodeEncoded(t, *result)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			wr, wg, wb := rgb8(img.At(x/3, y/3))
			if r, g, b := rgb8(decoded.At(x, y)); r != wr || g != wg || b != wb {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want (%d,%d,%d)", x, y, r, g, b, wr, wg, wb)
			}
		}
	}
}

func TestEncodeResult_DefaultScale(t *testing.T) {
	result, err := EncodeResult(createInMemoryImage(5, 5, color.White), 0)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}
	if result.Scale != 1 || result.Width != 5 {
		t.Errorf("got scale %d width %d, want scale 1 width 5", result.Scale, result.Width)
	}
}

func TestEncodeResult_InvalidScale(t *testing.T) {
	img := createInMemoryImage(5, 5, color.White)
	for _, scale := range []int{-1, MaxScale + 1} {
		if _, err := EncodeResult(img, scale); err == nil {
			t.Errorf("EncodeResult should fail for scale %d", scale)
		}
	}
}
