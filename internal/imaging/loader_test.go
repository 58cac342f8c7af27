package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"
)

// writePNG encodes img as PNG at dir/name and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createTestImage creates a solid-color PNG in a per-test temp directory.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writePNG(t, t.TempDir(), "solid.png", createInMemoryImage(width, height, c))
}

// createTestImageWithPattern creates a PNG with a different color in each
// quadrant: red, green, blue and white.
func createTestImageWithPattern(t *testing.T, width, height int) string {
	t.Helper()
	return writePNG(t, t.TempDir(), "pattern.png", createPatternImage(width, height))
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 100, 100, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1 == nil {
		t.Fatal("Load returned nil image")
	}

	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x100", bounds.Dx(), bounds.Dy())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestImageCache_Load_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := bmp.Encode(f, createPatternImage(20, 10)); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	f.Close()

	img, err := NewImageCache().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("unexpected dimensions: got %v", img.Bounds())
	}
	r, g, b, _ := img.At(15, 2).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("pixel (15,2): got (%d,%d,%d), want green", r>>8, g>>8, b>>8)
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_InvalidImage(t *testing.T) {
	cache := NewImageCache()

	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := cache.Load(path)
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 255, 0, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()

	cache.mu.RLock()
	count := len(cache.images)
	cache.mu.RUnlock()

	if count != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", count)
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 0, 255, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(imgPath)

	cache.mu.RLock()
	_, exists := cache.images[imgPath]
	cache.mu.RUnlock()

	if exists {
		t.Error("Evict did not remove image from cache")
	}
}

func TestImageCache_Evict_NonExistent(t *testing.T) {
	cache := NewImageCache()
	// Should not panic
	cache.Evict("/nonexistent/path")
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})

	info, err := LoadImageInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Pixels != 30000 {
		t.Errorf("Pixels: got %d, want 30000", info.Pixels)
	}
	if info.MaxColors != 16384 {
		t.Errorf("MaxColors: got %d, want 16384", info.MaxColors)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestLoadImageInfo_MaxColors(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{3, 1, 2},
		{4, 4, 16},
		{5, 5, 16},
	}

	for _, tt := range tests {
		cache := NewImageCache()
		path := createTestImage(t, tt.width, tt.height, color.Black)
		info, err := LoadImageInfo(cache, path)
		if err != nil {
			t.Fatalf("LoadImageInfo failed: %v", err)
		}
		if info.MaxColors != tt.want {
			t.Errorf("%dx%d: MaxColors got %d, want %d", tt.width, tt.height, info.MaxColors, tt.want)
		}
	}
}

func TestLoadImageInfo_FormatDetection(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()

	tests := []struct {
		ext    string
		format string
	}{
		{".png", "png"},
		{".jpg", "jpeg"},
		{".jpeg", "jpeg"},
		{".JPG", "jpeg"},
		{".gif", "gif"},
		{".bmp", "bmp"},
		{".webp", "webp"},
		{".xyz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			// Decoding sniffs content, so a PNG works under any extension.
			path := writePNG(t, dir, "test-format"+tt.ext, image.NewRGBA(image.Rect(0, 0, 10, 10)))

			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo failed: %v", err)
			}

			if info.Format != tt.format {
				t.Errorf("Format for %s: got %s, want %s", tt.ext, info.Format, tt.format)
			}
		})
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	cache := NewImageCache()
	_, err := LoadImageInfo(cache, "/nonexistent/image.png")
	if err == nil {
		t.Error("LoadImageInfo should fail for non-existent file")
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 300, 200, color.RGBA{100, 100, 100, 255})

	dims, err := GetDimensions(cache, imgPath)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}

	if dims.Width != 300 {
		t.Errorf("Width: got %d, want 300", dims.Width)
	}
	if dims.Height != 200 {
		t.Errorf("Height: got %d, want 200", dims.Height)
	}
}

func TestGetDimensions_NonExistent(t *testing.T) {
	cache := NewImageCache()
	_, err := GetDimensions(cache, "/nonexistent/image.png")
	if err == nil {
		t.Error("GetDimensions should fail for non-existent file")
	}
}
