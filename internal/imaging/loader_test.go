package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImage creates a simple test image file and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader returned nil")
	}
	if l.images == nil {
		t.Fatal("NewLoader did not initialize images map")
	}
}

func TestLoader_Load(t *testing.T) {
	l := NewLoader()
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	img1, err := l.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img1.Bounds()
	if bounds.Min != (image.Point{}) {
		t.Errorf("origin: got %v, want (0,0)", bounds.Min)
	}
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}

	got := img1.NRGBAAt(10, 10)
	if got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel: got %v, want opaque red", got)
	}

	img2, err := l.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestLoader_Load_NonExistent(t *testing.T) {
	l := NewLoader()
	if _, err := l.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestLoader_Load_InvalidImage(t *testing.T) {
	l := NewLoader()

	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := l.Load(path); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestLoader_ClearAndEvict(t *testing.T) {
	l := NewLoader()
	imgPath := createTestImage(t, 20, 20, color.RGBA{0, 255, 0, 255})
	defer os.Remove(imgPath)

	if _, err := l.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	l.Evict(imgPath)
	l.mu.RLock()
	_, exists := l.images[imgPath]
	l.mu.RUnlock()
	if exists {
		t.Error("Evict did not remove image from cache")
	}

	if _, err := l.Load(imgPath); err != nil {
		t.Fatalf("Load after evict failed: %v", err)
	}
	l.Clear()
	l.mu.RLock()
	count := len(l.images)
	l.mu.RUnlock()
	if count != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", count)
	}

	// Should not panic
	l.Evict("/nonexistent/path")
}

func TestLoader_ConcurrentAccess(t *testing.T) {
	l := NewLoader()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})
	defer os.Remove(imgPath)

	var wg sync.WaitGroup
	errors := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Load(imgPath); err != nil {
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
	l := NewLoader()
	imgPath := createTestImage(t, 64, 32, color.RGBA{10, 20, 30, 255})
	defer os.Remove(imgPath)

	info, err := LoadImageInfo(l, imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 64 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.HasAlpha {
		t.Error("HasAlpha: opaque image reported as transparent")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestToNRGBA_NonZeroOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 20, 15))
	src.Set(10, 10, color.RGBA{1, 2, 3, 255})

	out := ToNRGBA(src)
	if out.Bounds() != image.Rect(0, 0, 10, 5) {
		t.Fatalf("bounds: got %v, want (0,0)-(10,5)", out.Bounds())
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("pixel: got %v, want {1 2 3 255}", got)
	}
}
