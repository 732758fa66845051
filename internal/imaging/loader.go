package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Loader provides thread-safe caching of decoded composites.
//
// Every image is normalised to *image.NRGBA with a (0,0) origin on load, so
// downstream stages can index the Pix buffer directly regardless of the
// source format. Cached images are shared and must not be modified.
//
// # Example Usage
//
//	loader := imaging.NewLoader()
//	img, err := loader.Load("scripts/assets_inbox/vfx_v1.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
type Loader struct {
	mu     sync.RWMutex
	images map[string]*image.NRGBA
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{
		images: make(map[string]*image.NRGBA),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG, GIF, WebP, BMP and TIFF. The image is
// cached under the exact path string provided.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file cannot be decoded
func (l *Loader) Load(path string) (*image.NRGBA, error) {
	l.mu.RLock()
	if img, ok := l.images[path]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.images[path] = img
	l.mu.Unlock()

	return img, nil
}

// Evict removes a specific image from the cache by its path.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.images, path)
	l.mu.Unlock()
}

// Clear removes all images from the cache.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.images = make(map[string]*image.NRGBA)
	l.mu.Unlock()
}

// Decode reads and decodes an image file without caching it.
//
// The result is always a fresh *image.NRGBA with bounds starting at (0,0).
func Decode(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to a non-premultiplied RGBA copy anchored at (0,0).
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format guessed from the file extension.
	Format string `json:"format"`

	// HasAlpha reports whether the image already carries real transparency
	// (see HasTransparency).
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the loader and describes it.
func LoadImageInfo(l *Loader, path string) (*ImageInfo, error) {
	img, err := l.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "jpg":
		format = "jpeg"
	case "tif":
		format = "tiff"
	case "png", "jpeg", "gif", "webp", "bmp", "tiff":
	default:
		format = "unknown"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      HasTransparency(img),
		FileSizeBytes: stat.Size(),
	}, nil
}
