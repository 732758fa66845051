// Package imaging provides the pixel-level primitives shared by the sprite
// pipeline.
//
// This package implements image loading and caching, colour math on the 0-255
// scale, alpha bounding boxes and padded crops, boolean mask dilation, alpha
// measurements, segmentation overlays and atomic PNG output. All operations
// work on *image.NRGBA (non-premultiplied RGBA) whose bounds start at (0,0),
// X increasing rightward and Y increasing downward.
//
// # Coordinate System
//
// Regions use image.Rectangle semantics:
//   - Min is inclusive (top-left)
//   - Max is exclusive (bottom-right)
//   - Width = Max.X - Min.X, Height = Max.Y - Min.Y
//
// # Colour Representation
//
// RGB holds three float64 channels on the 0-255 scale. Distances are plain
// Euclidean distances in that space and luminance uses the Rec. 709 weights
// (0.2126R + 0.7152G + 0.0722B) applied directly to the 8-bit values.
//
// # Immutability
//
// Loaded images are treated as read-only. Every transform in this package and
// in the packages built on it returns a new image rather than modifying its
// input.
//
// # Thread Safety
//
// The Loader type is safe for concurrent use. All other functions are
// stateless.
package imaging
