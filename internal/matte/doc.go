// Package matte turns composites with a faked transparency backdrop into
// real alpha-channel images.
//
// Two backdrops are understood:
//
//   - Checkerboard: the two-tone grey pattern editors draw behind transparent
//     pixels. ClassifyBackground recovers the two tones and
//     RemoveCheckerboard estimates alpha from the distance to the nearer tone.
//   - Solid key: a single flat colour such as a green screen.
//     RemoveSolidKey keys it out, sampling the key from the four corners
//     unless one is supplied.
//
// Both estimators finish with Decontaminate, which undoes the backdrop's
// bleed into translucent edge pixels:
//
//	fg = (observed - (1-alpha)*background) / max(alpha, eps)
//
// Auto chains the two the way the asset pipeline needs: images that already
// carry alpha pass through, otherwise the checkerboard estimator runs first
// and the solid-key estimator takes over when the result is almost entirely
// opaque.
//
// All functions are deterministic and never modify their input.
package matte
