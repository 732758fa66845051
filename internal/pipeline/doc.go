// Package pipeline drives composite images through matting, segmentation
// and sheet assembly, and writes the named sprite assets.
//
// What gets produced is described by a Manifest: for each composite input,
// the fallback grid used when segmentation comes up short and the mapping
// from strip index to asset name. DefaultManifest reproduces the two
// hard-wired composites of the game's asset inbox.
//
// # Outputs
//
// Every asset of a composite is rendered in memory first and only written
// once the whole composite has been processed. Each file is written to a
// temporary name and renamed into place. A failure therefore never leaves a
// half-written asset, and assets from an earlier, completed composite stay
// on disk.
//
// # Errors
//
//   - ErrMissingInput (wrapped with the missing paths) when any composite is
//     absent; nothing is written in that case
//   - decode and encode failures are wrapped and returned as-is
//
// Segmentation shortfalls and empty frames are not errors: the grid fallback
// and blank placeholders keep the set of output files fixed.
package pipeline
