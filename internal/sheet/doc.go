// Package sheet turns segmented frame spans into normalized sprite assets.
//
// Frames are cut from the matted composite with a small margin, re-tightened
// to their opaque content and center-fit onto a fixed transparent canvas.
// Sheets concatenate a strip's frames left to right; icons keep each frame
// as its own canvas.
package sheet
