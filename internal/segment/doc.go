// Package segment splits an alpha-channel composite into strips (row bands)
// and frame spans (column bands inside a strip).
//
// # Mass Projection
//
// The alpha channel is summed along each row to form a row profile. Runs of
// rows whose sum is strictly above max(2000, 0.08 * max(profile)) become
// strips, top to bottom. For each strip the alpha channel restricted to its
// rows is summed along each column and the same rule, with the threshold
// taken from the whole-image column profile, yields frame spans left to
// right. Strips without any frame span are dropped.
//
// # Grid Fallback
//
// When projection finds fewer strips than a caller expects, Grid slices the
// image into an evenly spaced rows x cols grid instead. Grid edges are
// rounded half to even.
//
// All spans are half-open: [Y0, Y1) for strips and [X0, X1) for frames.
package segment
