// Package tvrestore implements total-variation regularized image
// restoration by the split-Bregman method, with a deconvolution
// u-subproblem solved in the DCT or DFT domain depending on whether the
// blur kernel is whole-sample symmetric.
//
// The entry point is Restore. It mutates u in place and leaves f
// untouched; all solver-owned resources (transform plans, scratch
// buffers, precomputed spectra) are released before Restore returns,
// on every exit path.
package tvrestore
