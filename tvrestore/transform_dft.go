package tvrestore

import "github.com/jvlmdr/go-fftw/fftw"

// dftFacade is the persistent 2W x 2H complex FFT used once per outer
// iteration by the DFT-path u-subproblem solver, for kernels that are not
// whole-sample symmetric. Per-call data is mirror-extended (E, half-sample
// symmetric) into the padded grid before the forward transform, and cropped
// back to the top-left WxH corner after the inverse transform, the same
// "copy into the corner, zero or mirror-fill the rest" idiom the teacher's
// fft.go uses for its own zero-padded convolutions.
type dftFacade struct {
	width, height, padW, padH int
	arr                       *fftw.Array2
	fwd, bwd                  *fftw.Plan
}

func newDFTFacade(width, height int) *dftFacade {
	padW, padH := 2*width, 2*height
	arr := fftw.NewArray2(padW, padH)
	return &dftFacade{
		width:  width,
		height: height,
		padW:   padW,
		padH:   padH,
		arr:    arr,
		fwd:    newPlan2(arr, fftw.Forward),
		bwd:    newPlan2(arr, fftw.Backward),
	}
}

func (f *dftFacade) close() {
	destroyPlan(f.fwd)
	destroyPlan(f.bwd)
}

// forward mirror-extends src (width*height real, planar x+width*y) onto
// the padW*padH grid and writes its spectrum into dst.
func (f *dftFacade) forward(dst []complex128, src []float64) {
	w, h, pw, ph := f.width, f.height, f.padW, f.padH
	for j := 0; j < ph; j++ {
		jy := j
		if j >= h {
			jy = ph - 1 - j
		}
		for i := 0; i < pw; i++ {
			ix := i
			if i >= w {
				ix = pw - 1 - i
			}
			f.arr.Set(i, j, complex(src[ix+w*jy], 0))
		}
	}
	f.fwd.Execute()
	for j := 0; j < ph; j++ {
		for i := 0; i < pw; i++ {
			dst[i+pw*j] = f.arr.At(i, j)
		}
	}
}

// inverse runs the inverse transform of a padW*padH spectrum and crops the
// top-left width*height real corner into dst.
func (f *dftFacade) inverse(dst []float64, src []complex128) {
	pw, ph := f.padW, f.padH
	for j := 0; j < ph; j++ {
		for i := 0; i < pw; i++ {
			f.arr.Set(i, j, src[i+pw*j])
		}
	}
	f.bwd.Execute()
	scale := 1 / float64(pw*ph)
	w, h := f.width, f.height
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			dst[i+w*j] = real(f.arr.At(i, j)) * scale
		}
	}
}

// plainForwardDFT runs a single, non-extended forward FFT of a w*h real
// grid, used during DFT-path setup to transform the (already circularly
// embedded) compact-support kernel and Laplacian-plus-autocorrelation
// operator. It is a one-shot helper: it creates and destroys its own plan.
func plainForwardDFT(src []float64, w, h int) []complex128 {
	arr := fftw.NewArray2(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			arr.Set(i, j, complex(src[i+w*j], 0))
		}
	}
	plan := newPlan2(arr, fftw.Forward)
	plan.Execute()
	destroyPlan(plan)

	out := make([]complex128, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[i+w*j] = arr.At(i, j)
		}
	}
	return out
}
