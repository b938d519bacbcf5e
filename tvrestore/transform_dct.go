package tvrestore

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/jvlmdr/go-fftw/fftw"
)

// planMu serializes FFTW plan creation and destruction, which the library
// treats as shared, process-wide state (the source wraps the equivalent
// calls in "#pragma omp critical(fftw)").
var planMu sync.Mutex

func newPlan2(a *fftw.Array2, dir fftw.Direction) *fftw.Plan {
	planMu.Lock()
	defer planMu.Unlock()
	return fftw.NewPlan2(a, a, dir, fftw.Estimate)
}

func destroyPlan(p *fftw.Plan) {
	planMu.Lock()
	defer planMu.Unlock()
	p.Destroy()
}

// dct1DEngine computes the 1D DCT-II (forward) and DCT-III (inverse) of
// length n via a length-2n complex FFT, using go-fftw's Array2/Plan
// primitives the way the teacher's fft.go wraps them for 2D image
// transforms. The same plan pair is reused for every call.
type dct1DEngine struct {
	n, l     int
	arr      *fftw.Array2
	fwd, bwd *fftw.Plan
}

func newDCT1DEngine(n int) *dct1DEngine {
	l := 2 * n
	arr := fftw.NewArray2(l, 1)
	return &dct1DEngine{
		n:   n,
		l:   l,
		arr: arr,
		fwd: newPlan2(arr, fftw.Forward),
		bwd: newPlan2(arr, fftw.Backward),
	}
}

func (e *dct1DEngine) close() {
	destroyPlan(e.fwd)
	destroyPlan(e.bwd)
}

// forward1D computes the n-point DCT-II of src into dst.
//
// src is mirror-extended (half-sample symmetric, y[k]=x[2n-1-k] for
// k>=n) to length l=2n, transformed, and the per-bin twiddle
// exp(-i*pi*k/(2n)) is applied; the product is exactly real.
func (e *dct1DEngine) forward1D(dst, src []float64) {
	n, l := e.n, e.l
	for i := 0; i < n; i++ {
		e.arr.Set(i, 0, complex(src[i], 0))
	}
	for i := n; i < l; i++ {
		e.arr.Set(i, 0, complex(src[l-1-i], 0))
	}
	e.fwd.Execute()
	for k := 0; k < n; k++ {
		theta := -math.Pi * float64(k) / float64(2*n)
		tw := complex(math.Cos(theta), math.Sin(theta))
		dst[k] = real(tw * e.arr.At(k, 0))
	}
}

// inverse1D computes the n-point DCT-III (the exact inverse of forward1D,
// up to the FFT's own unnormalized convention handled here) of src into
// dst. It reconstructs the length-l spectrum implied by src via conjugate
// symmetry (Y[l-k] = conj(Y[k]), Y[n] = 0), runs the inverse FFT, and
// keeps the first n samples.
func (e *dct1DEngine) inverse1D(dst, src []float64) {
	n, l := e.n, e.l
	e.arr.Set(0, 0, complex(src[0], 0))
	for k := 1; k < n; k++ {
		theta := math.Pi * float64(k) / float64(2*n)
		tw := complex(math.Cos(theta), math.Sin(theta))
		e.arr.Set(k, 0, tw*complex(src[k], 0))
	}
	e.arr.Set(n, 0, 0)
	for k := n + 1; k < l; k++ {
		e.arr.Set(k, 0, cmplx.Conj(e.arr.At(l-k, 0)))
	}
	e.bwd.Execute()
	scale := 1 / float64(l)
	for i := 0; i < n; i++ {
		dst[i] = real(e.arr.At(i, 0)) * scale
	}
}

// dctFacade is the persistent WxH DCT-II/III transform used once per
// outer iteration by the DCT-path u-subproblem solver. Plans are created
// once, in newDCTFacade, and reused for the life of a Restore call.
type dctFacade struct {
	width, height int
	rowEngine     *dct1DEngine // length width, applied per row
	colEngine     *dct1DEngine // length height, applied per column
	rowBuf        []float64    // width*height scratch between passes
	colIn, colOut []float64    // height scratch for one column
}

func newDCTFacade(width, height int) *dctFacade {
	return &dctFacade{
		width:     width,
		height:    height,
		rowEngine: newDCT1DEngine(width),
		colEngine: newDCT1DEngine(height),
		rowBuf:    make([]float64, width*height),
		colIn:     make([]float64, height),
		colOut:    make([]float64, height),
	}
}

func (f *dctFacade) close() {
	f.rowEngine.close()
	f.colEngine.close()
}

// forward computes the separable 2D DCT-II of src (width*height, planar
// x+width*y) into dst.
func (f *dctFacade) forward(dst, src []float64) {
	w, h := f.width, f.height
	for y := 0; y < h; y++ {
		f.rowEngine.forward1D(f.rowBuf[y*w:(y+1)*w], src[y*w:(y+1)*w])
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f.colIn[y] = f.rowBuf[y*w+x]
		}
		f.colEngine.forward1D(f.colOut, f.colIn)
		for y := 0; y < h; y++ {
			dst[y*w+x] = f.colOut[y]
		}
	}
}

// inverse computes the separable 2D DCT-III of src into dst, the exact
// inverse of forward: columns first, then rows (the reverse order of
// forward's row-then-column passes).
func (f *dctFacade) inverse(dst, src []float64) {
	w, h := f.width, f.height
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f.colIn[y] = src[y*w+x]
		}
		f.colEngine.inverse1D(f.colOut, f.colIn)
		for y := 0; y < h; y++ {
			f.rowBuf[y*w+x] = f.colOut[y]
		}
	}
	for y := 0; y < h; y++ {
		f.rowEngine.inverse1D(dst[y*w:(y+1)*w], f.rowBuf[y*w:(y+1)*w])
	}
}

// dctIForward2D computes the 2D DCT-I of a whole-sample symmetric mx*my
// real signal, via a single mirror-extend-and-FFT pass on a
// 2(mx-1) x 2(my-1) complex grid. It is a one-shot helper, used only
// during deconvolution setup (never per outer iteration), so it creates
// and destroys its own plan rather than keeping one alive.
func dctIForward2D(src []float64, mx, my int) []float64 {
	lx, ly := 2*(mx-1), 2*(my-1)
	arr := fftw.NewArray2(lx, ly)
	for i := 0; i < lx; i++ {
		ix := i
		if i >= mx {
			ix = lx - i
		}
		for j := 0; j < ly; j++ {
			jy := j
			if j >= my {
				jy = ly - j
			}
			arr.Set(i, j, complex(src[ix+mx*jy], 0))
		}
	}
	plan := newPlan2(arr, fftw.Forward)
	plan.Execute()
	destroyPlan(plan)

	out := make([]float64, mx*my)
	for i := 0; i < mx; i++ {
		for j := 0; j < my; j++ {
			out[i+mx*j] = real(arr.At(i, j))
		}
	}
	return out
}

// dctIInverse2D is the exact inverse of dctIForward2D: applying the same
// forward operation twice to an already whole-sample-symmetric signal
// reproduces it scaled by the padded grid's size, since the FFT applied
// twice returns the reversed sequence scaled by its length, and reversal
// is the identity for a symmetric signal.
func dctIInverse2D(src []float64, mx, my int) []float64 {
	out := dctIForward2D(src, mx, my)
	scale := 1 / float64(2*(mx-1)*2*(my-1))
	for i := range out {
		out[i] *= scale
	}
	return out
}
