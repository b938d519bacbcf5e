package tvrestore

import "math"

// dctDenominator is the DCT-path denominator: the operator spectrum D and
// the per-channel RHS constant are both computed once, at setup, on the
// WxH grid used by every subsequent outer iteration.
//
// D itself is computed via a DCT-I pass on the larger (W+1)x(H+1) grid and
// then cropped to the first WxH block, following the buffer sizes the
// source allocates (KernelTrans at the padded pixel count, DenomTrans at
// the unpadded one): the padded grid gives the correct reflective-boundary
// eigenvalues, but only the first WxH of them are ever used.
type dctDenominator struct {
	facade          *dctFacade
	denom           []float64   // W*H
	rhsConst        [][]float64 // per channel, W*H
	scratchSpatial  []float64   // W*H
	scratchSpectral []float64   // W*H
}

func setupDCT(kernel *Kernel, f *Image, lambda, gamma1 float64) (*dctDenominator, error) {
	w, h, c := f.Width, f.Height, f.Channels
	padW, padH := w+1, h+1

	// DCT-I mirrors the grid about its first row and column, so each
	// (symmetric) operator is entered by its taps at non-negative offsets
	// only; the mirror supplies the negative ones.
	combined := make([]float64, padW*padH)
	addTaps := func(k *Kernel, coeff float64) {
		ox, oy := k.CenterOffset()
		for y := oy; y < k.Height && y-oy < padH; y++ {
			for x := ox; x < k.Width && x-ox < padW; x++ {
				combined[(x-ox)+padW*(y-oy)] += coeff * k.At(x, y)
			}
		}
	}
	addTaps(autocorrelate(kernel), lambda/gamma1)
	addTaps(laplacianKernel(), -1)

	denomPadded := dctIForward2D(combined, padW, padH)
	denom := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			denom[x+w*y] = denomPadded[x+padW*y]
		}
	}

	facade := newDCTFacade(w, h)
	rhsConst := make([][]float64, c)
	for k := 0; k < c; k++ {
		corr := correlateReflective(kernel, f.Channel(k), w, h)
		for i := range corr {
			corr[i] *= lambda / gamma1
		}
		spec := make([]float64, w*h)
		facade.forward(spec, corr)
		rhsConst[k] = spec
	}

	return &dctDenominator{
		facade:          facade,
		denom:           denom,
		rhsConst:        rhsConst,
		scratchSpatial:  make([]float64, w*h),
		scratchSpectral: make([]float64, w*h),
	}, nil
}

func (d *dctDenominator) close() {
	d.facade.close()
}

func (d *dctDenominator) solveU(s *solverState) float64 {
	w, h, c := s.u.Width, s.u.Height, s.u.Channels
	var sumSqDiff float64
	for k := 0; k < c; k++ {
		divDTilde(d.scratchSpatial, s.dtilde, k, w, h)
		d.facade.forward(d.scratchSpectral, d.scratchSpatial)
		for i := range d.scratchSpectral {
			d.scratchSpectral[i] = d.rhsConst[k][i] - d.scratchSpectral[i]
		}
		for i := range d.scratchSpectral {
			d.scratchSpectral[i] /= d.denom[i]
		}
		d.facade.inverse(d.scratchSpatial, d.scratchSpectral)

		uChan := s.u.Channel(k)
		for i := range uChan {
			diff := d.scratchSpatial[i] - uChan[i]
			sumSqDiff += diff * diff
			uChan[i] = d.scratchSpatial[i]
		}
	}
	return math.Sqrt(sumSqDiff) / s.fNorm
}
