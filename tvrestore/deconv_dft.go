package tvrestore

import (
	"math"
	"math/cmplx"
)

// dftDenominator is the DFT-path denominator, used when the kernel is not
// whole-sample symmetric. The operator kernel ((lambda/gamma1)*(phi
// correlated with phi) - Laplacian) and phi itself are circularly embedded
// into the 2Wx2H padded grid and transformed with a plain (non-extended)
// FFT, since both are compact-support operators applied as circular
// convolutions on that grid; only the image data f and, each iteration,
// div(dtilde) go through the mirror-extending dftFacade.
type dftDenominator struct {
	facade          *dftFacade
	denom           []float64      // padW*padH, real (combined kernel is centrosymmetric)
	rhsConst        [][]complex128 // per channel, padW*padH
	scratchSpatial  []float64      // W*H
	scratchSpectral []complex128   // padW*padH
}

func setupDFT(kernel *Kernel, f *Image, lambda, gamma1 float64) (*dftDenominator, error) {
	w, h, c := f.Width, f.Height, f.Channels
	padW, padH := 2*w, 2*h

	combined := make([]float64, padW*padH)
	embedInto(combined, padW, padH, autocorrelate(kernel), lambda/gamma1)
	embedInto(combined, padW, padH, laplacianKernel(), -1)
	combinedSpectrum := plainForwardDFT(combined, padW, padH)
	denom := make([]float64, padW*padH)
	for i, v := range combinedSpectrum {
		denom[i] = real(v)
	}

	kernelGrid := make([]float64, padW*padH)
	embedInto(kernelGrid, padW, padH, kernel, 1)
	kernelSpectrum := plainForwardDFT(kernelGrid, padW, padH)

	facade := newDFTFacade(w, h)
	rhsConst := make([][]complex128, c)
	for k := 0; k < c; k++ {
		spec := make([]complex128, padW*padH)
		facade.forward(spec, f.Channel(k))
		coeff := complex(lambda/gamma1, 0)
		for i := range spec {
			spec[i] = coeff * cmplx.Conj(kernelSpectrum[i]) * spec[i]
		}
		rhsConst[k] = spec
	}

	return &dftDenominator{
		facade:          facade,
		denom:           denom,
		rhsConst:        rhsConst,
		scratchSpatial:  make([]float64, w*h),
		scratchSpectral: make([]complex128, padW*padH),
	}, nil
}

func (d *dftDenominator) close() {
	d.facade.close()
}

func (d *dftDenominator) solveU(s *solverState) float64 {
	w, h, c := s.u.Width, s.u.Height, s.u.Channels
	var sumSqDiff float64
	for k := 0; k < c; k++ {
		divDTilde(d.scratchSpatial, s.dtilde, k, w, h)
		d.facade.forward(d.scratchSpectral, d.scratchSpatial)
		for i := range d.scratchSpectral {
			d.scratchSpectral[i] = d.rhsConst[k][i] - d.scratchSpectral[i]
		}
		for i := range d.scratchSpectral {
			d.scratchSpectral[i] /= complex(d.denom[i], 0)
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
