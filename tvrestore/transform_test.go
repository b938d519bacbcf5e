package tvrestore

import (
	"math/rand"
	"testing"
)

const transformEps = 1e-7

func randFloats(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rand.NormFloat64()
	}
	return v
}

func TestDCT1DRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16} {
		func() {
			e := newDCT1DEngine(n)
			defer e.close()

			src := randFloats(n)
			spec := make([]float64, n)
			e.forward1D(spec, src)
			back := make([]float64, n)
			e.inverse1D(back, spec)

			for i := range src {
				if !epsEq(src[i], back[i], transformEps) {
					t.Errorf("n=%d: at %d: want %v, got %v", n, i, src[i], back[i])
				}
			}
		}()
	}
}

func TestDCTFacadeRoundTrip(t *testing.T) {
	const w, h = 9, 6
	f := newDCTFacade(w, h)
	defer f.close()

	src := randFloats(w * h)
	spec := make([]float64, w*h)
	f.forward(spec, src)
	back := make([]float64, w*h)
	f.inverse(back, spec)

	for i := range src {
		if !epsEq(src[i], back[i], transformEps) {
			t.Errorf("at %d: want %v, got %v", i, src[i], back[i])
		}
	}
}

func TestDCTIRoundTrip(t *testing.T) {
	const mx, my = 8, 5
	src := randFloats(mx * my)
	spec := dctIForward2D(src, mx, my)
	back := dctIInverse2D(spec, mx, my)

	for i := range src {
		if !epsEq(src[i], back[i], transformEps) {
			t.Errorf("at %d: want %v, got %v", i, src[i], back[i])
		}
	}
}

func TestDFTFacadeRoundTrip(t *testing.T) {
	const w, h = 7, 5
	f := newDFTFacade(w, h)
	defer f.close()

	src := randFloats(w * h)
	spec := make([]complex128, 2*w*2*h)
	f.forward(spec, src)
	back := make([]float64, w*h)
	f.inverse(back, spec)

	for i := range src {
		if !epsEq(src[i], back[i], transformEps) {
			t.Errorf("at %d: want %v, got %v", i, src[i], back[i])
		}
	}
}
