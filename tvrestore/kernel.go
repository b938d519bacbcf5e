package tvrestore

import "fmt"

// Kernel is a dense 2D blur kernel in row-major order: Elems[x + Width*y]
// is K(x, y). It is treated as centered on the image during convolution.
type Kernel struct {
	Elems         []float64
	Width, Height int
}

// NewKernel wraps elems as a Width x Height kernel. It panics if elems has
// the wrong length.
func NewKernel(width, height int, elems []float64) *Kernel {
	if len(elems) != width*height {
		panic(fmt.Sprintf("kernel: got %d elements, want %dx%d=%d",
			len(elems), width, height, width*height))
	}
	return &Kernel{Elems: elems, Width: width, Height: height}
}

// At returns K(x, y).
func (k *Kernel) At(x, y int) float64 {
	return k.Elems[x+k.Width*y]
}

// CenterOffset returns the offset at which the kernel must be embedded
// into a working grid so that its center lands at the grid origin.
func (k *Kernel) CenterOffset() (dx, dy int) {
	return k.Width / 2, k.Height / 2
}

// Symmetric reports whether k is whole-sample symmetric: both dimensions
// odd, and K(x, y) = K(Kw-1-x, y) = K(x, Kh-1-y) for every (x, y). The
// check is exact equality on the stored values, not tolerance-based.
func (k *Kernel) Symmetric() bool {
	if k.Width%2 == 0 || k.Height%2 == 0 {
		return false
	}
	for y := 0; y < k.Height; y++ {
		yr := k.Height - 1 - y
		for x := 0; x < k.Width; x++ {
			xr := k.Width - 1 - x
			v := k.At(x, y)
			if v != k.At(xr, y) || v != k.At(x, yr) {
				return false
			}
		}
	}
	return true
}
