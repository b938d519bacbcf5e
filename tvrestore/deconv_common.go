package tvrestore

// denominator is the transform-domain linear operator
// (lambda/gamma1)*(phi correlated with phi) - Laplacian, diagonalized by
// either the DCT or the DFT path depending on kernel symmetry. It owns the
// per-path transform plans and setup-time spectra, and drives one u-update
// per outer iteration.
type denominator interface {
	// solveU overwrites s.u with the solution of the u-subproblem and
	// returns ||u_new - u_old||_2 / ||f||_2.
	solveU(s *solverState) float64
	close()
}

// laplacianKernel returns the 3x3 five-point discrete Laplacian stencil:
// Delta u = u(x+1,y)+u(x-1,y)+u(x,y+1)+u(x,y-1)-4u(x,y).
func laplacianKernel() *Kernel {
	return NewKernel(3, 3, []float64{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
}

// autocorrelate returns phi correlated with phi, a (2Kw-1)x(2Kh-1) kernel
// whose CenterOffset lands exactly on its peak (since 2Kw-1 is always odd).
func autocorrelate(k *Kernel) *Kernel {
	w, h := 2*k.Width-1, 2*k.Height-1
	out := make([]float64, w*h)
	for dy := -(k.Height - 1); dy <= k.Height-1; dy++ {
		for dx := -(k.Width - 1); dx <= k.Width-1; dx++ {
			var sum float64
			for y := 0; y < k.Height; y++ {
				y2 := y + dy
				if y2 < 0 || y2 >= k.Height {
					continue
				}
				for x := 0; x < k.Width; x++ {
					x2 := x + dx
					if x2 < 0 || x2 >= k.Width {
						continue
					}
					sum += k.At(x, y) * k.At(x2, y2)
				}
			}
			out[(dx+k.Width-1)+w*(dy+k.Height-1)] = sum
		}
	}
	return NewKernel(w, h, out)
}

// embedInto adds coeff*k into grid (gridW x gridH, planar x+gridW*y) at the
// circularly wrapped offset that places k's CenterOffset at the grid
// origin, the same wraparound convention the teacher's dftCovar uses for
// its circulant embedding ((u+m)%m).
func embedInto(grid []float64, gridW, gridH int, k *Kernel, coeff float64) {
	ox, oy := k.CenterOffset()
	for y := 0; y < k.Height; y++ {
		gy := ((y-oy)%gridH + gridH) % gridH
		for x := 0; x < k.Width; x++ {
			gx := ((x-ox)%gridW + gridW) % gridW
			grid[gx+gridW*gy] += coeff * k.At(x, y)
		}
	}
}

// reflect maps i into [0, n) by repeated mirroring, the half-sample
// (Neumann) boundary convention of the DCT-II and of the DFT path's
// mirror extension.
func reflect(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// correlateReflective cross-correlates k against a w*h channel with
// reflective boundary handling, returning a new w*h slice.
func correlateReflective(k *Kernel, channel []float64, w, h int) []float64 {
	ox, oy := k.CenterOffset()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := 0; ky < k.Height; ky++ {
				sy := reflect(y+ky-oy, h)
				for kx := 0; kx < k.Width; kx++ {
					sx := reflect(x+kx-ox, w)
					sum += k.At(kx, ky) * channel[sx+w*sy]
				}
			}
			out[x+w*y] = sum
		}
	}
	return out
}

// divDTilde computes the divergence of dtilde's channel k into dst (w*h):
// backward differences that mirror the d-subproblem's forward differences,
// treating both dtilde.x at column -1 and dtilde.y at row -1 as zero.
func divDTilde(dst []float64, dtilde *VectorField, k, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := dtilde.At(x, y, k)
			dx := v.X
			if x > 0 {
				dx -= dtilde.At(x-1, y, k).X
			}
			dy := v.Y
			if y > 0 {
				dy -= dtilde.At(x, y-1, k).Y
			}
			dst[x+w*y] = dx + dy
		}
	}
}
