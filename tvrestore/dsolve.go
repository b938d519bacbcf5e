package tvrestore

import (
	"math"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// dsolve performs one Bregman d-subproblem update in place, vectorially
// shrinking the joint per-pixel, cross-channel gradient magnitude. Interior
// rows are chunked across pool's workers; the bottom row and the
// bottom-right corner, whose boundary handling differs, run afterward.
func dsolve(u *Image, d, dtilde *VectorField, gamma1 float64, pool *workerpool.Pool) {
	w, h, c := u.Width, u.Height, u.Channels
	thresh := 1 / gamma1
	threshSq := thresh * thresh

	interiorPixel := func(x, y int) {
		var mag2 float64
		for k := 0; k < c; k++ {
			dv := d.At(x, y, k)
			dtv := dtilde.At(x, y, k)
			dv.X += (u.At(x+1, y, k) - u.At(x, y, k)) - dtv.X
			dv.Y += (u.At(x, y+1, k) - u.At(x, y, k)) - dtv.Y
			d.Set(x, y, k, dv)
			mag2 += dv.X*dv.X + dv.Y*dv.Y
		}
		if mag2 > threshSq {
			scale := 1 - thresh/math.Sqrt(mag2)
			for k := 0; k < c; k++ {
				old := d.At(x, y, k)
				nv := Vec2{old.X * scale, old.Y * scale}
				dtilde.Set(x, y, k, Vec2{2*nv.X - old.X, 2*nv.Y - old.Y})
				d.Set(x, y, k, nv)
			}
		} else {
			for k := 0; k < c; k++ {
				old := d.At(x, y, k)
				dtilde.Set(x, y, k, Vec2{-old.X, -old.Y})
				d.Set(x, y, k, Vec2{})
			}
		}
	}

	rightEdgePixel := func(y int) {
		x := w - 1
		var mag2 float64
		for k := 0; k < c; k++ {
			dv := d.At(x, y, k)
			dtv := dtilde.At(x, y, k)
			dv.Y += (u.At(x, y+1, k) - u.At(x, y, k)) - dtv.Y
			dv.X = 0
			d.Set(x, y, k, dv)
			mag2 += dv.Y * dv.Y
		}
		if mag2 > threshSq {
			scale := 1 - thresh/math.Sqrt(mag2)
			for k := 0; k < c; k++ {
				old := d.At(x, y, k)
				ny := old.Y * scale
				dtilde.Set(x, y, k, Vec2{0, 2*ny - old.Y})
				d.Set(x, y, k, Vec2{0, ny})
			}
		} else {
			for k := 0; k < c; k++ {
				old := d.At(x, y, k)
				dtilde.Set(x, y, k, Vec2{0, -old.Y})
				d.Set(x, y, k, Vec2{})
			}
		}
	}

	bottomEdgePixel := func(x int) {
		y := h - 1
		var mag2 float64
		for k := 0; k < c; k++ {
			dv := d.At(x, y, k)
			dtv := dtilde.At(x, y, k)
			dv.X += (u.At(x+1, y, k) - u.At(x, y, k)) - dtv.X
			dv.Y = 0
			d.Set(x, y, k, dv)
			mag2 += dv.X * dv.X
		}
		if mag2 > threshSq {
			scale := 1 - thresh/math.Sqrt(mag2)
			for k := 0; k < c; k++ {
				old := d.At(x, y, k)
				nx := old.X * scale
				dtilde.Set(x, y, k, Vec2{2*nx - old.X, 0})
				d.Set(x, y, k, Vec2{nx, 0})
			}
		} else {
			for k := 0; k < c; k++ {
				old := d.At(x, y, k)
				dtilde.Set(x, y, k, Vec2{-old.X, 0})
				d.Set(x, y, k, Vec2{})
			}
		}
	}

	pool.ParallelFor(h-1, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w-1; x++ {
				interiorPixel(x, y)
			}
			rightEdgePixel(y)
		}
	})

	pool.ParallelFor(w-1, func(start, end int) {
		for x := start; x < end; x++ {
			bottomEdgePixel(x)
		}
	})

	for k := 0; k < c; k++ {
		d.Set(w-1, h-1, k, Vec2{})
		dtilde.Set(w-1, h-1, k, Vec2{})
	}
}
