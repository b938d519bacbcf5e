package tvrestore

import (
	"errors"
	"log/slog"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// solverState bundles the mutable state threaded through one outer
// iteration, replacing the source's single opaque tvregsolver struct.
type solverState struct {
	u, f   *Image
	d      *VectorField
	dtilde *VectorField
	fNorm  float64
}

// Restore runs the split-Bregman outer iteration that alternates the
// d-subproblem (vectorial shrinkage) and the u-subproblem (transform-domain
// deconvolution) until Delta < Tol or MaxIter iterations have run. u is
// overwritten with the restored image; f is read but never modified.
//
// u and f must have identical, non-nil shapes with Width, Height >= 2 and
// Channels >= 1, and must not alias each other. opt.Kernel must be set.
func Restore(u, f *Image, opt Options) (Result, error) {
	if u == nil || f == nil {
		return Result{Status: StatusFailure}, errors.New("tvrestore: u and f must be non-nil")
	}
	if u == f {
		return Result{Status: StatusFailure}, errors.New("tvrestore: u and f must not alias")
	}
	if err := sameShape(u, f); err != nil {
		return Result{Status: StatusFailure}, err
	}
	if u.Width < 2 || u.Height < 2 || u.Channels <= 0 {
		return Result{Status: StatusFailure}, errors.New("tvrestore: width and height must be >= 2, channels must be positive")
	}
	if err := opt.validate(); err != nil {
		return Result{Status: StatusFailure}, err
	}

	symmetric := opt.Kernel.Symmetric()
	slog.Debug("tvrestore: chose deconvolution algorithm",
		"symmetric_kernel", symmetric, "width", u.Width, "height", u.Height, "channels", u.Channels)

	var denom denominator
	var err error
	if symmetric {
		denom, err = setupDCT(opt.Kernel, f, opt.Lambda, opt.Gamma1)
	} else {
		denom, err = setupDFT(opt.Kernel, f, opt.Lambda, opt.Gamma1)
	}
	if err != nil {
		slog.Error("tvrestore: deconvolution setup failed", "error", err)
		return Result{Status: StatusFailure}, err
	}
	defer denom.close()

	pool := workerpool.New(0)
	defer pool.Close()

	s := &solverState{
		u:      u,
		f:      f,
		d:      NewVectorField(u.Width, u.Height, u.Channels),
		dtilde: NewVectorField(u.Width, u.Height, u.Channels),
	}

	fNorm := f.Norm()
	if fNorm == 0 {
		u.CopyFrom(f)
		return Result{Status: StatusConverged}, nil
	}
	s.fNorm = fNorm

	delta := 1000.0
	if opt.Tol > 0 {
		delta = 1000 * opt.Tol
	}
	if opt.Progress != nil && !opt.Progress(StateRunning, 0, delta, u) {
		return Result{Status: StatusFailure, Delta: delta}, ErrCancelled
	}

	iter := 1
	for ; iter <= opt.MaxIter; iter++ {
		dsolve(u, s.d, s.dtilde, opt.Gamma1, pool)
		delta = denom.solveU(s)

		if iter >= 2 && delta < opt.Tol {
			break
		}

		if opt.Progress != nil && !opt.Progress(StateRunning, iter, delta, u) {
			slog.Info("tvrestore: cancelled by progress callback", "iter", iter, "delta", delta)
			return Result{Status: StatusFailure, Iterations: iter, Delta: delta}, ErrCancelled
		}
	}

	status := StatusConverged
	state := StateConverged
	if iter > opt.MaxIter {
		status = StatusMaxIterExceeded
		state = StateMaxIterExceeded
		iter = opt.MaxIter
	}
	if opt.Progress != nil {
		opt.Progress(state, iter, delta, u)
	}

	slog.Debug("tvrestore: restoration finished", "status", status, "iterations", iter, "delta", delta)
	return Result{Status: status, Iterations: iter, Delta: delta}, nil
}
