package tvrestore

import "testing"

func symmetricKernel() *Kernel {
	return NewKernel(3, 3, []float64{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	})
}

func asymmetricKernel() *Kernel {
	return NewKernel(2, 2, []float64{
		1, 2,
		3, 4,
	})
}

func TestRestoreZeroInputConvergesImmediately(t *testing.T) {
	const w, h, c = 6, 5, 1
	f := NewImage(w, h, c)
	u := NewImage(w, h, c)
	opt := DefaultOptions()
	opt.Kernel = symmetricKernel()

	result, err := Restore(u, f, opt)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if result.Status != StatusConverged || result.Iterations != 0 {
		t.Errorf("result = %+v, want converged with 0 iterations", result)
	}
	for i := range u.Elems {
		if u.Elems[i] != f.Elems[i] {
			t.Fatalf("at %d: u = %v, want %v (copy of f)", i, u.Elems[i], f.Elems[i])
		}
	}
}

func TestRestoreConvergesDCTPath(t *testing.T) {
	const w, h, c = 10, 8, 2
	f := randImage(w, h, c)
	u := NewImage(w, h, c)
	opt := DefaultOptions()
	opt.Kernel = symmetricKernel()
	opt.MaxIter = 200

	result, err := Restore(u, f, opt)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if result.Status == StatusFailure {
		t.Fatalf("result = %+v, want a non-failure status", result)
	}
	if result.Delta < 0 {
		t.Errorf("Delta = %v, want non-negative", result.Delta)
	}
}

func TestRestoreConvergesDFTPath(t *testing.T) {
	const w, h, c = 10, 8, 2
	f := randImage(w, h, c)
	u := NewImage(w, h, c)
	opt := DefaultOptions()
	opt.Kernel = asymmetricKernel()
	opt.MaxIter = 200

	result, err := Restore(u, f, opt)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if result.Status == StatusFailure {
		t.Fatalf("result = %+v, want a non-failure status", result)
	}
}

func TestRestoreMaxIterExceeded(t *testing.T) {
	const w, h, c = 8, 8, 1
	f := randImage(w, h, c)
	u := NewImage(w, h, c)
	opt := DefaultOptions()
	opt.Kernel = symmetricKernel()
	opt.MaxIter = 1
	opt.Tol = 0 // unreachable, forces MaxIter exhaustion

	result, err := Restore(u, f, opt)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if result.Status != StatusMaxIterExceeded {
		t.Errorf("result.Status = %v, want StatusMaxIterExceeded", result.Status)
	}
	if result.Iterations != 1 {
		t.Errorf("result.Iterations = %d, want 1", result.Iterations)
	}
	if u == f {
		t.Error("u must not alias f")
	}
}

func TestRestoreCancellation(t *testing.T) {
	const w, h, c = 8, 8, 1
	f := randImage(w, h, c)
	u := NewImage(w, h, c)
	opt := DefaultOptions()
	opt.Kernel = symmetricKernel()
	opt.Tol = 0 // never converges on its own, so the callback decides

	opt.Progress = func(state State, iter int, delta float64, snapshot *Image) bool {
		return iter < 5
	}

	result, err := Restore(u, f, opt)
	if err != ErrCancelled {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
	if result.Status != StatusFailure {
		t.Errorf("result.Status = %v, want StatusFailure", result.Status)
	}
	if result.Iterations != 5 {
		t.Errorf("result.Iterations = %d, want 5", result.Iterations)
	}
}

func TestRestoreRejectsAliasedBuffers(t *testing.T) {
	img := NewImage(4, 4, 1)
	opt := DefaultOptions()
	opt.Kernel = symmetricKernel()
	if _, err := Restore(img, img, opt); err == nil {
		t.Error("Restore with u == f did not return an error")
	}
}

func TestRestoreRejectsMissingKernel(t *testing.T) {
	u := NewImage(4, 4, 1)
	f := NewImage(4, 4, 1)
	if _, err := Restore(u, f, DefaultOptions()); err == nil {
		t.Error("Restore without a kernel did not return an error")
	}
}

func TestRestoreRejectsTooSmallImage(t *testing.T) {
	u := NewImage(1, 4, 1)
	f := NewImage(1, 4, 1)
	opt := DefaultOptions()
	opt.Kernel = symmetricKernel()
	if _, err := Restore(u, f, opt); err == nil {
		t.Error("Restore with width 1 did not return an error")
	}
}
