package tvrestore

import "testing"

func TestKernelSymmetricTrue(t *testing.T) {
	k := NewKernel(3, 3, []float64{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	})
	if !k.Symmetric() {
		t.Error("Symmetric() = false, want true for a whole-sample symmetric kernel")
	}
}

func TestKernelSymmetricFalseAsymmetricValues(t *testing.T) {
	k := NewKernel(3, 3, []float64{
		1, 2, 1,
		2, 4, 3,
		1, 2, 1,
	})
	if k.Symmetric() {
		t.Error("Symmetric() = true, want false for an asymmetric kernel")
	}
}

func TestKernelSymmetricFalseEvenDims(t *testing.T) {
	k := NewKernel(4, 3, make([]float64, 12))
	if k.Symmetric() {
		t.Error("Symmetric() = true, want false for even width")
	}
	k2 := NewKernel(3, 4, make([]float64, 12))
	if k2.Symmetric() {
		t.Error("Symmetric() = true, want false for even height")
	}
}

func TestKernelCenterOffset(t *testing.T) {
	k := NewKernel(5, 3, make([]float64, 15))
	dx, dy := k.CenterOffset()
	if dx != 2 || dy != 1 {
		t.Errorf("CenterOffset() = (%d, %d), want (2, 1)", dx, dy)
	}
}

func TestNewKernelPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewKernel with the wrong element count did not panic")
		}
	}()
	NewKernel(3, 3, make([]float64, 8))
}
