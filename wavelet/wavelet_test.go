package wavelet

import (
	"math"
	"testing"

	"gorgonia.org/gorgonia"
)

func TestHaar(t *testing.T) {
	g := gorgonia.NewGraph()
	fb := Haar(g)

	if fb.Len() != 2 {
		t.Fatalf("Haar length = %d; want 2", fb.Len())
	}
	shape := fb.Lowpass().Shape()
	if len(shape) != 3 || shape[0] != 1 || shape[1] != 1 || shape[2] != 2 {
		t.Fatalf("Haar shape = %v; want (1, 1, 2)", shape)
	}

	vals, ok := fb.Lowpass().Value().Data().([]float64)
	if !ok {
		t.Fatalf("lowpass filter does not hold float64 values")
	}
	sum := vals[0] + vals[1]
	if math.Abs(sum-math.Sqrt2) > 1e-12 {
		t.Errorf("Haar coefficients sum to %v; want √2", sum)
	}
}

func TestNewFilterBankCopiesCoefficients(t *testing.T) {
	g := gorgonia.NewGraph()
	coeffs := []float64{0.1, 0.2, 0.3, 0.4}
	fb := NewFilterBank(g, coeffs)

	coeffs[0] = 99
	vals := fb.Lowpass().Value().Data().([]float64)
	if vals[0] != 0.1 {
		t.Errorf("filter bank aliases the caller's slice: h0[0] = %v", vals[0])
	}
}
