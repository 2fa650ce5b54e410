// Package wavelet holds the learnable filter-bank parameters of an adaptive
// wavelet transform. The transform itself (decomposition and reconstruction)
// lives with the training code; this package only exposes the lowpass filter
// that the loss regularizers read.
package wavelet

import (
	"math"

	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// FilterBank holds the lowpass filter of a two-channel wavelet filter bank as
// a graph node of shape (1, 1, n).
type FilterBank struct {
	h0 *gorgonia.Node
}

// NewFilterBank creates a filter bank whose lowpass filter is initialized with
// the given coefficients.
func NewFilterBank(g *gorgonia.ExprGraph, coeffs []float64) *FilterBank {
	n := len(coeffs)
	backing := make([]float64, n)
	copy(backing, coeffs)
	t := tensor.New(tensor.WithShape(1, 1, n), tensor.WithBacking(backing))
	h0 := gorgonia.NewTensor(g, tensor.Float64, 3,
		gorgonia.WithShape(1, 1, n),
		gorgonia.WithName("h0"),
		gorgonia.WithValue(t))
	return &FilterBank{h0: h0}
}

// Haar returns a filter bank initialized with the Haar lowpass filter, which
// satisfies the sum, unit-norm and conjugate-mirror conditions exactly.
func Haar(g *gorgonia.ExprGraph) *FilterBank {
	v := 1 / math.Sqrt2
	return NewFilterBank(g, []float64{v, v})
}

// Lowpass returns the lowpass filter node.
func (fb *FilterBank) Lowpass() *gorgonia.Node {
	return fb.h0
}

// Len returns the filter length.
func (fb *FilterBank) Len() int {
	s := fb.h0.Shape()
	return s[len(s)-1]
}
