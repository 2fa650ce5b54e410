package loss

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gorgonia.org/tensor"
)

// dftMatrices returns the n x n cosine and sine matrices of the unnormalized
// discrete Fourier transform, so that for a real vector h, (C·h)[k] = Re H(k)
// and (S·h)[k] = Im H(k). Expressing the DFT as two constant matmuls keeps the
// CMF term differentiable with respect to the filter.
func dftMatrices(n int) (*tensor.Dense, *tensor.Dense) {
	cos := make([]float64, n*n)
	sin := make([]float64, n*n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			theta := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			cos[k*n+j] = math.Cos(theta)
			sin[k*n+j] = math.Sin(theta)
		}
	}
	c := tensor.New(tensor.WithShape(n, n), tensor.WithBacking(cos))
	s := tensor.New(tensor.WithShape(n, n), tensor.WithBacking(sin))
	return c, s
}

// CMFResponse computes the conjugate-mirror-filter identity values
// |H(k)|² + |H(k+n/2)|² for k in [0, n/2) of a real filter h of even length n,
// using the unnormalized transform. A filter satisfying the CMF condition
// yields 2 in every slot. Intended for diagnostics and logging; the
// differentiable counterpart lives in the CMF loss term.
func CMFResponse(h []float64) []float64 {
	n := len(h)
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, h)

	// Real input: the spectrum is conjugate symmetric, so the n/2+1
	// coefficients gonum returns cover all n bins.
	mod := make([]float64, n)
	for k := 0; k <= n/2; k++ {
		re, im := real(coeffs[k]), imag(coeffs[k])
		mod[k] = re*re + im*im
		if k > 0 && k < n-k {
			mod[n-k] = mod[k]
		}
	}

	out := make([]float64, n/2)
	for k := range out {
		out[k] = mod[k] + mod[k+n/2]
	}
	return out
}
