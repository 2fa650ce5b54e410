package loss

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"
	"gorgonia.org/gorgonia"
)

func TestCMFResponseHaar(t *testing.T) {
	h := 1 / math.Sqrt2
	resp := CMFResponse([]float64{h, h})
	if len(resp) != 1 {
		t.Fatalf("response length = %d; want 1", len(resp))
	}
	if !floatEquals(resp[0], 2.0, 1e-12) {
		t.Errorf("Haar CMF response = %v; want 2.0", resp[0])
	}
}

func TestCMFResponseDb2(t *testing.T) {
	s3 := math.Sqrt(3)
	db2 := []float64{(1 + s3) / (4 * math.Sqrt2), (3 + s3) / (4 * math.Sqrt2), (3 - s3) / (4 * math.Sqrt2), (1 - s3) / (4 * math.Sqrt2)}
	for k, v := range CMFResponse(db2) {
		if !floatEquals(v, 2.0, 1e-12) {
			t.Errorf("db2 CMF response[%d] = %v; want 2.0", k, v)
		}
	}
}

// TestDFTMatricesMatchFFT checks the constant matmul DFT against gonum's FFT on
// a random-ish real sequence.
func TestDFTMatricesMatchFFT(t *testing.T) {
	h := []float64{0.3, -1.2, 0.7, 2.4, -0.9, 0.1, 1.6, -0.4}
	n := len(h)

	cosM, sinM := dftMatrices(n)
	cos := cosM.Data().([]float64)
	sin := sinM.Data().([]float64)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, h)

	for k := 0; k <= n/2; k++ {
		var re, im float64
		for j := 0; j < n; j++ {
			re += cos[k*n+j] * h[j]
			im += sin[k*n+j] * h[j]
		}
		if !floatEquals(re, real(coeffs[k]), 1e-9) || !floatEquals(im, imag(coeffs[k]), 1e-9) {
			t.Errorf("bin %d: matmul DFT (%v, %v) vs FFT (%v, %v)", k, re, im, real(coeffs[k]), imag(coeffs[k]))
		}
	}
}

// TestCMFTermMatchesResponse checks that the differentiable CMF term agrees with
// the value-level response helper on a filter that violates the condition.
func TestCMFTermMatchesResponse(t *testing.T) {
	h := []float64{0.5, 0.2, -0.3, 0.8, 0.1, -0.6}
	n := len(h)

	var want float64
	for _, v := range CMFResponse(h) {
		want += (v - 2) * (v - 2)
	}
	want /= float64(n)

	got := evalFilterTerm(t, Weights{CMF: 1}, append([]float64(nil), h...),
		func(r *Result) *gorgonia.Node { return r.CMF })
	if !floatEquals(got, want, 1e-9) {
		t.Errorf("CMF term = %v; response-based value = %v", got, want)
	}
}
