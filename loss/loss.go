// Package loss composes the training objective for a data-adaptive wavelet
// transform: a reconstruction loss plus independently weighted regularization
// terms on the filter bank (coefficient sum, unit norm, conjugate mirror
// condition) and sparsity penalties on wavelet coefficients and attributions.
//
// Every term is built as a gorgonia graph node, so the returned total supports
// reverse-mode gradient propagation with respect to every tensor that
// participated in an enabled term.
package loss

import (
	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
)

// Transform is the filter-bank handle the aggregator reads. Lowpass returns the
// lowpass filter h0 with shape (≥1, ≥1, n); the aggregator never mutates it.
type Transform interface {
	Lowpass() *gorgonia.Node
}

// Weights configures the composite objective. A term is computed only when its
// weight is strictly positive; a zero weight disables the term entirely rather
// than multiplying it by zero. Negative weights are a caller error and are not
// detected.
type Weights struct {
	Sum    float64 // lowpass filter coefficients sum to √2
	L2Norm float64 // unit energy of the lowpass filter
	CMF    float64 // conjugate mirror filter condition
	L1Wave float64 // sparsity of wavelet coefficients
	L1Attr float64 // sparsity of attributions
}

// Aggregator combines the reconstruction loss with the enabled regularization
// terms. Immutable after construction; one aggregator serves every training step.
type Aggregator struct {
	weights Weights
}

// New returns an aggregator with the given term weights.
func New(w Weights) *Aggregator {
	return &Aggregator{weights: w}
}

// Result holds the sub-losses of a single Evaluate call. Slots of disabled
// terms are nil. All nodes belong to the caller's graph; their values are
// available once the graph has been run.
type Result struct {
	Total  *gorgonia.Node
	Recon  *gorgonia.Node
	Sum    *gorgonia.Node
	L2Norm *gorgonia.Node
	CMF    *gorgonia.Node
	L1Wave *gorgonia.Node
	L1Attr *gorgonia.Node
}

// Evaluate builds the weighted objective for one training step.
//
// data and recon must share a (B, C, H, W) shape, and every tensor in coeffs
// and attrs must have leading dimension B. attrs may be nil unless the L1Attr
// weight is positive. The filter terms read h0 through t only when enabled, so
// t may expose an odd-length filter as long as the CMF weight is zero.
func (a *Aggregator) Evaluate(t Transform, data, recon *gorgonia.Node, coeffs, attrs []*gorgonia.Node) (*Result, error) {
	if !data.Shape().Eq(recon.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "data %v vs reconstruction %v", data.Shape(), recon.Shape())
	}
	if len(data.Shape()) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "data has no batch dimension")
	}
	batch := data.Shape()[0]
	if err := checkLeading(coeffs, batch, "coefficient"); err != nil {
		return nil, err
	}
	if err := checkLeading(attrs, batch, "attribution"); err != nil {
		return nil, err
	}
	if a.weights.L1Wave > 0 && len(coeffs) == 0 {
		return nil, errors.Wrap(ErrMissingInput, "wavelet coefficients required when their L1 weight is positive")
	}
	if a.weights.L1Attr > 0 && len(attrs) == 0 {
		return nil, errors.Wrap(ErrMissingInput, "attributions required when their L1 weight is positive")
	}

	res := &Result{}
	var err error
	if res.Recon, err = reconstructionTerm(data, recon, batch); err != nil {
		return nil, err
	}

	terms := []struct {
		weight float64
		build  func() (*gorgonia.Node, error)
		slot   **gorgonia.Node
	}{
		{a.weights.Sum, func() (*gorgonia.Node, error) { return sumTerm(t.Lowpass()) }, &res.Sum},
		{a.weights.L2Norm, func() (*gorgonia.Node, error) { return l2NormTerm(t.Lowpass()) }, &res.L2Norm},
		{a.weights.CMF, func() (*gorgonia.Node, error) { return cmfTerm(t.Lowpass()) }, &res.CMF},
		{a.weights.L1Wave, func() (*gorgonia.Node, error) { return l1Term(coeffs, batch) }, &res.L1Wave},
		{a.weights.L1Attr, func() (*gorgonia.Node, error) { return l1Term(attrs, batch) }, &res.L1Attr},
	}

	total := res.Recon
	for _, term := range terms {
		if term.weight <= 0 {
			continue
		}
		node, err := term.build()
		if err != nil {
			return nil, err
		}
		*term.slot = node
		scaled, err := gorgonia.Mul(node, gorgonia.NewConstant(term.weight))
		if err != nil {
			return nil, err
		}
		if total, err = gorgonia.Add(total, scaled); err != nil {
			return nil, err
		}
	}
	res.Total = total
	return res, nil
}

func checkLeading(xs []*gorgonia.Node, batch int, kind string) error {
	for i, x := range xs {
		if len(x.Shape()) == 0 || x.Shape()[0] != batch {
			return errors.Wrapf(ErrShapeMismatch, "%s tensor %d has shape %v, want leading dimension %d", kind, i, x.Shape(), batch)
		}
	}
	return nil
}
