package loss

import (
	"math"

	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
)

// reconstructionTerm is the total squared error between the input batch and its
// reconstruction, normalized per batch (not per element).
func reconstructionTerm(data, recon *gorgonia.Node, batch int) (*gorgonia.Node, error) {
	diff, err := gorgonia.Sub(recon, data)
	if err != nil {
		return nil, err
	}
	sq, err := gorgonia.Square(diff)
	if err != nil {
		return nil, err
	}
	total, err := gorgonia.Sum(sq)
	if err != nil {
		return nil, err
	}
	return gorgonia.Div(total, gorgonia.NewConstant(float64(batch)))
}

// sumTerm penalizes deviation of the lowpass filter's coefficient sum from √2,
// the admissibility condition of an orthogonal wavelet.
func sumTerm(h0 *gorgonia.Node) (*gorgonia.Node, error) {
	s, err := gorgonia.Sum(h0)
	if err != nil {
		return nil, err
	}
	d, err := gorgonia.Sub(s, gorgonia.NewConstant(math.Sqrt2))
	if err != nil {
		return nil, err
	}
	sq, err := gorgonia.Square(d)
	if err != nil {
		return nil, err
	}
	return gorgonia.Mul(sq, gorgonia.NewConstant(0.5))
}

// l2NormTerm penalizes deviation of the lowpass filter's energy from 1.
func l2NormTerm(h0 *gorgonia.Node) (*gorgonia.Node, error) {
	sq, err := gorgonia.Square(h0)
	if err != nil {
		return nil, err
	}
	q, err := gorgonia.Sum(sq)
	if err != nil {
		return nil, err
	}
	d, err := gorgonia.Sub(q, gorgonia.NewConstant(1.0))
	if err != nil {
		return nil, err
	}
	dsq, err := gorgonia.Square(d)
	if err != nil {
		return nil, err
	}
	return gorgonia.Mul(dsq, gorgonia.NewConstant(0.5))
}

// cmfTerm checks the conjugate mirror filter condition in the frequency domain:
// |H(k)|² + |H(k+n/2)|² must equal 2 for every k in [0, n/2). Only the (0, 0, :)
// slice of h0 participates; the filter bank is shared across batch and channel.
func cmfTerm(h0 *gorgonia.Node) (*gorgonia.Node, error) {
	shape := h0.Shape()
	n := shape[len(shape)-1]
	if n%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidFilterLength, "got length %d", n)
	}

	vec := h0
	if len(shape) == 3 {
		var err error
		if vec, err = gorgonia.Slice(h0, gorgonia.S(0), gorgonia.S(0)); err != nil {
			return nil, err
		}
	}

	// The two constants must carry distinct names: the graph deduplicates
	// unnamed value nodes by a hash that ignores the backing data, which would
	// silently alias the sine matrix to the cosine one.
	cosM, sinM := dftMatrices(n)
	g := h0.Graph()
	c := gorgonia.NodeFromAny(g, cosM, gorgonia.WithName("dftCos"))
	s := gorgonia.NodeFromAny(g, sinM, gorgonia.WithName("dftSin"))

	re, err := gorgonia.Mul(c, vec)
	if err != nil {
		return nil, err
	}
	im, err := gorgonia.Mul(s, vec)
	if err != nil {
		return nil, err
	}
	re2, err := gorgonia.Square(re)
	if err != nil {
		return nil, err
	}
	im2, err := gorgonia.Square(im)
	if err != nil {
		return nil, err
	}
	mod, err := gorgonia.Add(re2, im2)
	if err != nil {
		return nil, err
	}

	lo, err := gorgonia.Slice(mod, gorgonia.S(0, n/2))
	if err != nil {
		return nil, err
	}
	hi, err := gorgonia.Slice(mod, gorgonia.S(n/2, n))
	if err != nil {
		return nil, err
	}
	cmf, err := gorgonia.Add(lo, hi)
	if err != nil {
		return nil, err
	}

	dev, err := gorgonia.Sub(cmf, gorgonia.NewConstant(2.0))
	if err != nil {
		return nil, err
	}
	devSq, err := gorgonia.Square(dev)
	if err != nil {
		return nil, err
	}
	total, err := gorgonia.Sum(devSq)
	if err != nil {
		return nil, err
	}
	return gorgonia.Div(total, gorgonia.NewConstant(float64(n)))
}

// l1Term is the batch-normalized tuple L1 reduction shared by the wavelet
// coefficient and attribution penalties.
func l1Term(xs []*gorgonia.Node, batch int) (*gorgonia.Node, error) {
	t, err := TupleL1(xs)
	if err != nil {
		return nil, err
	}
	return gorgonia.Div(t, gorgonia.NewConstant(float64(batch)))
}
