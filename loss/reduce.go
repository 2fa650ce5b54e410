package loss

import (
	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
)

// TupleL1 sums the absolute value of every element of every tensor in xs and
// divides by the number of tensors. The result is invariant to the order of xs.
func TupleL1(xs []*gorgonia.Node) (*gorgonia.Node, error) {
	return tupleReduce(xs, gorgonia.Abs)
}

// TupleL2 is the squared counterpart of TupleL1: per-tensor sums of squares,
// averaged over the tensors.
func TupleL2(xs []*gorgonia.Node) (*gorgonia.Node, error) {
	return tupleReduce(xs, gorgonia.Square)
}

func tupleReduce(xs []*gorgonia.Node, elem func(*gorgonia.Node) (*gorgonia.Node, error)) (*gorgonia.Node, error) {
	if len(xs) == 0 {
		return nil, errors.Wrap(ErrMissingInput, "tuple reduction over empty sequence")
	}
	var total *gorgonia.Node
	for _, x := range xs {
		e, err := elem(x)
		if err != nil {
			return nil, err
		}
		s, err := gorgonia.Sum(e)
		if err != nil {
			return nil, err
		}
		if total == nil {
			total = s
			continue
		}
		if total, err = gorgonia.Add(total, s); err != nil {
			return nil, err
		}
	}
	return gorgonia.Div(total, gorgonia.NewConstant(float64(len(xs))))
}
