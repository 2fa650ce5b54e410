package loss

import (
	"errors"
	"testing"

	"gorgonia.org/gorgonia"
)

func TestTupleReductions(t *testing.T) {
	tests := []struct {
		description string
		reduce      func([]*gorgonia.Node) (*gorgonia.Node, error)
		want        float64
	}{
		// (|3|+|-4| + |2|) / 2 tensors
		{"TupleL1 averages per-tensor absolute sums", TupleL1, 4.5},
		// (9+16 + 4) / 2 tensors
		{"TupleL2 averages per-tensor squared sums", TupleL2, 14.5},
	}
	for _, tc := range tests {
		g := gorgonia.NewGraph()
		a := valueNode(g, "a", []float64{3, -4}, 2)
		b := valueNode(g, "b", []float64{2}, 1)

		out, err := tc.reduce([]*gorgonia.Node{a, b})
		if err != nil {
			t.Fatalf("%s: %v", tc.description, err)
		}
		run(t, g)
		if got := scalarValue(t, out); !floatEquals(got, tc.want, 1e-12) {
			t.Errorf("%s: got %v; want %v", tc.description, got, tc.want)
		}
	}
}

func TestTupleReductionEmptySequence(t *testing.T) {
	if _, err := TupleL1(nil); !errors.Is(err, ErrMissingInput) {
		t.Errorf("TupleL1(nil): err = %v; want ErrMissingInput", err)
	}
	if _, err := TupleL2(nil); !errors.Is(err, ErrMissingInput) {
		t.Errorf("TupleL2(nil): err = %v; want ErrMissingInput", err)
	}
}
