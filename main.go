package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"adawave/loss"
	"adawave/wavelet"
)

const (
	Batch    = 8
	Channels = 1
	Height   = 16
	Width    = 16
)

func randomTensor(g *gorgonia.ExprGraph, name string, shape ...int) *gorgonia.Node {
	size := 1
	for _, s := range shape {
		size *= s
	}
	backing := make([]float64, size)
	for i := range backing {
		backing[i] = rand.NormFloat64()
	}
	t := tensor.New(tensor.WithShape(shape...), tensor.WithBacking(backing))
	return gorgonia.NodeFromAny(g, t, gorgonia.WithName(name))
}

func main() {
	rand.Seed(42)

	g := gorgonia.NewGraph()
	fb := wavelet.Haar(g)

	data := randomTensor(g, "data", Batch, Channels, Height, Width)
	recon := randomTensor(g, "recon", Batch, Channels, Height, Width)
	coeffs := []*gorgonia.Node{
		randomTensor(g, "approx", Batch, Channels, Height/2, Width/2),
		randomTensor(g, "detail", Batch, Channels, Height/2, Width/2),
	}
	attrs := []*gorgonia.Node{
		randomTensor(g, "attr0", Batch, Channels, Height/2, Width/2),
		randomTensor(g, "attr1", Batch, Channels, Height/2, Width/2),
	}

	agg := loss.New(loss.Weights{Sum: 1, L2Norm: 1, CMF: 1, L1Wave: 0.1, L1Attr: 0.5})
	res, err := agg.Evaluate(fb, data, recon, coeffs, attrs)
	if err != nil {
		log.Fatal(err)
	}

	grads, err := gorgonia.Grad(res.Total, fb.Lowpass())
	if err != nil {
		log.Fatal(err)
	}

	m := gorgonia.NewTapeMachine(g)
	defer m.Close()
	if err := m.RunAll(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("reconstruction: %v\n", res.Recon.Value())
	fmt.Printf("filter sum:     %v\n", res.Sum.Value())
	fmt.Printf("filter norm:    %v\n", res.L2Norm.Value())
	fmt.Printf("CMF:            %v\n", res.CMF.Value())
	fmt.Printf("wavelet L1:     %v\n", res.L1Wave.Value())
	fmt.Printf("attribution L1: %v\n", res.L1Attr.Value())
	fmt.Printf("total:          %v\n", res.Total.Value())
	fmt.Printf("dTotal/dh0:     %v\n", grads[0].Value())

	haar := []float64{1 / math.Sqrt2, 1 / math.Sqrt2}
	fmt.Printf("CMF response of Haar: %v\n", loss.CMFResponse(haar))
}
