package dqn

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/born-ml/ndshape/internal/shapeinfo"
)

// Network is a built DQN topology together with its training settings.
type Network struct {
	Layers []Layer
	Input  *shapeinfo.Descriptor

	Updater           Updater
	WeightInit        WeightInit
	Optimization      string
	LearningRate      float64
	L2                float64
	Regularization    bool
	Seed              int64
	ListenerFrequency int
}

// NumParams returns the total number of trainable parameters.
func (n *Network) NumParams() int {
	total := 0
	for i := range n.Layers {
		total += n.Layers[i].NumParams()
	}
	return total
}

// NumOutputs returns the number of Q-values produced per sample.
func (n *Network) NumOutputs() int {
	return n.Layers[len(n.Layers)-1].NOut
}

// Summary renders one line per layer with its shapes and parameter count.
func (n *Network) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s %-7s %-10s %-16s %-16s %10s\n", "layer", "kind", "activation", "input", "output", "params")
	for i := range n.Layers {
		l := &n.Layers[i]
		fmt.Fprintf(&sb, "%-8s %-7s %-10s %-16s %-16s %10d\n",
			l.Name, l.Kind, l.Activation, fmtShape(l.Input), fmtShape(l.Output), l.NumParams())
	}
	fmt.Fprintf(&sb, "total params: %d, updater: %s, init: %s, lr: %g, l2: %g\n",
		n.NumParams(), n.Updater, n.WeightInit, n.LearningRate, n.L2)
	return sb.String()
}

func fmtShape(d *shapeinfo.Descriptor) string {
	dims := d.Shape()
	parts := make([]string, len(dims))
	for i, v := range dims {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, "x") + "]"
}

// Params holds the initial weights of one layer.
type Params struct {
	Layer   string
	Weights []float32 // [nOut, nIn, kh, kw] for convolutions, [nIn, nOut] otherwise
	Bias    []float32 // [nOut]
}

// InitParams draws initial parameters for every layer.
//
// Weights follow Xavier (Glorot) uniform initialization:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
// Biases start at zero. The same seed always yields the same parameters.
func (n *Network) InitParams(seed int64) []Params {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))

	out := make([]Params, len(n.Layers))
	for i := range n.Layers {
		l := &n.Layers[i]
		fanIn, fanOut := l.fans()
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

		weights := make([]float32, l.WeightCount())
		for j := range weights {
			weights[j] = float32((rng.Float64()*2.0 - 1.0) * bound)
		}
		out[i] = Params{
			Layer:   l.Name,
			Weights: weights,
			Bias:    make([]float32, l.NOut),
		}
	}
	return out
}
