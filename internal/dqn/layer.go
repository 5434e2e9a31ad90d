package dqn

import (
	"github.com/born-ml/ndshape/internal/shapeinfo"
)

// LayerKind identifies the role of a layer in the topology.
type LayerKind int

// Supported layer kinds.
const (
	Convolution LayerKind = iota
	Dense
	Output
)

// String returns the layer kind name.
func (k LayerKind) String() string {
	switch k {
	case Convolution:
		return "conv"
	case Dense:
		return "dense"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Activation names the nonlinearity applied after a layer.
type Activation string

// Supported activations.
const (
	ReLU     Activation = "relu"
	Identity Activation = "identity"
)

// LossFunction names the training loss of an output layer.
type LossFunction string

// MSE is the squared-error loss used to regress Q-values.
const MSE LossFunction = "mse"

// Updater names the gradient updater.
type Updater string

// Adam is the updater used by the convolutional factory.
const Adam Updater = "adam"

// WeightInit names the weight initialization scheme.
type WeightInit string

// Xavier is the Glorot uniform initialization.
const Xavier WeightInit = "xavier"

// Layer is one layer of a built network.
//
// Input and Output are the activation shapes of a single sample: convolution
// layers see [channels, height, width], dense and output layers see a flat
// [features] vector.
type Layer struct {
	Name       string
	Kind       LayerKind
	Kernel     [2]int // Convolution only
	Stride     [2]int // Convolution only
	NIn        int    // Input channels (convolution) or features
	NOut       int    // Output channels (convolution) or units
	Activation Activation
	Loss       LossFunction // Output only

	Input  *shapeinfo.Descriptor
	Output *shapeinfo.Descriptor
}

// NumParams returns the number of trainable weights and biases.
func (l *Layer) NumParams() int {
	return l.WeightCount() + l.NOut
}

// WeightCount returns the number of weights excluding biases.
func (l *Layer) WeightCount() int {
	if l.Kind == Convolution {
		return l.NOut * l.NIn * l.Kernel[0] * l.Kernel[1]
	}
	return l.NIn * l.NOut
}

// fans returns the fan-in and fan-out used by Xavier initialization.
func (l *Layer) fans() (fanIn, fanOut int) {
	if l.Kind == Convolution {
		area := l.Kernel[0] * l.Kernel[1]
		return l.NIn * area, l.NOut * area
	}
	return l.NIn, l.NOut
}
