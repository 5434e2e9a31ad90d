package dqn

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/born-ml/ndshape/internal/shapeinfo"
)

// convSpec describes one convolution of the standard topology.
type convSpec struct {
	kernel int
	stride int
	nOut   int
}

// Standard convolutional topology.
var (
	stdConvLayers = []convSpec{
		{kernel: 8, stride: 4, nOut: 16},
		{kernel: 4, stride: 2, nOut: 32},
	}
	stdDenseUnits = 256
)

// FactoryStdConv builds the standard convolutional DQN:
//
//	conv 8x8 stride 4, 16 filters, relu
//	conv 4x4 stride 2, 32 filters, relu
//	dense 256, relu
//	output numOutputs, identity, MSE
//
// trained with Adam, Xavier initialization, and L2 regularization.
type FactoryStdConv struct {
	conf   Config
	shapes shapeinfo.Source
	logger *zap.Logger
}

// NewFactoryStdConv creates a factory. A nil logger disables logging.
func NewFactoryStdConv(conf Config, shapes shapeinfo.Source, logger *zap.Logger) *FactoryStdConv {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FactoryStdConv{conf: conf, shapes: shapes, logger: logger}
}

// Config returns the factory hyperparameters.
func (f *FactoryStdConv) Config() Config {
	return f.conf
}

// Build assembles the network for inputs of shape [channels, height, width]
// and numOutputs actions.
//
// A rank-1 input is rejected with ErrConvOnFlatInput. Any other rank, or
// an image too small for the kernels, fails with ErrInvalidInput.
func (f *FactoryStdConv) Build(shapeInputs []int, numOutputs int) (*Network, error) {
	if len(shapeInputs) == 1 {
		return nil, ErrConvOnFlatInput
	}
	if len(shapeInputs) != 3 {
		return nil, fmt.Errorf("%w: want [channels, height, width], got %v", ErrInvalidInput, shapeInputs)
	}
	for i, d := range shapeInputs {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dimension %d of %v is %d", ErrInvalidInput, i, shapeInputs, d)
		}
	}
	if numOutputs <= 0 {
		return nil, fmt.Errorf("%w: %d outputs", ErrInvalidInput, numOutputs)
	}
	if err := f.conf.Validate(); err != nil {
		return nil, err
	}

	channels, height, width := shapeInputs[0], shapeInputs[1], shapeInputs[2]
	input, err := f.encode(channels, height, width)
	if err != nil {
		return nil, err
	}

	var layers []Layer
	prev := input
	for i, spec := range stdConvLayers {
		outH := convOut(height, spec.kernel, spec.stride)
		outW := convOut(width, spec.kernel, spec.stride)
		if outH <= 0 || outW <= 0 {
			return nil, fmt.Errorf("%w: %dx%d input too small for %dx%d kernel with stride %d at layer %d",
				ErrInvalidInput, height, width, spec.kernel, spec.kernel, spec.stride, i)
		}
		out, err := f.encode(spec.nOut, outH, outW)
		if err != nil {
			return nil, err
		}
		layers = append(layers, Layer{
			Name:       fmt.Sprintf("conv%d", i),
			Kind:       Convolution,
			Kernel:     [2]int{spec.kernel, spec.kernel},
			Stride:     [2]int{spec.stride, spec.stride},
			NIn:        channels,
			NOut:       spec.nOut,
			Activation: ReLU,
			Input:      prev,
			Output:     out,
		})
		channels, height, width = spec.nOut, outH, outW
		prev = out
	}

	// The dense layer sees the last feature map flattened.
	features := channels * height * width
	flat, err := f.encode(features)
	if err != nil {
		return nil, err
	}
	hidden, err := f.encode(stdDenseUnits)
	if err != nil {
		return nil, err
	}
	outputs, err := f.encode(numOutputs)
	if err != nil {
		return nil, err
	}
	layers = append(layers,
		Layer{
			Name:       fmt.Sprintf("dense%d", len(layers)),
			Kind:       Dense,
			NIn:        features,
			NOut:       stdDenseUnits,
			Activation: ReLU,
			Input:      flat,
			Output:     hidden,
		},
		Layer{
			Name:       "output",
			Kind:       Output,
			NIn:        stdDenseUnits,
			NOut:       numOutputs,
			Activation: Identity,
			Loss:       MSE,
			Input:      hidden,
			Output:     outputs,
		},
	)

	net := &Network{
		Layers:            layers,
		Input:             input,
		Updater:           Adam,
		WeightInit:        Xavier,
		Optimization:      "stochastic_gradient_descent",
		LearningRate:      f.conf.LearningRate,
		L2:                f.conf.L2,
		Regularization:    true,
		Seed:              f.conf.Seed,
		ListenerFrequency: DefaultListenerFrequency,
	}
	f.logger.Info("built convolutional DQN",
		zap.Ints("input", shapeInputs),
		zap.Int("outputs", numOutputs),
		zap.Int("layers", len(layers)),
		zap.Int("params", net.NumParams()))
	return net, nil
}

// encode returns the descriptor of a per-sample activation shape.
func (f *FactoryStdConv) encode(dims ...int) (*shapeinfo.Descriptor, error) {
	d, _, err := f.shapes.Encode(shapeinfo.Layout{Shape: shapeinfo.Dims(dims)})
	if err != nil {
		return nil, fmt.Errorf("activation shape %v: %w", dims, err)
	}
	return d, nil
}

// convOut returns the output extent of an unpadded convolution.
func convOut(in, kernel, stride int) int {
	if in < kernel {
		return 0
	}
	return (in-kernel)/stride + 1
}
