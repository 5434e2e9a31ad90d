package dqn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndshape/internal/shapeinfo"
)

func newFactory(t *testing.T) (*FactoryStdConv, *shapeinfo.Cache) {
	t.Helper()
	enc, err := shapeinfo.NewEncoder(shapeinfo.Config{})
	require.NoError(t, err)
	cache := shapeinfo.NewCache(enc)
	return NewFactoryStdConv(Config{LearningRate: 1e-4, L2: 1e-3, Seed: 7}, cache, nil), cache
}

func TestBuild_AtariTopology(t *testing.T) {
	f, _ := newFactory(t)

	net, err := f.Build([]int{4, 84, 84}, 6)
	require.NoError(t, err)
	require.Len(t, net.Layers, 4)

	conv0, conv1, dense, out := net.Layers[0], net.Layers[1], net.Layers[2], net.Layers[3]

	assert.Equal(t, Convolution, conv0.Kind)
	assert.Equal(t, [2]int{8, 8}, conv0.Kernel)
	assert.Equal(t, [2]int{4, 4}, conv0.Stride)
	assert.Equal(t, 4, conv0.NIn)
	assert.Equal(t, 16, conv0.NOut)
	assert.Equal(t, ReLU, conv0.Activation)
	assert.Equal(t, []int64{4, 84, 84}, conv0.Input.Shape())
	assert.Equal(t, []int64{16, 20, 20}, conv0.Output.Shape())

	assert.Equal(t, [2]int{4, 4}, conv1.Kernel)
	assert.Equal(t, [2]int{2, 2}, conv1.Stride)
	assert.Equal(t, 16, conv1.NIn)
	assert.Equal(t, 32, conv1.NOut)
	assert.Equal(t, []int64{32, 9, 9}, conv1.Output.Shape())

	assert.Equal(t, Dense, dense.Kind)
	assert.Equal(t, 32*9*9, dense.NIn)
	assert.Equal(t, 256, dense.NOut)
	assert.Equal(t, []int64{2592}, dense.Input.Shape())

	assert.Equal(t, Output, out.Kind)
	assert.Equal(t, Identity, out.Activation)
	assert.Equal(t, MSE, out.Loss)
	assert.Equal(t, 6, out.NOut)
	assert.Equal(t, 6, net.NumOutputs())

	assert.Equal(t, 4112+8224+663808+1542, net.NumParams())
	assert.Equal(t, Adam, net.Updater)
	assert.Equal(t, Xavier, net.WeightInit)
	assert.True(t, net.Regularization)
	assert.Equal(t, 1e-4, net.LearningRate)
	assert.Equal(t, 1e-3, net.L2)
	assert.Equal(t, DefaultListenerFrequency, net.ListenerFrequency)
}

func TestBuild_SharesActivationDescriptors(t *testing.T) {
	f, cache := newFactory(t)

	a, err := f.Build([]int{4, 84, 84}, 6)
	require.NoError(t, err)
	assert.Same(t, a.Layers[2].Output, a.Layers[3].Input)

	entries := cache.Len()
	b, err := f.Build([]int{4, 84, 84}, 6)
	require.NoError(t, err)
	assert.Equal(t, entries, cache.Len(), "second build must reuse every descriptor")
	assert.Same(t, a.Layers[0].Output, b.Layers[0].Output)
}

func TestBuild_RejectsFlatInput(t *testing.T) {
	f, _ := newFactory(t)

	_, err := f.Build([]int{128}, 4)
	assert.ErrorIs(t, err, ErrConvOnFlatInput)
}

func TestBuild_InvalidInputs(t *testing.T) {
	f, _ := newFactory(t)

	tests := []struct {
		name    string
		shape   []int
		outputs int
	}{
		{"rank two", []int{84, 84}, 4},
		{"rank four", []int{1, 4, 84, 84}, 4},
		{"zero channels", []int{0, 84, 84}, 4},
		{"too small for first kernel", []int{1, 7, 7}, 4},
		{"too small for second kernel", []int{1, 12, 12}, 4},
		{"no outputs", []int{4, 84, 84}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Build(tt.shape, tt.outputs)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	enc, err := shapeinfo.NewEncoder(shapeinfo.Config{})
	require.NoError(t, err)

	f := NewFactoryStdConv(Config{LearningRate: 0}, enc, nil)
	_, err = f.Build([]int{4, 84, 84}, 2)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	f = NewFactoryStdConv(Config{LearningRate: 0.1, L2: -1}, enc, nil)
	_, err = f.Build([]int{4, 84, 84}, 2)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	assert.NoError(t, DefaultConfig().Validate())
}

func TestInitParams(t *testing.T) {
	f, _ := newFactory(t)
	net, err := f.Build([]int{1, 36, 36}, 3)
	require.NoError(t, err)

	a := net.InitParams(42)
	b := net.InitParams(42)
	require.Len(t, a, len(net.Layers))
	assert.Equal(t, a, b, "same seed must give same parameters")

	for i, p := range a {
		l := net.Layers[i]
		assert.Equal(t, l.Name, p.Layer)
		assert.Len(t, p.Weights, l.WeightCount())
		assert.Len(t, p.Bias, l.NOut)

		fanIn, fanOut := l.fans()
		bound := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
		for _, w := range p.Weights {
			assert.LessOrEqual(t, w, bound)
			assert.GreaterOrEqual(t, w, -bound)
		}
		for _, v := range p.Bias {
			assert.Zero(t, v)
		}
	}
}

func TestSummary(t *testing.T) {
	f, _ := newFactory(t)
	net, err := f.Build([]int{4, 84, 84}, 6)
	require.NoError(t, err)

	s := net.Summary()
	assert.Contains(t, s, "conv0")
	assert.Contains(t, s, "[16x20x20]")
	assert.Contains(t, s, "[2592]")
	assert.Contains(t, s, "total params: 677686")
}
