// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dqn builds convolutional deep Q-network topologies.
//
// Example:
//
//	enc, _ := shapeinfo.NewEncoder(shapeinfo.Config{})
//	factory := dqn.NewFactoryStdConv(dqn.DefaultConfig(), shapeinfo.NewCache(enc), nil)
//	net, err := factory.Build([]int{4, 84, 84}, 6)
//	fmt.Print(net.Summary())
package dqn

import (
	"go.uber.org/zap"

	"github.com/born-ml/ndshape/internal/dqn"
	"github.com/born-ml/ndshape/shapeinfo"
)

// Config holds the factory hyperparameters.
type Config = dqn.Config

// Network is a built topology with its training settings.
type Network = dqn.Network

// Layer is one layer of a Network.
type Layer = dqn.Layer

// Params holds the initial weights of one layer.
type Params = dqn.Params

// FactoryStdConv builds the standard convolutional DQN.
type FactoryStdConv = dqn.FactoryStdConv

// Errors.
var (
	ErrConvOnFlatInput = dqn.ErrConvOnFlatInput
	ErrInvalidInput    = dqn.ErrInvalidInput
	ErrInvalidConfig   = dqn.ErrInvalidConfig
)

// DefaultConfig returns the reference hyperparameters.
func DefaultConfig() Config {
	return dqn.DefaultConfig()
}

// NewFactoryStdConv creates a factory. A nil logger disables logging.
func NewFactoryStdConv(conf Config, shapes shapeinfo.Source, logger *zap.Logger) *FactoryStdConv {
	return dqn.NewFactoryStdConv(conf, shapes, logger)
}
