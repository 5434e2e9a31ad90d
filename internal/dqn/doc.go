// Package dqn assembles the standard convolutional deep Q-network topology
// used for pixel-input reinforcement learning.
//
// The factory is declarative: it validates the input shape, derives every
// layer's activation shape, and records the training hyperparameters
// (updater, weight init, regularization) that a trainer should apply. Each
// activation shape is held as a shared shape descriptor.
//
//	factory := dqn.NewFactoryStdConv(dqn.Config{LearningRate: 1e-4, L2: 1e-3}, cache, logger)
//	net, err := factory.Build([]int{4, 84, 84}, 6)
//	fmt.Print(net.Summary())
package dqn
