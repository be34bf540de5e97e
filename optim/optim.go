// Package optim provides gradient-descent optimizers for embedding
// training.
//
// This package wraps the internal optimizer implementations and provides
// a clean public API.
//
// Example usage:
//
//	import "github.com/born-ml/word2vec/optim"
//
//	opt := optim.NewAdagrad(optim.AdagradConfig{LR: 1.0})
//	loss, err := model.Step(batch.Inputs, batch.Labels, opt)
package optim

import (
	"github.com/born-ml/word2vec/internal/optim"
)

// Optimizer updates parameters in place from a same-shaped gradient.
type Optimizer = optim.Optimizer

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// Adagrad implements the Adagrad adaptive-gradient optimizer.
type Adagrad = optim.Adagrad

// AdagradConfig holds configuration for Adagrad.
type AdagradConfig = optim.AdagradConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// NewAdagrad creates a new Adagrad optimizer.
func NewAdagrad(config AdagradConfig) *Adagrad {
	return optim.NewAdagrad(config)
}
