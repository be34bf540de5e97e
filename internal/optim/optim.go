// Package optim implements gradient-descent optimizers for embedding
// training.
//
// Optimizers update a parameter matrix in place from a dense gradient of
// the same shape. Adagrad is the default choice for word2vec training:
// token frequencies are heavy-tailed, and per-element learning rates keep
// rare-word rows moving without destabilizing frequent ones.
package optim

import "gonum.org/v1/gonum/mat"

// Optimizer updates parameters in place from a same-shaped gradient.
type Optimizer interface {
	// Step applies one gradient update to params.
	Step(params, grad *mat.Dense)

	// LR returns the base learning rate.
	LR() float64
}
