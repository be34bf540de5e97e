package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Adagrad implements the Adagrad adaptive-gradient optimizer.
//
// Adagrad keeps a running sum of squared gradients per element and scales
// each update by its inverse square root, so frequently updated elements
// see a decaying effective learning rate while rarely updated ones keep a
// large step.
//
// Update rule:
//
//	accum = accum + gradient²
//	param = param - lr * gradient / (sqrt(accum) + eps)
//
// Reference: "Adaptive Subgradient Methods for Online Learning and
// Stochastic Optimization" (Duchi, Hazan & Singer, 2011).
type Adagrad struct {
	lr    float64
	eps   float64
	accum *mat.Dense // Accumulated squared gradients, allocated on first Step
}

// AdagradConfig holds configuration for Adagrad.
type AdagradConfig struct {
	LR  float64 // Learning rate (default: 1.0)
	Eps float64 // Term for numerical stability (default: 1e-8)
}

// NewAdagrad creates a new Adagrad optimizer.
//
// Default hyperparameters:
//   - LR: 1.0
//   - Eps: 1e-8
func NewAdagrad(config AdagradConfig) *Adagrad {
	if config.LR == 0 {
		config.LR = 1.0
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adagrad{lr: config.LR, eps: config.Eps}
}

// Step applies one Adagrad update.
//
// The squared-gradient accumulator is allocated lazily to match the shape
// of params on the first call.
func (a *Adagrad) Step(params, grad *mat.Dense) {
	if a.accum == nil {
		r, c := params.Dims()
		a.accum = mat.NewDense(r, c, nil)
	}

	p := params.RawMatrix().Data
	g := grad.RawMatrix().Data
	acc := a.accum.RawMatrix().Data
	for i := range p {
		acc[i] += g[i] * g[i]
		p[i] -= a.lr * g[i] / (math.Sqrt(acc[i]) + a.eps)
	}
}

// LR returns the base learning rate.
func (a *Adagrad) LR() float64 {
	return a.lr
}

// SetLR updates the base learning rate.
func (a *Adagrad) SetLR(lr float64) {
	a.lr = lr
}
