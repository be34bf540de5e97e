package optim

import "gonum.org/v1/gonum/mat"

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.1)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.1
	}
	return &SGD{lr: config.LR}
}

// Step applies param -= lr * grad element-wise.
func (s *SGD) Step(params, grad *mat.Dense) {
	p := params.RawMatrix().Data
	g := grad.RawMatrix().Data
	for i := range p {
		p[i] -= s.lr * g[i]
	}
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
