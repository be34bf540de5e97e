package embed

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Model is a trainable word-embedding table of shape [vocab, dim].
type Model struct {
	weights *mat.Dense
	vocab   int
	dim     int
}

// New creates a Model with weights drawn uniformly from [-1, 1).
//
// The random source is explicit so experiments are reproducible; pass
// rand.New(rand.NewSource(seed)).
func New(vocabSize, dim int, rng *rand.Rand) (*Model, error) {
	if vocabSize < 2 {
		return nil, fmt.Errorf("embed: vocab size must be at least 2, got %d", vocabSize)
	}
	if dim < 1 {
		return nil, fmt.Errorf("embed: dimension must be positive, got %d", dim)
	}
	if rng == nil {
		return nil, fmt.Errorf("embed: nil random source")
	}

	data := make([]float64, vocabSize*dim)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return &Model{
		weights: mat.NewDense(vocabSize, dim, data),
		vocab:   vocabSize,
		dim:     dim,
	}, nil
}

// NewWithWeights creates a Model around an existing weight matrix.
//
// The matrix is used directly, not copied. Used for loading persisted
// embeddings and for tests with known weights.
func NewWithWeights(weights *mat.Dense) (*Model, error) {
	if weights == nil {
		return nil, fmt.Errorf("embed: nil weights")
	}
	r, c := weights.Dims()
	if r < 2 || c < 1 {
		return nil, fmt.Errorf("embed: degenerate weight shape [%d, %d]", r, c)
	}
	return &Model{weights: weights, vocab: r, dim: c}, nil
}

// VocabSize returns the number of embedding rows.
func (m *Model) VocabSize() int {
	return m.vocab
}

// Dim returns the embedding dimensionality.
func (m *Model) Dim() int {
	return m.dim
}

// Weights returns the raw weight matrix. Mutating it mutates the model.
func (m *Model) Weights() *mat.Dense {
	return m.weights
}

// Vector returns a copy of one embedding row.
func (m *Model) Vector(id int32) ([]float64, error) {
	if id < 0 || int(id) >= m.vocab {
		return nil, fmt.Errorf("embed: index %d out of range [0, %d)", id, m.vocab)
	}
	out := make([]float64, m.dim)
	copy(out, m.weights.RawRowView(int(id)))
	return out, nil
}
