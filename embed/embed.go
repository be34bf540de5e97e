// Package embed provides the trainable word-embedding model.
//
// This package wraps the internal embedding implementation and provides a
// clean public API for training, normalization, neighbor lookup and
// persistence.
//
// Example usage:
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/word2vec/embed"
//	    "github.com/born-ml/word2vec/optim"
//	)
//
//	model, err := embed.New(v.Size(), 128, rand.New(rand.NewSource(1)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opt := optim.NewAdagrad(optim.AdagradConfig{LR: 1.0})
//	loss, err := model.Step(batch.Inputs, batch.Labels, opt)
//
//	normalized, zeroRows := model.Normalized()
package embed

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/embed"
)

// Model is a trainable word-embedding table of shape [vocab, dim].
type Model = embed.Model

// Neighbor is one entry of a nearest-neighbor query result.
type Neighbor = embed.Neighbor

// New creates a Model with weights drawn uniformly from [-1, 1).
func New(vocabSize, dim int, rng *rand.Rand) (*Model, error) {
	return embed.New(vocabSize, dim, rng)
}

// NewWithWeights creates a Model around an existing weight matrix.
func NewWithWeights(weights *mat.Dense) (*Model, error) {
	return embed.NewWithWeights(weights)
}

// Nearest returns the k most similar vocabulary entries to id over a
// unit-row table as produced by Model.Normalized.
func Nearest(normalized *mat.Dense, id int32, k int) ([]Neighbor, error) {
	return embed.Nearest(normalized, id, k)
}

// SaveTSV writes an embedding table and its token list to path as
// tab-separated values.
func SaveTSV(path string, tokens []string, weights *mat.Dense) error {
	return embed.SaveTSV(path, tokens, weights)
}

// LoadTSV reads an embedding table written by SaveTSV.
func LoadTSV(path string) ([]string, *mat.Dense, error) {
	return embed.LoadTSV(path)
}
