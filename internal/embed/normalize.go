package embed

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalized returns a copy of the embedding table with every row scaled
// to unit Euclidean norm, so that inner products between rows equal
// cosine similarities.
//
// Rows whose norm is zero — embeddings never updated because their token
// never appeared in training — cannot be normalized. They are left as
// zero vectors and their indices returned, so the caller can report the
// degenerate rows instead of propagating NaNs.
func (m *Model) Normalized() (*mat.Dense, []int) {
	out := mat.NewDense(m.vocab, m.dim, nil)
	out.Copy(m.weights)

	var zeroRows []int
	for r := 0; r < m.vocab; r++ {
		row := out.RawRowView(r)
		norm := floats.Norm(row, 2)
		if norm == 0 {
			zeroRows = append(zeroRows, r)
			continue
		}
		floats.Scale(1/norm, row)
	}
	return out, zeroRows
}
