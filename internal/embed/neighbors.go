package embed

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Neighbor is one entry of a nearest-neighbor query result.
type Neighbor struct {
	ID         int32
	Similarity float64
}

// Nearest returns the k most similar vocabulary entries to id, by inner
// product over a unit-row table as produced by Normalized. The query
// entry itself is excluded.
func Nearest(normalized *mat.Dense, id int32, k int) ([]Neighbor, error) {
	rows, _ := normalized.Dims()
	if id < 0 || int(id) >= rows {
		return nil, fmt.Errorf("embed: index %d out of range [0, %d)", id, rows)
	}
	if k < 1 {
		return nil, fmt.Errorf("embed: k must be positive, got %d", k)
	}
	if k > rows-1 {
		k = rows - 1
	}

	sims := mat.NewVecDense(rows, nil)
	sims.MulVec(normalized, normalized.RowView(int(id)))

	neighbors := make([]Neighbor, 0, rows-1)
	for r := 0; r < rows; r++ {
		if int32(r) == id {
			continue
		}
		neighbors = append(neighbors, Neighbor{ID: int32(r), Similarity: sims.AtVec(r)})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	return neighbors[:k], nil
}
