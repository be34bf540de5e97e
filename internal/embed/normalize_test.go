package embed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/embed"
)

func TestNormalized_UnitRows(t *testing.T) {
	m, err := embed.NewWithWeights(mat.NewDense(3, 2, []float64{
		3, 4,
		-1, 0,
		0.001, 0.001,
	}))
	require.NoError(t, err)

	normalized, zeroRows := m.Normalized()
	assert.Empty(t, zeroRows)

	for r := 0; r < 3; r++ {
		assert.InDelta(t, 1.0, floats.Norm(normalized.RawRowView(r), 2), 1e-12)
	}
	// Direction preserved: [3, 4] -> [0.6, 0.8].
	assert.InDelta(t, 0.6, normalized.At(0, 0), 1e-12)
	assert.InDelta(t, 0.8, normalized.At(0, 1), 1e-12)
}

func TestNormalized_ZeroRowFlaggedNotNaN(t *testing.T) {
	m, err := embed.NewWithWeights(mat.NewDense(3, 2, []float64{
		1, 2,
		0, 0,
		2, 1,
	}))
	require.NoError(t, err)

	normalized, zeroRows := m.Normalized()
	assert.Equal(t, []int{1}, zeroRows)

	for _, v := range normalized.RawRowView(1) {
		assert.False(t, math.IsNaN(v))
		assert.Zero(t, v)
	}
}

func TestNormalized_DoesNotMutateModel(t *testing.T) {
	m, err := embed.NewWithWeights(mat.NewDense(2, 2, []float64{3, 4, 1, 1}))
	require.NoError(t, err)

	_, _ = m.Normalized()
	assert.Equal(t, 3.0, m.Weights().At(0, 0))
}

func TestNearest_RanksByCosine(t *testing.T) {
	// Unit vectors at known angles to row 0.
	s := math.Sqrt2 / 2
	normalized := mat.NewDense(4, 2, []float64{
		1, 0, // query
		s, s, // 45 degrees
		0, 1, // 90 degrees
		-1, 0, // opposite
	})

	neighbors, err := embed.Nearest(normalized, 0, 2)
	require.NoError(t, err)
	require.Len(t, neighbors, 2)

	assert.Equal(t, int32(1), neighbors[0].ID)
	assert.InDelta(t, s, neighbors[0].Similarity, 1e-12)
	assert.Equal(t, int32(2), neighbors[1].ID)
}

func TestNearest_ExcludesSelfAndCapsK(t *testing.T) {
	normalized := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 0})

	neighbors, err := embed.Nearest(normalized, 0, 10)
	require.NoError(t, err)
	require.Len(t, neighbors, 2)
	for _, n := range neighbors {
		assert.NotEqual(t, int32(0), n.ID)
	}
}

func TestNearest_Errors(t *testing.T) {
	normalized := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 0})

	_, err := embed.Nearest(normalized, 3, 1)
	assert.Error(t, err)
	_, err = embed.Nearest(normalized, 0, 0)
	assert.Error(t, err)
}
