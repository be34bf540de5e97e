package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/search"
	"github.com/born-ml/word2vec/internal/tokenizer"
	"github.com/born-ml/word2vec/internal/vocab"
)

// fixtureEngine builds a 5-entry vocabulary over hand-placed unit vectors:
// "cat" and "dog" point the same way, "car" is orthogonal to both.
func fixtureEngine(t *testing.T) *search.Engine {
	t.Helper()

	v, err := vocab.Build(strings.Fields("cat cat cat dog dog dog car car car drives drives drives"), 5)
	require.NoError(t, err)
	require.Equal(t, 5, v.Size())

	vectors := mat.NewDense(5, 2, nil)
	vectors.SetRow(int(v.ID("cat")), []float64{1, 0})
	vectors.SetRow(int(v.ID("dog")), []float64{1, 0})
	vectors.SetRow(int(v.ID("car")), []float64{0, 1})
	vectors.SetRow(int(v.ID("drives")), []float64{0, 1})

	engine, err := search.NewEngine(v, vectors, tokenizer.NewWhitespace())
	require.NoError(t, err)
	return engine
}

func TestEngine_QueryRanksSimilarDocumentFirst(t *testing.T) {
	engine := fixtureEngine(t)

	empty, err := engine.Index([]string{
		"the car drives",
		"the cat and the dog",
	})
	require.NoError(t, err)
	assert.Empty(t, empty)

	results, err := engine.Query("dog", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 1, results[0].DocID)
	assert.Equal(t, "the cat and the dog", results[0].Text)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestEngine_ZeroVocabularyDocumentFlagged(t *testing.T) {
	engine := fixtureEngine(t)

	empty, err := engine.Index([]string{
		"cat dog",
		"zyx wvu",
		"car",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, empty)

	// The flagged document scores zero and ranks last.
	results, err := engine.Query("cat", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 1, results[2].DocID)
	assert.Zero(t, results[2].Score)
}

func TestEngine_QueryErrors(t *testing.T) {
	engine := fixtureEngine(t)

	// Querying before indexing.
	_, err := engine.Query("cat", 1)
	assert.Error(t, err)

	_, err = engine.Index([]string{"cat"})
	require.NoError(t, err)

	// Fully out-of-vocabulary query.
	_, err = engine.Query("zyx", 1)
	assert.Error(t, err)

	// Non-positive k.
	_, err = engine.Query("cat", 0)
	assert.Error(t, err)
}

func TestEngine_KCappedToDocumentCount(t *testing.T) {
	engine := fixtureEngine(t)

	_, err := engine.Index([]string{"cat", "dog"})
	require.NoError(t, err)

	results, err := engine.Query("cat", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestNewEngine_Validation(t *testing.T) {
	v, err := vocab.Build(strings.Fields("a a b"), 3)
	require.NoError(t, err)

	// Row count must match the vocabulary size.
	_, err = search.NewEngine(v, mat.NewDense(2, 4, nil), tokenizer.NewWhitespace())
	assert.Error(t, err)

	_, err = search.NewEngine(nil, mat.NewDense(3, 4, nil), tokenizer.NewWhitespace())
	assert.Error(t, err)
}
