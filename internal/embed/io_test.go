package embed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/embed"
)

func TestSaveLoadTSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings.tsv")
	tokens := []string{"UNK", "the", "cat"}
	weights := mat.NewDense(3, 2, []float64{0, 0, 0.5, -1.25, 3, 0.125})

	require.NoError(t, embed.SaveTSV(path, tokens, weights))

	gotTokens, gotWeights, err := embed.LoadTSV(path)
	require.NoError(t, err)
	assert.Equal(t, tokens, gotTokens)
	assert.True(t, mat.EqualApprox(weights, gotWeights, 1e-12))
}

func TestSaveTSV_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings.tsv")
	weights := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	// Token count mismatch.
	assert.Error(t, embed.SaveTSV(path, []string{"only"}, weights))

	// Separator inside a token.
	assert.Error(t, embed.SaveTSV(path, []string{"ok", "bad\ttoken"}, weights))
}

func TestLoadTSV_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := embed.LoadTSV(filepath.Join(dir, "missing.tsv"))
	assert.Error(t, err)

	ragged := filepath.Join(dir, "ragged.tsv")
	require.NoError(t, os.WriteFile(ragged, []byte("a\t1\t2\nb\t3\n"), 0o644))
	_, _, err = embed.LoadTSV(ragged)
	assert.Error(t, err)

	noVec := filepath.Join(dir, "novec.tsv")
	require.NoError(t, os.WriteFile(noVec, []byte("a\n"), 0o644))
	_, _, err = embed.LoadTSV(noVec)
	assert.Error(t, err)

	badNum := filepath.Join(dir, "badnum.tsv")
	require.NoError(t, os.WriteFile(badNum, []byte("a\tx\n"), 0o644))
	_, _, err = embed.LoadTSV(badNum)
	assert.Error(t, err)
}
