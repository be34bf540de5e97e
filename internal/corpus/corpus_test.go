package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/word2vec/internal/corpus"
	"github.com/born-ml/word2vec/internal/tokenizer"
)

func writeCorpus(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, "The cat sat\non the mat\n")

	tokens, err := corpus.Load(path, tokenizer.NewWhitespace(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "sat", "on", "the", "mat"}, tokens)
}

func TestLoad_MaxTokensCap(t *testing.T) {
	path := writeCorpus(t, "a b c d e f")

	tokens, err := corpus.Load(path, tokenizer.NewWhitespace(), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tokens)
}

func TestLoad_Errors(t *testing.T) {
	path := writeCorpus(t, "a b c")

	_, err := corpus.Load(path, nil, 0)
	assert.Error(t, err)

	_, err = corpus.Load(path, tokenizer.NewWhitespace(), -1)
	assert.Error(t, err)

	_, err = corpus.Load(filepath.Join(t.TempDir(), "missing.txt"), tokenizer.NewWhitespace(), 0)
	assert.Error(t, err)

	empty := writeCorpus(t, "   \n\t ")
	_, err = corpus.Load(empty, tokenizer.NewWhitespace(), 0)
	assert.Error(t, err)
}
