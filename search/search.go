// Package search provides a small semantic search engine over trained
// word embeddings.
//
// This package wraps the internal search implementation and provides a
// clean public API.
//
// Example usage:
//
//	import "github.com/born-ml/word2vec/search"
//
//	engine, err := search.NewEngine(v, normalized, tok)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	empty, err := engine.Index(documents)
//	results, err := engine.Query("feline pets", 5)
package search

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/search"
	"github.com/born-ml/word2vec/internal/tokenizer"
	"github.com/born-ml/word2vec/internal/vocab"
)

// Engine indexes documents against a vocabulary and its normalized
// embedding table.
type Engine = search.Engine

// Result is one ranked document.
type Result = search.Result

// NewEngine creates a search engine over a vocabulary, its normalized
// embedding table and a tokenizer.
func NewEngine(v *vocab.Vocabulary, vectors *mat.Dense, tok tokenizer.Tokenizer) (*Engine, error) {
	return search.NewEngine(v, vectors, tok)
}
