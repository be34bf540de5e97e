// Package search implements a small semantic search engine over trained
// word embeddings.
//
// Documents and queries are embedded as the mean of their in-vocabulary
// token vectors, taken from the L2-normalized embedding table, and ranked
// by cosine similarity. It is a demonstration consumer of the embedding
// artifact, not a production retrieval system.
package search

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/tokenizer"
	"github.com/born-ml/word2vec/internal/vocab"
)

// Result is one ranked document.
type Result struct {
	DocID int
	Score float64
	Text  string
}

// Engine indexes documents against a vocabulary and its normalized
// embedding table.
type Engine struct {
	vocab   *vocab.Vocabulary
	vectors *mat.Dense
	tok     tokenizer.Tokenizer
	dim     int

	docs    []string
	docVecs *mat.Dense
}

// NewEngine creates a search engine.
//
// vectors must be the normalized embedding table for v: one unit row per
// vocabulary index.
func NewEngine(v *vocab.Vocabulary, vectors *mat.Dense, tok tokenizer.Tokenizer) (*Engine, error) {
	if v == nil || vectors == nil || tok == nil {
		return nil, fmt.Errorf("search: nil vocabulary, vectors or tokenizer")
	}
	rows, dim := vectors.Dims()
	if rows != v.Size() {
		return nil, fmt.Errorf("search: %d embedding rows for vocabulary of %d", rows, v.Size())
	}
	return &Engine{vocab: v, vectors: vectors, tok: tok, dim: dim}, nil
}

// Index embeds and stores the documents, replacing any previous index.
//
// A document whose tokens are all out-of-vocabulary has no embeddable
// content. Dividing by its zero in-vocabulary count would be the classic
// NaN trap, so such documents keep a zero vector, rank below every scored
// document, and have their indices returned for the caller to report.
func (e *Engine) Index(docs []string) ([]int, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("search: no documents")
	}

	vecs := mat.NewDense(len(docs), e.dim, nil)
	var empty []int
	for i, doc := range docs {
		ok, err := e.embed(vecs.RawRowView(i), doc)
		if err != nil {
			return nil, fmt.Errorf("search: document %d: %w", i, err)
		}
		if !ok {
			empty = append(empty, i)
		}
	}

	e.docs = append([]string(nil), docs...)
	e.docVecs = vecs
	return empty, nil
}

// Query ranks the indexed documents against a query text and returns the
// top k.
func (e *Engine) Query(text string, k int) ([]Result, error) {
	if e.docVecs == nil {
		return nil, fmt.Errorf("search: no documents indexed")
	}
	if k < 1 {
		return nil, fmt.Errorf("search: k must be positive, got %d", k)
	}

	qvec := make([]float64, e.dim)
	ok, err := e.embed(qvec, text)
	if err != nil {
		return nil, fmt.Errorf("search: query: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("search: query has no in-vocabulary tokens")
	}

	scores := mat.NewVecDense(len(e.docs), nil)
	scores.MulVec(e.docVecs, mat.NewVecDense(e.dim, qvec))

	results := make([]Result, len(e.docs))
	for i := range results {
		results[i] = Result{DocID: i, Score: scores.AtVec(i), Text: e.docs[i]}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// embed writes the unit-normalized mean vector of text's in-vocabulary
// tokens into dst. Returns false when no token is in-vocabulary; dst is
// left zero in that case.
func (e *Engine) embed(dst []float64, text string) (bool, error) {
	tokens, err := e.tok.Tokenize(text)
	if err != nil {
		return false, err
	}

	for i := range dst {
		dst[i] = 0
	}
	inVocab := 0
	for _, tok := range tokens {
		id := e.vocab.ID(tok)
		if id == vocab.UnknownIndex {
			continue
		}
		floats.Add(dst, e.vectors.RawRowView(int(id)))
		inVocab++
	}
	if inVocab == 0 {
		return false, nil
	}

	floats.Scale(1/float64(inVocab), dst)
	if norm := floats.Norm(dst, 2); norm > 0 {
		floats.Scale(1/norm, dst)
	}
	return true, nil
}
