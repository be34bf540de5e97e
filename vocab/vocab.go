// Package vocab provides frequency-ranked vocabulary construction for
// word2vec training.
//
// This package wraps the internal vocabulary implementation and provides
// a clean public API.
//
// Example usage:
//
//	import "github.com/born-ml/word2vec/vocab"
//
//	v, err := vocab.Build(tokens, 50000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stream := v.Encode(tokens)
//	fmt.Printf("OOV tokens: %d\n", v.UnknownCount())
package vocab

import (
	"github.com/born-ml/word2vec/internal/vocab"
)

// UnknownToken is the marker stored at the reserved out-of-vocabulary index.
const UnknownToken = vocab.UnknownToken

// UnknownIndex is the reserved index for out-of-vocabulary tokens.
const UnknownIndex = vocab.UnknownIndex

// Vocabulary is an immutable bidirectional token/index mapping.
type Vocabulary = vocab.Vocabulary

// Build constructs a Vocabulary of at most size entries from a token
// stream. The size-1 most frequent tokens receive indices 1..size-1 in
// descending frequency order; everything else maps to UnknownIndex.
func Build(tokens []string, size int) (*Vocabulary, error) {
	return vocab.Build(tokens, size)
}

// FromTokens reconstructs a Vocabulary from an index-ordered token list,
// as produced by embedding persistence.
func FromTokens(tokens []string) (*Vocabulary, error) {
	return vocab.FromTokens(tokens)
}
