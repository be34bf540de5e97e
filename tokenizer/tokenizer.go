// Package tokenizer provides text tokenization for embedding training.
//
// This package wraps the internal tokenizer implementations and provides
// a clean public API.
//
// Supported tokenizers:
//   - Whitespace: field splitting with optional lowercasing
//   - TikToken: OpenAI BPE subword pieces (GPT-3, GPT-4 encodings)
//
// Example usage:
//
//	import "github.com/born-ml/word2vec/tokenizer"
//
//	tok := tokenizer.NewWhitespace()
//	tokens, err := tok.Tokenize("The quick brown fox")
//	// ["the", "quick", "brown", "fox"]
package tokenizer

import (
	"github.com/born-ml/word2vec/internal/tokenizer"
)

// Tokenizer is the core interface for splitting text into token strings.
type Tokenizer = tokenizer.Tokenizer

// Whitespace tokenizes on Unicode whitespace runs.
type Whitespace = tokenizer.Whitespace

// TikToken tokenizes text into BPE subword pieces.
type TikToken = tokenizer.TikToken

// NewWhitespace creates a lowercasing whitespace tokenizer.
func NewWhitespace() *Whitespace {
	return tokenizer.NewWhitespace()
}

// NewTikToken creates a TikToken tokenizer with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}
