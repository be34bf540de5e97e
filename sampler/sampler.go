// Package sampler provides word2vec batch generation over an encoded
// token stream.
//
// This package wraps the internal sampler implementations and provides a
// clean public API for both training framings:
//
//   - CBOW: predict the center word from its surrounding context
//   - Skip-gram: predict sampled context words from the center word
//
// Example usage:
//
//	import "github.com/born-ml/word2vec/sampler"
//
//	gen, err := sampler.NewCBOW(stream, sampler.CBOWConfig{
//	    BatchSize: 128,
//	    Window:    1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	batch := gen.Next() // resumes from the generator's cursor
package sampler

import (
	"github.com/born-ml/word2vec/internal/sampler"
)

// Batch is one training step's worth of (input, label) pairs.
type Batch = sampler.Batch

// Generator is the common surface of the CBOW and skip-gram samplers.
type Generator = sampler.Generator

// CBOW generates continuous-bag-of-words training batches.
type CBOW = sampler.CBOW

// CBOWConfig configures a CBOW batch generator.
type CBOWConfig = sampler.CBOWConfig

// SkipGram generates skip-gram training batches.
type SkipGram = sampler.SkipGram

// SkipGramConfig configures a skip-gram batch generator.
type SkipGramConfig = sampler.SkipGramConfig

// NewCBOW creates a CBOW generator over an encoded token stream.
func NewCBOW(stream []int32, cfg CBOWConfig) (*CBOW, error) {
	return sampler.NewCBOW(stream, cfg)
}

// NewSkipGram creates a skip-gram generator over an encoded token stream.
func NewSkipGram(stream []int32, cfg SkipGramConfig) (*SkipGram, error) {
	return sampler.NewSkipGram(stream, cfg)
}
