// Package corpus loads raw training text into the flat token stream the
// vocabulary builder consumes.
package corpus

import (
	"fmt"
	"os"

	"github.com/born-ml/word2vec/internal/tokenizer"
)

// Load reads a plain-text file and tokenizes its full contents.
//
// maxTokens caps the stream length (0 = no cap), mirroring the common
// tutorial practice of training on a corpus prefix.
func Load(path string, tok tokenizer.Tokenizer, maxTokens int) ([]string, error) {
	if tok == nil {
		return nil, fmt.Errorf("corpus: nil tokenizer")
	}
	if maxTokens < 0 {
		return nil, fmt.Errorf("corpus: max tokens must be non-negative, got %d", maxTokens)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: failed to read %s: %w", path, err)
	}

	tokens, err := tok.Tokenize(string(data))
	if err != nil {
		return nil, fmt.Errorf("corpus: tokenization failed: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("corpus: %s contains no tokens", path)
	}

	if maxTokens > 0 && len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	return tokens, nil
}
