package tokenizer

import "strings"

// Tokenizer is the core interface for splitting text into token strings.
type Tokenizer interface {
	// Tokenize splits text into an ordered token sequence.
	Tokenize(text string) ([]string, error)
}

// Whitespace tokenizes on Unicode whitespace runs.
type Whitespace struct {
	// Lowercase folds tokens to lower case, collapsing "The" and "the"
	// into one vocabulary entry.
	Lowercase bool
}

// NewWhitespace creates a lowercasing whitespace tokenizer, the default
// corpus treatment for word-level embeddings.
func NewWhitespace() *Whitespace {
	return &Whitespace{Lowercase: true}
}

// Tokenize splits text on whitespace. It never fails; the signature
// carries an error to satisfy Tokenizer.
func (w *Whitespace) Tokenize(text string) ([]string, error) {
	if w.Lowercase {
		text = strings.ToLower(text)
	}
	return strings.Fields(text), nil
}
