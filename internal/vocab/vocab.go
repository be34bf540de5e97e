package vocab

import (
	"fmt"
	"sort"
)

// UnknownToken is the marker stored at the reserved out-of-vocabulary index.
const UnknownToken = "UNK"

// UnknownIndex is the reserved index for out-of-vocabulary tokens.
const UnknownIndex int32 = 0

// Vocabulary is an immutable bidirectional mapping between token strings
// and integer indices in [0, Size).
//
// Index 0 always holds UnknownToken. The remaining indices hold the most
// frequent distinct tokens of the build stream in descending frequency
// order, so index 1 is the most frequent token overall.
type Vocabulary struct {
	tokenToID map[string]int32
	idToToken []string
	counts    []int // occurrences per index in the build stream; counts[0] is the OOV bucket
}

// Build constructs a Vocabulary of at most size entries from a token stream.
//
// The size-1 most frequent distinct tokens receive indices 1..size-1 in
// descending frequency order, ties broken by first encounter. All other
// tokens map to UnknownIndex. If the stream holds fewer than size-1
// distinct tokens, the vocabulary shrinks to fit them; Size reports the
// actual value.
//
// Returns an error for an empty stream or size < 2 (a vocabulary with no
// room for a real token is degenerate).
func Build(tokens []string, size int) (*Vocabulary, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("vocab: empty token stream")
	}
	if size < 2 {
		return nil, fmt.Errorf("vocab: size must be at least 2, got %d", size)
	}

	type entry struct {
		token string
		count int
		first int // position of first encounter, the tie-breaker
	}

	freq := make(map[string]*entry)
	order := make([]*entry, 0)
	for i, tok := range tokens {
		e, ok := freq[tok]
		if !ok {
			e = &entry{token: tok, first: i}
			freq[tok] = e
			order = append(order, e)
		}
		e.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	keep := size - 1
	if len(order) < keep {
		keep = len(order)
	}

	v := &Vocabulary{
		tokenToID: make(map[string]int32, keep),
		idToToken: make([]string, keep+1),
		counts:    make([]int, keep+1),
	}
	v.idToToken[UnknownIndex] = UnknownToken
	for i, e := range order[:keep] {
		id := int32(i + 1)
		v.tokenToID[e.token] = id
		v.idToToken[id] = e.token
		v.counts[id] = e.count
	}
	for _, e := range order[keep:] {
		v.counts[UnknownIndex] += e.count
	}

	return v, nil
}

// FromTokens reconstructs a Vocabulary from an index-ordered token list,
// as produced by embedding persistence. Frequency counts are not
// recoverable and report as zero.
//
// tokens[0] must be UnknownToken and the list must contain no duplicates.
func FromTokens(tokens []string) (*Vocabulary, error) {
	if len(tokens) < 2 {
		return nil, fmt.Errorf("vocab: need at least 2 tokens, got %d", len(tokens))
	}
	if tokens[UnknownIndex] != UnknownToken {
		return nil, fmt.Errorf("vocab: index 0 must be %q, got %q", UnknownToken, tokens[0])
	}

	v := &Vocabulary{
		tokenToID: make(map[string]int32, len(tokens)-1),
		idToToken: make([]string, len(tokens)),
		counts:    make([]int, len(tokens)),
	}
	copy(v.idToToken, tokens)
	for i, tok := range tokens[1:] {
		id := int32(i + 1)
		if _, dup := v.tokenToID[tok]; dup || tok == UnknownToken {
			return nil, fmt.Errorf("vocab: duplicate token %q at index %d", tok, id)
		}
		v.tokenToID[tok] = id
	}
	return v, nil
}

// Size returns the number of indices, including the OOV bucket.
func (v *Vocabulary) Size() int {
	return len(v.idToToken)
}

// ID returns the index for a token, or UnknownIndex if it is not retained.
func (v *Vocabulary) ID(token string) int32 {
	if id, ok := v.tokenToID[token]; ok {
		return id
	}
	return UnknownIndex
}

// Token returns the token stored at an index.
func (v *Vocabulary) Token(id int32) (string, error) {
	if id < 0 || int(id) >= len(v.idToToken) {
		return "", fmt.Errorf("vocab: index %d out of range [0, %d)", id, len(v.idToToken))
	}
	return v.idToToken[id], nil
}

// Tokens returns the full index-ordered token list. The returned slice is
// a copy; mutating it does not affect the vocabulary.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.idToToken))
	copy(out, v.idToToken)
	return out
}

// Count returns the build-stream occurrence count for an index.
// Count(UnknownIndex) is the number of stream tokens collapsed to OOV.
func (v *Vocabulary) Count(id int32) int {
	if id < 0 || int(id) >= len(v.counts) {
		return 0
	}
	return v.counts[id]
}

// UnknownCount returns the number of build-stream tokens that fell into
// the OOV bucket.
func (v *Vocabulary) UnknownCount() int {
	return v.counts[UnknownIndex]
}

// Encode maps a token sequence to its index sequence. Unretained tokens
// become UnknownIndex.
func (v *Vocabulary) Encode(tokens []string) []int32 {
	out := make([]int32, len(tokens))
	for i, tok := range tokens {
		out[i] = v.ID(tok)
	}
	return out
}
