// Package vocab builds fixed-size vocabularies from raw token streams.
//
// A Vocabulary maps the V-1 most frequent distinct tokens to the indices
// 1..V-1, ordered by descending frequency. Index 0 is reserved for the
// out-of-vocabulary marker; every token outside the retained set collapses
// to it. Construction is deterministic: frequency ties are broken by
// first-encounter order in the input stream.
//
// Vocabularies are built once and immutable afterwards.
package vocab
