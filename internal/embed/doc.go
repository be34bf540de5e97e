// Package embed implements the word2vec embedding model and its training
// step.
//
// The model is a single [vocab, dim] table serving both roles of the
// network: input vectors are looked up and summed from it, and the same
// table scores the aggregate against every vocabulary entry by inner
// product. Training minimizes softmax cross-entropy between those scores
// and the true center word, with the gradient applied by an optimizer
// from the optim package.
//
// After training, Normalized produces a unit-row copy of the table where
// inner product equals cosine similarity, the artifact consumed by
// neighbor lookup and search.
package embed
