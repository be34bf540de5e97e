// Package sampler generates word2vec training batches from an integer
// token stream.
//
// Both generators walk the stream through a sliding window of
// span = 2*window + 1 consecutive tokens. The stream is circular: reads
// past the end wrap to the beginning, so a training run can take any
// number of batches regardless of stream length.
//
// Generators are stateful. Each carries a cursor, the stream index of the
// oldest window element, which advances as batches are produced. Calling
// Next twice with batch size k yields exactly the samples of one call
// with batch size 2k, so training loops resume where they left off.
package sampler
