// Package tokenizer splits raw text into the token strings the
// vocabulary builder consumes.
//
// Two implementations are provided:
//   - Whitespace: simple field splitting with optional lowercasing, the
//     classic word2vec corpus treatment.
//   - TikToken: OpenAI BPE subword pieces via pkoukk/tiktoken-go, for
//     training embeddings over a subword space instead of whole words.
//
// Unlike an LLM tokenizer, no id space is assigned here: the vocabulary
// builder owns index assignment, because word2vec retains only the most
// frequent tokens and collapses the rest to an out-of-vocabulary bucket.
package tokenizer
