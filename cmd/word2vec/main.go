// Package main provides the word2vec command-line interface.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/word2vec/embed"
	"github.com/born-ml/word2vec/internal/corpus"
	"github.com/born-ml/word2vec/optim"
	"github.com/born-ml/word2vec/sampler"
	"github.com/born-ml/word2vec/search"
	"github.com/born-ml/word2vec/tokenizer"
	"github.com/born-ml/word2vec/train"
	"github.com/born-ml/word2vec/vocab"
)

const version = "v0.1.0-dev"

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("word2vec %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	case "nearest":
		if err := runNearest(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	case "search":
		if err := runSearch(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("word2vec - CBOW/skip-gram embedding trainer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train      Train embeddings from a text corpus")
	fmt.Println("  nearest    Show nearest neighbors of a word")
	fmt.Println("  search     Rank documents against a query")
	fmt.Println("  version    Show version")
}

// newTokenizer resolves the -encoding flag: empty means whitespace words,
// anything else a tiktoken BPE encoding name.
func newTokenizer(encoding string) (tokenizer.Tokenizer, error) {
	if encoding == "" {
		return tokenizer.NewWhitespace(), nil
	}
	return tokenizer.NewTikToken(encoding)
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	input := fs.String("input", "", "path to the training corpus (plain text)")
	output := fs.String("output", "embeddings.tsv", "path for the normalized embedding table")
	encoding := fs.String("encoding", "", "tiktoken encoding for subword tokens (default: whitespace words)")
	maxTokens := fs.Int("max-tokens", 0, "cap on corpus tokens (0 = all)")
	vocabSize := fs.Int("vocab-size", 10000, "vocabulary size including the OOV bucket")
	dim := fs.Int("dim", 128, "embedding dimensionality")
	window := fs.Int("window", 1, "half-window size")
	batchSize := fs.Int("batch-size", 128, "samples per training step")
	steps := fs.Int("steps", 20000, "training steps")
	mode := fs.String("mode", "cbow", "training mode: cbow or skipgram")
	numSkips := fs.Int("num-skips", 2, "skip-gram context samples per center word")
	optName := fs.String("optimizer", "adagrad", "optimizer: adagrad or sgd")
	lr := fs.Float64("lr", 1.0, "learning rate")
	seed := fs.Int64("seed", 1, "random seed for init and skip-gram sampling")
	logEvery := fs.Int("log-every", 2000, "steps between loss reports")
	neighborEvery := fs.Int("neighbor-every", 10000, "steps between neighbor reports (0 = off)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("train: -input is required")
	}

	tok, err := newTokenizer(*encoding)
	if err != nil {
		return err
	}

	tokens, err := corpus.Load(*input, tok, *maxTokens)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"tokens": len(tokens), "input": *input}).Info("corpus loaded")

	v, err := vocab.Build(tokens, *vocabSize)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"vocab_size": v.Size(),
		"oov_count":  v.UnknownCount(),
	}).Info("vocabulary built")

	stream := v.Encode(tokens)

	var gen sampler.Generator
	switch *mode {
	case "cbow":
		gen, err = sampler.NewCBOW(stream, sampler.CBOWConfig{
			BatchSize: *batchSize,
			Window:    *window,
		})
	case "skipgram":
		gen, err = sampler.NewSkipGram(stream, sampler.SkipGramConfig{
			BatchSize: *batchSize,
			Window:    *window,
			NumSkips:  *numSkips,
			Seed:      *seed,
		})
	default:
		return fmt.Errorf("train: unknown mode %q (want cbow or skipgram)", *mode)
	}
	if err != nil {
		return err
	}

	var opt optim.Optimizer
	switch *optName {
	case "adagrad":
		opt = optim.NewAdagrad(optim.AdagradConfig{LR: *lr})
	case "sgd":
		opt = optim.NewSGD(optim.SGDConfig{LR: *lr})
	default:
		return fmt.Errorf("train: unknown optimizer %q (want adagrad or sgd)", *optName)
	}

	model, err := embed.New(v.Size(), *dim, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}

	trainer, err := train.New(model, gen, opt, v, train.Config{
		LogEvery:      *logEvery,
		NeighborEvery: *neighborEvery,
	}, log)
	if err != nil {
		return err
	}

	meanLoss, err := trainer.Run(*steps)
	if err != nil {
		return err
	}
	log.WithField("mean_loss", meanLoss).Info("training finished")

	normalized, zeroRows := model.Normalized()
	if len(zeroRows) > 0 {
		log.WithField("rows", len(zeroRows)).Warn("zero-norm embedding rows saved as zero vectors")
	}
	if err := embed.SaveTSV(*output, v.Tokens(), normalized); err != nil {
		return err
	}
	log.WithField("output", *output).Info("embeddings saved")
	return nil
}

func runNearest(args []string) error {
	fs := flag.NewFlagSet("nearest", flag.ExitOnError)
	embeddings := fs.String("embeddings", "embeddings.tsv", "path to a saved embedding table")
	word := fs.String("word", "", "query word")
	k := fs.Int("k", 8, "number of neighbors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *word == "" {
		return fmt.Errorf("nearest: -word is required")
	}

	tokens, weights, err := embed.LoadTSV(*embeddings)
	if err != nil {
		return err
	}
	v, err := vocab.FromTokens(tokens)
	if err != nil {
		return err
	}

	id := v.ID(strings.ToLower(*word))
	if id == vocab.UnknownIndex {
		return fmt.Errorf("nearest: %q is not in the vocabulary", *word)
	}

	neighbors, err := embed.Nearest(weights, id, *k)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		tok, err := v.Token(n.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %.4f\n", tok, n.Similarity)
	}
	return nil
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	embeddings := fs.String("embeddings", "embeddings.tsv", "path to a saved embedding table")
	docs := fs.String("docs", "", "path to documents, one per line")
	query := fs.String("query", "", "query text")
	k := fs.Int("k", 5, "number of results")
	encoding := fs.String("encoding", "", "tiktoken encoding (must match training)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *docs == "" || *query == "" {
		return fmt.Errorf("search: -docs and -query are required")
	}

	tokens, weights, err := embed.LoadTSV(*embeddings)
	if err != nil {
		return err
	}
	v, err := vocab.FromTokens(tokens)
	if err != nil {
		return err
	}
	tok, err := newTokenizer(*encoding)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*docs)
	if err != nil {
		return fmt.Errorf("search: failed to read %s: %w", *docs, err)
	}
	var documents []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			documents = append(documents, line)
		}
	}

	engine, err := search.NewEngine(v, weights, tok)
	if err != nil {
		return err
	}
	empty, err := engine.Index(documents)
	if err != nil {
		return err
	}
	if len(empty) > 0 {
		log.WithField("documents", len(empty)).Warn("documents with no in-vocabulary tokens rank last")
	}

	results, err := engine.Query(*query, *k)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("%.4f  %s\n", r.Score, r.Text)
	}
	return nil
}
