// Package train provides the word2vec training loop driver.
//
// This package wraps the internal trainer and provides a clean public
// API.
//
// Example usage:
//
//	import "github.com/born-ml/word2vec/train"
//
//	trainer, err := train.New(model, gen, opt, v, train.Config{
//	    LogEvery:      2000,
//	    NeighborEvery: 10000,
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	meanLoss, err := trainer.Run(100000)
package train

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/word2vec/internal/embed"
	"github.com/born-ml/word2vec/internal/optim"
	"github.com/born-ml/word2vec/internal/sampler"
	"github.com/born-ml/word2vec/internal/train"
	"github.com/born-ml/word2vec/internal/vocab"
)

// Config holds training-loop reporting knobs.
type Config = train.Config

// Trainer runs the training loop over a model, a batch generator and an
// optimizer.
type Trainer = train.Trainer

// New creates a Trainer. A nil logger falls back to the logrus standard
// logger.
func New(model *embed.Model, gen sampler.Generator, opt optim.Optimizer,
	v *vocab.Vocabulary, cfg Config, log *logrus.Logger) (*Trainer, error) {
	return train.New(model, gen, opt, v, cfg, log)
}
