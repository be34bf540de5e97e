// Package train drives the word2vec training loop: it alternates batch
// generation and embedding updates, with periodic progress reporting in
// the style of the classic word2vec tutorials (running average loss,
// nearest neighbors of a few probe words).
package train

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/word2vec/internal/embed"
	"github.com/born-ml/word2vec/internal/optim"
	"github.com/born-ml/word2vec/internal/sampler"
	"github.com/born-ml/word2vec/internal/vocab"
)

// Config holds training-loop reporting knobs.
type Config struct {
	// LogEvery is the number of steps between average-loss log lines
	// (default: 200).
	LogEvery int

	// NeighborEvery is the number of steps between nearest-neighbor
	// reports for the probe words. 0 disables the reports.
	NeighborEvery int

	// NeighborCount is the number of neighbors reported per probe word
	// (default: 5).
	NeighborCount int

	// ProbeIDs are the vocabulary indices whose neighbors are reported.
	// Empty defaults to the most frequent handful of real tokens.
	ProbeIDs []int32
}

// Trainer runs the training loop over a model, a batch generator and an
// optimizer.
type Trainer struct {
	model *embed.Model
	gen   sampler.Generator
	opt   optim.Optimizer
	vocab *vocab.Vocabulary
	cfg   Config
	log   *logrus.Logger
}

// New creates a Trainer.
//
// The vocabulary is only consulted for reporting (resolving probe ids to
// tokens); model, generator and optimizer carry all training state.
func New(model *embed.Model, gen sampler.Generator, opt optim.Optimizer,
	v *vocab.Vocabulary, cfg Config, log *logrus.Logger) (*Trainer, error) {
	if model == nil || gen == nil || opt == nil || v == nil {
		return nil, fmt.Errorf("train: nil model, generator, optimizer or vocabulary")
	}
	if v.Size() != model.VocabSize() {
		return nil, fmt.Errorf("train: vocabulary size %d does not match model vocab %d",
			v.Size(), model.VocabSize())
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 200
	}
	if cfg.NeighborCount <= 0 {
		cfg.NeighborCount = 5
	}
	if len(cfg.ProbeIDs) == 0 {
		cfg.ProbeIDs = defaultProbes(v)
	}
	for _, id := range cfg.ProbeIDs {
		if id < 0 || int(id) >= v.Size() {
			return nil, fmt.Errorf("train: probe id %d out of range [0, %d)", id, v.Size())
		}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Trainer{model: model, gen: gen, opt: opt, vocab: v, cfg: cfg, log: log}, nil
}

// Run executes steps training steps and returns the mean loss over the
// whole run.
func (t *Trainer) Run(steps int) (float64, error) {
	if steps < 1 {
		return 0, fmt.Errorf("train: steps must be positive, got %d", steps)
	}

	var total, window float64
	for step := 1; step <= steps; step++ {
		batch := t.gen.Next()
		loss, err := t.model.Step(batch.Inputs, batch.Labels, t.opt)
		if err != nil {
			return 0, fmt.Errorf("train: step %d: %w", step, err)
		}
		total += loss
		window += loss

		if step%t.cfg.LogEvery == 0 {
			t.log.WithFields(logrus.Fields{
				"step":     step,
				"avg_loss": window / float64(t.cfg.LogEvery),
				"cursor":   t.gen.Cursor(),
			}).Info("training progress")
			window = 0
		}
		if t.cfg.NeighborEvery > 0 && step%t.cfg.NeighborEvery == 0 {
			t.reportNeighbors(step)
		}
	}
	return total / float64(steps), nil
}

// reportNeighbors logs the nearest neighbors of every probe word against
// the current normalized table.
func (t *Trainer) reportNeighbors(step int) {
	normalized, zeroRows := t.model.Normalized()
	if len(zeroRows) > 0 {
		t.log.WithFields(logrus.Fields{
			"step": step,
			"rows": len(zeroRows),
		}).Warn("zero-norm embedding rows excluded from similarity")
	}

	for _, id := range t.cfg.ProbeIDs {
		word, err := t.vocab.Token(id)
		if err != nil {
			continue
		}
		neighbors, err := embed.Nearest(normalized, id, t.cfg.NeighborCount)
		if err != nil {
			continue
		}
		words := make([]string, 0, len(neighbors))
		for _, n := range neighbors {
			tok, err := t.vocab.Token(n.ID)
			if err != nil {
				continue
			}
			words = append(words, tok)
		}
		t.log.WithFields(logrus.Fields{
			"step":      step,
			"word":      word,
			"neighbors": words,
		}).Info("nearest neighbors")
	}
}

// defaultProbes picks the most frequent real tokens, skipping the OOV
// bucket.
func defaultProbes(v *vocab.Vocabulary) []int32 {
	n := 4
	if v.Size()-1 < n {
		n = v.Size() - 1
	}
	probes := make([]int32, 0, n)
	for id := int32(1); len(probes) < n; id++ {
		probes = append(probes, id)
	}
	return probes
}
