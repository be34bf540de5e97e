package sampler

import (
	"fmt"
	"math/rand"
)

// SkipGramConfig configures a skip-gram batch generator.
type SkipGramConfig struct {
	// BatchSize is the number of (center, context) pairs per batch.
	// Must be divisible by NumSkips.
	BatchSize int

	// Window is the half-window size around each center word.
	Window int

	// NumSkips is the number of context words sampled per center word.
	// Must not exceed 2*Window, the number of available context positions.
	NumSkips int

	// Seed for reproducibility. -1 = random.
	Seed int64
}

// SkipGram generates skip-gram training batches.
//
// Each window position yields NumSkips samples sharing the center token as
// input, each labeled with a distinct context token chosen uniformly at
// random from the window. Context positions are drawn by rejection
// sampling: positions already used for the current center, and the center
// itself, are redrawn. The NumSkips <= 2*Window precondition guarantees
// this terminates; NewSkipGram rejects configurations that violate it.
type SkipGram struct {
	cfg    SkipGramConfig
	stream []int32
	span   int
	cursor int
	rng    *rand.Rand
}

// NewSkipGram creates a skip-gram generator over an encoded token stream.
//
// All configuration constraints are checked here, before any sampling:
// positive batch size and window, NumSkips in [1, 2*Window], and BatchSize
// divisible by NumSkips.
func NewSkipGram(stream []int32, cfg SkipGramConfig) (*SkipGram, error) {
	span, err := windowSpan(cfg.BatchSize, cfg.Window, len(stream))
	if err != nil {
		return nil, err
	}
	if cfg.NumSkips < 1 {
		return nil, fmt.Errorf("sampler: num skips must be positive, got %d", cfg.NumSkips)
	}
	if cfg.NumSkips > 2*cfg.Window {
		return nil, fmt.Errorf("sampler: num skips %d exceeds 2*window = %d context positions",
			cfg.NumSkips, 2*cfg.Window)
	}
	if cfg.BatchSize%cfg.NumSkips != 0 {
		return nil, fmt.Errorf("sampler: batch size %d not divisible by num skips %d",
			cfg.BatchSize, cfg.NumSkips)
	}

	var rng *rand.Rand
	if cfg.Seed >= 0 {
		rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // User requested random seed
	}

	return &SkipGram{cfg: cfg, stream: stream, span: span, rng: rng}, nil
}

// Next produces the next BatchSize samples and advances the cursor by
// BatchSize/NumSkips positions, one per window. Wraparound at the stream
// end is silent.
func (g *SkipGram) Next() *Batch {
	n := len(g.stream)
	buf := make([]int32, g.span)
	fillWindow(buf, g.stream, g.cursor)

	batch := &Batch{
		Inputs: make([][]int32, 0, g.cfg.BatchSize),
		Labels: make([]int32, 0, g.cfg.BatchSize),
	}
	windows := g.cfg.BatchSize / g.cfg.NumSkips
	for w := 0; w < windows; w++ {
		center := buf[g.cfg.Window]
		used := make(map[int]bool, g.cfg.NumSkips+1)
		used[g.cfg.Window] = true
		for s := 0; s < g.cfg.NumSkips; s++ {
			target := g.cfg.Window
			for used[target] {
				target = g.rng.Intn(g.span)
			}
			used[target] = true
			batch.Inputs = append(batch.Inputs, []int32{center})
			batch.Labels = append(batch.Labels, buf[target])
		}

		next := g.stream[(g.cursor+g.span)%n]
		copy(buf, buf[1:])
		buf[g.span-1] = next
		g.cursor = (g.cursor + 1) % n
	}
	return batch
}

// Cursor returns the stream index of the oldest window element.
func (g *SkipGram) Cursor() int {
	return g.cursor
}

// Seek moves the cursor so the next window starts at pos.
func (g *SkipGram) Seek(pos int) error {
	p, err := seek(pos, len(g.stream))
	if err != nil {
		return err
	}
	g.cursor = p
	return nil
}
