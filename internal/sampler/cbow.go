package sampler

// CBOWConfig configures a CBOW batch generator.
type CBOWConfig struct {
	// BatchSize is the number of (context, center) pairs per batch.
	BatchSize int

	// Window is the half-window size: each sample's context is the Window
	// tokens on either side of the center, 2*Window indices in all.
	Window int
}

// CBOW generates continuous-bag-of-words training batches.
//
// Each sample labels the center of the current window with the remaining
// window elements, in their original left-to-right order, as input:
//
//	stream:  ... 4 7 2 9 1 ...      (Window = 2)
//	input:   [4 7 9 1]
//	label:   2
//
// The window advances one token per sample.
type CBOW struct {
	cfg    CBOWConfig
	stream []int32
	span   int
	cursor int
}

// NewCBOW creates a CBOW generator over an encoded token stream.
//
// The stream is read circularly and must be non-empty. Configuration is
// validated here; Next never fails.
func NewCBOW(stream []int32, cfg CBOWConfig) (*CBOW, error) {
	span, err := windowSpan(cfg.BatchSize, cfg.Window, len(stream))
	if err != nil {
		return nil, err
	}
	return &CBOW{cfg: cfg, stream: stream, span: span}, nil
}

// Next produces the next BatchSize samples and advances the cursor by
// BatchSize positions. Wraparound at the stream end is silent.
func (g *CBOW) Next() *Batch {
	n := len(g.stream)
	buf := make([]int32, g.span)
	fillWindow(buf, g.stream, g.cursor)

	batch := &Batch{
		Inputs: make([][]int32, g.cfg.BatchSize),
		Labels: make([]int32, g.cfg.BatchSize),
	}
	for s := 0; s < g.cfg.BatchSize; s++ {
		ctx := make([]int32, 0, g.span-1)
		ctx = append(ctx, buf[:g.cfg.Window]...)
		ctx = append(ctx, buf[g.cfg.Window+1:]...)
		batch.Inputs[s] = ctx
		batch.Labels[s] = buf[g.cfg.Window]

		// Slide: evict the oldest token, append the next from the stream.
		next := g.stream[(g.cursor+g.span)%n]
		copy(buf, buf[1:])
		buf[g.span-1] = next
		g.cursor = (g.cursor + 1) % n
	}
	return batch
}

// Cursor returns the stream index of the oldest window element.
func (g *CBOW) Cursor() int {
	return g.cursor
}

// Seek moves the cursor so the next window starts at pos.
func (g *CBOW) Seek(pos int) error {
	p, err := seek(pos, len(g.stream))
	if err != nil {
		return err
	}
	g.cursor = p
	return nil
}
