package sampler

import "fmt"

// Batch is one training step's worth of (input, label) pairs.
//
// Every row of Inputs pairs with the Label at the same position. CBOW rows
// hold the 2*window context indices around a center word; skip-gram rows
// hold the single center index.
type Batch struct {
	Inputs [][]int32
	Labels []int32
}

// Generator is the common surface of the CBOW and skip-gram samplers.
type Generator interface {
	// Next produces the next batch and advances the cursor.
	Next() *Batch

	// Cursor returns the stream index of the oldest window element.
	Cursor() int

	// Seek moves the cursor to a stream position.
	Seek(pos int) error
}

// windowSpan validates the shared window/batch parameters and returns
// the window span.
func windowSpan(batchSize, window, streamLen int) (int, error) {
	if batchSize < 1 {
		return 0, fmt.Errorf("sampler: batch size must be positive, got %d", batchSize)
	}
	if window < 1 {
		return 0, fmt.Errorf("sampler: window must be positive, got %d", window)
	}
	if streamLen == 0 {
		return 0, fmt.Errorf("sampler: empty token stream")
	}
	return 2*window + 1, nil
}

// fillWindow reads span consecutive tokens starting at cursor, wrapping
// circularly at the stream end.
func fillWindow(buf []int32, stream []int32, cursor int) {
	n := len(stream)
	for i := range buf {
		buf[i] = stream[(cursor+i)%n]
	}
}

// seek validates a cursor position against the stream length.
func seek(pos, streamLen int) (int, error) {
	if pos < 0 || pos >= streamLen {
		return 0, fmt.Errorf("sampler: cursor %d out of range [0, %d)", pos, streamLen)
	}
	return pos, nil
}
