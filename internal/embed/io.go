package embed

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// SaveTSV writes an embedding table to path as tab-separated values, one
// line per vocabulary index:
//
//	token \t v0 \t v1 \t ... \t v{dim-1}
//
// tokens must be the index-ordered vocabulary token list and match the
// table's row count. Tokens containing tabs or newlines are rejected:
// they would corrupt the format.
func SaveTSV(path string, tokens []string, weights *mat.Dense) error {
	rows, cols := weights.Dims()
	if len(tokens) != rows {
		return fmt.Errorf("embed: %d tokens for %d embedding rows", len(tokens), rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("embed: failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for r := 0; r < rows; r++ {
		if strings.ContainsAny(tokens[r], "\t\n") {
			return fmt.Errorf("embed: token %q at index %d contains a separator", tokens[r], r)
		}
		if _, err := w.WriteString(tokens[r]); err != nil {
			return fmt.Errorf("embed: write failed: %w", err)
		}
		row := weights.RawRowView(r)
		for c := 0; c < cols; c++ {
			if _, err := fmt.Fprintf(w, "\t%g", row[c]); err != nil {
				return fmt.Errorf("embed: write failed: %w", err)
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("embed: write failed: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("embed: flush failed: %w", err)
	}
	return nil
}

// LoadTSV reads an embedding table written by SaveTSV and returns the
// index-ordered token list and the weight matrix.
func LoadTSV(path string) ([]string, *mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("embed: failed to open %s: %w", path, err)
	}
	defer f.Close()

	var (
		tokens []string
		data   []float64
		dim    = -1
	)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("embed: line %d has no vector components", line)
		}
		if dim == -1 {
			dim = len(fields) - 1
		} else if len(fields)-1 != dim {
			return nil, nil, fmt.Errorf("embed: line %d has %d components, want %d",
				line, len(fields)-1, dim)
		}

		tokens = append(tokens, fields[0])
		for _, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("embed: line %d: invalid component %q: %w", line, field, err)
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("embed: read failed: %w", err)
	}
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("embed: %s is empty", path)
	}

	return tokens, mat.NewDense(len(tokens), dim, data), nil
}
