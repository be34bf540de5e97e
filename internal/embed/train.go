package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/word2vec/internal/optim"
)

// Step runs one training step over a batch and returns the mean
// cross-entropy loss.
//
// Forward, per sample:
//  1. Look up each input index's row and sum them into one aggregate
//     vector. Summation (not averaging) is deliberate: it is the CBOW
//     formulation this model trains, and changing it changes the
//     training dynamics. Skip-gram batches are the one-index case.
//  2. Score the aggregate against every vocabulary row by inner product,
//     giving unnormalized class scores over the vocabulary.
//  3. Loss is the cross-entropy between the softmax of those scores and
//     the one-hot label.
//
// Backward uses the closed-form softmax gradient (probs minus one-hot):
// the score gradient feeds the table twice, once through the scoring side
// (rank-one update against the aggregate) and once through the lookup
// side (shared gradient added to every input row). The optimizer then
// consumes the dense [vocab, dim] gradient.
func (m *Model) Step(inputs [][]int32, labels []int32, opt optim.Optimizer) (float64, error) {
	if opt == nil {
		return 0, fmt.Errorf("embed: nil optimizer")
	}
	if err := m.validateBatch(inputs, labels); err != nil {
		return 0, err
	}

	batch := len(inputs)
	grad := mat.NewDense(m.vocab, m.dim, nil)
	agg := mat.NewVecDense(m.dim, nil)
	gAgg := mat.NewVecDense(m.dim, nil)
	scores := mat.NewVecDense(m.vocab, nil)
	logProbs := make([]float64, m.vocab)
	dScores := mat.NewVecDense(m.vocab, nil)

	var totalLoss float64
	for i, in := range inputs {
		m.aggregate(agg, in)
		scores.MulVec(m.weights, agg)
		logSoftmax(logProbs, scores.RawVector().Data)
		totalLoss += -logProbs[labels[i]]

		// dL/dscores = (softmax - one_hot) / batch
		ds := dScores.RawVector().Data
		for v := range ds {
			p := math.Exp(logProbs[v])
			if int32(v) == labels[i] {
				p -= 1
			}
			ds[v] = p / float64(batch)
		}

		// Scoring side: grad += dscores ⊗ agg.
		grad.RankOne(grad, 1, dScores, agg)

		// Lookup side: every input row receives dL/dagg = Wᵀ·dscores.
		gAgg.MulVec(m.weights.T(), dScores)
		for _, idx := range in {
			floats.Add(grad.RawRowView(int(idx)), gAgg.RawVector().Data)
		}
	}

	opt.Step(m.weights, grad)
	return totalLoss / float64(batch), nil
}

// Loss computes the mean cross-entropy of a batch without updating the
// model. Used for evaluation.
func (m *Model) Loss(inputs [][]int32, labels []int32) (float64, error) {
	if err := m.validateBatch(inputs, labels); err != nil {
		return 0, err
	}

	agg := mat.NewVecDense(m.dim, nil)
	scores := mat.NewVecDense(m.vocab, nil)
	logProbs := make([]float64, m.vocab)

	var totalLoss float64
	for i, in := range inputs {
		m.aggregate(agg, in)
		scores.MulVec(m.weights, agg)
		logSoftmax(logProbs, scores.RawVector().Data)
		totalLoss += -logProbs[labels[i]]
	}
	return totalLoss / float64(len(inputs)), nil
}

// aggregate sums the input rows into dst.
func (m *Model) aggregate(dst *mat.VecDense, inputs []int32) {
	dst.Zero()
	out := dst.RawVector().Data
	for _, idx := range inputs {
		floats.Add(out, m.weights.RawRowView(int(idx)))
	}
}

// validateBatch checks batch shape and index bounds before any math runs.
func (m *Model) validateBatch(inputs [][]int32, labels []int32) error {
	if len(inputs) == 0 {
		return fmt.Errorf("embed: empty batch")
	}
	if len(inputs) != len(labels) {
		return fmt.Errorf("embed: %d input rows but %d labels", len(inputs), len(labels))
	}
	for i, in := range inputs {
		if len(in) == 0 {
			return fmt.Errorf("embed: sample %d has no input indices", i)
		}
		for _, idx := range in {
			if idx < 0 || int(idx) >= m.vocab {
				return fmt.Errorf("embed: input index %d out of range [0, %d)", idx, m.vocab)
			}
		}
		if labels[i] < 0 || int(labels[i]) >= m.vocab {
			return fmt.Errorf("embed: label %d out of range [0, %d)", labels[i], m.vocab)
		}
	}
	return nil
}

// logSoftmax computes log(softmax(z)) into dst in a numerically stable
// way.
//
// Formula:
//
//	LogSoftmax(z)[i] = z[i] - (max(z) + log(Σ exp(z - max(z))))
//
// The log-sum-exp trick prevents overflow when scores grow large.
func logSoftmax(dst, z []float64) {
	maxZ := z[0]
	for _, v := range z[1:] {
		if v > maxZ {
			maxZ = v
		}
	}

	var sumExp float64
	for _, v := range z {
		sumExp += math.Exp(v - maxZ)
	}
	logSumExp := maxZ + math.Log(sumExp)

	for i, v := range z {
		dst[i] = v - logSumExp
	}
}
