package train_test

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/word2vec/internal/embed"
	"github.com/born-ml/word2vec/internal/optim"
	"github.com/born-ml/word2vec/internal/sampler"
	"github.com/born-ml/word2vec/internal/train"
	"github.com/born-ml/word2vec/internal/vocab"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixture(t *testing.T) (*embed.Model, *vocab.Vocabulary, []int32) {
	t.Helper()

	text := strings.Repeat("the cat sat on the mat ", 20)
	v, err := vocab.Build(strings.Fields(text), 6)
	require.NoError(t, err)

	model, err := embed.New(v.Size(), 8, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	return model, v, v.Encode(strings.Fields(text))
}

func TestTrainer_RunCBOW(t *testing.T) {
	model, v, stream := fixture(t)

	gen, err := sampler.NewCBOW(stream, sampler.CBOWConfig{BatchSize: 8, Window: 1})
	require.NoError(t, err)

	tr, err := train.New(model, gen, optim.NewAdagrad(optim.AdagradConfig{LR: 0.5}),
		v, train.Config{LogEvery: 10, NeighborEvery: 20, NeighborCount: 2}, quietLogger())
	require.NoError(t, err)

	loss, err := tr.Run(40)
	require.NoError(t, err)
	assert.Greater(t, loss, 0.0)
	assert.NotEqual(t, 0, gen.Cursor())
}

func TestTrainer_RunSkipGram(t *testing.T) {
	model, v, stream := fixture(t)

	gen, err := sampler.NewSkipGram(stream, sampler.SkipGramConfig{
		BatchSize: 8, Window: 1, NumSkips: 2, Seed: 9,
	})
	require.NoError(t, err)

	tr, err := train.New(model, gen, optim.NewSGD(optim.SGDConfig{LR: 0.05}),
		v, train.Config{}, quietLogger())
	require.NoError(t, err)

	_, err = tr.Run(20)
	require.NoError(t, err)
}

func TestTrainer_ValidationErrors(t *testing.T) {
	model, v, stream := fixture(t)
	gen, err := sampler.NewCBOW(stream, sampler.CBOWConfig{BatchSize: 4, Window: 1})
	require.NoError(t, err)
	opt := optim.NewSGD(optim.SGDConfig{})

	_, err = train.New(nil, gen, opt, v, train.Config{}, quietLogger())
	assert.Error(t, err)

	// Vocabulary/model size mismatch.
	small, err := vocab.Build([]string{"a", "b", "a"}, 3)
	require.NoError(t, err)
	_, err = train.New(model, gen, opt, small, train.Config{}, quietLogger())
	assert.Error(t, err)

	// Probe id outside the vocabulary.
	_, err = train.New(model, gen, opt, v, train.Config{ProbeIDs: []int32{99}}, quietLogger())
	assert.Error(t, err)

	tr, err := train.New(model, gen, opt, v, train.Config{}, quietLogger())
	require.NoError(t, err)
	_, err = tr.Run(0)
	assert.Error(t, err)
}
