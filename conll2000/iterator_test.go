package conll2000

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

// intStream builds a stream whose values are global offsets, so
// tests can tell which rows ended up in which batch.
func intStream(rows, steps int, labeled bool) *Stream {
	backing := make([]int32, rows*steps)
	for i := range backing {
		backing[i] = int32(i)
	}
	s := &Stream{
		Steps: steps,
		X:     tensor.New(tensor.WithShape(rows, steps), tensor.WithBacking(backing)),
	}
	if labeled {
		labels := make([]int32, rows*steps)
		for i := range labels {
			labels[i] = int32(i % 7)
		}
		s.Y = tensor.New(tensor.WithShape(rows, steps), tensor.WithBacking(labels))
		s.NumClasses = 7
	}
	return s
}

func TestIteratorBatches(t *testing.T) {
	iter, err := NewIterator(4, intStream(10, 3, true))
	require.NoError(t, err)
	assert.Equal(t, 10, iter.Len())
	assert.Equal(t, 3, iter.Batches())

	var sizes []int
	rows := 0
	for iter.Next() {
		batch := iter.Batch()
		require.Len(t, batch.Inputs, 1)
		require.NotNil(t, batch.Labels)

		n := batch.Inputs[0].Shape()[0]
		assert.Equal(t, n, batch.Labels.Shape()[0])

		data := batch.Inputs[0].Data().([]int32)
		require.NotEmpty(t, data)
		assert.Equal(t, int32(rows*3), data[0])

		rows += n
		sizes = append(sizes, n)
	}

	// The last batch holds the two leftover sentences.
	assert.Equal(t, []int{4, 4, 2}, sizes)
	assert.Nil(t, iter.Batch())

	iter.Reset()
	require.True(t, iter.Next())
	assert.Equal(t, 4, iter.Batch().Inputs[0].Shape()[0])
}

func TestIteratorZip(t *testing.T) {
	words := intStream(5, 2, true)
	pos := intStream(5, 2, false)
	chars := intStream(5, 6, false)

	iter, err := NewIterator(2, words, pos, chars)
	require.NoError(t, err)
	require.Len(t, iter.Streams(), 3)

	require.True(t, iter.Next())
	batch := iter.Batch()
	require.Len(t, batch.Inputs, 3)
	assert.Equal(t, []int{2, 2}, []int(batch.Inputs[0].Shape()))
	assert.Equal(t, []int{2, 2}, []int(batch.Inputs[1].Shape()))
	assert.Equal(t, []int{2, 6}, []int(batch.Inputs[2].Shape()))

	// Labels come from the first labeled stream.
	require.NotNil(t, batch.Labels)
	assert.Equal(t, words.Y.Data().([]int32)[:4], batch.Labels.Data().([]int32))
}

func TestIteratorUnlabeled(t *testing.T) {
	iter, err := NewIterator(3, intStream(3, 2, false))
	require.NoError(t, err)
	require.True(t, iter.Next())
	assert.Nil(t, iter.Batch().Labels)
	assert.False(t, iter.Next())
}

func TestIteratorGridStream(t *testing.T) {
	backing := make([]int32, 4*2*3)
	for i := range backing {
		backing[i] = int32(i)
	}
	grid := tensor.New(tensor.WithShape(4, 2, 3), tensor.WithBacking(backing))

	iter, err := NewIterator(3, &Stream{Steps: 6, X: grid})
	require.NoError(t, err)
	assert.Equal(t, 2, iter.Batches())

	require.True(t, iter.Next())
	first := iter.Batch().Inputs[0]
	assert.Equal(t, []int{3, 2, 3}, []int(first.Shape()))
	assert.Equal(t, backing[:18], first.Data().([]int32))

	require.True(t, iter.Next())
	second := iter.Batch().Inputs[0]
	assert.Equal(t, []int{1, 2, 3}, []int(second.Shape()))
	assert.Equal(t, backing[18:], second.Data().([]int32))
	assert.False(t, iter.Next())
}

func TestIteratorErrors(t *testing.T) {
	_, err := NewIterator(2)
	require.Error(t, err)

	_, err = NewIterator(0, intStream(4, 2, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid batch size")

	_, err = NewIterator(2, intStream(4, 2, false), intStream(5, 2, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}
