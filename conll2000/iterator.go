package conll2000

import (
	"errors"
	"fmt"

	"github.com/unixpickle/essentials"
	"gorgonia.org/tensor"
)

// A Stream is one aligned feature array, optionally paired with
// labels, ready to be cut into mini-batches.
//
// The first dimension of X indexes sentences. Y, when non-nil,
// is the (N, Steps) label array aligned with X. NumClasses is
// the label id space size including the padding id.
type Stream struct {
	Steps      int
	X          *tensor.Dense
	Y          *tensor.Dense
	NumClasses int
}

// Len returns the number of sentences in the stream.
func (s *Stream) Len() int {
	return s.X.Shape()[0]
}

func (s *Stream) slice(i, j int) (x, y *tensor.Dense) {
	x = sliceRows(s.X, i, j)
	if s.Y != nil {
		y = sliceRows(s.Y, i, j)
	}
	return
}

// A Batch is one mini-batch: one input array per stream, plus
// the labels of the first labeled stream (nil when no stream
// carries labels).
type Batch struct {
	Inputs []*tensor.Dense
	Labels *tensor.Dense
}

// An Iterator cuts one or more aligned streams into mini-batches
// for a training loop.
//
// With a single stream it yields plain batches; with several it
// zips them, yielding one input per stream per batch.
type Iterator struct {
	streams   []*Stream
	batchSize int
	pos       int
	cur       *Batch
}

// NewIterator creates an Iterator over the given streams.
//
// Every stream must contain the same number of sentences.
func NewIterator(batchSize int, streams ...*Stream) (iter *Iterator, err error) {
	defer essentials.AddCtxTo("create iterator", &err)

	if batchSize < 1 {
		return nil, fmt.Errorf("invalid batch size %d", batchSize)
	}
	if len(streams) == 0 {
		return nil, errors.New("no streams")
	}
	for _, s := range streams[1:] {
		if s.Len() != streams[0].Len() {
			return nil, fmt.Errorf("stream lengths %d and %d do not match",
				streams[0].Len(), s.Len())
		}
	}
	return &Iterator{streams: streams, batchSize: batchSize}, nil
}

// Len returns the total number of sentences.
func (it *Iterator) Len() int {
	return it.streams[0].Len()
}

// Batches returns the number of batches per epoch. The final
// batch may be smaller than the batch size.
func (it *Iterator) Batches() int {
	return (it.Len() + it.batchSize - 1) / it.batchSize
}

// Streams returns the underlying streams.
func (it *Iterator) Streams() []*Stream {
	return it.streams
}

// Next advances to the next batch, returning false at the end
// of the epoch.
func (it *Iterator) Next() bool {
	if it.pos >= it.Len() {
		it.cur = nil
		return false
	}
	end := it.pos + it.batchSize
	if end > it.Len() {
		end = it.Len()
	}
	batch := &Batch{}
	for _, s := range it.streams {
		x, y := s.slice(it.pos, end)
		batch.Inputs = append(batch.Inputs, x)
		if batch.Labels == nil && y != nil {
			batch.Labels = y
		}
	}
	it.cur = batch
	it.pos = end
	return true
}

// Batch returns the batch produced by the last call to Next.
func (it *Iterator) Batch() *Batch {
	return it.cur
}

// Reset rewinds the iterator to the start of the epoch.
func (it *Iterator) Reset() {
	it.pos = 0
	it.cur = nil
}

// sliceRows copies rows [i, j) along the first dimension of t.
func sliceRows(t *tensor.Dense, i, j int) *tensor.Dense {
	shape := t.Shape()
	rowSize := 1
	for _, d := range shape[1:] {
		rowSize *= d
	}
	outShape := append([]int{j - i}, shape[1:]...)
	switch data := t.Data().(type) {
	case []int32:
		sub := make([]int32, (j-i)*rowSize)
		copy(sub, data[i*rowSize:j*rowSize])
		return tensor.New(tensor.WithShape(outShape...), tensor.WithBacking(sub))
	case []float32:
		sub := make([]float32, (j-i)*rowSize)
		copy(sub, data[i*rowSize:j*rowSize])
		return tensor.New(tensor.WithShape(outShape...), tensor.WithBacking(sub))
	}
	panic("unsupported data type")
}
