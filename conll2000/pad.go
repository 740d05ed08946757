package conll2000

import (
	"fmt"
	"math/rand"

	"github.com/unixpickle/essentials"
	"gorgonia.org/tensor"
)

// Id offsets applied by AlignTagged before padding, so that 0
// can serve as the padding value in every output array.
//
// Feature ids are shifted by TokenOffset (0 is padding, 1 and 2
// are reserved); label ids are shifted by LabelOffset. A model
// consuming the arrays should size its tables accordingly, e.g.
// Vocab.Len()+TokenOffset input ids.
const (
	TokenOffset = 3
	LabelOffset = 1
)

// PadSequences packs variable-length id sequences into a
// rectangular (len(seqs), length) int32 tensor.
//
// Sequences longer than length keep their last length entries;
// shorter sequences are left-padded with zeros so that every
// sequence ends at the right edge of its row.
func PadSequences(seqs [][]int, length int) *tensor.Dense {
	backing := make([]int32, len(seqs)*length)
	for i, seq := range seqs {
		if len(seq) > length {
			seq = seq[len(seq)-length:]
		}
		row := backing[i*length : (i+1)*length]
		off := length - len(seq)
		for j, id := range seq {
			row[off+j] = int32(id)
		}
	}
	return tensor.New(tensor.WithShape(len(seqs), length), tensor.WithBacking(backing))
}

// AlignTagged turns parallel feature and label id sequences into
// two aligned (N, length) int32 tensors.
//
// Feature ids are shifted by TokenOffset and label ids by
// LabelOffset before padding. If shuffle is non-nil, one
// permutation drawn from it is applied to both sides, so row i
// of the features still lines up with row i of the labels.
func AlignTagged(x, y [][]int, length int, shuffle *rand.Rand) (xt, yt *tensor.Dense, err error) {
	defer essentials.AddCtxTo("align tagged sequences", &err)

	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("have %d feature sequences but %d label sequences",
			len(x), len(y))
	}
	if length <= 0 {
		return nil, nil, fmt.Errorf("invalid sequence length %d", length)
	}
	xs := make([][]int, len(x))
	ys := make([][]int, len(y))
	for i, seq := range x {
		if len(seq) != len(y[i]) {
			return nil, nil, fmt.Errorf("sentence %d: %d features but %d labels",
				i, len(seq), len(y[i]))
		}
		xs[i] = shiftIDs(seq, TokenOffset)
		ys[i] = shiftIDs(y[i], LabelOffset)
	}
	if shuffle != nil {
		perm := shuffle.Perm(len(xs))
		px := make([][]int, len(xs))
		py := make([][]int, len(ys))
		for i, j := range perm {
			px[i] = xs[j]
			py[i] = ys[j]
		}
		xs, ys = px, py
	}
	return PadSequences(xs, length), PadSequences(ys, length), nil
}

func shiftIDs(seq []int, offset int) []int {
	res := make([]int, len(seq))
	for i, id := range seq {
		res[i] = id + offset
	}
	return res
}
