package conll2000

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadSequences(t *testing.T) {
	padded := PadSequences([][]int{
		{5, 6, 7},
		{1},
		{},
		{1, 2, 3, 4, 5, 6},
	}, 4)
	assert.Equal(t, []int{4, 4}, []int(padded.Shape()))
	assert.Equal(t, []int32{
		0, 5, 6, 7,
		0, 0, 0, 1,
		0, 0, 0, 0,
		3, 4, 5, 6,
	}, padded.Data().([]int32))
}

func TestAlignTagged(t *testing.T) {
	x := [][]int{{0, 1, 2}, {3}}
	y := [][]int{{0, 0, 1}, {1}}
	xt, yt, err := AlignTagged(x, y, 5, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 5}, []int(xt.Shape()))
	assert.Equal(t, []int{2, 5}, []int(yt.Shape()))

	// Feature ids are shifted by 3, label ids by 1, and both
	// sides are padded on the left.
	assert.Equal(t, []int32{
		0, 0, 3, 4, 5,
		0, 0, 0, 0, 6,
	}, xt.Data().([]int32))
	assert.Equal(t, []int32{
		0, 0, 1, 1, 2,
		0, 0, 0, 0, 2,
	}, yt.Data().([]int32))
}

func TestAlignTaggedTruncation(t *testing.T) {
	x := [][]int{{10, 11, 12, 13, 14}}
	y := [][]int{{0, 1, 2, 3, 4}}
	xt, yt, err := AlignTagged(x, y, 3, nil)
	require.NoError(t, err)

	// Only the last three steps survive, on both sides.
	assert.Equal(t, []int32{15, 16, 17}, xt.Data().([]int32))
	assert.Equal(t, []int32{3, 4, 5}, yt.Data().([]int32))
}

func TestAlignTaggedShuffle(t *testing.T) {
	var x, y [][]int
	for i := 0; i < 20; i++ {
		x = append(x, []int{i})
		y = append(y, []int{i})
	}
	xt, yt, err := AlignTagged(x, y, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	xd := xt.Data().([]int32)
	yd := yt.Data().([]int32)
	require.Len(t, xd, 20)

	seen := map[int32]bool{}
	identity := true
	for i := range xd {
		// Rows moved together, so each pair still matches.
		assert.Equal(t, xd[i]-TokenOffset, yd[i]-LabelOffset)
		seen[xd[i]-TokenOffset] = true
		if int(xd[i])-TokenOffset != i {
			identity = false
		}
	}
	assert.Len(t, seen, 20)
	assert.False(t, identity)
}

func TestAlignTaggedErrors(t *testing.T) {
	_, _, err := AlignTagged([][]int{{1}}, [][]int{{1}, {2}}, 5, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 feature sequences but 2 label sequences")

	_, _, err = AlignTagged([][]int{{1, 2}}, [][]int{{1}}, 5, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentence 0")

	_, _, err = AlignTagged([][]int{{1}}, [][]int{{1}}, 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sequence length")
}
