package conll2000

import (
	"strings"

	"github.com/unixpickle/anyvec"
	"gorgonia.org/tensor"
)

// An Embedding maps words to fixed-size vectors.
//
// It is the subset of wordembed.Embedding that the dataset
// needs, so embeddings from that package (such as GloVe) can be
// used directly.
type Embedding interface {
	Dim() int
	Contains(token string) bool
	Embed(token string) anyvec.Vector
}

// wordVectors expands a padded (N, steps) grid of shifted token
// ids into an (N, steps, Dim) float32 tensor of word vectors.
//
// Padding and reserved ids, as well as words the embedding does
// not contain, become zero vectors. Lookups use the lowercased
// word, the usual convention for pre-trained vectors.
func wordVectors(x *tensor.Dense, vocab *Vocab, emb Embedding) *tensor.Dense {
	shape := x.Shape()
	n, steps := shape[0], shape[1]
	dim := emb.Dim()
	ids := x.Data().([]int32)
	backing := make([]float32, n*steps*dim)
	for i, id := range ids {
		if id < TokenOffset {
			continue
		}
		word, ok := vocab.Word(int(id) - TokenOffset)
		if !ok {
			continue
		}
		word = strings.ToLower(word)
		if !emb.Contains(word) {
			continue
		}
		copy(backing[i*dim:(i+1)*dim], vectorData(emb.Embed(word)))
	}
	return tensor.New(tensor.WithShape(n, steps, dim), tensor.WithBacking(backing))
}

// vectorData extracts float32 data from an embedding vector.
func vectorData(vec anyvec.Vector) []float32 {
	switch data := vec.Data().(type) {
	case []float32:
		return data
	case []float64:
		res := make([]float32, len(data))
		for i, x := range data {
			res[i] = float32(x)
		}
		return res
	}
	panic("unsupported data type")
}
