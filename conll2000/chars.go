package conll2000

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
	"gorgonia.org/tensor"
)

func init() {
	serializer.RegisterTypedDeserializer((&CharVocab{}).SerializerType(),
		DeserializeCharVocab)
}

// Reserved ids in character feature tensors.
const (
	CharPad       = 0
	CharWordStart = 1
	CharWordEnd   = 2
)

const charIDBase = CharWordEnd + 1

// A CharVocab maps characters to integer ids starting at 3, in
// the order they were first encountered. Unlike Vocab, ids are
// not frequency-ranked.
type CharVocab struct {
	runes []rune
	ids   map[rune]int
}

// DeserializeCharVocab deserializes a CharVocab.
func DeserializeCharVocab(d []byte) (vocab *CharVocab, err error) {
	defer essentials.AddCtxTo("deserialize CharVocab", &err)
	var joined string
	if err := serializer.DeserializeAny(d, &joined); err != nil {
		return nil, err
	}
	v := &CharVocab{ids: map[rune]int{}}
	for _, r := range joined {
		v.add(r)
	}
	return v, nil
}

// ID returns the id for a character and whether the character
// is in the vocabulary.
func (c *CharVocab) ID(r rune) (int, bool) {
	id, ok := c.ids[r]
	return id, ok
}

// Rune returns the character with the given id.
func (c *CharVocab) Rune(id int) (rune, bool) {
	if id < charIDBase || id >= charIDBase+len(c.runes) {
		return 0, false
	}
	return c.runes[id-charIDBase], true
}

// Len returns the number of distinct characters.
func (c *CharVocab) Len() int {
	return len(c.runes)
}

// NumIDs returns the size of the id space including the three
// reserved ids, i.e. the largest assigned id plus one.
func (c *CharVocab) NumIDs() int {
	return len(c.runes) + charIDBase
}

func (c *CharVocab) add(r rune) int {
	if id, ok := c.ids[r]; ok {
		return id
	}
	id := len(c.runes) + charIDBase
	c.ids[r] = id
	c.runes = append(c.runes, r)
	return id
}

// SerializerType returns the unique ID used to serialize
// a CharVocab with the serializer package.
func (c *CharVocab) SerializerType() string {
	return "github.com/JacopoMangiavacchi/nlp-architect/conll2000.CharVocab"
}

// Serialize serializes the CharVocab.
func (c *CharVocab) Serialize() ([]byte, error) {
	return serializer.SerializeAny(string(c.runes))
}

// BuildCharFeatures encodes sentences as fixed-size grids of
// character ids, returning the grid together with the character
// vocabulary accumulated over every word of every sentence.
//
// Each word becomes the sequence CharWordStart, its character
// ids, CharWordEnd, truncated or left-padded to wordLength; each
// sentence keeps its last sentenceLength words, with zero rows
// prepended when it has fewer. Both axes follow the PadSequences
// policy, so character rows stay aligned with the token stream.
// The result has shape (len(sentences), sentenceLength, wordLength).
func BuildCharFeatures(sentences [][]string, sentenceLength, wordLength int) (*tensor.Dense, *CharVocab) {
	vocab := &CharVocab{ids: map[rune]int{}}
	backing := make([]int32, len(sentences)*sentenceLength*wordLength)
	for i, sent := range sentences {
		vecs := make([][]int32, len(sent))
		for w, word := range sent {
			ids := make([]int32, 0, len(word)+2)
			ids = append(ids, CharWordStart)
			for _, r := range word {
				ids = append(ids, int32(vocab.add(r)))
			}
			ids = append(ids, CharWordEnd)
			if len(ids) > wordLength {
				ids = ids[len(ids)-wordLength:]
			}
			vecs[w] = ids
		}
		if len(vecs) > sentenceLength {
			vecs = vecs[len(vecs)-sentenceLength:]
		}
		base := i * sentenceLength * wordLength
		off := sentenceLength - len(vecs)
		for w, ids := range vecs {
			row := backing[base+(off+w)*wordLength : base+(off+w+1)*wordLength]
			copy(row[wordLength-len(ids):], ids)
		}
	}
	grid := tensor.New(tensor.WithShape(len(sentences), sentenceLength, wordLength),
		tensor.WithBacking(backing))
	return grid, vocab
}
