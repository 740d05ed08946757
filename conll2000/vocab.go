package conll2000

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	serializer.RegisterTypedDeserializer((&Vocab{}).SerializerType(),
		DeserializeVocab)
}

// A Vocab maps distinct tokens to dense integer ids, ordered by
// descending corpus frequency.
type Vocab struct {
	words []string
	ids   map[string]int
	lower bool
}

// NewVocab builds a vocabulary over the given sentences.
//
// The most frequent token gets id 0; ties keep the order in
// which tokens were first encountered. If lowercase is set,
// tokens are folded to lower case while counting and in every
// later lookup, so the two passes can never disagree.
func NewVocab(sentences [][]string, lowercase bool) *Vocab {
	v := &Vocab{ids: map[string]int{}, lower: lowercase}
	counts := map[string]int{}
	for _, sent := range sentences {
		for _, w := range sent {
			w = v.norm(w)
			if counts[w] == 0 {
				v.words = append(v.words, w)
			}
			counts[w]++
		}
	}
	sort.SliceStable(v.words, func(i, j int) bool {
		return counts[v.words[i]] > counts[v.words[j]]
	})
	for i, w := range v.words {
		v.ids[w] = i
	}
	return v
}

// DeserializeVocab deserializes a Vocab.
func DeserializeVocab(d []byte) (vocab *Vocab, err error) {
	defer essentials.AddCtxTo("deserialize Vocab", &err)
	var joined string
	var lower int
	if err := serializer.DeserializeAny(d, &joined, &lower); err != nil {
		return nil, err
	}
	v := &Vocab{ids: map[string]int{}, lower: lower != 0}
	if joined != "" {
		v.words = strings.Split(joined, "\n")
	}
	for i, w := range v.words {
		v.ids[w] = i
	}
	return v, nil
}

// Len returns the number of distinct tokens.
func (v *Vocab) Len() int {
	return len(v.words)
}

// Lowercase reports whether the vocabulary folds tokens to
// lower case.
func (v *Vocab) Lowercase() bool {
	return v.lower
}

// ID returns the id for a token and whether the token is in the
// vocabulary.
func (v *Vocab) ID(token string) (int, bool) {
	id, ok := v.ids[v.norm(token)]
	return id, ok
}

// Word returns the token with the given id.
func (v *Vocab) Word(id int) (string, bool) {
	if id < 0 || id >= len(v.words) {
		return "", false
	}
	return v.words[id], true
}

// Map converts sentences to id sequences.
//
// A token that is not in the vocabulary produces an
// *UnknownTokenError.
func (v *Vocab) Map(sentences [][]string) ([][]int, error) {
	res := make([][]int, len(sentences))
	for i, sent := range sentences {
		res[i] = make([]int, len(sent))
		for j, w := range sent {
			id, ok := v.ids[v.norm(w)]
			if !ok {
				return nil, &UnknownTokenError{Token: w, Sentence: i}
			}
			res[i][j] = id
		}
	}
	return res, nil
}

func (v *Vocab) norm(token string) string {
	if v.lower {
		return strings.ToLower(token)
	}
	return token
}

// SerializerType returns the unique ID used to serialize
// a Vocab with the serializer package.
func (v *Vocab) SerializerType() string {
	return "github.com/JacopoMangiavacchi/nlp-architect/conll2000.Vocab"
}

// Serialize serializes the Vocab.
//
// Tokens come from whitespace-split corpus lines, so joining
// them on newlines is unambiguous.
func (v *Vocab) Serialize() ([]byte, error) {
	lower := 0
	if v.lower {
		lower = 1
	}
	return serializer.SerializeAny(strings.Join(v.words, "\n"), lower)
}

// SentencesToIDs builds a vocabulary over the sentences and
// re-expresses every sentence as a sequence of ids.
func SentencesToIDs(sentences [][]string, lowercase bool) ([][]int, *Vocab, error) {
	vocab := NewVocab(sentences, lowercase)
	ids, err := vocab.Map(sentences)
	if err != nil {
		return nil, nil, err
	}
	return ids, vocab, nil
}

// An UnknownTokenError is produced when a token is mapped
// through a vocabulary that does not contain it.
type UnknownTokenError struct {
	Token    string
	Sentence int
}

func (u *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q in sentence %d", u.Token, u.Sentence)
}
