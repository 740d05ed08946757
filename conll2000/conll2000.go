// Package conll2000 loads the CONLL-2000 chunking corpus and
// packages it into padded feature arrays for sequence taggers.
package conll2000

import (
	"errors"

	"github.com/unixpickle/essentials"
	"gorgonia.org/tensor"
)

// DefaultURL is the location the corpus is downloaded from when
// no other URL is configured.
const DefaultURL = "https://raw.githubusercontent.com/teropa/nlp/" +
	"master/resources/corpora/conll2000/"

const (
	trainFile = "train.txt"
	testFile  = "test.txt"
	trainSize = 2842164
	testSize  = 639396
)

// A Dataset loads the CONLL-2000 chunking corpus and turns it
// into padded mini-batch iterators.
//
// Create Datasets with New and adjust the exported fields before
// calling Iterators.
type Dataset struct {
	// Path is the directory where corpus files are cached.
	Path string

	// URL is the base URL the corpus files are fetched from.
	URL string

	// SentenceLength is the fixed number of steps every
	// sentence is padded or truncated to.
	SentenceLength int

	// WordLength is the fixed character count per word in the
	// character feature stream.
	WordLength int

	// BatchSize is the mini-batch size of the iterators.
	BatchSize int

	// UsePOS adds a part-of-speech feature stream.
	UsePOS bool

	// UseChars adds a character feature stream.
	UseChars bool

	// Vectors, if non-nil, replaces the token id stream with
	// word vectors looked up in this embedding.
	Vectors Embedding

	// Fetcher downloads corpus files. If it is nil, an
	// HTTPFetcher caching under Path is used.
	Fetcher Fetcher

	// KeepShort keeps single-token sentences, which are
	// dropped by default.
	KeepShort bool

	tokenVocab *Vocab
	tagVocab   *Vocab
	posVocab   *Vocab
	charVocab  *CharVocab
	numClasses int
}

// New creates a Dataset with the official corpus location and
// the standard dimensions: sentences padded to 50 steps, words
// to 20 characters, batches of 32 sentences.
func New(path string) *Dataset {
	return &Dataset{
		Path:           path,
		URL:            DefaultURL,
		SentenceLength: 50,
		WordLength:     20,
		BatchSize:      32,
	}
}

// Load fetches the corpus files if they are not cached yet and
// parses them, returning the train and test sentences.
func (d *Dataset) Load() (train, test []Sentence, err error) {
	defer essentials.AddCtxTo("load conll2000", &err)

	fetcher := d.Fetcher
	if fetcher == nil {
		fetcher = &HTTPFetcher{Dir: d.Path}
	}
	trainPath, err := fetcher.Fetch(d.URL, trainFile, trainSize)
	if err != nil {
		return nil, nil, err
	}
	testPath, err := fetcher.Fetch(d.URL, testFile, testSize)
	if err != nil {
		return nil, nil, err
	}
	if train, err = ReadCorpus(trainPath, d.KeepShort); err != nil {
		return nil, nil, err
	}
	if test, err = ReadCorpus(testPath, d.KeepShort); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// Iterators loads the corpus and packages it into train and test
// mini-batch iterators.
//
// Vocabularies are built over the train and test sets together,
// so ids agree across the two iterators. The vocabularies are
// available from the accessor methods afterwards.
func (d *Dataset) Iterators() (train, test *Iterator, err error) {
	defer essentials.AddCtxTo("build conll2000 iterators", &err)

	trainSents, testSents, err := d.Load()
	if err != nil {
		return nil, nil, err
	}
	numTrain := len(trainSents)
	all := append(append([]Sentence{}, trainSents...), testSents...)
	if len(all) == 0 {
		return nil, nil, errors.New("empty corpus")
	}

	tokens := make([][]string, len(all))
	chunks := make([][]string, len(all))
	for i, s := range all {
		tokens[i] = s.Tokens
		chunks[i] = s.Chunks
	}

	xIDs, tokenVocab, err := SentencesToIDs(tokens, false)
	if err != nil {
		return nil, nil, err
	}
	yIDs, tagVocab, err := SentencesToIDs(chunks, false)
	if err != nil {
		return nil, nil, err
	}
	x, y, err := AlignTagged(xIDs, yIDs, d.SentenceLength, nil)
	if err != nil {
		return nil, nil, err
	}
	d.tokenVocab = tokenVocab
	d.tagVocab = tagVocab
	d.numClasses = tagVocab.Len() + 1

	var trainStreams, testStreams []*Stream
	addStream := func(x, y *tensor.Dense, steps, numClasses int) {
		n := x.Shape()[0]
		var yTrain, yTest *tensor.Dense
		if y != nil {
			yTrain = sliceRows(y, 0, numTrain)
			yTest = sliceRows(y, numTrain, n)
		}
		trainStreams = append(trainStreams, &Stream{
			Steps:      steps,
			X:          sliceRows(x, 0, numTrain),
			Y:          yTrain,
			NumClasses: numClasses,
		})
		testStreams = append(testStreams, &Stream{
			Steps:      steps,
			X:          sliceRows(x, numTrain, n),
			Y:          yTest,
			NumClasses: numClasses,
		})
	}

	if d.Vectors != nil {
		addStream(wordVectors(x, tokenVocab, d.Vectors), y,
			d.SentenceLength, d.numClasses)
	} else {
		addStream(x, y, d.SentenceLength, d.numClasses)
	}

	if d.UsePOS {
		pos := make([][]string, len(all))
		for i, s := range all {
			pos[i] = s.POS
		}
		// The POS vocabulary is case folded, unlike the token
		// vocabulary.
		posIDs, posVocab, err := SentencesToIDs(pos, true)
		if err != nil {
			return nil, nil, err
		}
		xPos, _, err := AlignTagged(posIDs, yIDs, d.SentenceLength, nil)
		if err != nil {
			return nil, nil, err
		}
		d.posVocab = posVocab
		addStream(xPos, nil, d.SentenceLength, 0)
	}

	if d.UseChars {
		grid, charVocab := BuildCharFeatures(tokens, d.SentenceLength,
			d.WordLength)
		if err := grid.Reshape(len(all),
			d.SentenceLength*d.WordLength); err != nil {
			return nil, nil, err
		}
		d.charVocab = charVocab
		addStream(grid, nil, d.SentenceLength*d.WordLength, 0)
	}

	if train, err = NewIterator(d.BatchSize, trainStreams...); err != nil {
		return nil, nil, err
	}
	if test, err = NewIterator(d.BatchSize, testStreams...); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// TokenVocab returns the token vocabulary built by Iterators.
func (d *Dataset) TokenVocab() *Vocab {
	return d.tokenVocab
}

// TagVocab returns the chunk tag vocabulary built by Iterators.
func (d *Dataset) TagVocab() *Vocab {
	return d.tagVocab
}

// POSVocab returns the POS vocabulary, or nil if UsePOS was not
// set.
func (d *Dataset) POSVocab() *Vocab {
	return d.posVocab
}

// CharVocab returns the character vocabulary, or nil if UseChars
// was not set.
func (d *Dataset) CharVocab() *CharVocab {
	return d.charVocab
}

// NumClasses returns the size of the label id space, which is
// the number of chunk tags plus one for the padding id.
func (d *Dataset) NumClasses() int {
	return d.numClasses
}
