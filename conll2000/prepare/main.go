package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/JacopoMangiavacchi/nlp-architect/conll2000"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func main() {
	var dataPath string
	var outPath string
	var sentenceLen int
	var wordLen int
	var batchSize int
	var usePOS bool
	var useChars bool
	flag.StringVar(&dataPath, "data", "conll2000_data", "corpus cache directory")
	flag.StringVar(&outPath, "out", "vocab_out", "output file")
	flag.IntVar(&sentenceLen, "sentence-length", 50, "padded sentence length")
	flag.IntVar(&wordLen, "word-length", 20, "padded word length")
	flag.IntVar(&batchSize, "batch", 32, "batch size")
	flag.BoolVar(&usePOS, "pos", false, "build POS features")
	flag.BoolVar(&useChars, "chars", false, "build character features")
	flag.Parse()

	dataset := conll2000.New(dataPath)
	dataset.SentenceLength = sentenceLen
	dataset.WordLength = wordLen
	dataset.BatchSize = batchSize
	dataset.UsePOS = usePOS
	dataset.UseChars = useChars

	log.Println("Building iterators...")
	train, test, err := dataset.Iterators()
	if err != nil {
		essentials.Die(err)
	}

	log.Println("Saving vocabularies...")
	err = serializer.SaveAny(outPath, dataset.TokenVocab(), dataset.TagVocab())
	if err != nil {
		essentials.Die(err)
	}

	fmt.Printf("Packaged %d train and %d test sentences (%d+%d batches).\n",
		train.Len(), test.Len(), train.Batches(), test.Batches())
	fmt.Printf("Vocabulary: %d tokens, %d chunk tags (%d classes).\n",
		dataset.TokenVocab().Len(), dataset.TagVocab().Len(),
		dataset.NumClasses())
}
