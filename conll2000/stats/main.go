package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/JacopoMangiavacchi/nlp-architect/conll2000"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
	"github.com/unixpickle/wordembed"
	_ "github.com/unixpickle/wordembed/glove"
)

func main() {
	var dataPath string
	var embeddingPath string
	flag.StringVar(&dataPath, "data", "conll2000_data", "corpus cache directory")
	flag.StringVar(&embeddingPath, "embedding", "", "GloVe embedding path")
	flag.Parse()

	dataset := conll2000.New(dataPath)
	train, test, err := dataset.Load()
	if err != nil {
		essentials.Die(err)
	}

	fmt.Printf("Train: %d sentences, %d tokens.\n", len(train),
		countTokens(train))
	fmt.Printf("Test: %d sentences, %d tokens.\n", len(test),
		countTokens(test))

	all := append(append([]conll2000.Sentence{}, train...), test...)
	if len(all) == 0 {
		essentials.Die("empty corpus")
	}
	tokens := make([][]string, len(all))
	chunks := make([][]string, len(all))
	for i, s := range all {
		tokens[i] = s.Tokens
		chunks[i] = s.Chunks
	}
	tokenVocab := conll2000.NewVocab(tokens, false)
	tagVocab := conll2000.NewVocab(chunks, false)
	fmt.Printf("Vocabulary: %d tokens, %d chunk tags.\n", tokenVocab.Len(),
		tagVocab.Len())

	tags := make([]string, tagVocab.Len())
	for i := range tags {
		tags[i], _ = tagVocab.Word(i)
	}
	fmt.Println("Tags by frequency:", strings.Join(tags, " "))

	minLen, maxLen := all[0].Len(), all[0].Len()
	var total int
	for _, s := range all {
		if s.Len() < minLen {
			minLen = s.Len()
		}
		if s.Len() > maxLen {
			maxLen = s.Len()
		}
		total += s.Len()
	}
	fmt.Printf("Sentence length: min %d, mean %.02f, max %d.\n",
		minLen, float64(total)/float64(len(all)), maxLen)

	if embeddingPath == "" {
		return
	}

	log.Println("Loading embedding...")
	var embedding wordembed.Embedding
	if err := serializer.LoadAny(embeddingPath, &embedding); err != nil {
		essentials.Die(err)
	}

	var covered int
	for id := 0; id < tokenVocab.Len(); id++ {
		word, _ := tokenVocab.Word(id)
		if embedding.Contains(strings.ToLower(word)) {
			covered++
		}
	}
	fmt.Printf("Embedding covers %d/%d tokens (%.02f%%).\n", covered,
		tokenVocab.Len(), 100*float64(covered)/float64(tokenVocab.Len()))
}

func countTokens(sents []conll2000.Sentence) int {
	var n int
	for _, s := range sents {
		n += s.Len()
	}
	return n
}
