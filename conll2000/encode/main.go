package main

import (
	"flag"
	"fmt"

	"github.com/JacopoMangiavacchi/nlp-architect/conll2000"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
	"github.com/unixpickle/wordembed"
)

func main() {
	var vocabPath string
	var phrase string
	flag.StringVar(&vocabPath, "vocab", "../prepare/vocab_out", "vocabulary file")
	flag.StringVar(&phrase, "phrase", "", "phrase to encode")
	flag.Parse()

	if phrase == "" {
		essentials.Die("Required flag: -phrase. See -help.")
	}

	var tokenVocab, tagVocab *conll2000.Vocab
	if err := serializer.LoadAny(vocabPath, &tokenVocab, &tagVocab); err != nil {
		essentials.Die(err)
	}

	tokens := (&wordembed.Tokenizer{}).Tokenize(phrase)
	for _, token := range tokens {
		if id, ok := tokenVocab.ID(token); ok {
			fmt.Println(token, id+conll2000.TokenOffset)
		} else {
			fmt.Println(token, "<unknown>")
		}
	}
	fmt.Printf("Encoded against %d tokens and %d chunk tags.\n",
		tokenVocab.Len(), tagVocab.Len())
}
