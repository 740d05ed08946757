package conll2000

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unixpickle/essentials"
)

// A Sentence is one corpus sentence as parallel columns of
// tokens, part-of-speech tags, and chunk tags.
type Sentence struct {
	Tokens []string
	POS    []string
	Chunks []string
}

// Len returns the number of tokens in the sentence.
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// A ParseError describes a corpus line that does not contain
// exactly one token, one POS tag, and one chunk tag.
type ParseError struct {
	Line   int
	Fields int
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("line %d: expected 3 fields but found %d", p.Line, p.Fields)
}

// ReadCorpus reads the sentences from a corpus file.
//
// Sentences are separated by blank lines. Unless keepShort is
// set, blocks with a single line are discarded.
func ReadCorpus(path string, keepShort bool) (sents []Sentence, err error) {
	defer essentials.AddCtxTo("read corpus", &err)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCorpus(f, keepShort)
}

// ParseCorpus is like ReadCorpus, but it reads the corpus from
// an io.Reader.
func ParseCorpus(r io.Reader, keepShort bool) ([]Sentence, error) {
	var sents []Sentence
	var block Sentence
	flush := func() {
		if block.Len() > 1 || (keepShort && block.Len() > 0) {
			sents = append(sents, block)
		}
		block = Sentence{}
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			flush()
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, &ParseError{Line: line, Fields: len(fields)}
		}
		block.Tokens = append(block.Tokens, fields[0])
		block.POS = append(block.POS, fields[1])
		block.Chunks = append(block.Chunks, fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return sents, nil
}
