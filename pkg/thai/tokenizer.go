// Package thai provides the Thai-specific collaborators of the learning
// pipeline: word segmentation and romanization.
package thai

import (
	"github.com/veer66/mapkha"
)

// Tokenizer segments unspaced Thai text using the mapkha word-cut
// dictionary (longest-matching segmentation).
type Tokenizer struct {
	wordcut *mapkha.Wordcut
}

// NewTokenizer loads mapkha's bundled dictionary.
func NewTokenizer() (*Tokenizer, error) {
	dict, err := mapkha.LoadDefaultDict()
	if err != nil {
		return nil, err
	}
	return &Tokenizer{wordcut: mapkha.NewWordcut(dict)}, nil
}

// NewTokenizerWithDict loads a word list from path, one word per line.
func NewTokenizerWithDict(path string) (*Tokenizer, error) {
	dict, err := mapkha.LoadDict(path)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{wordcut: mapkha.NewWordcut(dict)}, nil
}

// Segment returns the surface tokens of text in order.
func (t *Tokenizer) Segment(text string) []string {
	return t.wordcut.Segment(text)
}
