package mock

import "github.com/kommathotimariyamma111-beep/prodscrape"

var _ prodscrape.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of prodscrape.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(markup string) ([]prodscrape.MarkupEvent, error)
}

func (t *Tokenizer) Tokenize(markup string) ([]prodscrape.MarkupEvent, error) {
	return t.TokenizeFn(markup)
}
