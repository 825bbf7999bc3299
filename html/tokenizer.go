// Package html provides a streaming markup tokenizer built on
// golang.org/x/net/html. It converts raw page markup into the event stream
// consumed by the extraction state machine.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Ensure Tokenizer implements prodscrape.Tokenizer at compile time.
var _ prodscrape.Tokenizer = (*Tokenizer)(nil)

// Tokenizer produces MarkupEvents in document order. Malformed markup does
// not fail: the underlying tokenizer recovers, and regions that never close
// degrade gracefully downstream.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize walks the markup and returns open, close, and text events.
// Tag and attribute names are lower-cased, text is entity-decoded, and
// self-closing tags emit an open event immediately followed by a close.
func (t *Tokenizer) Tokenize(markup string) ([]prodscrape.MarkupEvent, error) {
	z := html.NewTokenizer(strings.NewReader(markup))

	var events []prodscrape.MarkupEvent
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, prodscrape.Errorf(prodscrape.EINVALID, "failed to tokenize markup: %v", err)
			}
			return events, nil

		case html.StartTagToken:
			events = append(events, openEvent(z.Token()))

		case html.SelfClosingTagToken:
			tok := z.Token()
			events = append(events, openEvent(tok),
				prodscrape.MarkupEvent{Type: prodscrape.EventClose, Tag: tok.Data})

		case html.EndTagToken:
			events = append(events,
				prodscrape.MarkupEvent{Type: prodscrape.EventClose, Tag: z.Token().Data})

		case html.TextToken:
			events = append(events,
				prodscrape.MarkupEvent{Type: prodscrape.EventText, Text: z.Token().Data})
		}
	}
}

func openEvent(tok html.Token) prodscrape.MarkupEvent {
	attrs := make(map[string]string, len(tok.Attr))
	for _, a := range tok.Attr {
		attrs[a.Key] = a.Val
	}
	return prodscrape.MarkupEvent{Type: prodscrape.EventOpen, Tag: tok.Data, Attrs: attrs}
}
