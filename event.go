package prodscrape

// EventType identifies the kind of a MarkupEvent.
type EventType int

// Markup event kinds, in the order a tokenizer produces them.
const (
	EventOpen EventType = iota
	EventClose
	EventText
)

// MarkupEvent is a single markup tokenizer event in document order.
type MarkupEvent struct {
	Type EventType

	// Tag is the lower-cased tag name. Set for Open and Close events.
	Tag string

	// Attrs maps lower-cased attribute names to values. Set for Open events.
	Attrs map[string]string

	// Text is the decoded text content. Set for Text events.
	Text string
}

// Tokenizer converts raw markup into a stream of events in document order.
// Implementations are expected to degrade gracefully on malformed markup
// rather than fail.
type Tokenizer interface {
	Tokenize(markup string) ([]MarkupEvent, error)
}
