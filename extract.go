package prodscrape

import "strings"

// containerCloseTag is the fixed block-level tag kind whose closing tag ends
// an open product container, regardless of which tag opened it.
const containerCloseTag = "div"

// ExtractionState is the working state of the streaming extractor. The zero
// value is ready to use. State is a value threaded through Step so synthetic
// event sequences can be replayed in tests without setup.
type ExtractionState struct {
	// Role is the field currently being buffered, if any.
	Role Role

	// InContainer reports whether a product container is open.
	InContainer bool

	// Buffer accumulates text for the active role. Only meaningful while
	// Role != RoleNone; cleared whenever a role is entered.
	Buffer string

	// Draft is the in-progress record for the open container.
	Draft Product

	// Results holds finalized records in document order, append-only.
	Results []*Product
}

// Step applies one markup event and returns the resulting state.
//
// Open events may enter a container and/or a field role. Text accumulates
// while a role is active. Any closing tag finalizes the active role, not
// just the tag that opened it; a closing container tag commits the draft
// when it has a recognized title. Unexpected nesting never errors: regions
// that never close simply leave partial drafts behind.
func (s ExtractionState) Step(ev MarkupEvent) ExtractionState {
	switch ev.Type {
	case EventOpen:
		if !s.InContainer && IsContainer(ev.Attrs) {
			s.InContainer = true
			s.Draft = Product{Name: NA, Price: NA, Rating: NA}
		}
		if s.InContainer {
			if role := ClassifyField(ev.Tag, ev.Attrs); role != RoleNone {
				s.Role = role
				s.Buffer = ""
			}
		}

	case EventText:
		if s.Role != RoleNone {
			s.Buffer += ev.Text
		}

	case EventClose:
		s = s.finishRole()
		if s.InContainer && ev.Tag == containerCloseTag {
			if s.Draft.Name != NA {
				rec := s.Draft
				s.Results = append(s.Results, &rec)
			}
			s.InContainer = false
			s.Draft = Product{}
		}
	}
	return s
}

// finishRole consumes the buffer for the active role exactly once. An empty
// (or whitespace-only) buffer leaves the draft field at its sentinel.
func (s ExtractionState) finishRole() ExtractionState {
	if s.Role == RoleNone {
		return s
	}

	if text := strings.TrimSpace(s.Buffer); text != "" {
		switch s.Role {
		case RoleTitle:
			s.Draft.Name = truncateName(text)
		case RolePrice:
			s.Draft.Price = NormalizePrice(text)
		case RoleRating:
			s.Draft.Rating = NormalizeRating(text)
		}
	}

	s.Role = RoleNone
	s.Buffer = ""
	return s
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLength {
		return name
	}
	return string(runes[:MaxNameLength])
}

// ProcessEvents folds an event stream into finalized records. Single pass,
// no backtracking; a draft still open at stream end is silently dropped.
func ProcessEvents(events []MarkupEvent) []*Product {
	var s ExtractionState
	for _, ev := range events {
		s = s.Step(ev)
	}
	return s.Results
}

// Extractor runs the extraction state machine over one page's markup.
type Extractor struct {
	Tokenizer Tokenizer
}

// NewExtractor creates an Extractor backed by the given tokenizer.
func NewExtractor(tokenizer Tokenizer) *Extractor {
	return &Extractor{Tokenizer: tokenizer}
}

// Extract tokenizes markup, runs the state machine, truncates the results to
// the first maxRecords entries in document order, and stamps sourceURL on
// every returned record.
func (e *Extractor) Extract(markup string, maxRecords int, sourceURL string) ([]*Product, error) {
	if maxRecords <= 0 {
		return nil, Errorf(EINVALID, "max records must be positive")
	}

	events, err := e.Tokenizer.Tokenize(markup)
	if err != nil {
		return nil, err
	}

	products := ProcessEvents(events)
	if len(products) > maxRecords {
		products = products[:maxRecords]
	}
	for _, p := range products {
		p.SourceURL = sourceURL
	}
	return products, nil
}
