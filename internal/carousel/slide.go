package carousel

import (
	"strings"
)

// Stat is one value/label pair shown under a slide's body copy.
type Stat struct {
	Value string
	Label string
}

// Slide bundles the copy and the two image references for one carousel entry.
type Slide struct {
	TabLabel      string
	Eyebrow       string
	Headline      string // lines separated by '\n'
	Body          string
	Stats         []Stat
	CTALabel      string
	CoverImageRef string
	FloatImageRef string
}

// HeadlineLines splits the headline on embedded line breaks.
func (s Slide) HeadlineLines() []string {
	return strings.Split(s.Headline, "\n")
}

// ContentChildren is the number of independently animated children in the
// slide's content block: eyebrow, one per headline line, body, stats, CTA.
func (s Slide) ContentChildren() int {
	return len(s.HeadlineLines()) + 4
}

func (s Slide) clone() Slide {
	out := s
	if s.Stats != nil {
		out.Stats = append([]Stat(nil), s.Stats...)
	}
	return out
}

// Deck is the ordered, immutable slide registry.
type Deck struct {
	slides []Slide
}

// NewDeck validates and copies slides. An empty deck, or a slide without a
// tab label or headline, yields a *ConfigurationError and no Deck.
func NewDeck(slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, &ConfigurationError{Slide: -1, Reason: "deck has no slides"}
	}
	out := make([]Slide, len(slides))
	for i, s := range slides {
		if strings.TrimSpace(s.TabLabel) == "" {
			return nil, &ConfigurationError{Slide: i, Field: "tab label", Reason: "is empty"}
		}
		if strings.TrimSpace(s.Headline) == "" {
			return nil, &ConfigurationError{Slide: i, Field: "headline", Reason: "is empty"}
		}
		out[i] = s.clone()
	}
	return &Deck{slides: out}, nil
}

// Len returns the slide count; always at least one.
func (d *Deck) Len() int { return len(d.slides) }

// At returns a copy of the slide at i.
func (d *Deck) At(i int) (Slide, error) {
	if i < 0 || i >= len(d.slides) {
		return Slide{}, &InvalidIndexError{Index: i, Count: len(d.slides)}
	}
	return d.slides[i].clone(), nil
}

// Slides returns a copy of the whole deck in order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}

func (d *Deck) TabLabels() []string {
	out := make([]string, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.TabLabel
	}
	return out
}

func (d *Deck) inRange(i int) bool { return i >= 0 && i < len(d.slides) }
