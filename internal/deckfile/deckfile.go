// Package deckfile reads and writes slide decks as TOML.
//
// A deck file is a list of [[slide]] tables, each with optional [[slide.stat]]
// entries:
//
//	[[slide]]
//	tab = "BUY"
//	eyebrow = "BUYER'S GUIDE"
//	headline = "FIND YOUR\nPERFECT HOME"
//	body = "Curated listings, expert guidance, and zero pressure."
//	cta = "BROWSE LISTINGS"
//	cover = "https://images.example.com/cover.jpg"
//	float = "https://images.example.com/float.jpg"
//
//	  [[slide.stat]]
//	  value = "320+"
//	  label = "Active Listings"
package deckfile

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/realgold/showcase/internal/carousel"
)

type deckFile struct {
	Slides []slideEntry `toml:"slide"`
}

type slideEntry struct {
	Tab      string      `toml:"tab"`
	Eyebrow  string      `toml:"eyebrow"`
	Headline string      `toml:"headline"`
	Body     string      `toml:"body"`
	CTA      string      `toml:"cta"`
	Cover    string      `toml:"cover"`
	Float    string      `toml:"float"`
	Stats    []statEntry `toml:"stat"`
}

type statEntry struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// Load reads a deck file and validates it into a Deck.
func Load(path string) (*carousel.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()
	slides, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return carousel.NewDeck(slides)
}

// Parse decodes TOML into slides. Unknown keys are rejected so typos do not
// silently drop copy. Errors are *carousel.ConfigurationError.
func Parse(r io.Reader) ([]carousel.Slide, error) {
	var df deckFile
	md, err := toml.NewDecoder(r).Decode(&df)
	if err != nil {
		return nil, &carousel.ConfigurationError{Slide: -1, Err: fmt.Errorf("decode deck: %w", err)}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, &carousel.ConfigurationError{Slide: -1, Reason: "unknown keys: " + strings.Join(keys, ", ")}
	}
	out := make([]carousel.Slide, len(df.Slides))
	for i, e := range df.Slides {
		out[i] = carousel.Slide{
			TabLabel:      e.Tab,
			Eyebrow:       e.Eyebrow,
			Headline:      e.Headline,
			Body:          e.Body,
			CTALabel:      e.CTA,
			CoverImageRef: e.Cover,
			FloatImageRef: e.Float,
		}
		for _, st := range e.Stats {
			out[i].Stats = append(out[i].Stats, carousel.Stat{Value: st.Value, Label: st.Label})
		}
	}
	return out, nil
}

// Write encodes slides in the deck file format.
func Write(w io.Writer, slides []carousel.Slide) error {
	df := deckFile{Slides: make([]slideEntry, len(slides))}
	for i, s := range slides {
		e := slideEntry{
			Tab:      s.TabLabel,
			Eyebrow:  s.Eyebrow,
			Headline: s.Headline,
			Body:     s.Body,
			CTA:      s.CTALabel,
			Cover:    s.CoverImageRef,
			Float:    s.FloatImageRef,
		}
		for _, st := range s.Stats {
			e.Stats = append(e.Stats, statEntry{Value: st.Value, Label: st.Label})
		}
		df.Slides[i] = e
	}
	if err := toml.NewEncoder(w).Encode(df); err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	return nil
}
