package service

import (
	"context"
	"fmt"

	"github.com/realgold/showcase/internal/carousel"
	"github.com/realgold/showcase/internal/database/repository"
	"github.com/realgold/showcase/internal/deckfile"
)

// DeckService resolves the deck the carousel plays.
type DeckService struct {
	Slides   *repository.SlideRepo
	DeckPath string // optional TOML deck; wins over the store when set
}

// Load returns the deck from DeckPath when configured, otherwise from the
// slide store. Either way the result went through carousel.NewDeck.
func (s *DeckService) Load(ctx context.Context) (*carousel.Deck, error) {
	if s.DeckPath != "" {
		return deckfile.Load(s.DeckPath)
	}
	if s.Slides == nil {
		return nil, fmt.Errorf("deck: no deck file and no slide store configured")
	}
	rows, err := s.Slides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	return carousel.NewDeck(ToSlides(rows))
}

// ToSlides maps stored rows onto carousel slides, keeping order.
func ToSlides(rows []repository.Slide) []carousel.Slide {
	out := make([]carousel.Slide, 0, len(rows))
	for _, r := range rows {
		s := carousel.Slide{
			TabLabel:      r.TabLabel,
			Eyebrow:       r.Eyebrow,
			Headline:      r.Headline,
			Body:          r.Body,
			CTALabel:      r.CTALabel,
			CoverImageRef: r.CoverImageRef,
			FloatImageRef: r.FloatImageRef,
		}
		for _, st := range r.Stats {
			s.Stats = append(s.Stats, carousel.Stat{Value: st.Value, Label: st.Label})
		}
		out = append(out, s)
	}
	return out
}
