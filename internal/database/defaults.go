package database

import (
	"context"
	"database/sql"

	"github.com/realgold/showcase/internal/database/repository"
)

// DefaultSlides is the stock BUY / SELL / RENT deck.
func DefaultSlides() []repository.Slide {
	slides := []repository.Slide{
		{
			TabLabel: "BUY",
			Eyebrow:  "BUYER'S GUIDE",
			Headline: "FIND YOUR\nPERFECT HOME",
			Body:     "Curated listings, expert guidance, and zero pressure. We match you with the right property at the right price, every time.",
			Stats: []repository.Stat{
				{Value: "320+", Label: "Active Listings"},
				{Value: "98%", Label: "Client Satisfaction"},
			},
			CTALabel:      "BROWSE LISTINGS",
			CoverImageRef: "https://images.unsplash.com/photo-1505692952047-1a78307da8f2?auto=format&fit=crop&w=1800&q=85",
			FloatImageRef: "https://images.unsplash.com/photo-1484154218962-a197022b5858?auto=format&fit=crop&w=700&q=85",
		},
		{
			TabLabel: "SELL",
			Eyebrow:  "SELLER'S EDGE",
			Headline: "SELL SMARTER,\nEARN MORE",
			Body:     "Sharp pricing strategy, professional presentation, and maximum market exposure, from day one to closing day.",
			Stats: []repository.Stat{
				{Value: "14", Label: "Avg. Days on Market"},
				{Value: "103%", Label: "List-to-Sale Ratio"},
			},
			CTALabel:      "GET A VALUATION",
			CoverImageRef: "https://images.unsplash.com/photo-1507089947368-19c1da9775ae?auto=format&fit=crop&w=1800&q=85",
			FloatImageRef: "https://images.unsplash.com/photo-1502005229762-cf1b2da7c5d6?auto=format&fit=crop&w=700&q=85",
		},
		{
			TabLabel: "RENT",
			Eyebrow:  "RENTAL MANAGEMENT",
			Headline: "PREMIUM RENTALS,\nHASSLE-FREE",
			Body:     "From tenant screening to lease signing, every step handled with care, so landlords relax and renters feel at home.",
			Stats: []repository.Stat{
				{Value: "500+", Label: "Managed Units"},
				{Value: "4.9★", Label: "Tenant Rating"},
			},
			CTALabel:      "VIEW RENTALS",
			CoverImageRef: "https://images.unsplash.com/photo-1445019980597-93fa8acb246c?auto=format&fit=crop&w=1800&q=85",
			FloatImageRef: "https://images.unsplash.com/photo-1523217582562-09d0def993a6?auto=format&fit=crop&w=700&q=85",
		},
	}
	for i := range slides {
		slides[i].Position = i
		slides[i].ID = repository.SlideID(i, slides[i].TabLabel)
	}
	return slides
}

// SeedDefaults installs the stock deck into an empty database.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewSlideRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for _, s := range DefaultSlides() {
			if err := repo.UpsertTx(ctx, tx, s); err != nil {
				return err
			}
		}
		return nil
	})
}
