package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/realgold/showcase/internal/carousel"
	"github.com/realgold/showcase/internal/database"
	"github.com/realgold/showcase/internal/database/repository"
)

// ImpressionService logs which slide settled, when, and why.
type ImpressionService struct {
	Impressions *repository.ImpressionRepo
}

// Record stores one settle. The slide id matches the one SeedDefaults
// assigns, so impressions of a file-loaded deck still group by position and tab.
// A zero at means now.
func (s *ImpressionService) Record(ctx context.Context, index int, tabLabel string, trigger carousel.Trigger, at time.Time) error {
	if s.Impressions == nil {
		return fmt.Errorf("impressions: store not configured")
	}
	if at.IsZero() {
		at = database.Now()
	}
	im := repository.Impression{
		ID:         uuid.NewString(),
		SlideID:    repository.SlideID(index, tabLabel),
		SlideIndex: index,
		TabLabel:   tabLabel,
		Trigger:    string(trigger),
		SettledAt:  at.UTC().Truncate(time.Millisecond),
	}
	if err := s.Impressions.Insert(ctx, im); err != nil {
		return fmt.Errorf("record impression for %s: %w", tabLabel, err)
	}
	return nil
}

// Recent returns the newest impressions first.
func (s *ImpressionService) Recent(ctx context.Context, limit int) ([]repository.Impression, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Impressions.Recent(ctx, limit)
}

func (s *ImpressionService) Summary(ctx context.Context) ([]repository.ImpressionSummary, error) {
	return s.Impressions.Summary(ctx)
}
