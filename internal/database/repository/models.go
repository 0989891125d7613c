package repository

import "time"

// Slide represents a slides row with its stats.
type Slide struct {
	ID            string
	Position      int
	TabLabel      string
	Eyebrow       string
	Headline      string
	Body          string
	CTALabel      string
	CoverImageRef string
	FloatImageRef string
	Stats         []Stat
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Stat represents a slide_stats row.
type Stat struct {
	Value string
	Label string
}

// Impression records one settled slide.
type Impression struct {
	ID         string
	SlideID    string
	SlideIndex int
	TabLabel   string
	Trigger    string
	SettledAt  time.Time
}

// ImpressionSummary aggregates impressions per slide.
type ImpressionSummary struct {
	SlideID     string
	TabLabel    string
	Count       int
	LastSettled time.Time
}
