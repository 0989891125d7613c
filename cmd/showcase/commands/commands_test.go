package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/realgold/showcase/internal/carousel"
	"github.com/realgold/showcase/internal/config"
	"github.com/realgold/showcase/internal/database/repository"
)

func testDeck(t *testing.T) *carousel.Deck {
	t.Helper()
	deck, err := carousel.NewDeck([]carousel.Slide{
		{TabLabel: "BUY", Eyebrow: "BUYER'S GUIDE", Headline: "FIND YOUR\nPERFECT HOME", CTALabel: "BROWSE"},
		{TabLabel: "SELL", Eyebrow: "SELLER'S EDGE", Headline: "SELL SMARTER,\nEARN MORE", CTALabel: "VALUE"},
		{TabLabel: "RENT", Eyebrow: "RENTALS", Headline: "PREMIUM RENTALS,\nHASSLE-FREE", CTALabel: "VIEW"},
	})
	require.NoError(t, err)
	return deck
}

var carouselCfg = config.CarouselConfig{AutoDelay: carousel.DefaultAutoDelay, FrameRate: 30}

func TestRenderFrameIsDeterministic(t *testing.T) {
	deck := testDeck(t)
	a, err := renderFrame(deck, carouselCfg, 1500*time.Millisecond, 1, 80)
	require.NoError(t, err)
	b, err := renderFrame(deck, carouselCfg, 1500*time.Millisecond, 1, 80)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRenderFrameSettlesRequestedSlide(t *testing.T) {
	out, err := renderFrame(testDeck(t), carouselCfg, 3*time.Second, 2, 80)
	require.NoError(t, err)
	require.Contains(t, out, "03 ── 02")
	require.Contains(t, out, "‹ PREV")
	require.Contains(t, out, "next ›")
}

func TestRenderFrameAutoAdvances(t *testing.T) {
	out, err := renderFrame(testDeck(t), carouselCfg, 9*time.Second, -1, 80)
	require.NoError(t, err)
	require.Contains(t, out, "02 ── 02")
}

func TestRenderFrameRejectsBadIndex(t *testing.T) {
	_, err := renderFrame(testDeck(t), carouselCfg, 0, 7, 80)
	var idx *carousel.InvalidIndexError
	require.True(t, errors.As(err, &idx))
}

func TestImpressionTable(t *testing.T) {
	out := impressionTable([]repository.Impression{
		{SlideIndex: 1, TabLabel: "SELL", Trigger: "auto", SettledAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
	})
	require.True(t, strings.Contains(out, "SELL"))
	require.Contains(t, out, "auto")
	require.Contains(t, out, "TRIGGER")
}
