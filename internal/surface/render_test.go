package surface

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/realgold/showcase/internal/carousel"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testDeck(t *testing.T) *carousel.Deck {
	t.Helper()
	deck, err := carousel.NewDeck([]carousel.Slide{
		{TabLabel: "BUY", Eyebrow: "BUYER'S GUIDE", Headline: "FIND YOUR\nPERFECT HOME", Body: "Curated listings.", CTALabel: "BROWSE LISTINGS", CoverImageRef: "buy.jpg", FloatImageRef: "buy-float.jpg",
			Stats: []carousel.Stat{{Value: "320+", Label: "Active Listings"}}},
		{TabLabel: "SELL", Eyebrow: "SELLER'S EDGE", Headline: "SELL SMARTER,\nEARN MORE", Body: "Sharp pricing.", CTALabel: "GET A VALUATION", CoverImageRef: "sell.jpg", FloatImageRef: "sell-float.jpg"},
		{TabLabel: "RENT", Eyebrow: "RENTAL MANAGEMENT", Headline: "PREMIUM RENTALS,\nHASSLE-FREE", Body: "Handled with care.", CTALabel: "VIEW RENTALS", CoverImageRef: "rent.jpg", FloatImageRef: "rent-float.jpg"},
	})
	require.NoError(t, err)
	return deck
}

func settledAt(t *testing.T, deck *carousel.Deck, target int) (*carousel.Orchestrator, *carousel.ManualClock) {
	t.Helper()
	clock := carousel.NewManualClock(epoch)
	o, err := carousel.New(deck, carousel.WithClock(clock))
	require.NoError(t, err)
	if target != 0 {
		require.NoError(t, o.RequestTransition(target))
		clock.Advance(o.TransitionDuration(0, target))
		o.Handle(carousel.FrameTick{At: clock.Now()})
	}
	require.Equal(t, target, o.State().Active)
	return o, clock
}

func TestCounterLabels(t *testing.T) {
	cur, total := Counter(0, 3)
	require.Equal(t, "01", cur)
	require.Equal(t, "02", total)

	cur, total = Counter(1, 3)
	require.Equal(t, "02", cur)
	require.Equal(t, "02", total)

	cur, total = Counter(9, 12)
	require.Equal(t, "10", cur)
	require.Equal(t, "11", total)
}

func TestControlsDisabledAtEdges(t *testing.T) {
	prev, next := Controls(0, 3)
	require.True(t, prev)
	require.False(t, next)

	prev, next = Controls(1, 3)
	require.False(t, prev)
	require.False(t, next)

	prev, next = Controls(2, 3)
	require.False(t, prev)
	require.True(t, next)

	prev, next = Controls(0, 1)
	require.True(t, prev)
	require.True(t, next)
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, strings.Repeat("─", 10), ProgressBar(0, 10))
	require.Equal(t, strings.Repeat("━", 10), ProgressBar(1, 10))
	require.Equal(t, strings.Repeat("━", 5)+strings.Repeat("─", 5), ProgressBar(0.5, 10))
	require.Equal(t, strings.Repeat("━", 10), ProgressBar(1.7, 10))
	require.Equal(t, 0, ProgressCells(-1, 10))
	require.Equal(t, 0, ProgressCells(0.5, 0))
}

func TestRenderIsIdempotent(t *testing.T) {
	deck := testDeck(t)
	o, clock := settledAt(t, deck, 0)
	require.NoError(t, o.RequestTransition(2))
	clock.Advance(400 * time.Millisecond)
	o.Handle(carousel.FrameTick{At: clock.Now()})

	v := View{Deck: deck, Snapshot: o.Snapshot(clock.Now()), Width: 80}
	require.Equal(t, Render(v), Render(v))
}

func TestRenderShowsTabsCounterAndControls(t *testing.T) {
	deck := testDeck(t)

	o, clock := settledAt(t, deck, 0)
	out := Render(View{Deck: deck, Snapshot: o.Snapshot(clock.Now()), Width: 90})
	for _, want := range []string{"RG", "▸BUY", "SELL", "RENT", "01", "02", "‹ prev", "NEXT ›", "FIND YOUR", "PERFECT HOME", "320+ Active Listings", "[ BROWSE LISTINGS → ]"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "▸SELL")

	o, clock = settledAt(t, deck, 2)
	out = Render(View{Deck: deck, Snapshot: o.Snapshot(clock.Now()), Width: 90})
	require.Contains(t, out, "▸RENT")
	require.Contains(t, out, "03")
	require.Contains(t, out, "‹ PREV")
	require.Contains(t, out, "next ›")
	require.Contains(t, out, "PREMIUM RENTALS,")
	require.NotContains(t, out, "FIND YOUR")
}

func TestRenderProgressFollowsTimer(t *testing.T) {
	deck := testDeck(t)
	clock := carousel.NewManualClock(epoch)
	o, err := carousel.New(deck, carousel.WithClock(clock), carousel.WithAutoDelay(10*time.Second))
	require.NoError(t, err)
	o.Start()

	width := 60
	clock.Advance(5 * time.Second)
	out := Render(View{Deck: deck, Snapshot: o.Snapshot(clock.Now()), Width: width})
	require.Contains(t, out, strings.Repeat("━", 30)+strings.Repeat("─", 30))
}

func TestRenderPromptAndStatus(t *testing.T) {
	deck := testDeck(t)
	o, clock := settledAt(t, deck, 0)
	snap := o.Snapshot(clock.Now())

	out := Render(View{Deck: deck, Snapshot: snap, Width: 80, Status: "recorded"})
	require.Contains(t, out, "recorded")

	out = Render(View{Deck: deck, Snapshot: snap, Width: 80, Status: "recorded", Prompting: true, Prompt: "ren"})
	require.Contains(t, out, "jump to: ren")
	require.NotContains(t, out, "recorded")
}
