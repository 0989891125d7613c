package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testSlides() []Slide {
	return []Slide{
		{
			TabLabel:      "BUY",
			Eyebrow:       "BUYER'S GUIDE",
			Headline:      "FIND YOUR\nPERFECT HOME",
			Body:          "Curated listings and expert guidance.",
			Stats:         []Stat{{Value: "320+", Label: "Active Listings"}, {Value: "98%", Label: "Client Satisfaction"}},
			CTALabel:      "BROWSE LISTINGS",
			CoverImageRef: "cover-buy.jpg",
			FloatImageRef: "float-buy.jpg",
		},
		{
			TabLabel:      "SELL",
			Eyebrow:       "SELLER'S EDGE",
			Headline:      "SELL SMARTER,\nEARN MORE",
			Body:          "Sharp pricing strategy and professional presentation.",
			Stats:         []Stat{{Value: "14", Label: "Avg. Days on Market"}},
			CTALabel:      "GET A VALUATION",
			CoverImageRef: "cover-sell.jpg",
			FloatImageRef: "float-sell.jpg",
		},
		{
			TabLabel:      "RENT",
			Eyebrow:       "RENTAL MANAGEMENT",
			Headline:      "PREMIUM RENTALS,\nHASSLE-FREE",
			Body:          "Every step handled with care.",
			CTALabel:      "VIEW RENTALS",
			CoverImageRef: "cover-rent.jpg",
			FloatImageRef: "float-rent.jpg",
		},
	}
}

// harness drives an Orchestrator on a ManualClock, delivering timer firings
// synchronously and collecting every settle.
type harness struct {
	t       *testing.T
	clock   *ManualClock
	orch    *Orchestrator
	settled []TransitionSettled
	fired   int
}

const frame = 10 * time.Millisecond

// slide transition length for the fixture deck: every slide has six content
// children, so 420ms + 5*100ms + 620ms.
const fixtureTransition = 1540 * time.Millisecond

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{t: t, clock: NewManualClock(epoch)}
	deck, err := NewDeck(testSlides())
	require.NoError(t, err)
	all := append([]Option{
		WithClock(h.clock),
		WithSink(func(ev Event) {
			h.fired++
			h.collect(h.orch.Handle(ev))
		}),
	}, opts...)
	h.orch, err = New(deck, all...)
	require.NoError(t, err)
	return h
}

func (h *harness) collect(evs []Event) {
	for _, ev := range evs {
		if s, ok := ev.(TransitionSettled); ok {
			h.settled = append(h.settled, s)
		}
	}
}

// run advances the clock by d in frame-sized steps, ticking after each step.
func (h *harness) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; {
		step := min(frame, d-elapsed)
		h.clock.Advance(step)
		elapsed += step
		h.collect(h.orch.Handle(FrameTick{At: h.clock.Now()}))
	}
}

func (h *harness) state() State { return h.orch.State() }

func (h *harness) snapshot() Snapshot { return h.orch.Snapshot(h.clock.Now()) }
