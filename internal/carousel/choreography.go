package carousel

import (
	"fmt"
	"time"
)

// Choreography holds the timing and travel constants for transitions and
// the intro reveal. Offsets are relative to the transition start.
type Choreography struct {
	OutDuration time.Duration
	OutStagger  time.Duration
	OutContentY float64
	OutFloatX   float64

	CoverOffset   time.Duration
	CoverDuration time.Duration

	InFloatOffset   time.Duration
	InFloatDuration time.Duration
	InFloatFromX    float64

	InContentOffset   time.Duration
	InContentStagger  time.Duration
	InContentDuration time.Duration
	InContentFromY    float64

	IntroDelay    time.Duration
	IntroStagger  time.Duration
	IntroDuration time.Duration
	IntroFromY    float64
}

func DefaultChoreography() Choreography {
	return Choreography{
		OutDuration: 380 * time.Millisecond,
		OutStagger:  50 * time.Millisecond,
		OutContentY: -28,
		OutFloatX:   -50,

		CoverOffset:   150 * time.Millisecond,
		CoverDuration: 650 * time.Millisecond,

		InFloatOffset:   300 * time.Millisecond,
		InFloatDuration: 650 * time.Millisecond,
		InFloatFromX:    60,

		InContentOffset:   420 * time.Millisecond,
		InContentStagger:  100 * time.Millisecond,
		InContentDuration: 620 * time.Millisecond,
		InContentFromY:    52,

		IntroDelay:    250 * time.Millisecond,
		IntroStagger:  120 * time.Millisecond,
		IntroDuration: 850 * time.Millisecond,
		IntroFromY:    48,
	}
}

// Validate checks the reveal order: content and float exits start first,
// then the cover cross-fade, then the incoming float, then incoming content.
func (c Choreography) Validate() error {
	bad := func(reason string) error {
		return &ConfigurationError{Slide: -1, Reason: "choreography: " + reason}
	}
	for _, d := range []struct {
		name string
		d    time.Duration
	}{
		{"out duration", c.OutDuration},
		{"cover duration", c.CoverDuration},
		{"in float duration", c.InFloatDuration},
		{"in content duration", c.InContentDuration},
		{"intro duration", c.IntroDuration},
	} {
		if d.d <= 0 {
			return bad(fmt.Sprintf("%s must be positive", d.name))
		}
	}
	if c.OutStagger < 0 || c.InContentStagger < 0 || c.IntroStagger < 0 || c.IntroDelay < 0 {
		return bad("staggers and delays must not be negative")
	}
	if c.CoverOffset <= 0 {
		return bad("cover cross-fade must start after the exit")
	}
	if c.InFloatOffset <= c.CoverOffset {
		return bad("incoming float must start after the cover cross-fade")
	}
	if c.InContentOffset <= c.InFloatOffset {
		return bad("incoming content must start after the incoming float")
	}
	return nil
}

// transition lays out the five-part choreography from slide `from` to slide
// `to`. Immediate sets (hiding the incoming layers) are applied to a before
// the timeline is returned.
func (c Choreography) transition(a *arena, from, to int, start time.Time) *Timeline {
	tl := newTimeline(start)

	// out: content children, then the float frame alongside.
	tl.stagger(childRefs(from, len(a.children[from])), propAlpha|propY,
		Visual{Alpha: 0, Y: c.OutContentY}, 0, c.OutStagger, c.OutDuration, EasePower2In)
	tl.to(layerRef{slide: from, kind: LayerFloat, child: -1}, propAlpha|propX,
		Visual{Alpha: 0, X: c.OutFloatX}, 0, c.OutDuration, EasePower2In)

	// covers cross-fade; the incoming cover starts from fully transparent.
	tl.to(layerRef{slide: from, kind: LayerCover, child: -1}, propAlpha,
		Visual{Alpha: 0}, c.CoverOffset, c.CoverDuration, EasePower2InOut)
	nextCover := layerRef{slide: to, kind: LayerCover, child: -1}
	set(a, nextCover, propAlpha, Visual{Alpha: 0})
	tl.to(nextCover, propAlpha, Visual{Alpha: 1}, c.CoverOffset, c.CoverDuration, EasePower2InOut)

	// in: float frame.
	nextFloat := layerRef{slide: to, kind: LayerFloat, child: -1}
	set(a, nextFloat, propAlpha|propX, Visual{Alpha: 0, X: c.InFloatFromX})
	tl.to(nextFloat, propAlpha|propX, Visual{Alpha: 1, X: 0}, c.InFloatOffset, c.InFloatDuration, EasePower3Out)

	// in: content children, last.
	set(a, layerRef{slide: to, kind: LayerContent, child: -1}, propAlpha, Visual{Alpha: 1})
	kids := childRefs(to, len(a.children[to]))
	for _, r := range kids {
		set(a, r, propAlpha|propY, Visual{Alpha: 0, Y: c.InContentFromY})
	}
	tl.stagger(kids, propAlpha|propY, Visual{Alpha: 1, Y: 0},
		c.InContentOffset, c.InContentStagger, c.InContentDuration, EasePower3Out)
	return tl
}

// intro reveals the first slide's content children on mount.
func (c Choreography) intro(a *arena, slide int, start time.Time) *Timeline {
	tl := newTimeline(start)
	kids := childRefs(slide, len(a.children[slide]))
	for _, r := range kids {
		set(a, r, propAlpha|propY, Visual{Alpha: 0, Y: c.IntroFromY})
	}
	tl.stagger(kids, propAlpha|propY, Visual{Alpha: 1, Y: 0},
		c.IntroDelay, c.IntroStagger, c.IntroDuration, EasePower3Out)
	return tl
}
