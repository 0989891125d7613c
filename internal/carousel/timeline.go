package carousel

import "time"

type prop uint8

const (
	propAlpha prop = 1 << iota
	propX
	propY
)

type tween struct {
	target   layerRef
	props    prop
	to       Visual
	from     Visual
	started  bool
	offset   time.Duration
	duration time.Duration
	ease     Ease
}

func (tw *tween) end() time.Duration { return tw.offset + tw.duration }

func (tw *tween) render(a *arena, elapsed time.Duration) {
	if elapsed < tw.offset {
		return
	}
	v := a.at(tw.target)
	if !tw.started {
		tw.from = *v
		tw.started = true
	}
	p := 1.0
	if tw.duration > 0 {
		p = clamp01(float64(elapsed-tw.offset) / float64(tw.duration))
	}
	e := tw.ease(p)
	if tw.props&propAlpha != 0 {
		v.Alpha = lerp(tw.from.Alpha, tw.to.Alpha, e)
	}
	if tw.props&propX != 0 {
		v.X = lerp(tw.from.X, tw.to.X, e)
	}
	if tw.props&propY != 0 {
		v.Y = lerp(tw.from.Y, tw.to.Y, e)
	}
}

// Timeline is a set of tweens positioned at offsets from a shared start.
// Frame ticks drive it; nothing runs on its own.
type Timeline struct {
	start  time.Time
	tweens []*tween
}

func newTimeline(start time.Time) *Timeline {
	return &Timeline{start: start}
}

// to schedules the props in mask to animate toward v.
func (tl *Timeline) to(r layerRef, mask prop, v Visual, offset, duration time.Duration, ease Ease) {
	if ease == nil {
		ease = EaseNone
	}
	tl.tweens = append(tl.tweens, &tween{
		target:   r,
		props:    mask,
		to:       v,
		offset:   offset,
		duration: duration,
		ease:     ease,
	})
}

// stagger schedules one tween per ref, each offset by step from the last.
func (tl *Timeline) stagger(refs []layerRef, mask prop, v Visual, offset, step, duration time.Duration, ease Ease) {
	for i, r := range refs {
		tl.to(r, mask, v, offset+time.Duration(i)*step, duration, ease)
	}
}

// Duration is the end of the last-scheduled tween.
func (tl *Timeline) Duration() time.Duration {
	var d time.Duration
	for _, tw := range tl.tweens {
		if e := tw.end(); e > d {
			d = e
		}
	}
	return d
}

func (tl *Timeline) Start() time.Time { return tl.start }

// seek renders every tween at now and reports whether the timeline is complete.
func (tl *Timeline) seek(a *arena, now time.Time) bool {
	elapsed := now.Sub(tl.start)
	for _, tw := range tl.tweens {
		tw.render(a, elapsed)
	}
	return elapsed >= tl.Duration()
}

// finish renders the timeline at its end state.
func (tl *Timeline) finish(a *arena) {
	tl.seek(a, tl.start.Add(tl.Duration()))
}

func set(a *arena, r layerRef, mask prop, v Visual) {
	dst := a.at(r)
	if mask&propAlpha != 0 {
		dst.Alpha = v.Alpha
	}
	if mask&propX != 0 {
		dst.X = v.X
	}
	if mask&propY != 0 {
		dst.Y = v.Y
	}
}
