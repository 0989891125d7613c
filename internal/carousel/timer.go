package carousel

import (
	"time"

	"go.uber.org/atomic"
)

// DefaultAutoDelay is the auto-advance countdown window.
const DefaultAutoDelay = 6200 * time.Millisecond

// Timer owns the single auto-advance countdown and the progress fraction
// that the indicator follows. Restart and Cancel must be called from the
// goroutine that owns the Orchestrator; the scheduled callback only reads
// the generation and hands a TimerFired to the sink.
type Timer struct {
	clock Clock
	delay time.Duration
	sink  func(Event)

	gen      atomic.Uint64
	pending  Stopper
	running  bool
	started  time.Time
	deadline time.Time
}

// NewTimer returns a stopped timer. sink receives TimerFired events from the
// clock's callback goroutine; a nil sink drops them.
func NewTimer(clock Clock, delay time.Duration, sink func(Event)) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{clock: clock, delay: delay, sink: sink}
}

// Restart supersedes any pending countdown with a fresh one starting now.
// It returns the generation of the new window.
func (t *Timer) Restart() uint64 {
	g := t.gen.Inc()
	t.stop()
	t.running = true
	t.started = t.clock.Now()
	t.deadline = t.started.Add(t.delay)
	t.pending = t.clock.AfterFunc(t.delay, func() {
		if t.gen.Load() != g || t.sink == nil {
			return
		}
		t.sink(TimerFired{Generation: g})
	})
	return g
}

// Cancel stops the countdown and clears the indicator. No firing from an
// earlier window is delivered afterwards.
func (t *Timer) Cancel() {
	t.gen.Inc()
	t.stop()
	t.running = false
	t.started = time.Time{}
	t.deadline = time.Time{}
}

func (t *Timer) stop() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// Current reports whether g is the live countdown window.
func (t *Timer) Current(g uint64) bool {
	return t.running && t.gen.Load() == g
}

func (t *Timer) Generation() uint64 { return t.gen.Load() }

func (t *Timer) Delay() time.Duration { return t.delay }

func (t *Timer) Running() bool { return t.running }

// Deadline returns when the live window fires.
func (t *Timer) Deadline() (time.Time, bool) {
	return t.deadline, t.running
}

// Progress is elapsed/delay for the live window, clamped to [0,1]. A
// stopped timer reports 0.
func (t *Timer) Progress(now time.Time) float64 {
	if !t.running || t.delay <= 0 {
		return 0
	}
	return clamp01(float64(now.Sub(t.started)) / float64(t.delay))
}
