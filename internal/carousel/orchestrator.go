package carousel

import (
	"log/slog"
	"time"
)

// Phase is the coarse state of the Orchestrator.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
)

func (p Phase) String() string {
	if p == PhaseTransitioning {
		return "transitioning"
	}
	return "idle"
}

// State is a value copy of the machine's state. From and To are only
// meaningful while Phase is PhaseTransitioning.
type State struct {
	Phase   Phase
	Active  int
	From    int
	To      int
	Trigger Trigger
}

type machine struct {
	active  int
	locked  bool
	from    int
	pending int
	trigger Trigger
	started bool
	torn    bool
}

// Orchestrator drives the carousel. It is not safe for concurrent use; all
// calls must come from one goroutine (the UI event loop).
type Orchestrator struct {
	deck   *Deck
	clock  Clock
	chor   Choreography
	delay  time.Duration
	sink   func(Event)
	logger *slog.Logger

	st         machine
	layers     arena
	timer      *Timer
	transition *Timeline
	intro      *Timeline
}

type Option func(*Orchestrator)

func WithClock(c Clock) Option { return func(o *Orchestrator) { o.clock = c } }

func WithAutoDelay(d time.Duration) Option { return func(o *Orchestrator) { o.delay = d } }

func WithChoreography(c Choreography) Option { return func(o *Orchestrator) { o.chor = c } }

// WithSink sets where timer firings are delivered. The sink is called from
// the clock's goroutine and must hand the event back to the owning loop.
func WithSink(sink func(Event)) Option { return func(o *Orchestrator) { o.sink = sink } }

func WithLogger(l *slog.Logger) Option { return func(o *Orchestrator) { o.logger = l } }

// New builds an Orchestrator in Idle(0). Nothing runs until Start.
func New(deck *Deck, opts ...Option) (*Orchestrator, error) {
	if deck == nil || deck.Len() == 0 {
		return nil, &ConfigurationError{Slide: -1, Reason: "deck has no slides"}
	}
	o := &Orchestrator{
		deck:  deck,
		clock: SystemClock{},
		chor:  DefaultChoreography(),
		delay: DefaultAutoDelay,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.delay <= 0 {
		return nil, &ConfigurationError{Slide: -1, Reason: "auto-advance delay must be positive"}
	}
	if err := o.chor.Validate(); err != nil {
		return nil, err
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	o.layers = newArena(deck, o.chor)
	o.timer = NewTimer(o.clock, o.delay, o.sink)
	return o, nil
}

// Start plays the intro reveal for the first slide and starts the countdown.
// Calling it again has no effect.
func (o *Orchestrator) Start() {
	if o.st.started || o.st.torn {
		return
	}
	o.st.started = true
	o.intro = o.chor.intro(&o.layers, o.st.active, o.clock.Now())
	o.timer.Restart()
	o.logger.Debug("carousel started", "slides", o.deck.Len(), "auto_delay", o.delay)
}

// RequestTransition asks for slide target. An out-of-range target is
// rejected with *InvalidIndexError and changes nothing. A request while a
// transition is in flight, or for the active slide, is dropped silently.
func (o *Orchestrator) RequestTransition(target int) error {
	if o.st.torn {
		return nil
	}
	if !o.deck.inRange(target) {
		return &InvalidIndexError{Index: target, Count: o.deck.Len()}
	}
	o.apply(transitionRequested{target: target, trigger: TriggerManual, at: o.clock.Now()})
	return nil
}

// Previous moves one slide back. At the first slide the control is disabled
// and the call does nothing.
func (o *Orchestrator) Previous() error {
	if o.st.active == 0 {
		return nil
	}
	return o.RequestTransition(o.st.active - 1)
}

// Next moves one slide forward without wrapping.
func (o *Orchestrator) Next() error {
	if o.st.active == o.deck.Len()-1 {
		return nil
	}
	return o.RequestTransition(o.st.active + 1)
}

// Handle feeds an event through the transition table and returns any
// TransitionSettled it produced. After Teardown every event is inert.
func (o *Orchestrator) Handle(ev Event) []Event {
	if o.st.torn {
		return nil
	}
	return o.apply(ev)
}

// apply is the single point where machine state changes.
func (o *Orchestrator) apply(ev Event) []Event {
	switch ev := ev.(type) {
	case transitionRequested:
		if o.st.locked || ev.target == o.st.active {
			o.logger.Debug("transition dropped", "target", ev.target, "active", o.st.active, "locked", o.st.locked, "trigger", ev.trigger)
			return nil
		}
		o.st.locked = true
		o.st.from = o.st.active
		o.st.pending = ev.target
		o.st.trigger = ev.trigger
		o.intro = nil
		o.transition = o.chor.transition(&o.layers, o.st.from, o.st.pending, ev.at)
		o.logger.Debug("transition started", "from", o.st.from, "to", o.st.pending, "trigger", ev.trigger, "duration", o.transition.Duration())
		return nil

	case TimerFired:
		if !o.timer.Current(ev.Generation) {
			return nil
		}
		target := (o.st.active + 1) % o.deck.Len()
		return o.apply(transitionRequested{target: target, trigger: TriggerAuto, at: o.clock.Now()})

	case FrameTick:
		if o.intro != nil && o.intro.seek(&o.layers, ev.At) {
			o.intro = nil
		}
		if o.transition == nil || !o.transition.seek(&o.layers, ev.At) {
			return nil
		}
		return o.apply(TransitionSettled{From: o.st.from, To: o.st.pending, Trigger: o.st.trigger, At: ev.At})

	case TransitionSettled:
		if !o.st.locked || ev.From != o.st.from || ev.To != o.st.pending {
			return nil
		}
		if o.transition != nil {
			o.transition.finish(&o.layers)
			o.transition = nil
		}
		ev.Trigger = o.st.trigger
		o.st.active = ev.To
		o.st.locked = false
		if ev.At.IsZero() {
			ev.At = o.clock.Now()
		}
		o.timer.Restart()
		o.logger.Info("transition settled", "from", ev.From, "to", ev.To, "trigger", ev.Trigger)
		return []Event{ev}
	}
	return nil
}

// Teardown stops the countdown and every running animation. Later calls and
// events are ignored.
func (o *Orchestrator) Teardown() {
	if o.st.torn {
		return
	}
	o.st.torn = true
	o.timer.Cancel()
	o.transition = nil
	o.intro = nil
	o.st.locked = false
	o.logger.Debug("carousel torn down", "active", o.st.active)
}

func (o *Orchestrator) State() State {
	s := State{Phase: PhaseIdle, Active: o.st.active, From: o.st.active, To: o.st.active}
	if o.st.locked {
		s.Phase = PhaseTransitioning
		s.From = o.st.from
		s.To = o.st.pending
		s.Trigger = o.st.trigger
	}
	return s
}

func (o *Orchestrator) Deck() *Deck { return o.deck }

func (o *Orchestrator) Timer() *Timer { return o.timer }

func (o *Orchestrator) TornDown() bool { return o.st.torn }

// TransitionDuration is how long a transition between from and to takes with
// the configured choreography.
func (o *Orchestrator) TransitionDuration(from, to int) time.Duration {
	if !o.deck.inRange(from) || !o.deck.inRange(to) {
		return 0
	}
	scratch := o.layers.clone()
	return o.chor.transition(&scratch, from, to, time.Time{}).Duration()
}
