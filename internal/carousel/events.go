package carousel

import "time"

// Event is anything the Orchestrator's transition table consumes.
type Event interface {
	event()
}

// Trigger records what caused a transition.
type Trigger string

const (
	TriggerInitial Trigger = "initial"
	TriggerManual  Trigger = "manual"
	TriggerAuto    Trigger = "auto"
)

// TimerFired is delivered by the Timer when a countdown window ends.
// Generation identifies the window; stale generations are ignored.
type TimerFired struct {
	Generation uint64
}

// FrameTick advances every running timeline to At.
type FrameTick struct {
	At time.Time
}

// TransitionSettled marks the end of a transition. The Orchestrator emits it
// from Handle when the last tween finishes; handing one back in for the
// in-flight transition completes it immediately.
type TransitionSettled struct {
	From    int
	To      int
	Trigger Trigger
	At      time.Time
}

type transitionRequested struct {
	target  int
	trigger Trigger
	at      time.Time
}

func (TimerFired) event()          {}
func (FrameTick) event()           {}
func (TransitionSettled) event()   {}
func (transitionRequested) event() {}
