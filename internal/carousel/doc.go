// Package carousel holds the property slider's state machine.
//
// An Orchestrator owns the active slide, the transition lock, the layer
// arena and the auto-advance Timer. Every mutation goes through Handle (or
// the request helpers that feed it), so the transition table in
// orchestrator.go is the only place state changes.
//
// The package never renders anything. Callers take a Snapshot and hand it to
// a presentation layer.
package carousel
