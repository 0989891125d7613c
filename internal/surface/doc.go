// Package surface draws the carousel from a carousel.Snapshot.
//
// Everything here is a pure function of its inputs. Nothing in this package
// holds state between renders or reaches back into the Orchestrator.
package surface
