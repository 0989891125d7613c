package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches any *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("carousel: invalid configuration")
	// ErrInvalidIndex matches any *InvalidIndexError via errors.Is.
	ErrInvalidIndex = errors.New("carousel: invalid slide index")
)

// ConfigurationError reports a deck that cannot back a carousel.
type ConfigurationError struct {
	Slide  int // -1 when the problem is the deck as a whole
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil && e.Reason == "" {
		return fmt.Sprintf("carousel: configuration: %v", e.Err)
	}
	if e.Slide < 0 {
		return fmt.Sprintf("carousel: configuration: %s", e.Reason)
	}
	return fmt.Sprintf("carousel: configuration: slide %d: %s %s", e.Slide, e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvalidIndexError reports a navigation request outside [0, Count).
type InvalidIndexError struct {
	Index int
	Count int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("carousel: index %d out of range [0,%d)", e.Index, e.Count)
}

func (e *InvalidIndexError) Is(target error) bool { return target == ErrInvalidIndex }
