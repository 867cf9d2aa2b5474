package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWheel marks a wheel catalog that fails validation.
	ErrInvalidWheel = errors.New("invalid wheel data")

	// ErrInvalidPhraseData marks a phrase catalog that fails validation.
	ErrInvalidPhraseData = errors.New("invalid phrase data")

	// ErrNoPlayers is returned when a game is configured with zero
	// players of either kind.
	ErrNoPlayers = errors.New("at least one player is required")
)

// DataLoadError wraps a failure to read or parse an external data source.
// Missing reports whether the resource was absent (as opposed to present
// but malformed).
type DataLoadError struct {
	Source  string
	Missing bool
	Err     error
}

func (e *DataLoadError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: file not found", e.Source)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }
