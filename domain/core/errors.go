package core

import (
	"errors"
	"fmt"
)

// Centralized error taxonomy for conditional frequency tables.
//
// Missing outcomes inside a present distribution are not errors (they count
// as zero); missing conditions are. Everything that touches a backing
// resource fails fast with no implicit retry.
var (
	ErrConditionNotFound  = errors.New("condition not found")
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrMalformedSelection = errors.New("malformed selection")
	ErrRenderSinkFailure  = errors.New("render sink failure")
)

// Error constructors with context

func NewConditionNotFound(condition string) error {
	return fmt.Errorf("%w: %q", ErrConditionNotFound, condition)
}

func NewSourceUnavailable(name string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, cause)
	}
	return fmt.Errorf("%w: %s", ErrSourceUnavailable, name)
}

func NewMalformedSelection(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedSelection, reason)
}

func NewRenderSinkFailure(cause error) error {
	return fmt.Errorf("%w: %v", ErrRenderSinkFailure, cause)
}

// Error checking helpers

func IsConditionNotFound(err error) bool {
	return errors.Is(err, ErrConditionNotFound)
}

func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

func IsMalformedSelection(err error) bool {
	return errors.Is(err, ErrMalformedSelection)
}

func IsRenderSinkFailure(err error) bool {
	return errors.Is(err, ErrRenderSinkFailure)
}
