package generate

import (
	"errors"
	"fmt"
	"math"
)

// MaxLength caps every requested output length so that the per-call
// random buffer (8 bytes per character in RandomStringFrom) stays addressable.
const MaxLength = math.MaxInt32 / 8

// Package-level error definitions for argument validation.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingArgument = errors.New("missing argument")
)

// ArgumentError reports which argument failed validation and why.
// It unwraps to ErrInvalidArgument or ErrMissingArgument.
type ArgumentError struct {
	Arg    string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s %s", e.Err, e.Arg, e.Reason)
}

// Unwrap returns the sentinel error, enabling errors.Is checks.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func invalidArgument(arg, reason string) error {
	return &ArgumentError{Arg: arg, Reason: reason, Err: ErrInvalidArgument}
}

func missingArgument(arg string) error {
	return &ArgumentError{Arg: arg, Reason: "must not be nil", Err: ErrMissingArgument}
}

func validateLength(length int) error {
	switch {
	case length < 0:
		return invalidArgument("length", "must not be negative")
	case length > MaxLength:
		return invalidArgument("length", "is too big")
	}
	return nil
}
