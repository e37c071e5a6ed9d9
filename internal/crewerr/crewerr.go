// Package crewerr classifies CLI failures so the dispatcher can tell
// user-input mistakes apart from delegated-operation failures.
package crewerr

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the failure category.
type Kind int

const (
	// Delegated is a failure raised inside a delegated crew operation.
	Delegated Kind = iota
	// Usage is a user-input error caught before dispatch.
	Usage
	// Canceled is an interactive interrupt.
	Canceled
)

// Error wraps a cause with its kind and the operation that failed.
type Error struct {
	Kind Kind
	Op   string // "run", "train", "replay", "test"
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Usagef builds a Usage error.
func Usagef(format string, args ...any) error {
	return &Error{Kind: Usage, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies err under op. Context cancellation becomes Canceled,
// everything else a delegated failure. nil stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := Delegated
	if errors.Is(err, context.Canceled) {
		kind = Canceled
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the kind from err, defaulting to Delegated.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if errors.Is(err, context.Canceled) {
		return Canceled
	}
	return Delegated
}
