// Package apperr classifies errors that end a conversation turn.
package apperr

import (
	"errors"
	"fmt"
)

// Kind error category
type Kind string

const (
	// KindUpstream rate source could not be fetched or parsed
	KindUpstream Kind = "upstream"
	// KindInternal configuration bug, e.g. an intent nobody responds to
	KindInternal Kind = "internal"
	// KindStorage state store failure
	KindStorage Kind = "storage"
)

// Error turn-ending error with a category
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Upstream wraps err as a rate source failure
func Upstream(op string, err error) error {
	return &Error{Kind: KindUpstream, Op: op, Err: err}
}

// Internal reports a configuration bug
func Internal(op, format string, args ...any) error {
	return &Error{Kind: KindInternal, Op: op, Err: fmt.Errorf(format, args...)}
}

// Storage wraps err as a state store failure
func Storage(op string, err error) error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

// KindOf returns the category of err, KindInternal for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err has the given category
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
