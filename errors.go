package fluentfsm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateTransition = errors.New("duplicate transition")
	ErrMissingState        = errors.New("missing state: no source state selected")
	ErrMissingTransition   = errors.New("missing transition: no open transition to refine")
)

// TransitionError describes one structural problem found while building.
// Trigger, From and To hold the offending record's identifiers when known.
type TransitionError struct {
	Op      string // builder call that produced the error, or "validate"
	Index   int    // position in the table, -1 when no record is involved
	Prev    int    // first record repeated by a duplicate, -1 otherwise
	Trigger any
	From    any
	To      any
	Err     error
}

func (e *TransitionError) Error() string {
	if errors.Is(e.Err, ErrDuplicateTransition) {
		return fmt.Sprintf("transition[%d] %v -> %v on %v repeats transition[%d]: %v",
			e.Index, e.From, e.To, e.Trigger, e.Prev, e.Err)
	}
	if e.Index < 0 {
		if e.Trigger == nil {
			return fmt.Sprintf("%s: %v", e.Op, e.Err)
		}
		return fmt.Sprintf("%s(%v): %v", e.Op, e.Trigger, e.Err)
	}
	return fmt.Sprintf("%s on transition[%d] (%v from %v): %v", e.Op, e.Index, e.Trigger, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// BuildError aggregates every problem found in one Build call
type BuildError struct {
	Errors []error
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid state machine: %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *BuildError) Unwrap() []error {
	return e.Errors
}

func IsDuplicateTransitionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransition)
}

func IsMissingStateError(err error) bool {
	return errors.Is(err, ErrMissingState)
}

func IsMissingTransitionError(err error) bool {
	return errors.Is(err, ErrMissingTransition)
}
