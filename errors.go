package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrNoStartState        = errors.New("no start state declared")
	ErrMultipleStartStates = errors.New("more than one start state declared")
	ErrUnknownState        = errors.New("unknown state")
	ErrDuplicateState      = errors.New("duplicate state")
	ErrEpsilonInAlphabet   = errors.New("alphabet must not contain epsilon")
	ErrAlphabetMismatch    = errors.New("alphabet mismatch")
	ErrRowOutOfRange       = errors.New("row out of range")
	ErrColumnOutOfRange    = errors.New("column out of range")
)

// MalformedAutomatonError Returned when an automaton description cannot be turned into an
// Automaton. The automaton is not usable; there is nothing to recover.
type MalformedAutomatonError struct {
	Reason string
	Err    error
}

func (e *MalformedAutomatonError) Error() string {
	return fmt.Sprintf("malformed automaton: %s", e.Reason)
}

func (e *MalformedAutomatonError) Unwrap() error {
	return e.Err
}

func malformed(err error, format string, args ...any) *MalformedAutomatonError {
	return &MalformedAutomatonError{
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
