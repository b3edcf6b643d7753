// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package puzzle

import (
	"errors"
	"fmt"
)

// ErrInputUnavailable matches any *InputUnavailableError via errors.Is.
var ErrInputUnavailable = errors.New("puzzle input not available")

const msgInputUnavailable = "Puzzle input not available"

// ValidationError reports a puzzle coordinate outside the series bounds.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid puzzle %s %d: %s", e.Field, e.Value, e.Reason)
}

// PuzzleError is the base of all errors scoped to a single puzzle.
type PuzzleError struct {
	Year int
	Day  int
	Msg  string
}

func (e *PuzzleError) Error() string {
	return fmt.Sprintf("Error with puzzle <year=%d, day=%d>: %s", e.Year, e.Day, e.Msg)
}

func (e *PuzzleError) GoString() string {
	return fmt.Sprintf("PuzzleError(year=%d, day=%d, msg=%q)", e.Year, e.Day, e.Msg)
}

// InputUnavailableError is returned when the source has no input for the
// puzzle, either because it does not exist or it has not been released yet.
type InputUnavailableError struct {
	PuzzleError
}

// NewInputUnavailable returns the error for an unavailable input.
func NewInputUnavailable(year, day int) *InputUnavailableError {
	return &InputUnavailableError{
		PuzzleError: PuzzleError{Year: year, Day: day, Msg: msgInputUnavailable},
	}
}

func (e *InputUnavailableError) GoString() string {
	return fmt.Sprintf("InputUnavailableError(year=%d, day=%d, msg=%q)", e.Year, e.Day, e.Msg)
}

func (e *InputUnavailableError) Is(target error) bool {
	return target == ErrInputUnavailable
}

// As lets errors.As extract the embedded *PuzzleError.
func (e *InputUnavailableError) As(target any) bool {
	if pe, ok := target.(**PuzzleError); ok {
		*pe = &e.PuzzleError
		return true
	}
	return false
}
