// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strconv"

	"github.com/staranto/aocctl/internal/puzzle"
)

const (
	outputRaw  = "raw"
	outputJSON = "json"

	backendLocal = "local"
	backendS3    = "s3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	return oneOf(value, outputRaw, outputJSON)
}

func BackendValidator(value any) error {
	return oneOf(value, backendLocal, backendS3)
}

func oneOf(value any, valid ...string) error {
	for _, v := range valid {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", valid)
}

// ParsePuzzleArgs turns the YEAR DAY positional args into a validated Puzzle.
func ParsePuzzleArgs(args []string) (puzzle.Puzzle, error) {
	if len(args) != 2 {
		return puzzle.Puzzle{}, fmt.Errorf("expected YEAR DAY, got %d argument(s)", len(args))
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("invalid year %q: must be an integer", args[0])
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("invalid day %q: must be an integer", args[1])
	}
	return puzzle.New(year, day)
}
