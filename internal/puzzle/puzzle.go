// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package puzzle

import "fmt"

const (
	// FirstYear is the year the puzzle series started.
	FirstYear = 2015
	FirstDay  = 1
	LastDay   = 25
)

// Puzzle identifies a single daily puzzle. Use New to get a validated one.
type Puzzle struct {
	Year int
	Day  int
}

// New returns a Puzzle for year and day, or a *ValidationError if either is
// out of range.
func New(year, day int) (Puzzle, error) {
	if err := Validate(year, day); err != nil {
		return Puzzle{}, err
	}
	return Puzzle{Year: year, Day: day}, nil
}

// Validate checks year and day against the bounds of the series.
func Validate(year, day int) error {
	if year < FirstYear {
		return &ValidationError{
			Field:  "year",
			Value:  year,
			Reason: fmt.Sprintf("must be >= %d", FirstYear),
		}
	}
	if day < FirstDay || day > LastDay {
		return &ValidationError{
			Field:  "day",
			Value:  day,
			Reason: fmt.Sprintf("must be between %d and %d", FirstDay, LastDay),
		}
	}
	return nil
}

func (p Puzzle) String() string {
	return fmt.Sprintf("Puzzle(year=%d, day=%d)", p.Year, p.Day)
}

// Input is the raw text input of one puzzle, exactly as the source returned
// it.
type Input struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Input string `json:"input"`
}

// Puzzle returns the identity of the puzzle this input belongs to.
func (in Input) Puzzle() Puzzle {
	return Puzzle{Year: in.Year, Day: in.Day}
}
