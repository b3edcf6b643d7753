// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package puzzle holds the value types that identify an Advent of Code puzzle
// and carry its raw input, along with the puzzle-scoped errors.
package puzzle
