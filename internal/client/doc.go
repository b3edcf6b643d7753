// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package client talks to the Advent of Code website. It knows how to fetch a
// single puzzle input and nothing else.
package client
