// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package repository is the read-through cache in front of the Advent of Code
// client. Inputs are fetched at most once per cache lifetime.
package repository
