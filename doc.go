// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// aocctl is the main package for the aocctl command line tool. It fetches
// Advent of Code puzzle inputs and caches them locally so each one is
// downloaded only once.
package main
