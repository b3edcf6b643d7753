// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CacheDirName is the directory under the cache root that holds all inputs.
const CacheDirName = "cached_inputs"

const ext = ".txt"

// Store persists raw puzzle inputs keyed by (year, day). Implementations do
// not lock; concurrent writers to the same key race and the last one wins.
type Store interface {
	// Get returns the stored text. found is false, with a nil error, when
	// nothing is stored for the key.
	Get(ctx context.Context, year, day int) (text string, found bool, err error)
	// Put stores text verbatim, creating whatever parent containers it needs.
	Put(ctx context.Context, year, day int, text string) error
	// Clear removes every stored input.
	Clear(ctx context.Context) error
	// List returns all stored entries sorted by year then day.
	List(ctx context.Context) ([]Entry, error)
	// Location describes where the entry for (year, day) lives.
	Location(year, day int) string
	// Root describes where the cached_inputs tree lives.
	Root() string
}

// Entry describes one stored input.
type Entry struct {
	Year     int
	Day      int
	Size     int64
	Modified time.Time
	Location string
}

// Key returns the slash separated key "<year>/<day>.txt".
func Key(year, day int) string {
	return path.Join(strconv.Itoa(year), strconv.Itoa(day)+ext)
}

// ParseKey is the inverse of Key. Leading path components before the year are
// ignored, so full object keys and file paths are accepted.
func ParseKey(key string) (year, day int, err error) {
	parts := strings.Split(strings.ReplaceAll(key, "\\", "/"), "/")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("malformed cache key %q", key)
	}
	yearPart, dayPart := parts[len(parts)-2], parts[len(parts)-1]

	if !strings.HasSuffix(dayPart, ext) {
		return 0, 0, fmt.Errorf("malformed cache key %q: missing %s suffix", key, ext)
	}
	if year, err = strconv.Atoi(yearPart); err != nil {
		return 0, 0, fmt.Errorf("malformed cache key %q: %w", key, err)
	}
	if day, err = strconv.Atoi(strings.TrimSuffix(dayPart, ext)); err != nil {
		return 0, 0, fmt.Errorf("malformed cache key %q: %w", key, err)
	}
	return year, day, nil
}

// SortEntries orders entries by year, then day.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year < entries[j].Year
		}
		return entries[i].Day < entries[j].Day
	})
}
