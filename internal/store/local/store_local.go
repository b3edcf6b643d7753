// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/apex/log"

	"github.com/staranto/aocctl/internal/store"
)

const (
	dirMode  = 0o755
	fileMode = 0o600
)

// StoreLocal keeps inputs as UTF-8 files under <root>/cached_inputs, one
// directory per year and one <day>.txt file per day.
type StoreLocal struct {
	dir string
}

var _ store.Store = (*StoreLocal)(nil)

// New returns a store rooted at cacheRoot. Nothing is created until the first
// Put.
func New(cacheRoot string) *StoreLocal {
	return &StoreLocal{dir: filepath.Join(cacheRoot, store.CacheDirName)}
}

// Root is the cached_inputs directory.
func (s *StoreLocal) Root() string {
	return s.dir
}

func (s *StoreLocal) yearDir(year int) string {
	return filepath.Join(s.dir, strconv.Itoa(year))
}

// Location returns the file path for (year, day), whether it exists or not.
func (s *StoreLocal) Location(year, day int) string {
	return filepath.Join(s.dir, filepath.FromSlash(store.Key(year, day)))
}

func (s *StoreLocal) Get(_ context.Context, year, day int) (string, bool, error) {
	p := s.Location(year, day)
	b, err := os.ReadFile(p)
	if err != nil {
		if isMissing(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read cache entry %s: %w", p, err)
	}
	log.Debugf("cache hit: %s", p)
	return string(b), true, nil
}

// isMissing reports whether err means the entry is absent. ENOTDIR counts: a
// file where the year directory belongs holds no entry, and the following
// Put reports the real problem.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// Put writes text to the entry file. The year directory is always ensured
// before the write.
func (s *StoreLocal) Put(_ context.Context, year, day int, text string) error {
	if err := os.MkdirAll(s.yearDir(year), dirMode); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := s.Location(year, day)
	if err := os.WriteFile(p, []byte(text), fileMode); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cached %d bytes to %s", len(text), p)
	return nil
}

// Clear removes the whole cached_inputs tree. An absent tree is not an error.
func (s *StoreLocal) Clear(_ context.Context) error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to clear cache %s: %w", s.dir, err)
	}
	log.Debugf("cleared cache %s", s.dir)
	return nil
}

// List walks the tree and returns every well-formed entry. Files that do not
// look like <year>/<day>.txt are skipped.
func (s *StoreLocal) List(_ context.Context) ([]store.Entry, error) {
	var entries []store.Entry

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.dir && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		year, day, err := store.ParseKey(filepath.ToSlash(rel))
		if err != nil {
			log.WithError(err).Warnf("skipping %s", path)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, store.Entry{
			Year:     year,
			Day:      day,
			Size:     info.Size(),
			Modified: info.ModTime(),
			Location: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}

	store.SortEntries(entries)
	return entries, nil
}
