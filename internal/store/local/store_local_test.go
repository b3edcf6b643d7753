// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutThenGet(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := New(root)

	_, found, err := s.Get(ctx, 2022, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Put(ctx, 2022, 1, "line one\nline two\n"))

	text, found, err := s.Get(ctx, 2022, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "line one\nline two\n", text)

	raw, err := os.ReadFile(filepath.Join(root, "cached_inputs", "2022", "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", string(raw))
}

func TestPutPreservesWhitespace(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	in := "  \n\tpadded ünïcode \n\n"
	require.NoError(t, s.Put(ctx, 2017, 3, in))

	out, found, err := s.Get(ctx, 2017, 3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestGetReadError(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	// A directory where the file should be makes ReadFile fail with
	// something other than not-exist.
	require.NoError(t, os.MkdirAll(s.Location(2022, 1), 0o755))

	_, found, err := s.Get(ctx, 2022, 1)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestGetYearPathIsFile(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := New(root)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "cached_inputs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cached_inputs", "2022"), nil, 0o600))

	text, found, err := s.Get(ctx, 2022, 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, text)

	err = s.Put(ctx, 2022, 1, "x")
	assert.ErrorContains(t, err, "failed to create cache directory")
}

func TestClearNeverCreated(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	_, err := os.Stat(s.Root())
	require.True(t, os.IsNotExist(err))

	require.NoError(t, s.Clear(context.Background()))

	_, err = os.Stat(s.Root())
	assert.True(t, os.IsNotExist(err))
	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := New(root)

	for year := 2015; year <= 2022; year++ {
		for day := 1; day <= 25; day++ {
			require.NoError(t, s.Put(ctx, year, day, "input\n"))
		}
	}

	require.NoError(t, s.Clear(ctx))
	_, err := os.Stat(filepath.Join(root, "cached_inputs"))
	assert.True(t, os.IsNotExist(err))

	// Clearing an absent cache is fine.
	assert.NoError(t, s.Clear(ctx))

	// The root itself is left alone.
	_, err = os.Stat(root)
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, s.Put(ctx, 2022, 10, "ten\n"))
	require.NoError(t, s.Put(ctx, 2022, 2, "two\n"))
	require.NoError(t, s.Put(ctx, 2016, 25, "twenty five\n"))
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "2022", "notes.md"), []byte("x"), 0o600))

	entries, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 2016, entries[0].Year)
	assert.Equal(t, 25, entries[0].Day)
	assert.Equal(t, int64(len("twenty five\n")), entries[0].Size)
	assert.Equal(t, 2, entries[1].Day)
	assert.Equal(t, 10, entries[2].Day)
	assert.Equal(t, s.Location(2022, 10), entries[2].Location)
	assert.False(t, entries[2].Modified.IsZero())
}
