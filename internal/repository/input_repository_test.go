// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/aocctl/internal/puzzle"
)

type call struct {
	Year, Day int
}

// stubClient records every fetch and answers from inputs.
type stubClient struct {
	inputs map[call]string
	err    error
	calls  []call
}

func (s *stubClient) GetPuzzleInput(_ context.Context, year, day int) (string, error) {
	s.calls = append(s.calls, call{year, day})
	if s.err != nil {
		return "", s.err
	}
	return s.inputs[call{year, day}], nil
}

func writeCached(t *testing.T, root string, year, day int, text string) string {
	t.Helper()
	dir := filepath.Join(root, "cached_inputs", strconv.Itoa(year))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, strconv.Itoa(day)+".txt")
	require.NoError(t, os.WriteFile(p, []byte(text), 0o600))
	return p
}

func TestGet_CachedInput(t *testing.T) {
	root := t.TempDir()
	writeCached(t, root, 2022, 1, "cached input\n")
	stub := &stubClient{}
	repo := New(root, stub)

	got, err := repo.Get(context.Background(), 2022, 1)
	require.NoError(t, err)

	want := puzzle.Input{Year: 2022, Day: 1, Input: "cached input\n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, stub.calls, "a cache hit must not reach the client")
}

func TestGet_FetchesAndCachesMiss(t *testing.T) {
	root := t.TempDir()
	stub := &stubClient{inputs: map[call]string{{2022, 1}: "Some input\n"}}
	repo := New(root, stub)

	got, err := repo.Get(context.Background(), 2022, 1)
	require.NoError(t, err)

	assert.Equal(t, []call{{2022, 1}}, stub.calls)
	assert.Equal(t, puzzle.Input{Year: 2022, Day: 1, Input: "Some input\n"}, got)

	cached, err := os.ReadFile(filepath.Join(root, "cached_inputs", "2022", "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Some input\n", string(cached))
}

func TestGet_FetchesAtMostOnce(t *testing.T) {
	stub := &stubClient{inputs: map[call]string{
		{2020, 5}:  "five\n",
		{2020, 25}: "twenty five\n",
	}}
	repo := New(t.TempDir(), stub)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := repo.Get(ctx, 2020, 5)
		require.NoError(t, err)
		assert.Equal(t, "five\n", got.Input)
	}
	_, err := repo.Get(ctx, 2020, 25)
	require.NoError(t, err)

	assert.Equal(t, []call{{2020, 5}, {2020, 25}}, stub.calls)
}

func TestGet_ValidatesBeforeFetching(t *testing.T) {
	stub := &stubClient{}
	repo := New(t.TempDir(), stub)

	for _, c := range []call{{2014, 1}, {2022, 0}, {2022, 26}} {
		_, err := repo.Get(context.Background(), c.Year, c.Day)
		var verr *puzzle.ValidationError
		assert.ErrorAs(t, err, &verr, "%v", c)
	}
	assert.Empty(t, stub.calls)
}

func TestGet_ClientErrorIsNotCached(t *testing.T) {
	root := t.TempDir()
	stub := &stubClient{err: puzzle.NewInputUnavailable(2022, 1)}
	repo := New(root, stub)

	_, err := repo.Get(context.Background(), 2022, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, puzzle.ErrInputUnavailable))
	assert.Equal(t, "Error with puzzle <year=2022, day=1>: Puzzle input not available", err.Error())

	_, statErr := os.Stat(filepath.Join(root, "cached_inputs", "2022", "1.txt"))
	assert.True(t, os.IsNotExist(statErr))

	// A later success is fetched and cached.
	stub.err = nil
	stub.inputs = map[call]string{{2022, 1}: "released\n"}
	got, err := repo.Get(context.Background(), 2022, 1)
	require.NoError(t, err)
	assert.Equal(t, "released\n", got.Input)
	assert.Len(t, stub.calls, 2)
}

func TestGet_WriteFailurePropagates(t *testing.T) {
	root := t.TempDir()
	// A file where the year directory should go blocks MkdirAll.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "cached_inputs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cached_inputs", "2022"), nil, 0o600))

	stub := &stubClient{inputs: map[call]string{{2022, 1}: "x"}}
	repo := New(root, stub)

	_, err := repo.Get(context.Background(), 2022, 1)
	assert.ErrorContains(t, err, "failed to create cache directory")
}

func TestClearCache(t *testing.T) {
	root := t.TempDir()
	for year := 2015; year <= 2022; year++ {
		for day := 1; day <= 25; day++ {
			writeCached(t, root, year, day, "Input for day "+strconv.Itoa(day)+"\n")
		}
	}
	stub := &stubClient{inputs: map[call]string{{2018, 4}: "fresh\n"}}
	repo := New(root, stub)
	ctx := context.Background()

	require.NoError(t, repo.ClearCache(ctx))

	_, err := os.Stat(filepath.Join(root, "cached_inputs"))
	assert.True(t, os.IsNotExist(err))

	got, err := repo.Get(ctx, 2018, 4)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", got.Input)
	assert.Equal(t, []call{{2018, 4}}, stub.calls)
}

func TestClearCache_Absent(t *testing.T) {
	root := t.TempDir()
	stub := &stubClient{}
	repo := New(root, stub)

	require.NoError(t, repo.ClearCache(context.Background()))
	require.NoError(t, repo.ClearCache(context.Background()))
	assert.Empty(t, stub.calls)
}

func TestListAndPath(t *testing.T) {
	root := t.TempDir()
	writeCached(t, root, 2022, 2, "b")
	want := writeCached(t, root, 2021, 9, "a")
	repo := New(root, &stubClient{})

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2021, entries[0].Year)

	p, err := repo.Path(2021, 9)
	require.NoError(t, err)
	assert.Equal(t, want, p)

	_, err = repo.Path(2021, 31)
	assert.Error(t, err)
}
