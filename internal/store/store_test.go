// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "2022/1.txt", Key(2022, 1))
	assert.Equal(t, "2015/25.txt", Key(2015, 25))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantYear int
		wantDay  int
		wantErr  bool
	}{
		{name: "bare key", key: "2022/1.txt", wantYear: 2022, wantDay: 1},
		{name: "object key", key: "team/cached_inputs/2019/17.txt", wantYear: 2019, wantDay: 17},
		{name: "windows path", key: `C:\cache\cached_inputs\2020\3.txt`, wantYear: 2020, wantDay: 3},
		{name: "no year", key: "1.txt", wantErr: true},
		{name: "wrong suffix", key: "2022/1.json", wantErr: true},
		{name: "non numeric day", key: "2022/one.txt", wantErr: true},
		{name: "non numeric year", key: "latest/1.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, day, err := ParseKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{Year: 2022, Day: 10},
		{Year: 2021, Day: 3},
		{Year: 2022, Day: 2},
	}
	SortEntries(entries)
	assert.Equal(t, []Entry{
		{Year: 2021, Day: 3},
		{Year: 2022, Day: 2},
		{Year: 2022, Day: 10},
	}, entries)
}
