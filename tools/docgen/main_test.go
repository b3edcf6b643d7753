// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/aocctl/internal/command"
	"github.com/staranto/aocctl/internal/meta"
)

func TestCollectPages(t *testing.T) {
	pages := collectPages(command.NewApp(meta.Meta{}))

	var names []string
	for _, p := range pages {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"aocctl",
		"aocctl-input",
		"aocctl-cache",
		"aocctl-cache-ls",
		"aocctl-cache-clear",
		"aocctl-cache-path",
		"aocctl-completion",
	}, names)
}

func TestCommandMarkdown(t *testing.T) {
	pages := collectPages(command.NewApp(meta.Meta{}))

	var md string
	for _, p := range pages {
		if p.Name == "aocctl-input" {
			md = p.Markdown
		}
	}
	require.NotEmpty(t, md)

	assert.Contains(t, md, "% AOCCTL-INPUT(1)")
	assert.Contains(t, md, "aocctl-input - print a puzzle input")
	assert.Contains(t, md, "**aocctl input YEAR DAY [options]**")
	assert.Contains(t, md, "**--output**, **-o**")
	assert.Contains(t, md, "**--session**")

	man := string(md2man.Render([]byte(md)))
	assert.Contains(t, man, ".TH")
}

func TestWriteFileIfChanged(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.1")

	require.NoError(t, writeFileIfChanged(p, []byte("one\n"), true))
	info, err := os.Stat(p)
	require.NoError(t, err)

	// Same content modulo whitespace is not rewritten.
	require.NoError(t, writeFileIfChanged(p, []byte("one"), true))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(b))
	assert.Equal(t, info.Size(), int64(len(b)))

	require.NoError(t, writeFileIfChanged(p, []byte("two\n"), true))
	b, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(b))
}
