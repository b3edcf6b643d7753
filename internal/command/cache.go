// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocctl/internal/meta"
	"github.com/staranto/aocctl/internal/store"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// CacheListAction prints one row per cached input.
func CacheListAction(ctx context.Context, cmd *cli.Command) error {
	repo, err := NewRepository(ctx, cmd)
	if err != nil {
		return err
	}

	entries, err := repo.List(ctx)
	if err != nil {
		return err
	}

	w := Writer(cmd)
	if len(entries) == 0 {
		fmt.Fprintf(w, "no cached inputs in %s\n", repo.Root())
		return nil
	}

	fmt.Fprintln(w, renderEntries(entries, cmd.Bool("titles")))
	return nil
}

func renderEntries(entries []store.Entry, titles bool) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Year),
			strconv.Itoa(e.Day),
			humanize.Bytes(uint64(e.Size)),
			humanize.Time(e.Modified),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)
	if titles {
		t = t.Headers("YEAR", "DAY", "SIZE", "MODIFIED")
	}
	return t.String()
}

// CacheClearAction removes every cached input.
func CacheClearAction(ctx context.Context, cmd *cli.Command) error {
	repo, err := NewRepository(ctx, cmd)
	if err != nil {
		return err
	}
	if err := repo.ClearCache(ctx); err != nil {
		return err
	}
	fmt.Fprintf(Writer(cmd), "cleared %s\n", repo.Root())
	return nil
}

// CachePathAction prints the cache root, or the entry location for YEAR DAY.
func CachePathAction(ctx context.Context, cmd *cli.Command) error {
	repo, err := NewRepository(ctx, cmd)
	if err != nil {
		return err
	}

	w := Writer(cmd)
	if cmd.Args().Len() == 0 {
		fmt.Fprintln(w, repo.Root())
		return nil
	}

	p, err := ParsePuzzleArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	loc, err := repo.Path(p.Year, p.Day)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, loc)
	return nil
}

// CacheCommandBuilder constructs the "cache" command group.
func CacheCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "inspect or clear the input cache",
		Commands: []*cli.Command{
			(&CommandBuilder{
				Name:      "ls",
				Usage:     "list cached inputs",
				UsageText: "aocctl cache ls [options]",
				Flags:     []cli.Flag{NewTitlesFlag("cache_ls", meta.Config.Source)},
				Action:    CacheListAction,
				Meta:      meta,
			}).Build(),
			(&CommandBuilder{
				Name:      "clear",
				Usage:     "remove every cached input",
				UsageText: "aocctl cache clear [options]",
				Action:    CacheClearAction,
				Meta:      meta,
			}).Build(),
			(&CommandBuilder{
				Name:      "path",
				Usage:     "print the cache location",
				UsageText: "aocctl cache path [YEAR DAY] [options]",
				Action:    CachePathAction,
				Meta:      meta,
			}).Build(),
		},
	}
}
