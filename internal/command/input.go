// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocctl/internal/meta"
)

// InputCommandAction prints the input for YEAR DAY, fetching it only when it
// is not already cached.
func InputCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	p, err := ParsePuzzleArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	repo, err := NewRepository(ctx, cmd)
	if err != nil {
		return err
	}

	w := Writer(cmd)

	if cmd.Bool("path") {
		loc, err := repo.Path(p.Year, p.Day)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, loc)
		return nil
	}

	in, err := repo.Get(ctx, p.Year, p.Day)
	if err != nil {
		return err
	}

	switch cmd.String("output") {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(in)
	default:
		_, err = fmt.Fprint(w, in.Input)
		return err
	}
}

// InputCommandBuilder constructs the cli.Command for "input".
func InputCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "input",
		Usage:     "print a puzzle input, fetching it on a cache miss",
		UsageText: "aocctl input YEAR DAY [options]",
		Flags: []cli.Flag{
			NewOutputFlag("input", meta.Config.Source),
			&cli.BoolFlag{
				Name:        "path",
				Usage:       "print where the input is cached instead of its contents",
				HideDefault: true,
			},
		},
		Action: InputCommandAction,
		Meta:   meta,
	}).Build()
}
