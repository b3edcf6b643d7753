// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocctl/internal/command"
	"github.com/staranto/aocctl/internal/meta"
)

// Minimal doc generator:
// - Walks the aocctl command tree
// - Generates docs/man/share/man1/aocctl[-<cmd>...].1 via md2man

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	if err := os.MkdirAll(manOutDir, 0o755); err != nil {
		fatalf("creating man output dir: %v", err)
	}

	pages := collectPages(command.NewApp(meta.Meta{}))
	for _, p := range pages {
		manPath := filepath.Join(manOutDir, p.Name+".1")
		if err := writeFileIfChanged(manPath, md2man.Render([]byte(p.Markdown)), writeOnlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", p.Name, err)
		}
	}

	if len(pages) == 0 {
		fatalf("no commands found")
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}

type page struct {
	Name     string
	Markdown string
}

// collectPages returns one page per command, depth first, hidden commands
// and the implicit help command skipped.
func collectPages(root *cli.Command) []page {
	var pages []page
	var walk func(prefix []string, cmd *cli.Command)
	walk = func(prefix []string, cmd *cli.Command) {
		if cmd.Hidden || cmd.Name == "help" {
			return
		}
		path := append(append([]string{}, prefix...), cmd.Name)
		pages = append(pages, page{
			Name:     strings.Join(path, "-"),
			Markdown: commandMarkdown(path, cmd),
		})
		for _, sub := range cmd.Commands {
			walk(path, sub)
		}
	}
	walk(nil, root)
	return pages
}

type usager interface {
	GetUsage() string
}

func commandMarkdown(path []string, cmd *cli.Command) string {
	name := strings.Join(path, "-")

	var b strings.Builder
	fmt.Fprintf(&b, "%% %s(1) aocctl | User Commands\n\n", strings.ToUpper(name))

	b.WriteString("# NAME\n\n")
	fmt.Fprintf(&b, "%s - %s\n\n", name, cmd.Usage)

	b.WriteString("# SYNOPSIS\n\n")
	synopsis := cmd.UsageText
	if synopsis == "" {
		synopsis = strings.Join(path, " ") + " [command] [options]"
	}
	fmt.Fprintf(&b, "**%s**\n\n", synopsis)

	if len(cmd.Commands) > 0 {
		b.WriteString("# COMMANDS\n\n")
		for _, sub := range cmd.Commands {
			if sub.Hidden || sub.Name == "help" {
				continue
			}
			fmt.Fprintf(&b, "**%s**\n:   %s\n\n", sub.Name, sub.Usage)
		}
	}

	if len(cmd.Flags) > 0 {
		b.WriteString("# OPTIONS\n\n")
		for _, f := range cmd.Flags {
			names := make([]string, 0, len(f.Names()))
			for _, n := range f.Names() {
				if len(n) == 1 {
					names = append(names, "**-"+n+"**")
				} else {
					names = append(names, "**--"+n+"**")
				}
			}
			usage := ""
			if u, ok := f.(usager); ok {
				usage = u.GetUsage()
			}
			fmt.Fprintf(&b, "%s\n:   %s\n\n", strings.Join(names, ", "), usage)
		}
	}

	b.WriteString("# SEE ALSO\n\n")
	b.WriteString("**aocctl(1)**\n")
	return b.String()
}
