// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"golang.org/x/term"

	"github.com/staranto/aocctl/internal/client"
)

var errNoSession = errors.New("no session configured; use --session, AOC_SESSION or the session key in aocctl.yaml")

// TerminalPrompt reads a secret from the controlling terminal without echo.
// It returns nil when stdin is not a terminal.
func TerminalPrompt() func(string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func(label string) (string, error) {
		fmt.Fprint(os.Stderr, label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read session: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
}

// lazyClient defers resolving the session, and so building the AocClient,
// until the first cache miss. Cache hits never prompt.
type lazyClient struct {
	once    sync.Once
	session func() (string, error)
	build   func(session string) (*client.AocClient, error)
	c       *client.AocClient
	err     error
}

func (l *lazyClient) GetPuzzleInput(ctx context.Context, year, day int) (string, error) {
	l.once.Do(func() {
		var session string
		if session, l.err = l.session(); l.err != nil {
			return
		}
		l.c, l.err = l.build(session)
		if l.err == nil {
			log.Debugf("client: %v", l.c)
		}
	})
	if l.err != nil {
		return "", l.err
	}
	return l.c.GetPuzzleInput(ctx, year, day)
}

// resolveSession returns the configured session, falling back to prompt.
func resolveSession(configured string, prompt func(string) (string, error)) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if prompt == nil {
		return "", errNoSession
	}
	s, err := prompt("Advent of Code session: ")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", errNoSession
	}
	return s, nil
}
