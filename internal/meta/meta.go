// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/aocctl/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args   []string
	Config config.Type
	// Prompt reads a secret from the user. nil means no interactive terminal.
	Prompt func(label string) (string, error)
}
