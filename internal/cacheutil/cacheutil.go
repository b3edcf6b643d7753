// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/staranto/aocctl/internal/config"
)

// EnvCacheDir overrides the cache root.
const EnvCacheDir = "AOCCTL_CACHE_DIR"

// Dir resolves the cache root.
// Precedence:
//  1. override, if non-empty (the --cache-dir flag)
//  2. AOCCTL_CACHE_DIR, if set and non-empty
//  3. cache.dir from the config file
//  4. os.UserCacheDir()/aocctl
//
// Returns ("", false) if a root cannot be resolved.
func Dir(override string) (string, bool) {
	if override != "" {
		return expandHome(override), true
	}
	if c, ok := os.LookupEnv(EnvCacheDir); ok && c != "" {
		return expandHome(c), true
	}
	if c, err := config.GetString("cache.dir"); err == nil && c != "" {
		return expandHome(c), true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "aocctl"), true
	}
	return "", false
}

// EnsureBaseDir resolves the cache root and creates it.
func EnsureBaseDir(override string) (string, error) {
	base, ok := Dir(override)
	if !ok {
		return "", fmt.Errorf("unable to resolve a cache directory; set %s", EnvCacheDir)
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	log.Debugf("cache root: %s", base)
	return base, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
