// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil resolves the on-disk cache root shared by every command.
package cacheutil
