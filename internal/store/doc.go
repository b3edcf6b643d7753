// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package store defines where cached puzzle inputs live. Backends are in the
// local and s3 subpackages.
package store
