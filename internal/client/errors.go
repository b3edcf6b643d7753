// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
)

// ErrReadTimeout means the response body did not arrive within the read
// budget.
var ErrReadTimeout = errors.New("read timeout")

// StatusError is any non-2xx response other than 404. It is passed through to
// the caller untranslated.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status fetching %s: %s", e.URL, e.Status)
}
