// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// EnvLogLevel selects the log level (debug, info, warn, error, fatal).
const EnvLogLevel = "AOCCTL_LOG"

// InitLogger sets up Apex with a compact handler on stderr and a log level
// from the AOCCTL_LOG env variable. stdout is reserved for puzzle output.
func InitLogger() {
	log.SetHandler(NewHandler(os.Stderr))
	log.SetLevel(levelFromEnv(os.Getenv(EnvLogLevel)))
}

// levelFromEnv maps an AOCCTL_LOG value to a level. Empty or unknown values
// give ErrorLevel.
func levelFromEnv(value string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil {
		return log.ErrorLevel
	}
	return lvl
}

// CustomHandler formats log messages as one line per entry.
type CustomHandler struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewHandler returns a CustomHandler writing to out.
func NewHandler(out io.Writer) *CustomHandler {
	return &CustomHandler{out: out, now: time.Now}
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := h.now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}
