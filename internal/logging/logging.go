// Package logging provides treedb's debug logging channel: a package-level
// Logf gated by an enable flag, matching the debug-logging convention used
// throughout the CLI layer. Unlike a typical structured logger, this is
// meant purely for developer diagnostics, not for output a script should
// parse.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu        sync.Mutex
	enabled   bool
	logger    *log.Logger
	writer    io.Closer
	sessionID string
)

// Enable turns on debug logging, writing to path through a rotating
// lumberjack writer (5 MiB per file, 3 backups kept, 28 days retained).
// Calling Enable more than once replaces the previous destination.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if writer != nil {
		_ = writer.Close()
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}
	logger = log.New(lj, "", log.LstdFlags|log.Lmicroseconds)
	writer = lj
	enabled = true
	sessionID = uuid.NewString()
	logger.Output(2, fmt.Sprintf("session %s started, pid %d", sessionID, os.Getpid()))
	return nil
}

// EnableFromEnv turns on debug logging if the named environment variable is
// set to a non-empty path, mirroring the TREEDB_DEBUG_LOG convention.
func EnableFromEnv(envVar string) error {
	path := strings.TrimSpace(os.Getenv(envVar))
	if path == "" {
		return nil
	}
	return Enable(path)
}

// Disable turns off debug logging and closes the underlying file, if any.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	if writer != nil {
		_ = writer.Close()
	}
	enabled = false
	logger = nil
	writer = nil
}

// Logf writes a debug log line if logging is enabled; otherwise it is a
// no-op. Call sites should not guard on Enabled() themselves — Logf already
// pays that cost internally.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || logger == nil {
		return
	}
	logger.Output(2, fmt.Sprintf(format, args...))
}

// Enabled reports whether debug logging is currently turned on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}
