/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns panics in the CLI and gallery into a report file and a
// non-zero exit.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	applog "antdkit/internal/log"
	"antdkit/internal/theme"
	"antdkit/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// Info describes what was running when a panic happened. A nil Info is valid.
type Info struct {
	// Dir receives the report; empty means os.TempDir().
	Dir     string
	Command string
	Args    []string
	// Theme, when set, is saved next to the report so edits are not lost.
	Theme *theme.Theme
}

// Recover captures a panic, logs an error with stacktrace,
// writes an error report file, and saves the active theme (if provided).
//
// Usage: defer crash.Recover(info)
func Recover(info *Info) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, _ := writeReport(info, r, stack)
		if info != nil && info.Theme != nil {
			if path, err := saveTheme(info); err != nil {
				l.Error("theme crash snapshot failed", slog.Any("err", err))
			} else {
				l.Info("theme crash snapshot written", slog.String("path", path))
			}
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		// Exit with a non-zero code to indicate failure in CLI context.
		exitFn(2)
	}
}

func reportDir(info *Info) string {
	if info != nil && info.Dir != "" {
		_ = os.MkdirAll(info.Dir, 0o755)
		return info.Dir
	}
	return os.TempDir()
}

func saveTheme(info *Info) (string, error) {
	path := filepath.Join(reportDir(info), fmt.Sprintf("theme-crash-%s.json", time.Now().Format("20060102-150405")))
	return path, theme.SaveFile(path, *info.Theme)
}

func writeReport(info *Info, panicVal any, stack []byte) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(reportDir(info), fmt.Sprintf("crash-%s.log", stamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			applog.WithComponent("crash").Error("failed to close crash report file", slog.Any("err", err), slog.String("path", path))
		}
	}()

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "antdkit Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if info != nil {
		if info.Command != "" {
			_, _ = fmt.Fprintf(&buf, "Command: %s\n", info.Command)
		}
		if len(info.Args) > 0 {
			_, _ = fmt.Fprintf(&buf, "Args: %s\n", strings.Join(info.Args, " "))
		}
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if _, err := f.Write(buf.Bytes()); err != nil {
		return path, err
	}
	_ = f.Sync()
	return path, nil
}
