// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plog emits the pipeline's two diagnostic line formats,
// "[INFO][<stage>] - <message>" and "[ERROR][<stage>] - <message>",
// using the standard library's log.Logger the way
// jasonKoogler/cpu-sim's cmd/simulator/main.go constructs its own
// logger — there is no structured-logging dependency anywhere in the
// example pack to reach for instead.
package plog

import (
	"io"
	"log"
)

// Logger writes INFO lines to one writer and ERROR lines to another.
// Unlike the original C plugin's log_info (stdout) / log_error
// (stderr) split, both diagnostic levels belong on standard error here
// — callers construct a Logger with the same writer for both so that
// standard output carries only the pipeline's transformed lines.
type Logger struct {
	info *log.Logger
	err  *log.Logger
}

// New returns a Logger writing INFO to info and ERROR to errw. Either
// writer may be io.Discard to silence that level.
func New(info, errw io.Writer) *Logger {
	return &Logger{
		info: log.New(info, "", 0),
		err:  log.New(errw, "", 0),
	}
}

// Info logs an informational line for the named stage. Calling Info
// on a nil *Logger is a no-op.
func (l *Logger) Info(stage, message string) {
	if l == nil {
		return
	}
	l.info.Printf("[INFO][%s] - %s", stage, message)
}

// Error logs an error line for the named stage. Calling Error on a
// nil *Logger is a no-op.
func (l *Logger) Error(stage, message string) {
	if l == nil {
		return
	}
	l.err.Printf("[ERROR][%s] - %s", stage, message)
}
