// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Gozala/bcrypto/cashaddr/legacy"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to the configured error
// stream and, when one is initialized, the write-end pipe of a log rotator.
type logWriter struct {
	out     io.Writer
	rotator *rotator.Rotator
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.out.Write(p)
	if w.rotator != nil {
		w.rotator.Write(p)
	}
	return len(p), nil
}

// logging holds the backend and subsystem loggers of a single invocation.
type logging struct {
	writer *logWriter
	log    slog.Logger
	lgcy   slog.Logger
}

// subsystemLoggers returns the loggers keyed by their subsystem identifier.
func (l *logging) subsystemLoggers() map[string]slog.Logger {
	return map[string]slog.Logger{
		"CADR": l.log,
		"LGCY": l.lgcy,
	}
}

// initLogging creates the logging backend writing to out and, when logFile is
// not empty, to a rotated log file.  The legacy package logger is set to the
// LGCY subsystem.
func initLogging(out io.Writer, logFile, level string) (*logging, error) {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("invalid debug level %q", level)
	}

	w := &logWriter{out: out}
	if logFile != "" {
		logDir, _ := filepath.Split(logFile)
		if logDir != "" {
			if err := os.MkdirAll(logDir, 0700); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		r, err := rotator.New(logFile, 10*1024, false, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to create file rotator: %w", err)
		}
		w.rotator = r
	}

	backend := slog.NewBackend(w)
	l := &logging{
		writer: w,
		log:    backend.Logger("CADR"),
		lgcy:   backend.Logger("LGCY"),
	}
	for _, logger := range l.subsystemLoggers() {
		logger.SetLevel(lvl)
	}
	legacy.UseLogger(l.lgcy)
	return l, nil
}

// close flushes and closes the log rotator, if any.
func (l *logging) close() {
	if l.writer.rotator != nil {
		l.writer.rotator.Close()
	}
}
