// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger builds the structured slog loggers used by the services.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// New returns a JSON slog logger writing to w at the given level.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return &slog.Logger{}, fmt.Errorf(`{"level":"error","message":"%s: %s","ts":"%s"}`, err, levelText, time.Now().Format(time.RFC3339Nano))
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	})

	return slog.New(logHandler), nil
}

// NewMock returns a logger that discards everything.
func NewMock() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ExitWithError closes the current process with error code.
func ExitWithError(code *int) {
	if *code != 0 {
		os.Exit(*code)
	}
}
