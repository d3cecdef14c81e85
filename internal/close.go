// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"io"
	"log/slog"
)

// Close closes c and logs a failure instead of returning it.
func Close(logger *slog.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn(err.Error())
	}
}
