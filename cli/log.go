// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w at cfg.LogLevel, or a logger
// that discards everything when cfg.Logging is false. Keeping diagnostics
// off by default leaves stderr empty on success.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	if !cfg.Logging || w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
}
