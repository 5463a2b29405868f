// SPDX-License-Identifier: MIT

// Package slogdiscard provides a slog.Handler that drops every record. It is
// the default logger of library runs and of handler tests.
package slogdiscard

import (
	"context"
	"log/slog"
)

// NewDiscardLogger returns a logger whose output goes nowhere.
func NewDiscardLogger() *slog.Logger {
	return slog.New(NewDiscardHandler())
}

// NewDiscardHandler returns a handler that drops every record.
func NewDiscardHandler() *DiscardHandler {
	return &DiscardHandler{}
}

// DiscardHandler implements slog.Handler as a no-op.
type DiscardHandler struct{}

// Enabled reports false so callers skip building attributes.
func (d *DiscardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (d *DiscardHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (d *DiscardHandler) WithAttrs([]slog.Attr) slog.Handler {
	return d
}

func (d *DiscardHandler) WithGroup(string) slog.Handler {
	return d
}
