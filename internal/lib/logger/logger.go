// SPDX-License-Identifier: MIT

// Package logger builds the process logger for a given environment.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Supported environments.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// ErrUnknownEnv indicates an environment name outside EnvLocal/EnvDev/EnvProd.
var ErrUnknownEnv = errors.New("logger: unknown environment")

// New returns a logger for env writing to w:
//   - local: text, debug level
//   - dev:   JSON, debug level
//   - prod:  JSON, info level
func New(env string, w io.Writer) (*slog.Logger, error) {
	switch env {
	case EnvLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
	case EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
	case EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnv, env)
	}
}

// Err is a shorthand attribute for errors.
func Err(err error) slog.Attr {
	return slog.String("err", err.Error())
}
