// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewConsoleLogger returns a console logger for CLI use at the selected verbosity.
//
// Verbosity 0 logs warnings only, 1 adds info, 2 adds debug, and anything
// higher enables trace output.
func NewConsoleLogger(output io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch verbosity {
	case 0:
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	writer := zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// componentLogger returns logger tagged with one component name.
func componentLogger(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
