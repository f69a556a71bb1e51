// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the log level selection and the colored
// [slog.Handler] used by the graphics tools.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the lowest level of the messages shown to the user.
var UserLevel = slog.LevelWarn

// FlagLevel returns the level chosen by the debug, info and quiet
// verbosity flags of a command, the most verbose set flag winning.
// It returns def when no flag is set.
func FlagLevel(debug, info, quiet bool, def slog.Level) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case info:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	}
	return def
}

// ParseLevel parses a level name such as "debug" or "Warn".
// The empty name gives def.
func ParseLevel(s string, def slog.Level) (slog.Level, error) {
	if s == "" {
		return def, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return def, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
