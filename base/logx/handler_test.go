// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo))

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.Warn("abbreviated match", "property", "xlimmode", "value", "manual")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "abbreviated match")
	assert.Contains(t, out, "property=xlimmode")
	assert.Contains(t, out, "value=manual")
}

func TestHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelDebug)).With("manager", 1).WithGroup("event")
	lg.Debug("posted", "kind", "callback")
	out := buf.String()
	assert.Contains(t, out, "manager=1")
	assert.Contains(t, out, "event.kind=callback")
}

func TestHandlerUserLevel(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, nil))
	UserLevel = slog.LevelError
	lg.Warn("quiet")
	assert.Empty(t, buf.String())
	UserLevel = slog.LevelDebug
	lg.Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}
