// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, FlagLevel(true, false, true, slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, FlagLevel(false, true, true, slog.LevelWarn))
	assert.Equal(t, slog.LevelError, FlagLevel(false, false, true, slog.LevelDebug))
	assert.Equal(t, slog.LevelInfo, FlagLevel(false, false, false, slog.LevelInfo))
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug", slog.LevelWarn)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("Error", slog.LevelWarn)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, l)

	l, err = ParseLevel("", slog.LevelInfo)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	l, err = ParseLevel("loud", slog.LevelWarn)
	assert.ErrorContains(t, err, `"loud"`)
	assert.Equal(t, slog.LevelWarn, l)
}
