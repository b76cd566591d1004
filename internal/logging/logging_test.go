// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/txcat/internal/config"
)

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txcat.log")
	cfg := config.Config{Log: config.LogConfig{File: path, Level: "debug"}}

	l, err := Setup(cfg, nil)
	require.NoError(t, err)
	l.WithField("session", 1).Debug("first page requested")
	require.NoError(t, l.Close(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first page requested")
	assert.Contains(t, string(data), "session=1")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSetup_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := Setup(config.Config{Log: config.LogConfig{Level: "warn"}}, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.NoError(t, l.Close(context.Background()))
}

func TestSetup_Discard(t *testing.T) {
	l, err := Setup(config.Config{Log: config.LogConfig{Level: "info"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, l.Out)
}

func TestSetup_Errors(t *testing.T) {
	_, err := Setup(config.Config{Log: config.LogConfig{Level: "chatty"}}, nil)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "missing", "txcat.log")
	_, err = Setup(config.Config{Log: config.LogConfig{File: bad, Level: "info"}}, nil)
	assert.Error(t, err)
}
