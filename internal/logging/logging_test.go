package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(false, &buf)

	log.Info("loading inventory for %s", "bucket1")
	log.Warn("skipped %d malformed inventory rows", 3)
	log.Error("download failed")
	log.Debug("resolved %d data files", 2)

	out := buf.String()
	require.Contains(t, out, "loading inventory for bucket1\n")
	require.Contains(t, out, "WARNING: skipped 3 malformed inventory rows\n")
	require.Contains(t, out, "ERROR: download failed\n")
	require.Contains(t, out, "DEBUG: resolved 2 data files\n")
}

func TestLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(true, &buf)

	log.Info("progress line")
	log.Debug("debug line")

	require.Empty(t, buf.String())

	log.Warn("still shown")
	log.Error("also shown")

	out := buf.String()
	require.Contains(t, out, "WARNING: still shown\n")
	require.Contains(t, out, "ERROR: also shown\n")
	require.NotContains(t, out, "progress line")
}
