package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivoronin/filequery"
)

// =============================================================================
// Section 1: Logger Setup
// =============================================================================

// TestSetupLoggerLevels tests valid and invalid level strings.
func TestSetupLoggerLevels(t *testing.T) {
	l := logrus.New()

	require.NoError(t, setupLogger(l, "debug", false))
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)

	require.NoError(t, setupLogger(l, "error", true))
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	assert.Error(t, setupLogger(l, "chatty", false))
}

// =============================================================================
// Section 2: Output Formatting
// =============================================================================

// TestPrintPathsPlain tests one path per line.
func TestPrintPathsPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPaths(&buf, []string{"/a", "/b"}, "", false))
	assert.Equal(t, "/a\n/b\n", buf.String())
}

// TestPrintPathsLong tests humanized sizes, including for relative paths.
func TestPrintPathsLong(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.bin"), make([]byte, 2048), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "d"), 0o755))

	var buf bytes.Buffer
	require.NoError(t, printPaths(&buf, []string{"f.bin", "d", "missing"}, root+"/", true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "2.0 KiB")
	assert.True(t, strings.HasSuffix(lines[0], "  f.bin"))
	assert.Contains(t, lines[1], "-  d")
	assert.Contains(t, lines[2], "-  missing")
}

// TestPrintTypes tests sorted category listing.
func TestPrintTypes(t *testing.T) {
	var buf bytes.Buffer
	table := filequery.FileTypes{"video": {"mp4", "mkv"}, "audio": {"mp3"}}
	require.NoError(t, printTypes(&buf, table))
	assert.Equal(t, "audio: mp3\nvideo: mp4, mkv\n", buf.String())
}
