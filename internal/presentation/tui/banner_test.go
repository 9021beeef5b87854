package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	var buf bytes.Buffer
	Title(&buf)
	assert.Contains(t, buf.String(), "ε-NFA to NFA Converter")
}

func TestPrintBanner_NotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	PrintBanner(f)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "ε-NFA to NFA Converter")
	assert.NotContains(t, string(data), "\x1b[")
}
