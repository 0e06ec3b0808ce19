package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one 2D true-colour frame with a single red point, then an end marker
var sampleShow = []byte(
	"ILDA\x00\x00\x00\x05" + "sample  " + "goilda  " + "\x00\x01\x00\x00\x00\x01\x00\x00" +
		"\x40\x00\xc0\x00\x00" + "\x00\x00\xff" +
		"ILDA\x00\x00\x00\x05" + "        " + "        " + "\x00\x00\x00\x00\x00\x00\x00\x00")

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard
	err := cmd.Run(context.Background(), append([]string{"ildadump"}, args...))
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ild")
	require.NoError(t, os.WriteFile(path, sampleShow, 0o644))
	return path
}

func TestInfo(t *testing.T) {
	path := writeSample(t)
	out, err := runCommand(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 records")
	assert.Contains(t, out, `frame "sample" (goilda) #0/1 2d-truecolor: 1 points`)
	assert.Contains(t, out, `frame "" () #0/0 2d-truecolor: 0 points`)
}

func TestPoints(t *testing.T) {
	out, err := runCommand(t, "points", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, `frame 0 "sample" 2d-truecolor`)
	assert.Contains(t, out, "  0.50000   0.50000   0.00000 #ff0000 blanked=false index=0")
}

func TestHeaders(t *testing.T) {
	out, err := runCommand(t, "headers", "--hex", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "2 headers")
	assert.Contains(t, out, "|ILDA....sample  |")
	assert.Contains(t, out, "00000028  49 4c 44 41")
}

func TestQuantize(t *testing.T) {
	out, err := runCommand(t, "quantize", "--colors", "4", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "#ff0000")
}

func TestConfigPalette(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("palette:\n  colors: [\"#00ff00\"]\n"), 0o644))

	// 2D indexed frame, one point using palette index 0
	show := filepath.Join(dir, "indexed.ild")
	require.NoError(t, os.WriteFile(show, []byte(
		"ILDA\x00\x00\x00\x01"+"idx     "+"goilda  "+"\x00\x01\x00\x00\x00\x01\x00\x00"+
			"\x00\x00\x00\x00\x00\x00"), 0o644))

	out, err := runCommand(t, "--config", cfgPath, "points", show)
	require.NoError(t, err)
	assert.Contains(t, out, "#00ff00")
}

func TestErrors(t *testing.T) {
	_, err := runCommand(t, "points")
	assert.ErrorIs(t, err, errMissingFile)

	_, err = runCommand(t, "info", filepath.Join(t.TempDir(), "missing.ild"))
	assert.Error(t, err)
}
