package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/zoomer"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { zoomer.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func writeImage(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "still.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestUnknownFlagPrintsUsage(t *testing.T) {
	stdout, stderr, err := execute(t, "--frobnicate")
	require.NoError(t, err)
	assert.Contains(t, stderr, "unknown flag")
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestPositionalArgumentPrintsUsage(t *testing.T) {
	stdout, stderr, err := execute(t, "extra")
	require.NoError(t, err)
	assert.Contains(t, stderr, `unexpected argument "extra"`)
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestPrintConfig(t *testing.T) {
	path := writeConfig(t, "grid_alpha = 80\n")
	stdout, _, err := execute(t, "-c", path, "--print-config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "grid_alpha = 80")
	assert.Contains(t, stdout, "[keys]")
}

func TestBadConfigFails(t *testing.T) {
	path := writeConfig(t, "[keys]\nquit = \"Hyper\"\n")
	_, _, err := execute(t, "-c", path, "-i", writeImage(t, 8, 8), "-o", filepath.Join(t.TempDir(), "out.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hyper")
}

func TestMissingImageIsInitError(t *testing.T) {
	path := writeConfig(t, "")
	_, _, err := execute(t, "-c", path, "-i", filepath.Join(t.TempDir(), "missing.png"), "-o", "unused.png")
	require.ErrorIs(t, err, zoomer.ErrInit)
	assert.Contains(t, err.Error(), "could not initialize image")
}

func TestSnapshot(t *testing.T) {
	cfgPath := writeConfig(t, "")
	out := filepath.Join(t.TempDir(), "frame.png")

	_, _, err := execute(t, "-c", cfgPath, "-i", writeImage(t, 32, 16), "-o", out, "-t", "0.5")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 32, 16), img.Bounds())
	r, g, _, _ := img.At(5, 7).RGBA()
	assert.Equal(t, uint32(5), r>>8)
	assert.Equal(t, uint32(7), g>>8)
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "-c", writeConfig(t, ""), "-i", writeImage(t, 4, 2), "--dump", "-o", "frame.png")
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, rawDumpPath))
	require.NoError(t, err)
	assert.Len(t, raw, 4*2*4)
}

func TestHelp(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "--zoom-time"))
}
