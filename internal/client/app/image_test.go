package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal PNG signature followed by filler, enough for content sniffing
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadImage_PNG(t *testing.T) {
	path := writeTempFile(t, "img.png", pngBytes)
	data, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestLoadImage_NotAnImage(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("just some text, definitely not pixels"))
	_, err := LoadImage(path)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
