package transcode

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizeMissingInput(t *testing.T) {
	f := New("ffmpeg", testLogger())
	dir := t.TempDir()

	err := f.Normalize(context.Background(), filepath.Join(dir, "nope.m4a"), filepath.Join(dir, "out.wav"))
	assert.ErrorIs(t, err, ErrTranscode)
}

func TestNewDefaultsBinary(t *testing.T) {
	f := New("", testLogger())
	assert.Equal(t, "ffmpeg", f.bin)
}
