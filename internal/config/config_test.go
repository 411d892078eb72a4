package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()

	assert.Equal(t, DefaultListen, c.Listen)
	assert.Equal(t, int64(DefaultMaxBodyBytes), c.MaxBodyBytes)
	assert.Equal(t, DefaultRetries, c.Retries)
	assert.Equal(t, DefaultSocketTimeout, c.SocketTimeout)
	assert.NotEmpty(t, c.ScratchDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TUBEWAV_LISTEN", "127.0.0.1:9000")
	t.Setenv("TUBEWAV_SCRATCH_DIR", "/tmp/wavscratch")
	t.Setenv("TUBEWAV_RETRIES", "5")
	t.Setenv("TUBEWAV_SOCKET_TIMEOUT_SECONDS", "10")
	t.Setenv("TUBEWAV_MAX_BODY_BYTES", "1048576")
	t.Setenv("TUBEWAV_YTDLP", "/opt/bin/yt-dlp")

	c := Load()

	assert.Equal(t, "127.0.0.1:9000", c.Listen)
	assert.Equal(t, "/tmp/wavscratch", c.ScratchDir)
	assert.Equal(t, 5, c.Retries)
	assert.Equal(t, 10*time.Second, c.SocketTimeout)
	assert.Equal(t, int64(1048576), c.MaxBodyBytes)
	assert.Equal(t, "/opt/bin/yt-dlp", c.YtDlpBin)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("TUBEWAV_RETRIES", "not-a-number")
	t.Setenv("TUBEWAV_MAX_BODY_BYTES", "-1")

	c := Load()

	assert.Equal(t, DefaultRetries, c.Retries)
	assert.Equal(t, int64(DefaultMaxBodyBytes), c.MaxBodyBytes)
}
