// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	DefaultListen        = "0.0.0.0:5000"
	DefaultMaxBodyBytes  = 500 * 1024 * 1024 // 500 MiB
	DefaultRetries       = 3
	DefaultSocketTimeout = 30 * time.Second
	scratchDirName       = "temp_audio"
)

// Config holds all startup configuration. It is built once and passed
// explicitly; nothing mutates it afterwards.
type Config struct {
	Listen        string
	ScratchDir    string
	MaxBodyBytes  int64
	LogLevel      string
	Retries       int
	SocketTimeout time.Duration
	YtDlpBin      string
	FFmpegBin     string
	UserAgent     string
}

// Load reads configuration from TUBEWAV_* environment variables,
// falling back to defaults for anything unset or invalid.
func Load() *Config {
	return &Config{
		Listen:        valueOrDefault(os.Getenv("TUBEWAV_LISTEN"), DefaultListen),
		ScratchDir:    valueOrDefault(os.Getenv("TUBEWAV_SCRATCH_DIR"), defaultScratchDir()),
		MaxBodyBytes:  int64(intEnv("TUBEWAV_MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		LogLevel:      valueOrDefault(os.Getenv("TUBEWAV_LOG_LEVEL"), "info"),
		Retries:       intEnv("TUBEWAV_RETRIES", DefaultRetries),
		SocketTimeout: time.Duration(intEnv("TUBEWAV_SOCKET_TIMEOUT_SECONDS", int(DefaultSocketTimeout.Seconds()))) * time.Second,
		YtDlpBin:      os.Getenv("TUBEWAV_YTDLP"),
		FFmpegBin:     os.Getenv("TUBEWAV_FFMPEG"),
		UserAgent:     os.Getenv("TUBEWAV_USER_AGENT"),
	}
}

// defaultScratchDir is a directory beside the executable, falling back
// to the working directory when the executable path is unknown.
func defaultScratchDir() string {
	exe, err := os.Executable()
	if err != nil {
		return scratchDirName
	}
	return filepath.Join(filepath.Dir(exe), scratchDirName)
}

func valueOrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
