// Package transcode wraps ffmpeg to normalize downloaded audio into a
// fixed WAV profile: 48 kHz, stereo, 16-bit signed PCM.
package transcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrTranscode is returned for any ffmpeg failure, including
// undecodable input.
var ErrTranscode = errors.New("transcode error")

// FFmpeg invokes the ffmpeg binary. The zero value is not usable; call
// New.
type FFmpeg struct {
	bin    string
	logger *slog.Logger
}

// New returns an FFmpeg using bin, defaulting to "ffmpeg" on PATH.
func New(bin string, logger *slog.Logger) *FFmpeg {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpeg{
		bin:    bin,
		logger: logger.WithGroup("transcode"),
	}
}

// Normalize converts the audio file at inputPath into a PCM WAV file at
// outputPath. On success the input file is deleted and the output is
// guaranteed to exist and be non-empty. On failure any partial output
// is removed; the input is left in place for the caller to clean up.
// There is no retry: a transcode failure is terminal.
func (f *FFmpeg) Normalize(ctx context.Context, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("%w: input missing: %v", ErrTranscode, err)
	}

	start := time.Now()
	cmd := exec.CommandContext(
		ctx,
		f.bin,
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", inputPath,
		"-vn",
		"-ar", "48000",
		"-ac", "2",
		"-acodec", "pcm_s16le",
		outputPath,
	)

	f.logger.InfoContext(ctx, fmt.Sprintf("starting transcode of %s", inputPath))
	f.logger.DebugContext(ctx, fmt.Sprintf("running cmd %s", cmd))
	out, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(outputPath)
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%w: %s", ErrTranscode, msg)
	}

	fi, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("%w: no output written: %v", ErrTranscode, err)
	}
	if fi.Size() == 0 {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: empty output file %s", ErrTranscode, outputPath)
	}

	if err := os.Remove(inputPath); err != nil {
		f.logger.WarnContext(ctx, fmt.Sprintf("could not remove intermediate file %s: %v", inputPath, err))
	}
	f.logger.InfoContext(ctx, fmt.Sprintf("finished transcode to %s", outputPath), "transcode.time", time.Since(start).String())
	return nil
}
