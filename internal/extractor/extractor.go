// Package extractor wraps the yt-dlp command line tool. It resolves a
// video URL to metadata plus the list of available stream descriptors,
// and downloads a chosen audio stream to a caller-provided scratch
// path. Failures are classified into error categories at this boundary
// so callers never inspect tool output themselves.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Options is the immutable extractor configuration, built once at
// startup. Per-call values (URL, format id, output path) are explicit
// call parameters instead.
type Options struct {
	Bin           string        // yt-dlp binary, defaults to "yt-dlp" on PATH
	Retries       int           // bounded retry count passed to yt-dlp
	SocketTimeout time.Duration // per-connection timeout
	UserAgent     string        // optional request user agent
}

// Client runs yt-dlp with a fixed option set.
type Client struct {
	opts   Options
	logger *slog.Logger
}

// Metadata describes a resolved video. It is used for response shaping
// and filename construction only and is never persisted.
type Metadata struct {
	ID       string
	Title    string
	Uploader string
	Duration int // seconds
}

// New returns a Client using opts. Zero fields fall back to defaults.
func New(opts Options, logger *slog.Logger) *Client {
	if opts.Bin == "" {
		opts.Bin = "yt-dlp"
	}
	if opts.Retries <= 0 {
		opts.Retries = 3
	}
	if opts.SocketTimeout <= 0 {
		opts.SocketTimeout = 30 * time.Second
	}
	return &Client{
		opts:   opts,
		logger: logger.WithGroup("extractor"),
	}
}

// shape of the yt-dlp --dump-json output we care about
type dumpInfo struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Uploader string       `json:"uploader"`
	Duration float64      `json:"duration"`
	Formats  []dumpFormat `json:"formats"`
}

type dumpFormat struct {
	FormatID string   `json:"format_id"`
	ACodec   string   `json:"acodec"`
	VCodec   string   `json:"vcodec"`
	ABR      *float64 `json:"abr"`
	Ext      string   `json:"ext"`
}

// Resolve performs a metadata-only query for url. No stream bytes are
// downloaded.
func (c *Client) Resolve(ctx context.Context, url string) (*Metadata, []Format, error) {
	args := []string{
		"--quiet",
		"--no-warnings",
		"--skip-download",
		"--no-playlist",
		"--dump-json",
	}
	args = c.appendCommonArgs(args)
	args = append(args, url)

	cmd := exec.CommandContext(ctx, c.opts.Bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.DebugContext(ctx, fmt.Sprintf("running cmd %s", cmd))
	if err := cmd.Run(); err != nil {
		return nil, nil, c.toolError("resolve", stderr.String(), err)
	}

	meta, formats, err := parseDump(stdout.Bytes())
	if err != nil {
		return nil, nil, &Error{Kind: KindUnknown, Op: "resolve", Detail: err.Error()}
	}
	return meta, formats, nil
}

// parseDump converts yt-dlp --dump-json output into metadata and the
// stream descriptor list. Missing title and uploader fall back to the
// placeholders used for filename construction.
func parseDump(out []byte) (*Metadata, []Format, error) {
	var info dumpInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, nil, fmt.Errorf("bad dump-json output: %v", err)
	}

	meta := &Metadata{
		ID:       info.ID,
		Title:    info.Title,
		Uploader: info.Uploader,
		Duration: int(info.Duration),
	}
	if meta.Title == "" {
		meta.Title = "audio"
	}
	if meta.Uploader == "" {
		meta.Uploader = "unknown"
	}

	formats := make([]Format, 0, len(info.Formats))
	for _, f := range info.Formats {
		abr := 0.0
		if f.ABR != nil {
			abr = *f.ABR
		}
		formats = append(formats, Format{
			FormatID: f.FormatID,
			ACodec:   f.ACodec,
			VCodec:   f.VCodec,
			ABR:      abr,
			Ext:      f.Ext,
		})
	}
	return meta, formats, nil
}

// FetchBestAudio downloads the stream identified by formatID to
// outPath. It writes exactly one file on success, at outPath; on
// failure any partial file is removed before returning.
func (c *Client) FetchBestAudio(ctx context.Context, url, formatID, outPath string) error {
	start := time.Now()
	args := []string{
		"--quiet",
		"--no-warnings",
		"--no-progress",
		"--no-playlist",
		"-f", formatID + "/bestaudio",
		"-o", outPath,
	}
	args = c.appendCommonArgs(args)
	args = append(args, url)

	cmd := exec.CommandContext(ctx, c.opts.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	c.logger.InfoContext(ctx, fmt.Sprintf("starting download of %s (format %s)", url, formatID))
	c.logger.DebugContext(ctx, fmt.Sprintf("running cmd %s", cmd))
	if err := cmd.Run(); err != nil {
		if rmErr := os.Remove(outPath); rmErr == nil {
			c.logger.WarnContext(ctx, fmt.Sprintf("removed partial download %s", outPath))
		}
		return c.toolError("download", stderr.String(), err)
	}
	c.logger.InfoContext(ctx, fmt.Sprintf("finished download of %s", url), "download.time", time.Since(start).String())
	return nil
}

func (c *Client) appendCommonArgs(args []string) []string {
	args = append(args,
		"--retries", strconv.Itoa(c.opts.Retries),
		"--fragment-retries", strconv.Itoa(c.opts.Retries),
		"--socket-timeout", strconv.Itoa(int(c.opts.SocketTimeout.Seconds())),
	)
	if c.opts.UserAgent != "" {
		args = append(args, "--user-agent", c.opts.UserAgent)
	}
	return args
}

func (c *Client) toolError(op, stderr string, err error) error {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = err.Error()
	}
	return &Error{Kind: classify(detail), Op: op, Detail: detail}
}
