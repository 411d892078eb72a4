package app

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tubewav/internal/extractor"
	"tubewav/internal/models"
	"tubewav/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /
func (a App) indexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"version": a.version,
	})
}

// POST /download
//
// Runs the full pipeline synchronously on the handling goroutine:
// validate → resolve metadata → download best audio → transcode to WAV.
// The raw download gets a per-request unique temp name, so concurrent
// requests for the same video cannot clobber each other mid-flight.
// They can still race on the final WAV name; last writer wins.
func (a App) downloadHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.Warn(fmt.Sprintf("rejected request body: %v", err))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No URL provided"})
		return
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		a.logger.Warn("rejected request with blank url")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No URL provided"})
		return
	}

	log := a.logger.With("url", url)
	if id, ok := utils.ExtractVideoID(url); ok {
		log = log.With("video_id", id)
	}
	log.InfoContext(ctx, "processing conversion request")

	meta, formats, err := a.extractor.Resolve(ctx, url)
	if err != nil {
		a.failExtraction(c, log, err)
		return
	}
	log.InfoContext(ctx, fmt.Sprintf("resolved metadata for %q by %q", meta.Title, meta.Uploader))

	best, ok := extractor.BestAudio(formats)
	if !ok {
		log.WarnContext(ctx, "no audio-only stream reported")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No suitable audio format found"})
		return
	}
	log.InfoContext(ctx, fmt.Sprintf("selected format %s (%s)", best.FormatID, qualityLabel(best)))

	ext := best.Ext
	if ext == "" {
		ext = "m4a"
	}
	tmpPath := filepath.Join(a.config.ScratchDir, fmt.Sprintf("yt-%s-%s.%s", meta.ID, uuid.NewString(), ext))

	if err := a.extractor.FetchBestAudio(ctx, url, best.FormatID, tmpPath); err != nil {
		a.failExtraction(c, log, err)
		return
	}
	if _, err := os.Stat(tmpPath); err != nil {
		log.ErrorContext(ctx, fmt.Sprintf("no file at %s after reported success: %v", tmpPath, err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Download unsuccessful. Please try again later."})
		return
	}
	log.InfoContext(ctx, "download complete")

	finalName := fmt.Sprintf("%s - %s - %s.wav",
		utils.SafeFilename(meta.Title), utils.SafeFilename(meta.Uploader), meta.ID)
	outPath := filepath.Join(a.config.ScratchDir, finalName)

	if err := a.transcoder.Normalize(ctx, tmpPath, outPath); err != nil {
		log.ErrorContext(ctx, fmt.Sprintf("transcode failed: %v", err))
		if rmErr := os.Remove(tmpPath); rmErr == nil {
			log.WarnContext(ctx, fmt.Sprintf("removed intermediate file %s", tmpPath))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error converting audio. Please try again later."})
		return
	}

	fi, err := os.Stat(outPath)
	if err != nil {
		log.ErrorContext(ctx, fmt.Sprintf("no artifact at %s after transcode: %v", outPath, err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred. Please try again later."})
		return
	}
	sizeMB := math.Round(float64(fi.Size())/(1024*1024)*100) / 100
	log.InfoContext(ctx, fmt.Sprintf("conversion finished: %s (%.2fMB)", finalName, sizeMB))

	c.JSON(http.StatusOK, models.ConversionResult{
		Filename: finalName,
		Title:    meta.Title,
		Uploader: meta.Uploader,
		Duration: meta.Duration,
		Quality:  qualityLabel(best),
		SizeMB:   sizeMB,
	})
}

// GET /download/:filename
func (a App) serveFileHandler(c *gin.Context) {
	name := c.Param("filename")
	// the artifact must resolve strictly under the scratch directory
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	path := filepath.Join(a.config.ScratchDir, name)
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.FileAttachment(path, utils.SafeFilename(name))
}

// failExtraction maps a classified extractor error to the response
// contract. Tool output stays in the server log.
func (a App) failExtraction(c *gin.Context, log *slog.Logger, err error) {
	log.ErrorContext(c.Request.Context(), fmt.Sprintf("extraction failed: %v", err))
	switch extractor.KindOf(err) {
	case extractor.KindPrivate:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This video is private and cannot be downloaded"})
	case extractor.KindUnavailable:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "This video is unavailable or restricted"})
	case extractor.KindUnsupported:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unsupported URL. Please provide a valid video URL"})
	case extractor.KindNetwork:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error downloading video. Please try again later."})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred. Please try again later."})
	}
}

func qualityLabel(f extractor.Format) string {
	if f.ABR > 0 {
		return fmt.Sprintf("%dkbps", int(f.ABR))
	}
	return "unknown"
}
