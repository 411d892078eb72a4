// Package app wires the HTTP surface: request validation, the
// resolve→download→transcode pipeline and artifact serving.
package app

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"tubewav/internal/config"
	"tubewav/internal/extractor"
	"tubewav/internal/transcode"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templatesFS embed.FS

var htmlTemplates = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Extractor resolves a video URL to metadata plus stream descriptors
// and downloads a chosen audio stream to a scratch path.
type Extractor interface {
	Resolve(ctx context.Context, url string) (*extractor.Metadata, []extractor.Format, error)
	FetchBestAudio(ctx context.Context, url, formatID, outPath string) error
}

// Transcoder normalizes a downloaded audio file into the fixed WAV
// profile.
type Transcoder interface {
	Normalize(ctx context.Context, inputPath, outputPath string) error
}

// App definition
type App struct {
	config     *config.Config
	extractor  Extractor
	transcoder Transcoder
	logger     *slog.Logger
	version    string
}

// Setup initializes the app with the given version
func Setup(version string) App {
	c := config.Load()
	logger := createLogger(c.LogLevel)

	return App{
		config:  c,
		logger:  logger,
		version: version,
		extractor: extractor.New(extractor.Options{
			Bin:           c.YtDlpBin,
			Retries:       c.Retries,
			SocketTimeout: c.SocketTimeout,
			UserAgent:     c.UserAgent,
		}, logger),
		transcoder: transcode.New(c.FFmpegBin, logger),
	}
}

// Init builds the router
func (a App) Init() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(htmlTemplates)

	if a.config.MaxBodyBytes > 0 {
		r.Use(func(c *gin.Context) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, a.config.MaxBodyBytes)
			c.Next()
		})
	}

	r.GET("/", a.indexHandler)

	// Convert a video URL to a WAV artifact
	r.POST("/download", a.downloadHandler)
	// Serve a finished artifact as an attachment
	r.GET("/download/:filename", a.serveFileHandler)

	r.GET("/version", func(c *gin.Context) {
		json := []byte(`{"version": "` + a.version + `" }`)
		c.Data(http.StatusOK, gin.MIMEJSON, json)
	})

	return r
}

// Run main app
func (a App) Run() error {
	if err := os.MkdirAll(a.config.ScratchDir, 0o755); err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	a.logger.Info(fmt.Sprintf("scratch directory: %s", a.config.ScratchDir))

	r := a.Init()
	return r.Run(a.config.Listen)
}
