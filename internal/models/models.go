// Package models defines the request and response bodies of the HTTP
// surface.
package models

// ConversionRequest is the POST /download body. URL must be non-empty
// after trimming whitespace.
type ConversionRequest struct {
	URL string `json:"url"`
}

// ConversionResult describes a finished WAV artifact. Filename resolves
// under the scratch directory via GET /download/:filename.
type ConversionResult struct {
	Filename string  `json:"filename"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration int     `json:"duration"`
	Quality  string  `json:"quality"`
	SizeMB   float64 `json:"size_mb"`
}
