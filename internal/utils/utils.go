// Package utils holds small pure helpers shared across the service.
package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SafeFilename maps an arbitrary string to a filesystem-safe token.
// Every rune that is not alphanumeric, whitespace, a dot or a dash is
// dropped, whitespace runs collapse to a single underscore, and an
// empty result falls back to "audio".
func SafeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	safe := whitespaceRun.ReplaceAllString(b.String(), "_")
	if safe == "" {
		return "audio"
	}
	return safe
}

// Ordered rules for the common youtube link shapes. The first capturing
// match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/watch/\?v=)([^&\n?#]+)`),
	regexp.MustCompile(`(?i)youtube\.com/watch\?.*&v=([^&#]+)`),
}

// ExtractVideoID pulls the platform video id out of the usual watch,
// short-link and embed URL shapes. It is used for logging and scratch
// file naming only; ok is false when no rule matches.
func ExtractVideoID(rawurl string) (id string, ok bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawurl); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}
