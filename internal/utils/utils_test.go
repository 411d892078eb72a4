package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"My Song!.mp3":             "My_Song.mp3",
		"":                         "audio",
		"!!!":                      "audio",
		"already_safe-name.wav":    "already_safe-name.wav",
		"tabs\tand  spaces":        "tabs_and_spaces",
		"Ä umlaut / slash":         "Ä_umlaut_slash",
		"Track #1 - Artist (live)": "Track_1_-_Artist_live",
	}

	for in, want := range cases {
		assert.Equal(t, want, SafeFilename(in), "input %q", in)
	}
}

func TestSafeFilenameIdempotent(t *testing.T) {
	inputs := []string{
		"My Song!.mp3",
		"",
		"Track #1 - Artist (live)",
		"weird space",
		"a.b.c - d",
	}
	for _, in := range inputs {
		once := SafeFilename(in)
		assert.Equal(t, once, SafeFilename(once), "input %q", in)
	}
}

func TestExtractVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"
	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&feature=share",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ#t=10",
		"HTTPS://WWW.YOUTUBE.COM/WATCH?V=dQw4w9WgXcQ",
	}
	for _, u := range urls {
		got, ok := ExtractVideoID(u)
		assert.True(t, ok, "url %q", u)
		assert.Equal(t, id, got, "url %q", u)
	}
}

func TestExtractVideoIDNoMatch(t *testing.T) {
	for _, u := range []string{"not a url", "", "https://example.com/watch?v=abc"} {
		got, ok := ExtractVideoID(u)
		assert.False(t, ok, "url %q", u)
		assert.Empty(t, got)
	}
}
