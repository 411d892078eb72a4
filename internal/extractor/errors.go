package extractor

import (
	"errors"
	"strings"
)

// ErrNoAudio is returned when the platform reports no audio-only stream
// for the requested video.
var ErrNoAudio = errors.New("no suitable audio format found")

// Kind categorizes a platform failure so callers can map it to a
// response without sniffing message text themselves.
type Kind int

const (
	KindUnknown Kind = iota
	KindPrivate
	KindUnavailable
	KindUnsupported
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindPrivate:
		return "private"
	case KindUnavailable:
		return "unavailable"
	case KindUnsupported:
		return "unsupported"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is a classified extractor failure. Detail carries the tool
// output for server-side logging and must never reach a client.
type Error struct {
	Kind   Kind
	Op     string
	Detail string
}

func (e *Error) Error() string {
	return "extractor " + e.Op + " (" + e.Kind.String() + "): " + e.Detail
}

// KindOf returns the category of err, or KindUnknown when err is not an
// extractor error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// classify buckets yt-dlp stderr into an error category. The substring
// matching lives here, at the tool boundary, and nowhere else.
func classify(stderr string) Kind {
	s := strings.ToLower(stderr)
	switch {
	case strings.Contains(s, "private video"):
		return KindPrivate
	case strings.Contains(s, "video unavailable"),
		strings.Contains(s, "content isn't available"),
		strings.Contains(s, "not available in your country"):
		return KindUnavailable
	case strings.Contains(s, "unsupported url"),
		strings.Contains(s, "is not a valid url"):
		return KindUnsupported
	case strings.Contains(s, "unable to download"),
		strings.Contains(s, "timed out"),
		strings.Contains(s, "connection re"),
		strings.Contains(s, "http error 5"):
		return KindNetwork
	default:
		return KindUnknown
	}
}
