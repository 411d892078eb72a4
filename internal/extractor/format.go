package extractor

// Format is a single stream descriptor reported by yt-dlp for a video.
// An ABR of 0 means the bitrate is unknown.
type Format struct {
	FormatID string
	ACodec   string
	VCodec   string
	ABR      float64
	Ext      string
}

// audioOnly reports whether the stream carries no video component.
func (f Format) audioOnly() bool {
	return f.VCodec == "none"
}

// BestAudio selects the audio-only format with the highest known
// bitrate. When no audio-only format reports a bitrate it falls back to
// the first audio-only format in listed order. ok is false when the
// list contains no audio-only format at all.
func BestAudio(formats []Format) (best Format, ok bool) {
	for _, f := range formats {
		if !f.audioOnly() {
			continue
		}
		if f.ABR > 0 && f.ABR > best.ABR {
			best = f
			ok = true
		}
	}
	if ok {
		return best, true
	}
	for _, f := range formats {
		if f.audioOnly() {
			return f, true
		}
	}
	return Format{}, false
}
