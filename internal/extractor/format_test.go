package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestAudioPicksHighestBitrate(t *testing.T) {
	formats := []Format{
		{FormatID: "139", VCodec: "none", ABR: 128},
		{FormatID: "140", VCodec: "none", ABR: 256},
		{FormatID: "251", VCodec: "none", ABR: 0},
	}

	best, ok := BestAudio(formats)
	assert.True(t, ok)
	assert.Equal(t, "140", best.FormatID)
}

func TestBestAudioAllUnknownBitratesPicksFirst(t *testing.T) {
	formats := []Format{
		{FormatID: "600", VCodec: "none"},
		{FormatID: "601", VCodec: "none"},
	}

	best, ok := BestAudio(formats)
	assert.True(t, ok)
	assert.Equal(t, "600", best.FormatID)
}

func TestBestAudioIgnoresVideoStreams(t *testing.T) {
	formats := []Format{
		{FormatID: "22", VCodec: "avc1", ABR: 999},
		{FormatID: "140", VCodec: "none", ABR: 128},
	}

	best, ok := BestAudio(formats)
	assert.True(t, ok)
	assert.Equal(t, "140", best.FormatID)
}

func TestBestAudioNoAudioOnly(t *testing.T) {
	formats := []Format{
		{FormatID: "22", VCodec: "avc1", ABR: 128},
	}

	_, ok := BestAudio(formats)
	assert.False(t, ok)

	_, ok = BestAudio(nil)
	assert.False(t, ok)
}
