// SPDX-License-Identifier: EPL-2.0

package pipeline

import "bytes"

// Format keys as registered in the decoder registry.
const (
	FormatWav    = "wav"
	FormatMp3    = "mp3"
	FormatVorbis = "ogg"
	FormatAiff   = "aiff"
)

// DetectFormat sniffs the container format from the first bytes of data.
// It recognizes the same containers the bundled decoders accept; ok is false
// when nothing matches.
func DetectFormat(data []byte) (format string, ok bool) {
	if len(data) < 12 {
		return "", false
	}

	switch {
	case bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return FormatWav, true
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatVorbis, true
	case bytes.HasPrefix(data, []byte("FORM")) && (bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return FormatAiff, true
	case bytes.HasPrefix(data, []byte("ID3")):
		return FormatMp3, true
	case data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// Bare MPEG audio frame sync, no ID3 tag
		return FormatMp3, true
	}

	return "", false
}
