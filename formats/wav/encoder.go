// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audpolish/audio"
	"github.com/ik5/audpolish/utils"
)

// Encode writes buf as a canonical PCM WAV file: a 44-byte header followed
// by interleaved 16-bit little-endian frames. Every channel is written, so
// the data chunk holds frames*channels*2 bytes and always matches the
// channel count declared in the header.
func Encode(w io.Writer, buf *audio.Buffer) error {
	channels := buf.NumChannels()
	if channels == 0 {
		return ErrNoChannels
	}

	frames := buf.FrameCount()

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	blockAlign := numChannels * (bitsPerSample / 8)
	byteRate := uint32(buf.SampleRate) * uint32(blockAlign)
	dataSize := uint32(frames * channels * 2)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if frames == 0 {
		return nil
	}

	// Interleave and write in chunks of whole frames
	const chunkFrames = 4096
	out := make([]byte, min(frames, chunkFrames)*channels*2)

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)

		n := 0
		for f := start; f < end; f++ {
			for c := 0; c < channels; c++ {
				v := utils.Float32ToInt16(buf.Data[c][f])
				binary.LittleEndian.PutUint16(out[n:n+2], uint16(v))
				n += 2
			}
		}

		if _, err := w.Write(out[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
