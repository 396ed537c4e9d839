// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is a fully decoded audio clip held as per-channel sample slices.
// Data is indexed Data[channel][frame]; every channel has the same length.
// A Buffer is owned by a single pipeline invocation and is mutated in place
// by transforms.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a zeroed buffer with the given geometry.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{
		SampleRate: sampleRate,
		Data:       data,
	}
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Data) }

// FrameCount returns the number of frames per channel.
func (b *Buffer) FrameCount() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.FrameCount()) / float64(b.SampleRate)
}

// ReadAll drains src into a Buffer, deinterleaving frames into per-channel
// slices. bufferSize is the read chunk size in samples (e.g., 4096); it is
// rounded down to a whole number of frames.
func ReadAll(src Source, bufferSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	if bufferSize < channels {
		bufferSize = channels
	}
	// Whole frames per read keeps deinterleaving simple.
	bufferSize -= bufferSize % channels

	buf := make([]float32, bufferSize)
	data := make([][]float32, channels)

	// carry holds a partial frame left over from the previous read.
	var carry []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples := buf[:n]
			if len(carry) > 0 {
				samples = append(carry, samples...)
				carry = nil
			}

			frames := len(samples) / channels
			for f := 0; f < frames; f++ {
				base := f * channels
				for c := 0; c < channels; c++ {
					data[c] = append(data[c], samples[base+c])
				}
			}

			if rest := len(samples) % channels; rest > 0 {
				carry = append(carry, samples[len(samples)-rest:]...)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &Buffer{
		SampleRate: src.SampleRate(),
		Data:       data,
	}, nil
}
