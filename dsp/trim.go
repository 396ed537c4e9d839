// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"github.com/ik5/audpolish/audio"
)

const (
	// DefaultPauseThreshold is the amplitude below which a frame counts as silent.
	DefaultPauseThreshold float32 = 0.01
	// DefaultMinPauseSeconds is the shortest silent run that gets zeroed.
	DefaultMinPauseSeconds = 0.5
)

// TrimPauses silences long pauses in buf, per channel, in place.
//
// A sample is silent when its absolute amplitude is below threshold. When a
// contiguous silent run longer than minPauseSeconds ends at a loud sample,
// every sample in the run is set to exactly zero. Short runs pass through
// unchanged, as does a silent run still open at the end of the buffer.
//
// The frame count never changes: trimming removes energy, not time, so
// duration and frame indexing stay stable for metrics and rendering.
func TrimPauses(buf *audio.Buffer, threshold float32, minPauseSeconds float64) {
	minRun := int(minPauseSeconds * float64(buf.SampleRate))

	for _, samples := range buf.Data {
		runStart := -1

		for i, v := range samples {
			if abs(v) < threshold {
				if runStart < 0 {
					runStart = i
				}
				continue
			}

			if runStart >= 0 && i-runStart > minRun {
				zero(samples[runStart:i])
			}
			runStart = -1
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func zero(samples []float32) {
	for i := range samples {
		samples[i] = 0
	}
}
