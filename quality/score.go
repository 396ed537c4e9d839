// SPDX-License-Identifier: EPL-2.0

package quality

import "math"

// Scoring windows. Frequency coverage targets the 250-4000 Hz speech band;
// the sample-rate window is doubled per the Nyquist relation.
const (
	minSpeechRate = 2 * 250  // Hz
	maxSpeechRate = 2 * 4000 // Hz

	minBitrate = 128 // kbps
	maxBitrate = 320 // kbps

	freqWeight    = 50.0
	bitrateWeight = 30.0

	stereoScore = 20.0
	monoScore   = 10.0
)

// Score rates the technical quality of a clip on a 0-100 scale from three
// independently capped factors: frequency coverage of the speech band
// (0-50), effective bitrate (0-30), and channel layout (0-20). The sum is
// clamped to 100 and rounded to a whole number.
//
// The model is a heuristic: rates inside the target windows earn the full
// factor, rates outside fall off linearly toward zero.
func Score(sampleRate, bitrateKbps, channels int) float64 {
	score := freqScore(sampleRate) + bitrateScore(bitrateKbps) + channelScore(channels)

	return math.Round(math.Min(100, score))
}

func freqScore(sampleRate int) float64 {
	switch {
	case sampleRate < minSpeechRate:
		return freqWeight * float64(sampleRate) / minSpeechRate
	case sampleRate > maxSpeechRate:
		return freqWeight * maxSpeechRate / float64(sampleRate)
	default:
		return freqWeight
	}
}

func bitrateScore(bitrateKbps int) float64 {
	switch {
	case bitrateKbps < minBitrate:
		return bitrateWeight * float64(bitrateKbps) / minBitrate
	case bitrateKbps > maxBitrate:
		return bitrateWeight * maxBitrate / float64(bitrateKbps)
	default:
		return bitrateWeight
	}
}

func channelScore(channels int) float64 {
	switch channels {
	case 2:
		return stereoScore
	case 1:
		return monoScore
	default:
		return 0
	}
}

// EffectiveBitrateKbps derives an approximate bitrate from container size
// and clip duration. This is deliberately not the codec's true encoded rate;
// it is the size-over-time figure the score is defined against.
func EffectiveBitrateKbps(sizeBytes int, durationSeconds float64) int {
	if durationSeconds <= 0 {
		return 0
	}

	return int(math.Round(float64(sizeBytes) * 8 / durationSeconds / 1000))
}
