// SPDX-License-Identifier: EPL-2.0

// Package quality scores the technical quality of decoded audio.
//
// The score is a composite of sample-rate coverage of the speech band,
// effective bitrate, and channel layout:
//
//	score := quality.Score(44100, 192, 2) // 100
//
// Effective bitrate is derived from container size and duration rather than
// the codec's reported rate:
//
//	kbps := quality.EffectiveBitrateKbps(len(input), buf.Duration())
package quality
