// SPDX-License-Identifier: EPL-2.0

// Package dsp provides in-place transforms over decoded audio buffers.
//
// Two transforms are available:
//   - TrimPauses silences long low-energy runs without changing duration
//   - FilterSpeech applies a band-pass filter centered on the speech band
//
// Both transforms operate per channel on an audio.Buffer and preserve its
// geometry (channel count and frame count never change).
//
//	buf, _ := audio.ReadAll(src, 4096)
//	dsp.TrimPauses(buf, dsp.DefaultPauseThreshold, dsp.DefaultMinPauseSeconds)
//	dsp.FilterSpeech(buf)
package dsp
