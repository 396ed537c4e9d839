// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/ik5/audpolish/audio"
)

const (
	// SpeechCenterFreq is the band-pass center frequency in Hz, the midpoint
	// of the 300-3400 Hz telephony speech band.
	SpeechCenterFreq = 1850.0
	// SpeechQ is the band-pass quality factor.
	SpeechQ = 1.0
)

// biquad is a second-order IIR filter in direct form I.
// Coefficients are normalized by a0; x1/x2 and y1/y2 hold the two most
// recent input and output samples.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

// newBandPass builds a constant peak-gain band-pass biquad
// (RBJ audio EQ cookbook) for the given center frequency and Q.
func newBandPass(sampleRate int, centerFreq, q float64) *biquad {
	omega := 2 * math.Pi * centerFreq / float64(sampleRate)
	alpha := math.Sin(omega) / (2 * q)

	a0 := 1 + alpha

	return &biquad{
		b0: alpha / a0,
		b1: 0,
		b2: -alpha / a0,
		a1: -2 * math.Cos(omega) / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return y
}

// FilterSpeech attenuates energy outside the speech band, per channel, in
// place. Each channel gets a fresh filter state, so channel order does not
// affect the output. Buffer geometry is unchanged.
func FilterSpeech(buf *audio.Buffer) {
	for _, samples := range buf.Data {
		f := newBandPass(buf.SampleRate, SpeechCenterFreq, SpeechQ)

		for i, v := range samples {
			samples[i] = float32(f.process(float64(v)))
		}
	}
}
