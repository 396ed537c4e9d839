// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF/WAVE) decoding and encoding.
//
// Decoding wraps the github.com/go-audio/wav library, handling arbitrary
// chunk layouts and PCM bit depths of 8, 16, 24 and 32 bits:
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(reader)
//
// Encoding emits the canonical 44-byte-header PCM layout with all channels
// interleaved at 16 bits per sample:
//
//	err := wav.Encode(writer, buffer)
package wav
