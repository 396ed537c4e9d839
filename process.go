// SPDX-License-Identifier: EPL-2.0

package audpolish

import (
	"context"
	"fmt"

	"github.com/ik5/audpolish/audio"
	"github.com/ik5/audpolish/formats/aiff"
	"github.com/ik5/audpolish/formats/mp3"
	"github.com/ik5/audpolish/formats/vorbis"
	"github.com/ik5/audpolish/formats/wav"
	"github.com/ik5/audpolish/pipeline"
)

// DefaultRegistry returns a decoder registry with every bundled format
// registered: WAV, MP3, Ogg Vorbis and AIFF. Callers embedding the pipeline
// in a larger application can build their own registry instead to swap or
// restrict codec backends.
func DefaultRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register(pipeline.FormatWav, wav.Decoder{})
	registry.Register(pipeline.FormatMp3, mp3.Decoder{})
	registry.Register(pipeline.FormatVorbis, vorbis.Decoder{})
	registry.Register(pipeline.FormatAiff, aiff.Decoder{})
	return registry
}

// Enhance is a high-level convenience function that runs the full
// enhancement pipeline over the raw bytes of an uploaded audio file.
//
// The input format is sniffed automatically (WAV, MP3, Ogg Vorbis or AIFF),
// the clip is decoded, the transforms selected in opts are applied, and the
// result is returned as a canonical 16-bit PCM WAV together with the clip's
// quality metrics.
//
// Example:
//
//	data, _ := os.ReadFile("upload.mp3")
//	result, err := audpolish.Enhance(ctx, data, pipeline.Options{
//	    FilterSpeech: true,
//	    TrimPauses:   true,
//	})
//	if err != nil {
//	    // handle err
//	}
//	os.WriteFile("processed_upload.wav", result.WAV, 0o644)
//	fmt.Printf("score: %.0f\n", result.Metrics.QualityScore)
func Enhance(ctx context.Context, input []byte, opts pipeline.Options) (*pipeline.Result, error) {
	result, err := pipeline.New(DefaultRegistry()).Run(ctx, input, opts)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return result, nil
}
