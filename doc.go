// SPDX-License-Identifier: EPL-2.0

// Package audpolish analyzes and enhances the quality of uploaded audio clips.
//
// Given the raw bytes of a compressed audio file, the package decodes it into
// linear samples, optionally cleans it up with digital-signal transforms, and
// re-encodes the result as an uncompressed PCM WAV file alongside an
// objective quality score.
//
// # Supported Formats
//
// Input formats are sniffed from the file's magic bytes:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always a canonical 16-bit PCM WAV with all channels interleaved.
//
// # Quick Start
//
// The simplest way to process a clip is Enhance:
//
//	data, _ := os.ReadFile("upload.mp3")
//	result, err := audpolish.Enhance(ctx, data, pipeline.Options{
//	    FilterSpeech: true,
//	    TrimPauses:   true,
//	})
//	if err != nil {
//	    // handle err
//	}
//
//	// result.WAV is the processed file, result.Metrics the analysis
//
// # Transforms
//
// Two cleanup transforms are available (see the dsp package):
//   - TrimPauses zeroes low-energy runs longer than half a second without
//     shortening the clip
//   - FilterSpeech band-passes each channel around the speech band
//
// Optional resampling and mono downmix are available through
// pipeline.Options as well.
//
// # Quality Score
//
// The quality package rates a clip 0-100 from its sample rate's coverage of
// the speech band, its effective bitrate, and its channel layout:
//
//	result.Metrics.QualityScore // e.g. 100 for 44.1kHz stereo at 192kbps
//
// # Pipeline
//
// For more control, compose the pieces directly:
//
//	registry := audio.NewRegistry()
//	registry.Register(pipeline.FormatWav, wav.Decoder{})
//
//	p := pipeline.New(registry)
//	result, err := p.Run(ctx, data, pipeline.Options{TrimPauses: true})
//
// Each pipeline run is independent and stateless relative to other runs;
// registries are safe to share.
//
// See the individual subpackages for more detailed documentation.
package audpolish
