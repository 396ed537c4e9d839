// SPDX-License-Identifier: EPL-2.0

// Package pipeline runs the full enhancement sequence over an uploaded clip:
// decode, optional transforms, WAV encoding, and quality scoring.
//
// A Pipeline walks a fixed set of states (Idle, Decoding, Transforming,
// Encoding, Scoring, Done) and lands in Failed from any of them when a step
// errors. Each Run is independent: no state is shared between invocations
// beyond the decoder registry, which is read-only during runs.
//
//	p := pipeline.New(registry)
//	result, err := p.Run(ctx, inputBytes, pipeline.Options{TrimPauses: true})
//	if err != nil {
//	    // errors.Is(err, pipeline.ErrUnknownFormat) etc.
//	}
//	// result.WAV holds the processed file, result.Metrics the scores
package pipeline
