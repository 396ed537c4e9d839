// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audpolish/audio"
	"github.com/ik5/audpolish/dsp"
	"github.com/ik5/audpolish/formats/wav"
	"github.com/ik5/audpolish/quality"
)

// State of a pipeline run. Transitions are strictly sequential; Failed is
// terminal and reachable from any non-terminal state.
type State int

const (
	StateIdle State = iota
	StateDecoding
	StateTransforming
	StateEncoding
	StateScoring
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDecoding:
		return "decoding"
	case StateTransforming:
		return "transforming"
	case StateEncoding:
		return "encoding"
	case StateScoring:
		return "scoring"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options selects the optional processing steps for one run. The zero value
// decodes and re-encodes the clip untouched.
type Options struct {
	// FilterSpeech applies the speech-band filter.
	FilterSpeech bool
	// TrimPauses zeroes long low-energy runs.
	TrimPauses bool

	// TargetRate resamples the clip to this rate in Hz; 0 keeps the
	// native rate.
	TargetRate int
	// Downmix averages all channels into mono before processing.
	Downmix bool
}

// Metrics describes the processed clip.
type Metrics struct {
	// BitrateKbps is the effective bitrate derived from input size and
	// duration, not the codec's reported rate.
	BitrateKbps int
	SampleRate  int
	Channels    int
	// Duration in seconds.
	Duration float64
	// QualityScore in [0,100], integer-valued.
	QualityScore float64
}

// Result bundles the processed WAV bytes with the clip's metrics.
type Result struct {
	WAV     []byte
	Metrics Metrics
}

// Pipeline sequences decode, transforms, encoding and scoring for one clip
// at a time. Create one Pipeline per run; the registry itself is safe to
// share across pipelines.
type Pipeline struct {
	registry   *audio.Registry
	bufferSize int
	state      State
	log        *logrus.Entry
}

func New(registry *audio.Registry) *Pipeline {
	return &Pipeline{
		registry:   registry,
		bufferSize: 4096,
		state:      StateIdle,
		log:        logrus.WithField("component", "pipeline"),
	}
}

// State reports the current run state.
func (p *Pipeline) State() State { return p.state }

// Run executes the full sequence over input and returns the result bundle.
// On any failure the partial result is discarded, the state becomes Failed
// and the returned error carries the cause. Identical input and options
// always produce byte-identical output.
func (p *Pipeline) Run(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if len(input) == 0 {
		return nil, p.fail(ErrEmptyInput)
	}

	p.setState(StateDecoding)
	buf, err := p.decode(ctx, input, opts)
	if err != nil {
		return nil, p.fail(err)
	}

	p.setState(StateTransforming)
	if err := ctx.Err(); err != nil {
		return nil, p.fail(err)
	}

	if opts.TrimPauses {
		dsp.TrimPauses(buf, dsp.DefaultPauseThreshold, dsp.DefaultMinPauseSeconds)
	}
	if opts.FilterSpeech {
		dsp.FilterSpeech(buf)
	}

	p.setState(StateEncoding)
	if err := ctx.Err(); err != nil {
		return nil, p.fail(err)
	}

	var out bytes.Buffer
	if err := wav.Encode(&out, buf); err != nil {
		return nil, p.fail(fmt.Errorf("%w: %w", ErrEncode, err))
	}

	p.setState(StateScoring)
	bitrate := quality.EffectiveBitrateKbps(len(input), buf.Duration())

	metrics := Metrics{
		BitrateKbps:  bitrate,
		SampleRate:   buf.SampleRate,
		Channels:     buf.NumChannels(),
		Duration:     buf.Duration(),
		QualityScore: quality.Score(buf.SampleRate, bitrate, buf.NumChannels()),
	}

	p.setState(StateDone)
	p.log.WithFields(logrus.Fields{
		"sample_rate": metrics.SampleRate,
		"channels":    metrics.Channels,
		"duration":    metrics.Duration,
		"bitrate":     metrics.BitrateKbps,
		"score":       metrics.QualityScore,
	}).Info("pipeline run complete")

	return &Result{
		WAV:     out.Bytes(),
		Metrics: metrics,
	}, nil
}

// decode sniffs the format, decodes input through the registry and collects
// the samples into an owned buffer. The decoder source is closed on every
// return path.
func (p *Pipeline) decode(ctx context.Context, input []byte, opts Options) (*audio.Buffer, error) {
	format, ok := DetectFormat(input)
	if !ok {
		return nil, ErrUnknownFormat
	}

	dec, ok := p.registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder registered for %q", ErrUnknownFormat, format)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := dec.Decode(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer src.Close()

	p.log.WithFields(logrus.Fields{
		"format":      format,
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
	}).Debug("decoding input")

	stream := audio.Source(src)
	if opts.TargetRate > 0 && opts.TargetRate != stream.SampleRate() {
		stream = audio.NewResampler(stream, opts.TargetRate)
	}
	if opts.Downmix && stream.Channels() > 1 {
		stream = audio.NewMonoMixer(stream)
	}

	buf, err := audio.ReadAll(stream, p.bufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return buf, nil
}

func (p *Pipeline) setState(s State) {
	p.log.WithFields(logrus.Fields{
		"from": p.state.String(),
		"to":   s.String(),
	}).Debug("state transition")

	p.state = s
}

// fail moves the pipeline into the terminal Failed state and returns err.
func (p *Pipeline) fail(err error) error {
	p.log.WithFields(logrus.Fields{
		"state": p.state.String(),
		"error": err,
	}).Error("pipeline run failed")

	p.state = StateFailed
	return err
}
