// Package canned implements a text-to-speech client that plays
// pre-recorded audio assets instead of synthesizing speech. A complete
// utterance is mapped to a wav file which is decoded and re-chunked
// into paced 20 ms frames, satisfying the framing and timing contract
// of a streaming playback pipeline.
package canned

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/codes"

	"github.com/voicereel/reel-core/core/audio"
	"github.com/voicereel/reel-core/core/events"
	"github.com/voicereel/reel-core/core/texttospeech"
)

// Engine coordinates asset reading, packetization and metrics for one
// synthesized utterance at a time.
//
// The engine owns no utterance state; it keeps only the encoding of
// the most recently decoded asset and the cancel handle of the active
// synthesis. It can therefore be shared across speech streams over the
// agent's lifetime, as long as at most one Synthesize call is in
// flight at a time. Callers that overlap turns should serialize their
// calls or use one engine per stream.
type Engine struct {
	*events.Emitter

	assetDir string
	options  texttospeech.TextToSpeechOptions

	mu           sync.Mutex
	encodingInfo audio.EncodingInfo
	cancelActive context.CancelFunc
	output       texttospeech.AudioOutput

	closeOnce sync.Once
}

// New creates an engine over a directory of pre-recorded wav assets.
func New(assetDir string, opts ...texttospeech.TextToSpeechOption) *Engine {
	options := texttospeech.TextToSpeechOptions{
		ErrorCallback: func(error) {},
		EncodingInfo:  audio.GetDefaultEncodingInfo(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Engine{
		Emitter:      events.NewEmitter(),
		assetDir:     assetDir,
		options:      options,
		encodingInfo: options.EncodingInfo,
		output:       options.Output,
	}
}

// Synthesize resolves the named asset to a lazy sequence of paced
// audio frames. The asset is read when iteration starts, one
// [events.SpeechMetricsCollected] event is emitted before the first
// frame, then packetized frames follow in strict sample order.
//
// Failures are swallowed: they are logged, reported through the error
// callback and the failure event, and the sequence ends with zero
// frames. Nothing is ever raised across the frame-sequence boundary,
// aborting a live call is worse than one silent empty response.
func (e *Engine) Synthesize(ctx context.Context, assetName string) func(yield func(audio.Frame) bool) {
	return e.synthesize(ctx, "", assetName)
}

func (e *Engine) synthesize(ctx context.Context, streamID, assetName string) func(yield func(audio.Frame) bool) {
	return func(yield func(audio.Frame) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		e.mu.Lock()
		e.cancelActive = cancel
		e.mu.Unlock()
		defer func() {
			e.mu.Lock()
			e.cancelActive = nil
			e.mu.Unlock()
		}()

		ctx, span := tracer.Start(ctx, "synthesizing canned speech")
		defer span.End()

		asset, err := audio.ReadAsset(filepath.Join(e.assetDir, assetName))
		if err != nil {
			recordedErr := fmt.Errorf("failed to read canned asset: %w", err)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
			logger.Warn("skipping canned utterance", "asset", assetName, "error", err)

			e.options.ErrorCallback(err)
			e.Emit(events.NewSpeechSynthesisFailed(streamID, assetName, err))
			return
		}

		e.mu.Lock()
		e.encodingInfo = asset.EncodingInfo()
		e.mu.Unlock()

		e.Emit(events.NewSpeechMetricsCollected(streamID, events.SpeechMetrics{
			Chars:    len(assetName),
			Duration: asset.Duration(),
		}))

		for frame := range audio.Packetize(ctx, asset) {
			if !yield(frame) {
				return
			}
		}
	}
}

// Stop cancels any in-flight synthesis. Repeated calls are ignored.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancelActive
	e.cancelActive = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// SampleRate returns the sample rate of the most recently decoded
// asset, or the configured default before any synthesis has occurred.
//
// Assets with differing rates make the advertised rate drift between
// calls; consumers that need a stable format should take it from the
// first frame instead (see [audio.Frame.EncodingInfo]).
func (e *Engine) SampleRate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.encodingInfo.SampleRate
}

// NumChannels returns the channel count of the most recently decoded
// asset, with the same drift caveat as [Engine.SampleRate].
func (e *Engine) NumChannels() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.encodingInfo.NumChannels
}

// EncodingInfo returns the currently advertised encoding.
func (e *Engine) EncodingInfo() audio.EncodingInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.encodingInfo
}

// Output returns the attached playback sink, if any.
func (e *Engine) Output() texttospeech.AudioOutput {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.output
}

// Close stops any in-flight synthesis and releases the attached audio
// output. Repeated calls are ignored and Close never errors.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.Stop()

		e.mu.Lock()
		output := e.output
		e.output = nil
		e.mu.Unlock()

		if output != nil {
			if err := output.Close(); err != nil {
				logger.Warn("failed to close audio output", "error", err)
			}
		}
	})
	return nil
}
