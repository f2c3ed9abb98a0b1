package events

import "time"

const (
	// KindSpeechMetricsCollected identifies per-utterance synthesis
	// metrics, emitted after decode and before the first frame.
	KindSpeechMetricsCollected Kind = "speech.metrics_collected"
	// KindSpeechSynthesisFailed identifies a synthesis attempt that was
	// swallowed and ended without frames.
	KindSpeechSynthesisFailed Kind = "speech.synthesis_failed"
)

// SpeechMetrics is the per-synthesized-utterance playback record.
type SpeechMetrics struct {
	// Chars is the number of characters handed to synthesis. For canned
	// playback that is the resolved asset name.
	Chars int
	// Duration is the playback duration of the decoded asset.
	Duration time.Duration
	// CostUSD is always zero, no paid synthesis occurs.
	CostUSD float64
}

// SpeechMetricsCollected carries the metrics of one synthesized
// utterance.
type SpeechMetricsCollected struct {
	Base
	StreamID string
	Metrics  SpeechMetrics
}

// NewSpeechMetricsCollected creates a speech metrics collected event.
func NewSpeechMetricsCollected(streamID string, metrics SpeechMetrics) SpeechMetricsCollected {
	return SpeechMetricsCollected{Base: NewBase(KindSpeechMetricsCollected), StreamID: streamID, Metrics: metrics}
}

// SpeechSynthesisFailed marks a synthesis attempt that produced no
// frames. The failure is observable here and in logs only, it is never
// raised across the frame-sequence boundary.
type SpeechSynthesisFailed struct {
	Base
	StreamID string
	Asset    string
	Err      error
}

// NewSpeechSynthesisFailed creates a speech synthesis failed event.
func NewSpeechSynthesisFailed(streamID, asset string, err error) SpeechSynthesisFailed {
	return SpeechSynthesisFailed{Base: NewBase(KindSpeechSynthesisFailed), StreamID: streamID, Asset: asset, Err: err}
}
