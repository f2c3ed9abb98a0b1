// Package events defines the typed event contract of the canned speech
// pipeline.
//
// Event kinds live in the speech.* namespace:
//
//   - SpeechMetricsCollected (speech.metrics_collected): per-utterance
//     synthesis metrics, emitted after decode and before the first
//     frame.
//   - SpeechSynthesisFailed (speech.synthesis_failed): a synthesis
//     attempt that was swallowed and produced no frames.
//
// Events are delivered synchronously through [Emitter]; subscribers
// observe them as a side channel, the frame sequence itself stays the
// primary output.
package events

import "time"

// Kind identifies one event type within its namespace.
type Kind string

// Event is the contract every emitted event satisfies.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the kind and creation timestamp shared by all events.
// Embed it and construct it with [NewBase].
type Base struct {
	kind      Kind
	timestamp time.Time
}

func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}
