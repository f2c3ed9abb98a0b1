package events

import (
	"testing"
	"time"
)

func TestEmitDeliversInRegistrationOrder(t *testing.T) {
	emitter := NewEmitter()

	order := []string{}
	emitter.Subscribe(func(Event) { order = append(order, "first") })
	emitter.Subscribe(func(Event) { order = append(order, "second") })
	emitter.Subscribe(func(Event) { order = append(order, "third") })

	emitter.Emit(NewSpeechMetricsCollected("s1", SpeechMetrics{}))

	if len(order) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(order))
	}
	for i, expected := range []string{"first", "second", "third"} {
		if order[i] != expected {
			t.Fatalf("expected %s at position %d, got %s", expected, i, order[i])
		}
	}
}

func TestSubscribeKindFiltersEvents(t *testing.T) {
	emitter := NewEmitter()

	metrics := 0
	failures := 0
	emitter.SubscribeKind(KindSpeechMetricsCollected, func(Event) { metrics++ })
	emitter.SubscribeKind(KindSpeechSynthesisFailed, func(Event) { failures++ })

	emitter.Emit(NewSpeechMetricsCollected("s1", SpeechMetrics{Chars: 13}))
	emitter.Emit(NewSpeechSynthesisFailed("s1", "missing.wav", nil))

	if metrics != 1 {
		t.Fatalf("expected 1 metrics delivery, got %d", metrics)
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure delivery, got %d", failures)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	emitter := NewEmitter()

	calls := 0
	subscription := emitter.Subscribe(func(Event) { calls++ })

	emitter.Emit(NewSpeechMetricsCollected("s1", SpeechMetrics{}))
	subscription.Unsubscribe()
	subscription.Unsubscribe()
	emitter.Emit(NewSpeechMetricsCollected("s1", SpeechMetrics{}))

	if calls != 1 {
		t.Fatalf("expected 1 delivery before unsubscribe, got %d", calls)
	}
}

func TestEmitRecoversPanickingSubscriber(t *testing.T) {
	emitter := NewEmitter()

	delivered := false
	emitter.Subscribe(func(Event) { panic("subscriber bug") })
	emitter.Subscribe(func(Event) { delivered = true })

	emitter.Emit(NewSpeechMetricsCollected("s1", SpeechMetrics{}))

	if !delivered {
		t.Fatalf("expected later subscriber to run despite earlier panic")
	}
}

func TestSpeechMetricsCollectedCarriesPayload(t *testing.T) {
	event := NewSpeechMetricsCollected("s1", SpeechMetrics{Chars: 13, Duration: 100 * time.Millisecond})

	if event.Kind() != KindSpeechMetricsCollected {
		t.Fatalf("expected kind %s, got %s", KindSpeechMetricsCollected, event.Kind())
	}
	if event.Metrics.Chars != 13 {
		t.Fatalf("expected 13 chars, got %d", event.Metrics.Chars)
	}
	if event.Metrics.CostUSD != 0 {
		t.Fatalf("expected zero cost, got %f", event.Metrics.CostUSD)
	}
	if event.Timestamp().IsZero() {
		t.Fatalf("expected event timestamp to be set")
	}
}
