package canned

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/voicereel/reel-core/core/audio"
	"github.com/voicereel/reel-core/core/intents"
	"github.com/voicereel/reel-core/core/texttospeech"
)

// SpeechStream accumulates one streamed language-model response and
// replays the matching canned asset as paced audio frames.
//
// Text arrives from a single producer and frames are drained by a
// single consumer; a stream is not meant for concurrent producers.
// Multiple streams may exist at once but share the engine's single
// active-synthesis slot (see [Engine]).
type SpeechStream struct {
	id       string
	engine   *Engine
	resolver texttospeech.IntentResolver

	mu        sync.Mutex
	fragments []string
	pending   []string
	consumed  int
	textEnded bool
	closed    bool

	updateSignal chan struct{}
	closeOnce    sync.Once

	baseContext context.Context
}

var _ texttospeech.SpeechStreamer = (*SpeechStream)(nil)

// NewSpeechStream creates a stream backed by this engine. One stream
// serves one conversational turn.
func (e *Engine) NewSpeechStream(ctx context.Context, opts ...texttospeech.TextToSpeechOption) *SpeechStream {
	options := e.options
	for _, opt := range opts {
		opt(&options)
	}

	resolver := options.Resolver
	if resolver == nil {
		resolver = intents.NewDefaultResolver()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &SpeechStream{
		id:           uuid.NewString(),
		engine:       e,
		resolver:     resolver,
		updateSignal: make(chan struct{}, 1),
		baseContext:  ctx,
	}
}

// ID returns the stream's unique identifier, also carried by the
// events the stream's synthesis emits.
func (s *SpeechStream) ID() string {
	return s.id
}

// SendText pushes a response fragment into the accumulator. Fragments
// sent after EndOfText or Close are silently dropped.
func (s *SpeechStream) SendText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.textEnded || s.closed {
		return nil
	}
	s.fragments = append(s.fragments, text)
	return nil
}

// EndOfText snapshots the accumulated response, resolves it to an
// asset and queues the asset for synthesis. Whitespace-only responses
// queue nothing. Repeated calls are ignored.
func (s *SpeechStream) EndOfText() error {
	s.mu.Lock()
	if s.textEnded || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.textEnded = true
	text := strings.Join(s.fragments, "")
	if strings.TrimSpace(text) != "" {
		s.pending = append(s.pending, s.resolver.Resolve(text))
	}
	s.mu.Unlock()

	logger.Info("complete response received", "stream_id", s.id, "response", text)
	s.signalUpdate()
	return nil
}

// Frames drives synthesis and yields audio frames to the consumer.
// Queued utterances are synthesized in FIFO order, never reordered or
// merged; frames within one utterance stay in strict sample order. The
// closed flag is checked before forwarding each frame so closing
// mid-emission stops within one pacing interval.
//
// Exhausting the sequence closes the stream, so a consumer that simply
// drains it does not leak the accumulator or the engine's synthesis
// slot.
func (s *SpeechStream) Frames(yield func(audio.Frame) bool) {
	defer func() { _ = s.Close() }()

	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}

		if s.consumed < len(s.pending) {
			assetName := s.pending[s.consumed]
			s.consumed++
			s.mu.Unlock()

			for frame := range s.engine.synthesize(s.baseContext, s.id, assetName) {
				if s.isClosed() {
					return
				}
				if !yield(frame) {
					return
				}
			}
			continue
		}

		if s.textEnded {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		<-s.updateSignal
	}
}

// Close stops the stream from any state. The queue and accumulator are
// cleared and the engine's active synthesis is cancelled so an ongoing
// emission halts within one pacing interval. Repeated calls are
// ignored and Close never errors.
func (s *SpeechStream) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.pending = nil
		s.consumed = 0
		s.fragments = nil
		s.mu.Unlock()

		s.signalUpdate()
		s.engine.Stop()
	})
	return nil
}

func (s *SpeechStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *SpeechStream) signalUpdate() {
	select {
	case s.updateSignal <- struct{}{}:
	default:
	}
}
