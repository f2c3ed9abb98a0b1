package texttospeech

import "github.com/voicereel/reel-core/core/audio"

type TextToSpeechOptions struct {
	// ErrorCallback is called when the TTS client swallows a synthesis
	// failure. Failures never cross the frame-sequence boundary.
	ErrorCallback func(error)
	// Resolver maps a complete utterance to the asset to play. When nil
	// the client falls back to its default policy.
	Resolver IntentResolver
	// Output is an optional local playback sink released when the
	// client closes.
	Output AudioOutput

	EncodingInfo audio.EncodingInfo
}

type TextToSpeechOption func(*TextToSpeechOptions)

func WithErrorCallback(callback func(error)) TextToSpeechOption {
	return func(o *TextToSpeechOptions) { o.ErrorCallback = callback }
}

// WithIntentResolver sets the utterance-to-asset resolution policy.
func WithIntentResolver(resolver IntentResolver) TextToSpeechOption {
	return func(o *TextToSpeechOptions) {
		if resolver == nil {
			return
		}
		o.Resolver = resolver
	}
}

// WithAudioOutput attaches a local playback sink that the client owns
// and releases on Close.
func WithAudioOutput(output AudioOutput) TextToSpeechOption {
	return func(o *TextToSpeechOptions) { o.Output = output }
}

// WithEncodingInfo sets the encoding the client advertises before any
// asset has been decoded.
func WithEncodingInfo(encodingInfo audio.EncodingInfo) TextToSpeechOption {
	return func(o *TextToSpeechOptions) {
		if encodingInfo.IsZero() {
			return
		}

		o.EncodingInfo = encodingInfo
	}
}

// IntentResolver maps accumulated utterance text to an asset name.
type IntentResolver interface {
	Resolve(text string) string
}

// AudioOutput is a local playback sink for synthesized audio.
type AudioOutput interface {
	SendAudio(audio []byte) error
	Close() error
}

// SpeechStreamer accumulates streamed response text and produces the
// matching speech as paced audio frames.
type SpeechStreamer interface {
	// SendText pushes a response text fragment into the stream. It is
	// guaranteed that speech is produced in the order text is sent.
	// Fragments sent after EndOfText or Close are silently dropped.
	SendText(string) error
	// EndOfText signals that no more text will be sent. The accumulated
	// utterance is resolved and queued for synthesis at this point, not
	// per fragment. Repeated calls are ignored.
	EndOfText() error
	// Frames yields the synthesized audio frames in utterance FIFO
	// order. Exhausting the sequence closes the stream.
	Frames(yield func(audio.Frame) bool)
	// Close immediately stops frame production and releases the stream.
	// It is guaranteed that no more frames are produced after this
	// call. Repeated calls are ignored.
	Close() error
}
