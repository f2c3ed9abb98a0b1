package audio

import "time"

// Frame is a fixed-duration slice of interleaved 16-bit little-endian
// PCM samples sized for real-time playback pacing.
//
// The payload always satisfies
// len(Data) == SamplesPerChannel * NumChannels * 2; the final frame of
// an asset is zero-padded on the right to keep that invariant exact.
// Every frame carries its own sample rate and channel count so the
// format is explicit per batch rather than engine-level mutable state.
type Frame struct {
	Data              []byte
	SamplesPerChannel int
	SampleRate        int
	NumChannels       int
}

// Duration returns the playback duration of the frame.
func (f Frame) Duration() time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(f.SamplesPerChannel) / float64(f.SampleRate) * float64(time.Second))
}

// EncodingInfo returns the encoding of the frame payload.
func (f Frame) EncodingInfo() EncodingInfo {
	return EncodingInfo{
		SampleRate:  f.SampleRate,
		NumChannels: f.NumChannels,
		Format:      EncodingLinear16,
	}
}
