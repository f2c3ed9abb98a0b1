package audio

import (
	"context"
	"encoding/binary"
	"math"
	"time"
)

// FrameDuration is the fixed wall-clock length of every packetized
// frame.
const FrameDuration = 20 * time.Millisecond

// FrameSize returns the number of samples per channel that fit into one
// frame at the given sample rate.
func FrameSize(sampleRate int) int {
	return int(math.Round(float64(sampleRate) * FrameDuration.Seconds()))
}

// Packetize splits a decoded asset into fixed-duration frames of the
// asset's own sample rate and channel count. The returned sequence is
// lazy, finite and restartable per call; frames are emitted in strict
// sample order and the final frame is zero-padded on the right when the
// sample buffer does not divide evenly.
//
// Emission is paced: after yielding a frame the producer sleeps for one
// [FrameDuration] so a downstream real-time sink neither starves nor
// overflows. Cancelling ctx ends the sequence within one pacing
// interval.
func Packetize(ctx context.Context, asset *Asset) func(yield func(Frame) bool) {
	return func(yield func(Frame) bool) {
		frameSize := FrameSize(asset.SampleRate)
		if frameSize == 0 || asset.NumChannels == 0 {
			return
		}

		samplesPerFrame := frameSize * asset.NumChannels
		for offset := 0; offset < len(asset.Samples); offset += samplesPerFrame {
			end := min(offset+samplesPerFrame, len(asset.Samples))

			data := make([]byte, samplesPerFrame*2)
			for i, sample := range asset.Samples[offset:end] {
				binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(sample)))
			}

			if !yield(Frame{
				Data:              data,
				SamplesPerChannel: frameSize,
				SampleRate:        asset.SampleRate,
				NumChannels:       asset.NumChannels,
			}) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(FrameDuration):
			}
		}
	}
}
