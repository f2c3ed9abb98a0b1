// Package miniaudio provides a local playback sink backed by the
// miniaudio library. It is the demo's stand-in for the real-time room
// a production pipeline would play into.
package miniaudio

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"

	coreaudio "github.com/voicereel/reel-core/core/audio"
)

type PlaybackClient struct {
	audioContext *malgo.AllocatedContext

	mu     sync.Mutex
	device *malgo.Device

	audioMu       sync.Mutex
	leftoverAudio []byte

	closeOnce sync.Once
}

// NewPlaybackClient initializes and starts a playback device for the
// given encoding.
func NewPlaybackClient(encodingInfo coreaudio.EncodingInfo) (*PlaybackClient, error) {
	if encodingInfo.IsZero() {
		encodingInfo = coreaudio.GetDefaultEncodingInfo()
	}

	audioContext, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio context: %w", err)
	}

	client := &PlaybackClient{audioContext: audioContext}

	format := malgo.FormatS16
	bytesPerFrame := malgo.SampleSizeInBytes(format) * encodingInfo.NumChannels

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.SampleRate = uint32(encodingInfo.SampleRate)
	config.Playback.Format = format
	config.Playback.Channels = uint32(encodingInfo.NumChannels)
	config.Alsa.NoMMap = 1
	config.PeriodSizeInFrames = uint32(encodingInfo.SampleRate / 10) // ~100ms of audio
	config.Periods = 4

	if client.device, err = malgo.InitDevice(
		audioContext.Context,
		config,
		malgo.DeviceCallbacks{Data: client.processAudio(bytesPerFrame)},
	); err != nil {
		_ = audioContext.Uninit()
		audioContext.Free()
		return nil, fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := client.device.Start(); err != nil {
		client.device.Uninit()
		_ = audioContext.Uninit()
		audioContext.Free()
		return nil, fmt.Errorf("failed to start playback device: %w", err)
	}

	return client, nil
}

func (c *PlaybackClient) processAudio(bytesPerFrame int) malgo.DataProc {
	return func(outputSamples, _ []byte, frameCount uint32) {
		c.audioMu.Lock()
		defer c.audioMu.Unlock()

		available := min(len(c.leftoverAudio), int(frameCount)*bytesPerFrame)
		copy(outputSamples, c.leftoverAudio[:available])
		c.leftoverAudio = c.leftoverAudio[available:]
	}
}

// SendAudio queues raw samples for playback. Underruns play silence.
func (c *PlaybackClient) SendAudio(audio []byte) error {
	c.mu.Lock()
	device := c.device
	c.mu.Unlock()

	if device == nil {
		return fmt.Errorf("device not initialized")
	}

	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	c.leftoverAudio = append(c.leftoverAudio, audio...)
	return nil
}

// Close stops the device and releases the audio context. Repeated
// calls are ignored and Close never errors.
func (c *PlaybackClient) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		device := c.device
		c.device = nil
		c.mu.Unlock()

		if device != nil {
			device.Uninit()
		}
		if c.audioContext != nil {
			_ = c.audioContext.Uninit()
			c.audioContext.Free()
		}
	})
	return nil
}
