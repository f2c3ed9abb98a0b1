package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWavFixture(t *testing.T, path string, sampleRate, numChannels int, samples []int) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture file: %v", err)
	}
	defer file.Close()

	buffer := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}

	encoder := wav.NewEncoder(file, sampleRate, 16, numChannels, 1)
	if err := encoder.Write(buffer); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatalf("failed to close fixture encoder: %v", err)
	}
}

func rampSamples(n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = i % 1000
	}
	return samples
}

func TestReadAssetDecodesMonoPCM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greetings.wav")
	writeWavFixture(t, path, 24000, 1, rampSamples(2400))

	asset, err := ReadAsset(path)
	if err != nil {
		t.Fatalf("expected asset to decode, got %v", err)
	}

	if asset.SampleRate != 24000 {
		t.Fatalf("expected sample rate 24000, got %d", asset.SampleRate)
	}
	if asset.NumChannels != 1 {
		t.Fatalf("expected 1 channel, got %d", asset.NumChannels)
	}
	if asset.SamplesPerChannel() != 2400 {
		t.Fatalf("expected 2400 samples per channel, got %d", asset.SamplesPerChannel())
	}
	if asset.Duration() != 100*time.Millisecond {
		t.Fatalf("expected duration 100ms, got %s", asset.Duration())
	}
}

func TestReadAssetDecodesStereoPCM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWavFixture(t, path, 8000, 2, rampSamples(640))

	asset, err := ReadAsset(path)
	if err != nil {
		t.Fatalf("expected asset to decode, got %v", err)
	}

	if asset.NumChannels != 2 {
		t.Fatalf("expected 2 channels, got %d", asset.NumChannels)
	}
	if asset.SamplesPerChannel() != 320 {
		t.Fatalf("expected 320 samples per channel, got %d", asset.SamplesPerChannel())
	}
	if asset.Duration() != 40*time.Millisecond {
		t.Fatalf("expected duration 40ms, got %s", asset.Duration())
	}
}

func TestReadAssetMissingFile(t *testing.T) {
	_, err := ReadAsset(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestReadAssetMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav file"), 0o644); err != nil {
		t.Fatalf("failed to write malformed fixture: %v", err)
	}

	_, err := ReadAsset(path)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}
