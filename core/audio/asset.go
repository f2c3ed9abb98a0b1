package audio

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// ErrAssetNotFound reports that a requested audio asset does not exist.
var ErrAssetNotFound = errors.New("audio asset not found")

// DecodeError reports a malformed or unsupported waveform file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Asset is a fully decoded waveform file. An asset is immutable once
// read and is re-read on every synthesis call, there is no caching
// layer in between.
type Asset struct {
	SampleRate  int
	NumChannels int
	// Samples holds the interleaved 16-bit PCM samples.
	Samples []int
}

// ReadAsset opens a 16-bit PCM wav file and decodes it fully into
// memory. The file handle is released before ReadAsset returns, on
// every exit path. Mono and multi-channel input are supported; no
// resampling or format conversion happens, the asset keeps whatever
// rate and channel count the file declares.
func ReadAsset(path string) (*Asset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open audio asset: %w", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, &DecodeError{Path: path, Err: errors.New("not a valid wav file")}
	}
	if decoder.BitDepth != 16 {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("unsupported bit depth %d", decoder.BitDepth)}
	}

	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return &Asset{
		SampleRate:  buffer.Format.SampleRate,
		NumChannels: buffer.Format.NumChannels,
		Samples:     buffer.Data,
	}, nil
}

// SamplesPerChannel returns the per-channel sample count.
func (a *Asset) SamplesPerChannel() int {
	if a.NumChannels == 0 {
		return 0
	}
	return len(a.Samples) / a.NumChannels
}

// Duration returns the playback duration of the asset.
func (a *Asset) Duration() time.Duration {
	if a.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(a.SamplesPerChannel()) / float64(a.SampleRate) * float64(time.Second))
}

// EncodingInfo returns the encoding of the decoded asset.
func (a *Asset) EncodingInfo() EncodingInfo {
	return EncodingInfo{
		SampleRate:  a.SampleRate,
		NumChannels: a.NumChannels,
		Format:      EncodingLinear16,
	}
}
