package audio

const (
	DefaultSampleRate  = 24000
	DefaultNumChannels = 1
	DefaultFormat      = "linear16"
)

func GetDefaultEncodingInfo() EncodingInfo {
	return EncodingInfo{
		SampleRate:  DefaultSampleRate,
		NumChannels: DefaultNumChannels,
		Format:      encodingFormat(DefaultFormat),
	}
}

// EncodingInfo describes the raw sample layout of an audio payload.
type EncodingInfo struct {
	SampleRate  int
	NumChannels int
	Format      encodingFormat
}

func (e EncodingInfo) IsZero() bool {
	return e.SampleRate == 0 || e.NumChannels == 0 || e.Format.Name() == ""
}

type encodingFormat string

func (e encodingFormat) Name() string {
	return string(e)
}

// ByteSize returns the number of bytes a single sample occupies.
func (e encodingFormat) ByteSize() int {
	switch e {
	case EncodingLinear16:
		return 2
	}
	return -1
}

const (
	EncodingLinear16 encodingFormat = "linear16"
)
