package audio

import (
	"bytes"
	"io"

	"github.com/google/uuid"
)

// Clip is a PCM payload queued for forwarding to an ingest endpoint.
type Clip struct {
	// ID correlates log lines of the same clip across retries.
	ID uuid.UUID
	// Name is the file the clip was read from.
	Name          string
	PCM           []byte
	SampleRate    uint32
	Channels      uint16
	BitsPerSample uint16
}

// Reader returns a fresh reader over the PCM data, one per delivery attempt.
func (c *Clip) Reader() io.Reader {
	return bytes.NewReader(c.PCM)
}

// Size is the PCM payload size in bytes.
func (c *Clip) Size() int {
	return len(c.PCM)
}

// NewClip wraps the PCM data of info in a Clip with a new ID.
func NewClip(name string, info *WAVInfo) *Clip {
	return &Clip{
		ID:            uuid.New(),
		Name:          name,
		PCM:           info.PCMData,
		SampleRate:    info.SampleRate,
		Channels:      info.Channels,
		BitsPerSample: info.BitsPerSample,
	}
}

// LoadClip reads audioDir/filename and wraps it in a Clip.
func LoadClip(audioDir, filename string) (*Clip, error) {
	info, err := ReadWAVFile(audioDir, filename)
	if err != nil {
		return nil, err
	}

	return NewClip(filename, info), nil
}
