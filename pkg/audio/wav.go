package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	formatPCM = 1
	// fmtChunkSize is the size of a plain PCM fmt chunk, anything above it is extension data.
	fmtChunkSize = 16
	// unknownDataSize is written by encoders that stream and never patch the header.
	unknownDataSize = 0xFFFFFFFF
)

// WAVInfo is the PCM payload of a WAV file and the format needed to play it back.
type WAVInfo struct {
	PCMData       []byte
	SampleRate    uint32
	Channels      uint16
	BitsPerSample uint16
}

type riffHeader struct {
	ChunkID   [4]byte
	ChunkSize uint32
	Format    [4]byte
}

type chunkHeader struct {
	ChunkID   [4]byte
	ChunkSize uint32
}

type fmtChunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// ValidateFilename only accepts bare *.wav names so requests cannot escape the audio directory.
func ValidateFilename(filename string) error {
	if strings.Contains(filename, "..") {
		return ErrPathTraversal
	}

	if strings.ContainsAny(filename, `/\`) {
		return ErrPathSeparator
	}

	if !strings.HasSuffix(strings.ToLower(filename), ".wav") {
		return ErrUnsupportedFormat
	}

	return nil
}

// ReadWAVFile validates filename, then extracts the PCM data of audioDir/filename.
func ReadWAVFile(audioDir, filename string) (*WAVInfo, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(audioDir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	return DecodeWAV(file)
}

// DecodeWAV reads a RIFF/WAVE stream and returns its data chunk. Chunks other than fmt and data are skipped.
func DecodeWAV(r io.ReadSeeker) (*WAVInfo, error) {
	var riff riffHeader
	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if string(riff.ChunkID[:]) != "RIFF" || string(riff.Format[:]) != "WAVE" {
		return nil, ErrInvalidWAV
	}

	var header chunkHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read fmt chunk: %w", err)
	}

	if string(header.ChunkID[:]) != "fmt " {
		return nil, fmt.Errorf("%w: expected fmt chunk, got %q", ErrInvalidWAV, string(header.ChunkID[:]))
	}

	if header.ChunkSize < fmtChunkSize {
		return nil, fmt.Errorf("%w: fmt chunk too small (%d bytes)", ErrInvalidWAV, header.ChunkSize)
	}

	var format fmtChunk
	if err := binary.Read(r, binary.LittleEndian, &format); err != nil {
		return nil, fmt.Errorf("failed to read fmt chunk: %w", err)
	}

	if format.AudioFormat != formatPCM {
		return nil, fmt.Errorf("%w, got format %d", ErrNotPCM, format.AudioFormat)
	}

	if extra := header.ChunkSize - fmtChunkSize; extra > 0 {
		if _, err := r.Seek(int64(extra), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("failed to skip extra fmt bytes: %w", err)
		}
	}

	dataSize, err := seekDataChunk(r)
	if err != nil {
		return nil, err
	}

	left, err := remaining(r)
	if err != nil {
		return nil, err
	}

	size := int64(dataSize)
	switch {
	case dataSize == unknownDataSize:
		size = left
	case size > left:
		return nil, fmt.Errorf("%w: data chunk declares %d bytes, %d left", ErrTruncatedData, size, left)
	}

	pcm := make([]byte, size)
	if _, err := io.ReadFull(r, pcm); err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	return &WAVInfo{
		PCMData:       pcm,
		SampleRate:    format.SampleRate,
		Channels:      format.NumChannels,
		BitsPerSample: format.BitsPerSample,
	}, nil
}

// seekDataChunk positions r at the start of the data chunk payload and returns its size.
func seekDataChunk(r io.ReadSeeker) (uint32, error) {
	for {
		var header chunkHeader
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			return 0, fmt.Errorf("failed to read chunk header: %w", err)
		}

		if string(header.ChunkID[:]) == "data" {
			return header.ChunkSize, nil
		}

		// RIFF chunks are word aligned.
		skip := int64(header.ChunkSize) + int64(header.ChunkSize%2)
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("failed to skip chunk %s: %w", string(header.ChunkID[:]), err)
		}
	}
}

// remaining is the number of bytes between the current position of r and its end. r is left where it was.
func remaining(r io.Seeker) (int64, error) {
	cur, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("failed to get stream position: %w", err)
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to get stream size: %w", err)
	}

	if _, err := r.Seek(cur, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to rewind stream: %w", err)
	}

	return end - cur, nil
}
