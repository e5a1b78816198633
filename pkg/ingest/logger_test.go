package ingest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewConsoleLogger(&out)

	logger.LogAudio(IncomingAudioRequest{ContentType: "audio/pcm", ContentLength: 3, Body: []byte{1, 2, 3}})
	assert.Equal(t, "Received audio data:\n  Content-Type: audio/pcm\n  Content-Length: 3\n  Data size: 3 bytes\n", out.String())

	out.Reset()
	logger.LogError(IncomingAudioRequest{ContentLength: 8, Body: []byte{1}}, ErrShortBody)
	assert.Equal(t, "Failed to read audio data (1 of 8 bytes): "+ErrShortBody.Error()+"\n", out.String())
}

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	logger := NewLogrusLogger(base)

	logger.LogAudio(IncomingAudioRequest{Path: AudioInputPath, ContentType: "audio/pcm", ContentLength: 2, Body: []byte{1, 2}})
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "audio/pcm", entry.Data["content_type"])
	assert.Equal(t, int64(2), entry.Data["content_length"])
	assert.Equal(t, 2, entry.Data["data_size"])
	assert.Equal(t, "ingest", entry.Data["component"])

	readErr := errors.New("connection reset")
	logger.LogError(IncomingAudioRequest{ContentLength: 2}, readErr)
	entry = hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, readErr, entry.Data[logrus.ErrorKey])
}
