package streamer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mhabedinpour/pcm-audio-stub/pkg/audio"
	circuitbreaker "github.com/mhabedinpour/pcm-audio-stub/pkg/circuit-breaker"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/forwarder"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/ingest"
	retryhandler "github.com/mhabedinpour/pcm-audio-stub/pkg/retry-handler"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/writer"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// writeWAV stores a mono 16 kHz 16-bit PCM file holding pcm in dir.
func writeWAV(t *testing.T, dir, name string, pcm []byte) {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+len(pcm)))
	b.WriteString("WAVEfmt ")
	for _, v := range []any{uint32(16), uint16(1), uint16(1), uint32(16000), uint32(32000), uint16(2), uint16(16)} {
		_ = binary.Write(&b, binary.LittleEndian, v)
	}
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(pcm)))
	b.Write(pcm)

	require.Nil(t, os.WriteFile(filepath.Join(dir, name), b.Bytes(), 0o600))
}

func playFile(handler http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, PlayFilePath, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestStreamer_PlayFile(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, dir, "hello.wav", []byte{0x01, 0x02, 0x03, 0x04})
	require.Nil(t, os.WriteFile(filepath.Join(dir, "broken.wav"), []byte("not a wav"), 0o600))

	ctrl := gomock.NewController(t)
	mockQueue := NewMockEnqueuer(ctrl)
	logger, _ := test.NewNullLogger()
	handler := New(dir, mockQueue, prometheus.NewRegistry(), logger).Handler()

	t.Run("Queued", func(t *testing.T) {
		mockQueue.EXPECT().Enqueue(gomock.Any()).Times(1).DoAndReturn(func(clip *audio.Clip) error {
			assert.Equal(t, "hello.wav", clip.Name)
			assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, clip.PCM)
			assert.Equal(t, uint32(16000), clip.SampleRate)

			return nil
		})

		rec := playFile(handler, http.MethodPost, "hello.wav\n")
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "Audio queued for forwarding", rec.Body.String())
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		rec := playFile(handler, http.MethodGet, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("EmptyFilename", func(t *testing.T) {
		rec := playFile(handler, http.MethodPost, "  ")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Filename required\n", rec.Body.String())
	})

	t.Run("InvalidFilename", func(t *testing.T) {
		for _, name := range []string{"../hello.wav", "sub/hello.wav", "hello.mp3"} {
			rec := playFile(handler, http.MethodPost, name)
			assert.Equal(t, http.StatusBadRequest, rec.Code, name)
			assert.Equal(t, "Invalid filename\n", rec.Body.String())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		for _, name := range []string{"missing.wav", "broken.wav"} {
			rec := playFile(handler, http.MethodPost, name)
			assert.Equal(t, http.StatusNotFound, rec.Code, name)
			assert.Equal(t, "File not found or invalid\n", rec.Body.String())
		}
	})

	t.Run("QueueStopped", func(t *testing.T) {
		mockQueue.EXPECT().Enqueue(gomock.Any()).Times(1).Return(forwarder.ErrQueueStopped)

		rec := playFile(handler, http.MethodPost, "hello.wav")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}

func TestReadLines(t *testing.T) {
	var lines []string
	for line := range ReadLines(strings.NewReader("a.wav\n\n  b.wav  \nc.wav")) {
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"a.wav", "b.wav", "c.wav"}, lines)
}

// TestStreamer_ForwardsToIngest runs the whole pipeline against the ingest handler.
func TestStreamer_ForwardsToIngest(t *testing.T) {
	var out bytes.Buffer
	ingestServer := httptest.NewServer(ingest.NewHandler(ingest.NewConsoleLogger(&out)))
	defer ingestServer.Close()

	dir := t.TempDir()
	writeWAV(t, dir, "hello.wav", []byte{0x01, 0x02, 0x03, 0x04})

	logger, _ := test.NewNullLogger()
	reg := prometheus.NewRegistry()
	queue, err := forwarder.NewQueue[*audio.Clip, []byte](
		writer.NewHTTPPostWriter(ingestServer.URL+ingest.AudioInputPath, 5*time.Second),
		retryhandler.NewConstRetryHandler[*audio.Clip](10*time.Millisecond, 2),
		circuitbreaker.NewIngestBreaker[[]byte]("Ingest", 5, time.Minute, logger),
		forwarder.Options{Workers: 1, QueueSize: forwarder.QueueNoLimit, Registerer: reg},
	)
	require.Nil(t, err)

	handler := New(dir, queue, reg, logger).Handler()
	rec := playFile(handler, http.MethodPost, "hello.wav")
	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case delivery := <-queue.Successes():
		assert.Equal(t, ingest.Acknowledgment, string(delivery.Result))
		assert.Equal(t, "hello.wav", delivery.Item.Name)
	case failure := <-queue.Errors():
		t.Fatalf("forwarding failed: %v", failure.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	queue.Stop()

	assert.Equal(t, "Received audio data:\n  Content-Type: audio/pcm\n  Content-Length: 4\n  Data size: 4 bytes\n", out.String())

	metrics := httptest.NewRecorder()
	handler.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	body, _ := io.ReadAll(metrics.Body)
	assert.Contains(t, string(body), "pcm_streamer_clips_forwarded_total 1")

	assert.Equal(t, errors.Is(queue.Enqueue(&audio.Clip{}), forwarder.ErrQueueStopped), true)
}
