package writer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mhabedinpour/pcm-audio-stub/pkg/audio"

	"github.com/stretchr/testify/assert"
)

func TestHTTPPostWriter_Write(t *testing.T) {
	c := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, body)
		assert.Equal(t, PCMContentType, req.Header.Get("Content-Type"))
		assert.Equal(t, int64(4), req.ContentLength)

		if c == 0 {
			_, _ = rw.Write([]byte("Audio received successfully"))
			c++
		} else {
			rw.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	clip := &audio.Clip{Name: "test.wav", PCM: []byte{0x01, 0x02, 0x03, 0x04}}

	invalidWriter := NewHTTPPostWriter("test", 5*time.Second)
	_, err := invalidWriter.Write(context.Background(), clip)
	assert.NotNil(t, err)

	writer := NewHTTPPostWriter(server.URL, 5*time.Second)

	res, err := writer.Write(context.Background(), clip)
	assert.Nil(t, err)
	assert.Equal(t, []byte("Audio received successfully"), res)

	res, err = writer.Write(context.Background(), clip)
	assert.Equal(t, errors.Is(err, ErrInvalidHTTPStatusCode), true)
	assert.Empty(t, res)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = writer.Write(ctx, clip)
	assert.Equal(t, errors.Is(err, context.Canceled), true)
}
