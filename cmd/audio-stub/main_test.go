package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer written by server goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestServe(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)

	var out syncBuffer
	logger, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, listener, &out, logger)
	}()

	url := "http://" + listener.Addr().String()

	res, err := http.Post(url+"/audio_input", "audio/pcm", bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	require.Nil(t, err)
	body, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/plain", res.Header.Get("Content-Type"))
	assert.Equal(t, "Audio received successfully", string(body))

	res, err = http.Post(url+"/wrong_path", "audio/pcm", bytes.NewReader([]byte{0x01}))
	require.Nil(t, err)
	body, _ = io.ReadAll(res.Body)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Empty(t, body)

	cancel()

	select {
	case err := <-done:
		assert.Nil(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Equal(t, "Test server listening on "+url+"\n"+
		"Waiting for audio data on /audio_input endpoint...\n"+
		"Received audio data:\n  Content-Type: audio/pcm\n  Content-Length: 4\n  Data size: 4 bytes\n"+
		"\nShutting down test server...\n", out.String())
}
