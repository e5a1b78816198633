package writer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mhabedinpour/pcm-audio-stub/pkg/audio"
)

// PCMContentType is the media type announced for raw PCM payloads.
const PCMContentType = "audio/pcm"

// HTTPPostWriter is an implementation of Writer which sends PCM clips by making HTTP POST calls to an ingest url.
type HTTPPostWriter struct {
	// url is the ingest endpoint, e.g. http://127.0.0.1:8080/audio_input.
	url string
	// client is used for sending http requests.
	client *http.Client
}

// to make sure HTTPPostWriter implements Writer.
var _ Writer[*audio.Clip, []byte] = (*HTTPPostWriter)(nil)

// Write posts the PCM data of clip and returns the acknowledgment body.
func (h *HTTPPostWriter) Write(ctx context.Context, clip *audio.Clip) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, clip.Reader())
	if err != nil {
		return []byte{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.ContentLength = int64(clip.Size())
	req.Header.Set("Content-Type", PCMContentType)

	res, err := h.client.Do(req)
	if err != nil {
		return []byte{}, fmt.Errorf("failed to send request: %w", err)
	}

	defer func() {
		_ = res.Body.Close()
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return []byte{}, err
	}

	if res.StatusCode != http.StatusOK {
		return body, fmt.Errorf("%w: ingest endpoint returned status %d", ErrInvalidHTTPStatusCode, res.StatusCode)
	}

	return body, nil
}

// NewHTTPPostWriter is the constructor of HTTPPostWriter.
func NewHTTPPostWriter(url string, timeout time.Duration) *HTTPPostWriter {
	return &HTTPPostWriter{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}
