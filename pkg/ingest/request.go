package ingest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// IncomingAudioRequest is the view of a single POST /audio_input call. It lives only for the duration of the request.
type IncomingAudioRequest struct {
	// Path is the raw request target as sent by the client.
	Path string
	// ContentType is the raw Content-Type header, empty when absent.
	ContentType string
	// ContentLength is the declared body size, 0 when the header is absent.
	ContentLength int64
	// Body holds the bytes actually read from the connection.
	Body []byte
}

// DataSize is the number of body bytes actually read.
func (r IncomingAudioRequest) DataSize() int {
	return len(r.Body)
}

// ReadAudioRequest reads exactly the declared number of body bytes from req.
// A body that ends early yields ErrShortBody and the partially filled request.
func ReadAudioRequest(req *http.Request) (IncomingAudioRequest, error) {
	audioReq := IncomingAudioRequest{
		Path:          requestTarget(req),
		ContentType:   req.Header.Get("Content-Type"),
		ContentLength: declaredLength(req),
	}

	if audioReq.ContentLength == 0 || req.Body == nil {
		audioReq.Body = []byte{}

		return audioReq, nil
	}

	// grow as bytes arrive instead of trusting the header with one big allocation.
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, req.Body, audioReq.ContentLength)
	audioReq.Body = buf.Bytes()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return audioReq, fmt.Errorf("%w: read %d of %d bytes: %w", ErrShortBody, n, audioReq.ContentLength, err)
	}

	return audioReq, nil
}

// declaredLength returns the Content-Length of req, treating a missing header (or chunked encoding) as 0.
func declaredLength(req *http.Request) int64 {
	if req.ContentLength < 0 {
		return 0
	}

	return req.ContentLength
}

// requestTarget is the target from the request line, unparsed. Requests built in-process have none, so their URL is used.
func requestTarget(req *http.Request) string {
	if req.RequestURI != "" {
		return req.RequestURI
	}

	return req.URL.RequestURI()
}
