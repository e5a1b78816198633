package ingest

import "errors"

// ErrShortBody is returned when the connection delivers fewer bytes than Content-Length declared.
var ErrShortBody = errors.New("request body shorter than Content-Length")
