package ingest

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// RequestLogger is notified about every request the Handler accepts. It replaces the transport's access log.
type RequestLogger interface {
	// LogAudio is called once a payload has been fully read, before the acknowledgment is written.
	LogAudio(req IncomingAudioRequest)
	// LogError is called when the payload could not be read completely.
	LogError(req IncomingAudioRequest, err error)
}

// ConsoleLogger prints a human-readable block per payload.
type ConsoleLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// to make sure ConsoleLogger implements RequestLogger.
var _ RequestLogger = (*ConsoleLogger)(nil)

func (c *ConsoleLogger) LogAudio(req IncomingAudioRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprintf(c.out, "Received audio data:\n  Content-Type: %s\n  Content-Length: %d\n  Data size: %d bytes\n",
		req.ContentType, req.ContentLength, req.DataSize())
}

func (c *ConsoleLogger) LogError(req IncomingAudioRequest, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprintf(c.out, "Failed to read audio data (%d of %d bytes): %v\n", req.DataSize(), req.ContentLength, err)
}

// NewConsoleLogger is the constructor of ConsoleLogger.
func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out}
}

// LogrusLogger writes one structured entry per request.
type LogrusLogger struct {
	entry *logrus.Entry
}

// to make sure LogrusLogger implements RequestLogger.
var _ RequestLogger = LogrusLogger{}

func (l LogrusLogger) LogAudio(req IncomingAudioRequest) {
	l.fields(req).Info("received audio data")
}

func (l LogrusLogger) LogError(req IncomingAudioRequest, err error) {
	l.fields(req).WithError(err).Warn("could not read audio data")
}

func (l LogrusLogger) fields(req IncomingAudioRequest) *logrus.Entry {
	return l.entry.WithFields(logrus.Fields{
		"path":           req.Path,
		"content_type":   req.ContentType,
		"content_length": req.ContentLength,
		"data_size":      req.DataSize(),
	})
}

// NewLogrusLogger is the constructor of LogrusLogger.
func NewLogrusLogger(logger logrus.FieldLogger) LogrusLogger {
	return LogrusLogger{entry: logger.WithField("component", "ingest")}
}

// NopLogger drops everything.
type NopLogger struct{}

func (NopLogger) LogAudio(IncomingAudioRequest) {}

func (NopLogger) LogError(IncomingAudioRequest, error) {}
