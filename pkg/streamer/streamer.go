package streamer

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/mhabedinpour/pcm-audio-stub/pkg/audio"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/forwarder"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	PlayFilePath = "/play_file"
	MetricsPath  = "/metrics"
	HealthPath   = "/healthz"

	// maxFilenameSize bounds the /play_file request body.
	maxFilenameSize = 4096
)

// Enqueuer accepts clips for forwarding.
type Enqueuer interface {
	Enqueue(clip *audio.Clip) error
}

// Streamer loads WAV files from a directory and hands their PCM data to an Enqueuer.
type Streamer struct {
	audioDir string
	queue    Enqueuer
	gatherer prometheus.Gatherer
	logger   logrus.FieldLogger
}

// PlayFile loads filename from the audio directory and queues it.
func (s *Streamer) PlayFile(filename string) (*audio.Clip, error) {
	clip, err := audio.LoadClip(s.audioDir, filename)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(clip); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"clip":        clip.ID.String(),
		"file":        filename,
		"bytes":       clip.Size(),
		"sample_rate": clip.SampleRate,
		"channels":    clip.Channels,
	}).Info("queued audio file")

	return clip, nil
}

func (s *Streamer) handlePlayFile(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)

		return
	}

	body, err := io.ReadAll(io.LimitReader(req.Body, maxFilenameSize))
	if err != nil {
		s.logger.WithError(err).Warn("could not read request body")
		http.Error(w, "Failed to read request body", http.StatusBadRequest)

		return
	}

	filename := strings.TrimSpace(string(body))
	if filename == "" {
		http.Error(w, "Filename required", http.StatusBadRequest)

		return
	}

	_, err = s.PlayFile(filename)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("Audio queued for forwarding"))
	case audio.IsInvalidName(err):
		s.logger.WithError(err).WithField("file", filename).Warn("rejected file name")
		http.Error(w, "Invalid filename", http.StatusBadRequest)
	case errors.Is(err, forwarder.ErrQueueStopped):
		http.Error(w, "Shutting down", http.StatusServiceUnavailable)
	default:
		s.logger.WithError(err).WithField("file", filename).Warn("could not read WAV file")
		http.Error(w, "File not found or invalid", http.StatusNotFound)
	}
}

// Handler exposes PlayFilePath, MetricsPath and HealthPath.
func (s *Streamer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PlayFilePath, s.handlePlayFile)
	mux.Handle(MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

// New is the constructor of Streamer. A nil gatherer serves the default prometheus registry.
func New(audioDir string, queue Enqueuer, gatherer prometheus.Gatherer, logger logrus.FieldLogger) *Streamer {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Streamer{
		audioDir: audioDir,
		queue:    queue,
		gatherer: gatherer,
		logger:   logger.WithField("component", "streamer"),
	}
}
